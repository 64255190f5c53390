package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/config"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB initializes and returns a GORM database instance.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	// clientFoundRows makes UPDATE report matched rows, so an unchanged status still counts as found.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.Database.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates one table per collection.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.User{}, &models.Session{}); err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	log.Println("Database migration complete.")
	return nil
}

// InitMongo connects to MongoDB and returns the configured database.
func InitMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetRegistry(newBSONRegistry()).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, client.Database(cfg.Database.Name), nil
}

// OpenStore opens the document store selected by database.driver.
func OpenStore(ctx context.Context, cfg *config.Config) (DocumentStore, error) {
	switch cfg.Database.Driver {
	case "mysql":
		db, err := InitDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := Migrate(db); err != nil {
			return nil, err
		}
		return NewGormStore(db), nil
	case "mongodb":
		client, db, err := InitMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("Connected to mongodb database %q", cfg.Database.Name)
		return NewMongoStore(client, db), nil
	case "memory":
		log.Println("Using in-memory document store; data is lost on exit.")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
