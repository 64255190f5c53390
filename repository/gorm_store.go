package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MySQL server errors that mean the account lacks a privilege.
var mysqlPermissionErrors = map[uint16]bool{
	1044: true, // access denied to database
	1045: true, // access denied for user
	1142: true, // command denied on table
	1143: true, // command denied on column
}

// GormStore keeps every collection in a table of the same name.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a new GormStore instance.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) All(ctx context.Context, collection string, out any) error {
	err := s.DB.WithContext(ctx).Table(collection).Order("id").Find(out).Error
	return translateGormError(err)
}

func (s *GormStore) Get(ctx context.Context, collection, id string, out any) error {
	err := s.DB.WithContext(ctx).Table(collection).Where("id = ?", id).Take(out).Error
	return translateGormError(err)
}

// Set writes every column, inserting the row when the id is new.
func (s *GormStore) Set(ctx context.Context, collection, id string, doc any) error {
	err := s.DB.WithContext(ctx).
		Table(collection).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(doc).Error
	return translateGormError(err)
}

func (s *GormStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	columns := make(map[string]any, len(fields))
	for name, value := range fields {
		columns[s.DB.NamingStrategy.ColumnName("", name)] = value
	}
	res := s.DB.WithContext(ctx).Table(collection).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	err := s.DB.WithContext(ctx).Exec("DELETE FROM ? WHERE id = ?", clause.Table{Name: collection}, id).Error
	return translateGormError(err)
}

func (s *GormStore) Close(context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translateGormError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && mysqlPermissionErrors[myErr.Number] {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, myErr.Message)
	}
	return err
}
