package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/config"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/controllers"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/metrics"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/middleware"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	m := metrics.New()

	var events services.IEventPublisher = services.NopEventPublisher{}
	if cfg.Kafka.Enabled {
		kafkaSvc, err := services.NewKafkaService(cfg.Kafka.Brokers, "apparel-admin")
		if err != nil {
			return err
		}
		defer kafkaSvc.Close()
		eventSvc := services.NewEventService(kafkaSvc, cfg.Kafka.Topic, cfg.Kafka.Encoding, m)
		defer eventSvc.Close()
		events = eventSvc
	} else {
		log.Println("Kafka disabled; change notifications are not published.")
	}

	userRepo := repository.NewUserRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)
	productRepo := repository.NewProductRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	authSvc := services.NewAuthService(userRepo, cfg.Auth.MaxFailedAttempts, cfg.Auth.FailureWindow)
	categorySvc := services.NewCategoryService(categoryRepo, events, services.TimestampID)
	productSvc := services.NewProductService(productRepo, categoryRepo, events, services.TimestampID, cfg.Products.PlaceholderURL)
	orderSvc := services.NewOrderService(orderRepo, events, cfg.Products.PlaceholderURL)
	uploader := services.NewCloudinaryUploader(
		cfg.Cloudinary.BaseURL, cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset, cfg.Cloudinary.Timeout)

	loader.Watch(func(next *config.Config) {
		authSvc.SetThrottle(next.Auth.MaxFailedAttempts, next.Auth.FailureWindow)
		log.Printf("Sign-in throttle set to %d attempts per %s", next.Auth.MaxFailedAttempts, next.Auth.FailureWindow)
	})

	app := controllers.NewApp(logger.New(), m.Middleware())
	app.Get("/metrics", m.Handler())
	controllers.RegisterRoutes(app, controllers.Handlers{
		Auth:       controllers.NewAuthController(authSvc, cfg.Session.CookieName, cfg.Session.Secure, m.ObserveLogin),
		Dashboard:  controllers.NewDashboardController(),
		Categories: controllers.NewCategoryController(categorySvc),
		Products:   controllers.NewProductController(productSvc, categorySvc, uploader, m.ObserveImageUpload),
		Orders:     controllers.NewOrderController(orderSvc),
	}, middleware.SessionGuard(authSvc, cfg.Session.CookieName, cfg.Session.GuardWait))
	controllers.RegisterFallback(app)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		log.Printf("Server is starting on port %s", addr)
		errCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down...", sig)
	}
	return app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout)
}
