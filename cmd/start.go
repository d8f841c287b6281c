package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"showroom-audit/core/config"
	"showroom-audit/core/database"
	"showroom-audit/core/item"
	"showroom-audit/core/loader"
	"showroom-audit/core/logger"
	"showroom-audit/core/metrics"
	"showroom-audit/core/middleware/auth"
	"showroom-audit/core/middleware/rayid"
	"showroom-audit/core/rfid"
	"showroom-audit/core/storage"

	"showroom-audit/feature/export"
	"showroom-audit/feature/inventory"
	"showroom-audit/feature/scan"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "showroom-audit/docs/swagger"
)

// @title Showroom Audit API
// @version 1.0
// @description RFID stock reconciliation for jewelry showrooms.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the showroom audit server",
	Long:  `Starts the HTTP server, loads the master inventory and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the point-of-sale database (optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to point-of-sale database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Storage (optional)
		var client storage.Client
		if cfg.Storage.Enabled {
			c, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(ctx, c, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Bucket check failed", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
			}
			client = c
		}

		// 5. Master inventory
		var seed []item.Record
		if cfg.Inventory.SeedDemo {
			seed = item.Seed()
		}
		store := inventory.NewStore(seed)
		inventorySvc := inventory.NewService(store, logg, cfg.Inventory, client, cfg.Storage.Bucket, db, cfg.Database.Table)
		if name := cfg.Inventory.StartupObject; name != "" {
			if _, err := inventorySvc.ImportObject(ctx, name); err != nil {
				logg.Warn("Startup inventory import failed", zap.String("object", name), zap.Error(err))
			}
		}

		// 6. Reader bridge, scan sessions and exports
		bridge := rfid.NewBridge(logg)
		scanSvc := scan.NewService(store, bridge, logg, cfg.Scan)
		defer scanSvc.Close()
		exportSvc := export.NewService(scanSvc, logg, cfg.Export, client, cfg.Storage.Bucket)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager()
		mgr.Register(metrics.NewFeature())
		mgr.Register(rfid.NewFeature(bridge, logg, cfg.RFID))
		mgr.Register(inventory.NewFeature(inventorySvc))
		mgr.Register(scan.NewFeature(scanSvc))
		mgr.Register(export.NewFeature(exportSvc))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{metrics.Path, "/swagger"},
		}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded",
			zap.Strings("features", loaded),
			zap.Int("inventory", store.Len()),
			zap.Bool("auth", cfg.Server.AuthEnabled()),
		)

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
