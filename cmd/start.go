package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"poc-portal/core/loader"
	"poc-portal/core/logger"
	"poc-portal/core/metrics"
	"poc-portal/core/middleware/auth"
	"poc-portal/core/middleware/rayid"
	"poc-portal/feature/integrity"
	"poc-portal/feature/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "poc-portal/docs/swagger"
)

// @title POC Portal API
// @version 1.0
// @description API for synchronizing proof-of-concept use cases from a remote repository.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the POC Portal server",
	Long:  `Synchronizes use cases if the remote repository has changes, then starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, storage pool and service
		a, err := bootstrap(cmd)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 2. Startup sync, never fatal
		if a.cfg.Content.SyncOnStartup {
			a.service.Startup(ctx)
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(usecases.NewFeature(a.service))
		mgr.Register(integrity.NewFeature(a.store, a.resolver, a.cfg.Content.RepoURL, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 4. Auth (Protect API)
		if a.cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))
		} else {
			logg.Warn("SERVER_API_KEY is empty, the API is not protected")
		}

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("address", a.cfg.Server.Address()),
				zap.String("content_root", a.cfg.Content.LocalPath))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
