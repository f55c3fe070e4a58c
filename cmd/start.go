package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"country-atlas/core/loader"
	"country-atlas/core/logger"
	"country-atlas/core/middleware/auth"
	"country-atlas/core/middleware/rayid"
	"country-atlas/feature/countries"
	"country-atlas/feature/integrity"
	"country-atlas/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-atlas/docs/swagger"
)

// @title Country Atlas API
// @version 1.0
// @description Cached country data enriched with exchange rates and estimated GDP.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the country atlas server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.logger

		app := newApp(rt)

		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(rt.cfg.Server.ShutdownTimeout())
	},
}

// newApp builds the Fiber application around the wired services.
func newApp(rt *runtime) *fiber.App {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line below can be traced.
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
	if rt.metrics != nil {
		app.Get("/metrics", rt.metrics.Handler())
	}

	app.Use(auth.New(auth.Config{
		ApiKey: rt.cfg.Server.ApiKey,
		Skip:   []string{"/swagger", "/metrics"},
	}))

	// Report routes share the /countries prefix and must be registered first.
	mgr := loader.NewManager(logg)
	mgr.Register(report.NewFeature(rt.reports))
	mgr.Register(countries.NewFeature(rt.countries))
	mgr.Register(integrity.NewFeature(rt.integrity))

	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}

