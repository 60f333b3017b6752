package main

import (
	"io"
	"os"

	"officer-mobility/config"
	"officer-mobility/internal/metrics"
	"officer-mobility/internal/middleware"
	"officer-mobility/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// newApp builds the fiber app with the global middleware; access lines go
// to accessLog.
func newApp(log *zap.Logger, accessLog io.Writer) *fiber.App {
	app := fiber.New()

	// Global middleware
	app.Use(middleware.Recover(log))
	app.Use(logger.New(logger.Config{Output: accessLog}))
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(log))
	return app
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	app := newApp(log, os.Stdout)

	routes.SetupInstitutionRoutes(app, db)
	routes.SetupOfficerRoutes(app, db)
	routes.SetupMobilityRoutes(app, db, cfg, m, log)
	routes.SetupMetricsRoutes(app, reg)

	log.Info("server ready", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
