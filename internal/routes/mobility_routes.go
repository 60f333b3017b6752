package routes

import (
	"officer-mobility/config"
	"officer-mobility/internal/handler"
	"officer-mobility/internal/metrics"
	"officer-mobility/internal/repository"
	"officer-mobility/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupMobilityRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) {
	officerRepo := repository.NewOfficerRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	uc := usecase.NewMobilityUsecase(officerRepo, assignmentRepo, cfg.Fleet.Workers, m, log)
	hdl := handler.NewMobilityHandler(uc)

	api := app.Group("/api")
	api.Get("/officers/:fileNo/profile", hdl.GetProfile)
	api.Get("/officers/:fileNo/transfers", hdl.GetTransfers)
	api.Get("/mobility/summary", hdl.GetSummary) // batch sweep over the fleet
}
