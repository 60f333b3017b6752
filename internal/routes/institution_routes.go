package routes

import (
	"officer-mobility/internal/handler"
	"officer-mobility/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInstitutionRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewInstitutionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	hdl := handler.NewInstitutionHandler(repo, assignmentRepo)

	app.Get("/api/institutions", hdl.GetAll)
	app.Get("/api/assignments/:year", hdl.GetAssignmentsByYear)
}
