package routes

import (
	"officer-mobility/internal/handler"
	"officer-mobility/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOfficerRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewOfficerRepository(db)
	hdl := handler.NewOfficerHandler(repo)

	api := app.Group("/api/officers")
	api.Get("/", hdl.GetAll)
	api.Get("/:fileNo", hdl.GetDetail)
}
