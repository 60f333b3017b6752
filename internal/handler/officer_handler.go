package handler

import (
	"officer-mobility/internal/mobility"
	"officer-mobility/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type OfficerHandler struct {
	repo repository.OfficerRepository
}

func NewOfficerHandler(repo repository.OfficerRepository) *OfficerHandler {
	return &OfficerHandler{repo: repo}
}

func (h *OfficerHandler) GetAll(c *fiber.Ctx) error {
	var grade mobility.Grade
	if raw := c.Query("grade"); raw != "" {
		g, err := mobility.ParseGrade(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		grade = g
	}

	officers, err := h.repo.GetAll(c.Query("search"), string(grade))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load officers"})
	}
	return c.JSON(fiber.Map{"data": officers})
}

func (h *OfficerHandler) GetDetail(c *fiber.Ctx) error {
	officer, err := h.repo.FindByFileNo(c.Params("fileNo"))
	if err != nil {
		return engineError(c, err, "Failed to load officer")
	}
	return c.JSON(fiber.Map{"data": officer})
}
