package handler

import (
	"strconv"

	"officer-mobility/internal/mobility"
	"officer-mobility/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type InstitutionHandler struct {
	repo           repository.InstitutionRepository
	assignmentRepo repository.AssignmentRepository
}

func NewInstitutionHandler(repo repository.InstitutionRepository, assignmentRepo repository.AssignmentRepository) *InstitutionHandler {
	return &InstitutionHandler{repo: repo, assignmentRepo: assignmentRepo}
}

func (h *InstitutionHandler) GetAll(c *fiber.Ctx) error {
	institutions, err := h.repo.GetAll(c.Query("district"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load institutions"})
	}
	return c.JSON(fiber.Map{"data": institutions})
}

// GetAssignmentsByYear lists the snapshot rows recorded for one year.
func (h *InstitutionHandler) GetAssignmentsByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1900 || year > 2100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	rows, err := h.assignmentRepo.GetByYear(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load assignments"})
	}

	snapshots := make([]mobility.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, row.Snapshot())
	}
	return c.JSON(fiber.Map{"data": snapshots})
}
