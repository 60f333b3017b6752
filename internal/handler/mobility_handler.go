package handler

import (
	"errors"

	"officer-mobility/internal/mobility"
	"officer-mobility/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type MobilityService interface {
	BuildOfficerProfile(fileNo string) (*mobility.GeoProfile, error)
	OfficerTransfers(fileNo string) ([]mobility.Transfer, error)
	FleetSummary(filter usecase.FleetFilter) (*mobility.FleetReport, error)
}

type MobilityHandler struct {
	svc      MobilityService
	validate *validator.Validate
}

func NewMobilityHandler(svc MobilityService) *MobilityHandler {
	return &MobilityHandler{svc: svc, validate: validator.New()}
}

func (h *MobilityHandler) GetProfile(c *fiber.Ctx) error {
	fileNo := c.Params("fileNo")

	profile, err := h.svc.BuildOfficerProfile(fileNo)
	if err != nil {
		return engineError(c, err, "Failed to build officer profile")
	}

	return c.JSON(fiber.Map{
		"message": "Officer profile loaded",
		"data":    profile,
	})
}

func (h *MobilityHandler) GetTransfers(c *fiber.Ctx) error {
	fileNo := c.Params("fileNo")

	transfers, err := h.svc.OfficerTransfers(fileNo)
	if err != nil {
		return engineError(c, err, "Failed to compute transfers")
	}

	return c.JSON(fiber.Map{
		"message": "Transfers loaded",
		"data":    transfers,
	})
}

type SummaryQuery struct {
	From  int    `query:"from" validate:"omitempty,gte=1900,lte=2100"`
	To    int    `query:"to" validate:"omitempty,gte=1900,lte=2100"`
	Grade string `query:"grade" validate:"omitempty,oneof=SP GI GII GIII"`
}

func (h *MobilityHandler) GetSummary(c *fiber.Ctx) error {
	var q SummaryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if err := h.validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}
	if q.From != 0 && q.To != 0 && q.From > q.To {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must not be after to"})
	}

	report, err := h.svc.FleetSummary(usecase.FleetFilter{
		Grade:    q.Grade,
		FromYear: q.From,
		ToYear:   q.To,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute mobility summary"})
	}

	return c.JSON(fiber.Map{
		"message": "Mobility summary computed",
		"data":    report,
	})
}

func engineError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, mobility.ErrOfficerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Officer not found"})
	case errors.Is(err, mobility.ErrMalformedSnapshots), errors.Is(err, mobility.ErrInvalidCoordinate):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid " + fe.Field() + ": failed " + fe.Tag()
	}
	return "Invalid query parameters"
}
