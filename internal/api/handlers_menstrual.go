package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mariveldt/velle/internal/services"
	"gorm.io/gorm"
)

type periodRequest struct {
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	FlowIntensity string   `json:"flow_intensity"`
	Symptoms      []string `json:"symptoms"`
}

// GetCycleSummary recomputes the derived cycle view from the stored history
// on every call; nothing here is cached between requests.
func (handler *Handler) GetCycleSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := dateAtLocation(time.Now(), handler.location)
	summary, err := handler.periods.Summary(user.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load period records")
	}

	return c.JSON(summary)
}

func (handler *Handler) CreatePeriodRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request periodRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	startDate, err := parseDayParam(request.StartDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	endDate, err := parseDayParam(request.EndDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}

	record, err := handler.periods.Record(user.ID, services.PeriodInput{
		StartDate:     startDate,
		EndDate:       endDate,
		FlowIntensity: request.FlowIntensity,
		Symptoms:      request.Symptoms,
	})
	if errors.Is(err, services.ErrInvalidDateRange) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store period record")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) DeletePeriodRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	publicID := c.Params("id")
	if publicID == "" {
		return apiError(c, fiber.StatusBadRequest, "record id is required")
	}

	if err := handler.periods.Delete(user.ID, publicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}

	return c.JSON(fiber.Map{"ok": true})
}
