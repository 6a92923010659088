package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type weightRequest struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

func (handler *Handler) GetWeightRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.repositories.Weights.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weight records")
	}
	return c.JSON(records)
}

// UpsertWeightRecord updates the existing entry when the date was already
// logged instead of creating a duplicate.
func (handler *Handler) UpsertWeightRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request weightRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.WeightKg <= 0 {
		return apiError(c, fiber.StatusBadRequest, "valid weight value is required")
	}

	date := dateAtLocation(time.Now(), handler.location)
	if request.Date != "" {
		parsed, err := parseDayParam(request.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		date = parsed
	}

	record, err := handler.repositories.Weights.Upsert(user.ID, date, request.WeightKg)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store weight record")
	}
	return c.JSON(record)
}
