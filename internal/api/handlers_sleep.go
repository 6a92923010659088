package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mariveldt/velle/internal/models"
	"github.com/mariveldt/velle/internal/services"
	"gorm.io/gorm"
)

type sleepRequest struct {
	Date           string  `json:"date"`
	SleepTime      string  `json:"sleep_time"`
	WakeTime       string  `json:"wake_time"`
	DurationHours  float64 `json:"duration_hours"`
	WakeCount      int     `json:"wake_count"`
	LatencyMinutes int     `json:"latency_minutes"`
	Dreaming       bool    `json:"dreaming"`
	Activity       string  `json:"activity"`
}

type sleepRecordResponse struct {
	models.SleepRecord
	Analysis services.SleepAnalysis `json:"analysis"`
}

func (handler *Handler) GetSleepRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.sleep.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sleep records")
	}

	response := make([]sleepRecordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, sleepRecordResponse{
			SleepRecord: record,
			Analysis:    services.AnalyzeSleep(record),
		})
	}
	return c.JSON(response)
}

func (handler *Handler) CreateSleepRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request sleepRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	date := dateAtLocation(time.Now(), handler.location)
	if request.Date != "" {
		parsed, err := parseDayParam(request.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		date = parsed
	}
	if request.DurationHours < 0 || request.WakeCount < 0 || request.LatencyMinutes < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid sleep values")
	}

	record, err := handler.sleep.Record(user.ID, models.SleepRecord{
		Date:           date,
		SleepTime:      request.SleepTime,
		WakeTime:       request.WakeTime,
		DurationHours:  request.DurationHours,
		WakeCount:      request.WakeCount,
		LatencyMinutes: request.LatencyMinutes,
		Dreaming:       request.Dreaming,
		Activity:       request.Activity,
	})
	if errors.Is(err, services.ErrSleepRecordExists) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store sleep record")
	}

	return c.Status(fiber.StatusCreated).JSON(sleepRecordResponse{
		SleepRecord: record,
		Analysis:    services.AnalyzeSleep(record),
	})
}

func (handler *Handler) DeleteSleepRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := c.ParamsInt("id")
	if err != nil || recordID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	if err := handler.sleep.Delete(user.ID, uint(recordID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}

	return c.JSON(fiber.Map{"ok": true})
}
