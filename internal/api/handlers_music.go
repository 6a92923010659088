package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mariveldt/velle/internal/services"
)

type musicKeywordsRequest struct {
	LikedTracks []services.LikedTrack `json:"liked_tracks"`
}

// GetMusicKeywords turns liked-track tags into the search keywords a client
// feeds to its audio provider.
func (handler *Handler) GetMusicKeywords(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request musicKeywordsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	return c.JSON(fiber.Map{"keywords": services.SleepMusicKeywords(request.LikedTracks)})
}
