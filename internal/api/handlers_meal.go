package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mariveldt/velle/internal/services"
)

// GetMealPlan derives calorie needs and a macro split from query parameters,
// falling back to the latest stored weight when none is given. No external
// nutrition API is involved; the plan is pure arithmetic.
func (handler *Handler) GetMealPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile := services.MealProfile{
		CurrentWeightKg: queryFloat(c, "current_weight"),
		GoalWeightKg:    queryFloat(c, "goal_weight"),
		HeightCm:        queryFloat(c, "height"),
		Age:             c.QueryInt("age"),
		Gender:          c.Query("gender", "female"),
		ActivityLevel:   c.Query("activity_level", "moderate"),
		DietPreference:  c.Query("diet_preference", services.DietBalanced),
	}

	if profile.CurrentWeightKg <= 0 {
		latest, found, err := handler.repositories.Weights.FindLatestByUser(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load weight records")
		}
		if found {
			profile.CurrentWeightKg = latest.WeightKg
		}
	}

	if profile.CurrentWeightKg <= 0 || profile.GoalWeightKg <= 0 {
		return apiError(c, fiber.StatusBadRequest, "weight data is required; log a weight or pass current_weight and goal_weight")
	}

	return c.JSON(services.BuildMealPlan(profile))
}

func queryFloat(c *fiber.Ctx, key string) float64 {
	value, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return value
}
