package services

import "math"

const (
	DietBalanced    = "balanced"
	DietLowCarb     = "lowCarb"
	DietHighProtein = "highProtein"
	DietVegetarian  = "vegetarian"
	DietVegan       = "vegan"
)

// MealProfile is the body data a calorie target is derived from. Zero-value
// height and age fall back to the historical defaults (165cm, 30 years).
type MealProfile struct {
	CurrentWeightKg float64
	GoalWeightKg    float64
	HeightCm        float64
	Age             int
	Gender          string
	ActivityLevel   string
	DietPreference  string
}

type MacroSplit struct {
	ProteinGrams int `json:"protein_g"`
	CarbGrams    int `json:"carbs_g"`
	FatGrams     int `json:"fat_g"`
}

type MealPlan struct {
	DailyCalories     int        `json:"daily_calories"`
	Macros            MacroSplit `json:"macros"`
	BreakfastCalories int        `json:"breakfast_calories"`
	LunchCalories     int        `json:"lunch_calories"`
	DinnerCalories    int        `json:"dinner_calories"`
	SnackCalories     int        `json:"snack_calories"`
	DietPreference    string     `json:"diet_preference"`
}

var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

func IsValidDietPreference(preference string) bool {
	switch preference {
	case DietBalanced, DietLowCarb, DietHighProtein, DietVegetarian, DietVegan:
		return true
	}
	return false
}

// DailyCalorieNeeds computes a Harris-Benedict BMR, scales it by activity
// level, then shifts 500 kcal toward the weight goal.
func DailyCalorieNeeds(profile MealProfile) int {
	height := profile.HeightCm
	if height <= 0 {
		height = 165
	}
	age := profile.Age
	if age <= 0 {
		age = 30
	}

	var bmr float64
	if profile.Gender == "male" {
		bmr = 66 + 13.7*profile.CurrentWeightKg + 5*height - 6.8*float64(age)
	} else {
		bmr = 655 + 9.6*profile.CurrentWeightKg + 1.8*height - 4.7*float64(age)
	}

	multiplier, known := activityMultipliers[profile.ActivityLevel]
	if !known {
		multiplier = 1.2
	}
	tdee := bmr * multiplier

	weightDifference := profile.GoalWeightKg - profile.CurrentWeightKg
	adjustment := 0.0
	if weightDifference < 0 {
		adjustment = -500
	} else if weightDifference > 0 {
		adjustment = 500
	}

	return int(math.Round(tdee + adjustment))
}

// SplitMacros converts a calorie target into grams of protein, carbs and fat
// (4 kcal/g for protein and carbs, 9 kcal/g for fat).
func SplitMacros(totalCalories int, dietPreference string) MacroSplit {
	var protein, carbs, fat float64
	switch dietPreference {
	case DietLowCarb:
		protein, carbs, fat = 0.30, 0.20, 0.50
	case DietHighProtein:
		protein, carbs, fat = 0.40, 0.30, 0.30
	case DietVegetarian, DietVegan:
		protein, carbs, fat = 0.20, 0.55, 0.25
	default:
		protein, carbs, fat = 0.25, 0.50, 0.25
	}

	calories := float64(totalCalories)
	return MacroSplit{
		ProteinGrams: int(math.Round(calories * protein / 4)),
		CarbGrams:    int(math.Round(calories * carbs / 4)),
		FatGrams:     int(math.Round(calories * fat / 9)),
	}
}

// BuildMealPlan distributes the daily target across meals as
// 25/35/30/10 percent for breakfast, lunch, dinner and a snack.
func BuildMealPlan(profile MealProfile) MealPlan {
	preference := profile.DietPreference
	if !IsValidDietPreference(preference) {
		preference = DietBalanced
	}

	calories := DailyCalorieNeeds(profile)
	return MealPlan{
		DailyCalories:     calories,
		Macros:            SplitMacros(calories, preference),
		BreakfastCalories: int(math.Round(float64(calories) * 0.25)),
		LunchCalories:     int(math.Round(float64(calories) * 0.35)),
		DinnerCalories:    int(math.Round(float64(calories) * 0.30)),
		SnackCalories:     int(math.Round(float64(calories) * 0.10)),
		DietPreference:    preference,
	}
}
