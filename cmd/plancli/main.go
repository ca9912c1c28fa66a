// plancli runs the calculation pipeline offline: biometrics and a goal go
// in as flags, the complete calorie plan, macro split and a sample day of
// food come out as JSON. Useful for eyeballing the engine without a store.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mkovalev/gain-planner/internal/domain"
	"github.com/mkovalev/gain-planner/internal/foodref"
	"github.com/mkovalev/gain-planner/internal/services"
)

func main() {
	age := flag.Int("age", 30, "age in years")
	sex := flag.String("sex", "male", "biological sex: male|female")
	height := flag.Float64("height", 180, "height in cm")
	weight := flag.Float64("weight", 75, "current weight in kg")
	activity := flag.String("activity", "moderate", "activity level: sedentary|light|moderate|very|extreme")
	target := flag.Float64("target", 0, "target weight in kg (default: weight+5)")
	weeklyGain := flag.Float64("weekly-gain", 0, "weekly gain in kg (0 = use intensity)")
	intensity := flag.String("intensity", "moderate", "goal intensity: conservative|moderate|aggressive")
	slots := flag.Int("slots", 4, "meal slots per day (3-6)")
	tags := flag.String("tags", "", "comma-separated dietary tags, e.g. vegetarian")
	flag.Parse()

	profile := &domain.BiometricProfile{
		Age:             *age,
		Sex:             domain.BiologicalSex(*sex),
		HeightCm:        *height,
		CurrentWeightKg: *weight,
		ActivityLevel:   domain.ActivityLevel(*activity),
	}
	targetWeight := *target
	if targetWeight == 0 {
		targetWeight = *weight + 5
	}
	goal := &domain.Goal{
		TargetWeightKg: targetWeight,
		WeeklyGainKg:   *weeklyGain,
		Intensity:      domain.GoalIntensity(*intensity),
	}

	plan, macros, err := services.ComputeCaloriePlan(profile, goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan failed: %v\n", err)
		os.Exit(1)
	}

	var dietaryTags []string
	if *tags != "" {
		dietaryTags = strings.Split(*tags, ",")
	}
	meals, err := foodref.Default().BuildMealPlan(foodref.MealPlanRequest{
		TargetCalories: plan.TotalCalories,
		Targets:        macros.Targets(),
		Slots:          *slots,
		DietaryTags:    dietaryTags,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "meal plan failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(map[string]interface{}{
		"plan":   plan,
		"macros": macros,
		"meals":  meals,
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
