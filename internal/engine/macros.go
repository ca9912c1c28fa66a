package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// Calorie densities per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// maxPlanCalories is a sanity ceiling on the allocation input.
const maxPlanCalories = 10000

// Protein share of total calories is clamped to this window after the
// per-kg lookup.
const (
	minProteinShare = 0.25
	maxProteinShare = 0.30
)

// carbShare fixes carbs at the center of the allowed [45%, 55%] window,
// which keeps fat inside [20%, 30%] for any clamped protein share.
const carbShare = 0.50

// proteinGPerKg is the base protein target by activity level.
var proteinGPerKg = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary: 1.6,
	domain.ActivityLight:     1.8,
	domain.ActivityModerate:  2.0,
	domain.ActivityVery:      2.2,
	domain.ActivityExtreme:   2.4,
}

// proteinPreferenceNudge shifts the per-kg target by preference.
var proteinPreferenceNudge = map[domain.ProteinPreference]float64{
	domain.ProteinMinimum:  -0.2,
	domain.ProteinModerate: 0,
	domain.ProteinHigh:     0.2,
}

// MacroRequest is the allocator input.
type MacroRequest struct {
	TotalCalories int
	BodyWeightKg  float64
	ActivityLevel domain.ActivityLevel
	Preference    domain.ProteinPreference
}

// MacroPlan is the allocator output: grams and calorie share per macro, with
// the inputs echoed back for traceability. The three macro-calorie
// contributions sum to TotalCalories within 5 kcal.
type MacroPlan struct {
	ProteinG   float64 `json:"proteinG"`
	CarbsG     float64 `json:"carbsG"`
	FatG       float64 `json:"fatG"`
	ProteinPct float64 `json:"proteinPct"`
	CarbsPct   float64 `json:"carbsPct"`
	FatPct     float64 `json:"fatPct"`

	TotalCalories int                      `json:"totalCalories"`
	BodyWeightKg  float64                  `json:"bodyWeightKg"`
	ActivityLevel domain.ActivityLevel     `json:"activityLevel"`
	Preference    domain.ProteinPreference `json:"proteinPreference"`
}

// Targets converts the plan to the snapshot's gram targets.
func (p *MacroPlan) Targets() domain.MacroTargets {
	return domain.MacroTargets{ProteinG: p.ProteinG, CarbsG: p.CarbsG, FatG: p.FatG}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AllocateMacros splits a calorie target into protein/carb/fat gram targets.
// Protein starts from the per-kg activity lookup nudged by preference, then
// is clamped so its calorie share stays within [25%, 30%]; carbs take 50% of
// total and fat absorbs the remainder.
func AllocateMacros(req MacroRequest) (*MacroPlan, error) {
	if req.TotalCalories <= 0 {
		return nil, apperrors.NewValidationError("totalCalories", "must be positive")
	}
	if req.TotalCalories > maxPlanCalories {
		return nil, apperrors.NewOutOfRangeError("totalCalories", float64(req.TotalCalories), 1, maxPlanCalories)
	}
	if req.BodyWeightKg <= 0 {
		return nil, apperrors.NewValidationError("bodyWeightKg", "must be positive")
	}
	gPerKg, ok := proteinGPerKg[req.ActivityLevel]
	if !ok {
		return nil, apperrors.NewInvalidEnumError("activityLevel", string(req.ActivityLevel))
	}
	pref := req.Preference
	if pref == "" {
		pref = domain.ProteinModerate
	}
	nudge, ok := proteinPreferenceNudge[pref]
	if !ok {
		return nil, apperrors.NewInvalidEnumError("proteinPreference", string(pref))
	}

	total := float64(req.TotalCalories)

	proteinCal := (gPerKg + nudge) * req.BodyWeightKg * kcalPerGramProtein
	if proteinCal < minProteinShare*total {
		proteinCal = minProteinShare * total
	}
	if proteinCal > maxProteinShare*total {
		proteinCal = maxProteinShare * total
	}
	carbsCal := carbShare * total
	fatCal := total - proteinCal - carbsCal

	plan := &MacroPlan{
		ProteinG:      round1(proteinCal / kcalPerGramProtein),
		CarbsG:        round1(carbsCal / kcalPerGramCarbs),
		FatG:          round1(fatCal / kcalPerGramFat),
		ProteinPct:    round1(proteinCal / total * 100),
		CarbsPct:      round1(carbsCal / total * 100),
		FatPct:        round1(fatCal / total * 100),
		TotalCalories: req.TotalCalories,
		BodyWeightKg:  req.BodyWeightKg,
		ActivityLevel: req.ActivityLevel,
		Preference:    pref,
	}
	return plan, nil
}

// Calorie deltas applied by AdjustMacrosForGoals per trend class.
const (
	stagnantCalorieBoost = 150
	rapidGainCalorieCut  = 100
)

// MacroAdjustment is the audit result of a trend-driven reallocation.
type MacroAdjustment struct {
	OriginalCalories int        `json:"originalCalories"`
	AdjustedCalories int        `json:"adjustedCalories"`
	Delta            int        `json:"delta"`
	Reason           string     `json:"reason"`
	Timestamp        time.Time  `json:"timestamp"`
	Macros           *MacroPlan `json:"macros"`
}

// AdjustMacrosForGoals shifts the calorie total by the trend class (+150
// stagnant, -100 rapid gain, unchanged otherwise) and re-derives the macro
// split from the new total.
func AdjustMacrosForGoals(req MacroRequest, trend domain.TrendClass, now time.Time) (*MacroAdjustment, error) {
	var delta int
	var reason string
	switch trend {
	case domain.TrendStagnant:
		delta = stagnantCalorieBoost
		reason = "weight stagnant, increasing intake"
	case domain.TrendRapidGain:
		delta = -rapidGainCalorieCut
		reason = "gaining too fast, trimming intake"
	case domain.TrendNormal, domain.TrendOvertraining:
		delta = 0
		reason = "no calorie change required"
	default:
		return nil, apperrors.NewInvalidEnumError("trend", string(trend))
	}

	adjusted := req
	adjusted.TotalCalories += delta
	plan, err := AllocateMacros(adjusted)
	if err != nil {
		return nil, err
	}
	return &MacroAdjustment{
		OriginalCalories: req.TotalCalories,
		AdjustedCalories: adjusted.TotalCalories,
		Delta:            delta,
		Reason:           fmt.Sprintf("%s: %s", trend, reason),
		Timestamp:        now,
		Macros:           plan,
	}, nil
}
