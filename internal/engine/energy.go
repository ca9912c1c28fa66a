package engine

import (
	"fmt"
	"math"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// activityMultipliers is the single source of truth for valid activity
// levels. Multipliers are strictly increasing across the ordered levels.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary: 1.2,
	domain.ActivityLight:     1.375,
	domain.ActivityModerate:  1.55,
	domain.ActivityVery:      1.725,
	domain.ActivityExtreme:   1.9,
}

// ActivityMultiplier returns the TDEE multiplier for a level.
func ActivityMultiplier(level domain.ActivityLevel) (float64, error) {
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, apperrors.NewInvalidEnumError("activityLevel", string(level))
	}
	return mult, nil
}

// surplusBands maps goal intensity to its daily-surplus band in kcal. When no
// explicit weekly gain rate is set, the band midpoint is used.
var surplusBands = map[domain.GoalIntensity][2]int{
	domain.IntensityConservative: {300, 400},
	domain.IntensityModerate:     {400, 500},
	domain.IntensityAggressive:   {500, 650},
}

// Hard safety bounds on the daily surplus. Out-of-band values are clamped,
// never rejected.
const (
	MinDailySurplus = 250
	MaxDailySurplus = 750
)

// kcalPerKg is the energy equivalent of one kilogram of body mass.
const kcalPerKg = 7700

// Defensive bounds on a chained-in BMR value.
const (
	minChainedBMR = 500
	maxChainedBMR = 5000
)

// CalculateTDEE scales BMR by the activity multiplier, rounded to whole kcal.
func CalculateTDEE(bmr int, level domain.ActivityLevel) (int, error) {
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	return int(math.Round(float64(bmr) * mult)), nil
}

// CalculateSurplus derives the daily calorie surplus from the goal. An
// explicit weeklyGainKg takes precedence; goal intensity is the fallback.
// The result is clamped to [MinDailySurplus, MaxDailySurplus].
func CalculateSurplus(goal domain.Goal) (int, error) {
	var surplus int
	if goal.WeeklyGainKg != 0 {
		surplus = int(math.Round(goal.WeeklyGainKg * kcalPerKg / 7))
	} else {
		band, ok := surplusBands[goal.Intensity]
		if !ok {
			return 0, apperrors.NewInvalidEnumError("goalIntensity", string(goal.Intensity))
		}
		surplus = (band[0] + band[1]) / 2
	}
	if surplus < MinDailySurplus {
		surplus = MinDailySurplus
	}
	if surplus > MaxDailySurplus {
		surplus = MaxDailySurplus
	}
	return surplus, nil
}

// ValidateCaloriePlan runs the non-blocking safety check. Each triggered
// condition appends a distinct warning; the plan stays deliverable.
func ValidateCaloriePlan(bmr, totalCalories, surplus int) []string {
	var warnings []string
	if totalCalories < bmr {
		warnings = append(warnings,
			fmt.Sprintf("target %d kcal is below BMR %d kcal and implies weight loss", totalCalories, bmr))
	}
	if totalCalories > 4*bmr {
		warnings = append(warnings,
			fmt.Sprintf("target %d kcal exceeds four times BMR %d kcal", totalCalories, bmr))
	}
	if surplus > 1000 {
		warnings = append(warnings,
			fmt.Sprintf("surplus %d kcal carries excess fat-gain risk", surplus))
	}
	if surplus < 200 {
		warnings = append(warnings,
			fmt.Sprintf("surplus %d kcal will produce negligible gain", surplus))
	}
	return warnings
}

// CaloriePlan is the composed output of the energy pipeline.
type CaloriePlan struct {
	BMR                 int      `json:"bmr"`
	TDEE                int      `json:"tdee"`
	ActivityMultiplier  float64  `json:"activityMultiplier"`
	Surplus             int      `json:"surplus"`
	ImpliedWeeklyGainKg float64  `json:"impliedWeeklyGainKg"`
	TotalCalories       int      `json:"totalCalories"`
	Breakdown           []string `json:"breakdown"`
	Warnings            []string `json:"warnings,omitempty"`
}

// BuildCaloriePlan composes TDEE, surplus and the safety check into one plan.
// bmr is a chained input and carries a defensive [500, 5000] bound.
func BuildCaloriePlan(bmr int, level domain.ActivityLevel, goal domain.Goal) (*CaloriePlan, error) {
	if bmr < minChainedBMR || bmr > maxChainedBMR {
		return nil, apperrors.NewOutOfRangeError("bmr", float64(bmr), minChainedBMR, maxChainedBMR)
	}
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return nil, err
	}
	tdee := int(math.Round(float64(bmr) * mult))

	surplus, err := CalculateSurplus(goal)
	if err != nil {
		return nil, err
	}
	total := tdee + surplus
	impliedWeekly := math.Round(float64(surplus)*7/kcalPerKg*100) / 100

	plan := &CaloriePlan{
		BMR:                 bmr,
		TDEE:                tdee,
		ActivityMultiplier:  mult,
		Surplus:             surplus,
		ImpliedWeeklyGainKg: impliedWeekly,
		TotalCalories:       total,
		Breakdown: []string{
			fmt.Sprintf("tdee = round(%d * %.3f) = %d", bmr, mult, tdee),
			fmt.Sprintf("surplus = %d kcal/day (clamped to [%d, %d])", surplus, MinDailySurplus, MaxDailySurplus),
			fmt.Sprintf("total = %d + %d = %d", tdee, surplus, total),
		},
		Warnings: ValidateCaloriePlan(bmr, total, surplus),
	}
	return plan, nil
}
