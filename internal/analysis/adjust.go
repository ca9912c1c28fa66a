package analysis

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mkovalev/gain-planner/internal/domain"
)

// Calorie adjustment magnitudes by goal intensity. The scaling direction is
// deliberately inverted between the two tables: aggressive-goal users get a
// larger boost on stagnation but a smaller defensive cut on rapid gain.
var (
	stagnationBoost = map[domain.GoalIntensity]int{
		domain.IntensityConservative: 100,
		domain.IntensityModerate:     125,
		domain.IntensityAggressive:   150,
	}
	rapidGainCut = map[domain.GoalIntensity]int{
		domain.IntensityConservative: 150,
		domain.IntensityModerate:     125,
		domain.IntensityAggressive:   100,
	}
)

// Carb gram shift on a weight-trend trigger, as a share of the current carb
// target. Protein and fat stay untouched by this rule.
const carbShiftShare = 0.05

// Overtraining response.
const (
	volumeCutPct         = -20
	restDaysModerateRisk = 1
	restDaysHighRisk     = 2
)

// BuildAdaptation converts a trend report into a bounded adjustment record.
// Deltas from simultaneously-true triggers are computed independently and
// composed additively. A report with no triggers yields a zero-delta record
// whose reasoning says the user is on track.
func BuildAdaptation(userID string, report *TrendReport, intensity domain.GoalIntensity,
	current domain.MacroTargets, now time.Time) *domain.AdaptationRecord {

	if !intensity.Valid() {
		intensity = domain.IntensityModerate
	}

	record := &domain.AdaptationRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		Triggers:      report.Triggers,
		EffectiveDate: now,
		WorkoutAdjustments: domain.WorkoutAdjustments{
			IntensityChange: "maintain",
		},
	}

	if report.Stagnant {
		record.CalorieAdjustment += stagnationBoost[intensity]
		record.MacroAdjustments.CarbsG += round1(current.CarbsG * carbShiftShare)
	}
	if report.RapidGain {
		record.CalorieAdjustment -= rapidGainCut[intensity]
		record.MacroAdjustments.CarbsG -= round1(current.CarbsG * carbShiftShare)
	}
	if report.Overtraining {
		record.WorkoutAdjustments.VolumeChangePct = volumeCutPct
		record.WorkoutAdjustments.IntensityChange = "decrease"
		if report.Risk == RiskHigh {
			record.WorkoutAdjustments.RestDaysAdded = restDaysHighRisk
		} else {
			record.WorkoutAdjustments.RestDaysAdded = restDaysModerateRisk
		}
	}

	if record.CalorieAdjustment > domain.MaxCalorieAdjustment {
		record.CalorieAdjustment = domain.MaxCalorieAdjustment
	}
	if record.CalorieAdjustment < -domain.MaxCalorieAdjustment {
		record.CalorieAdjustment = -domain.MaxCalorieAdjustment
	}

	record.Reasoning = Summarize(report, record)
	return record
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
