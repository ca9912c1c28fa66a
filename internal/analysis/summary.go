package analysis

import (
	"fmt"
	"strings"

	"github.com/mkovalev/gain-planner/internal/domain"
)

// Summarize renders the human-readable rationale for an adaptation. The text
// cites the actual numbers behind each verdict; it is part of the audit
// trail, not decoration.
func Summarize(report *TrendReport, record *domain.AdaptationRecord) string {
	var parts []string

	if report.Stagnant {
		parts = append(parts, fmt.Sprintf(
			"weight has been stagnant for %d days at %.1f kg (%.2f kg change over the %d-day window); increasing intake by %d kcal and carbs by %.1f g",
			report.DaysStagnant, report.LatestWeightKg, report.WindowDeltaKg,
			report.WindowDays, record.CalorieAdjustment, record.MacroAdjustments.CarbsG))
	}
	if report.RapidGain {
		parts = append(parts, fmt.Sprintf(
			"weight is climbing at %.2f kg/week (latest %.1f kg vs %.1f kg); reducing intake by %d kcal and carbs by %.1f g",
			report.WeeklyRateKg, report.LatestWeightKg, report.ReferenceWeightKg,
			-record.CalorieAdjustment, -record.MacroAdjustments.CarbsG))
	}
	if report.Overtraining {
		parts = append(parts, fmt.Sprintf(
			"%d of %d workouts in the trailing week were high intensity (%s risk); cutting volume by %.0f%% and adding %d rest day(s)",
			report.HighIntensityCount, report.TotalWorkouts, report.Risk,
			-record.WorkoutAdjustments.VolumeChangePct, record.WorkoutAdjustments.RestDaysAdded))
	}

	if len(parts) == 0 {
		return "weight trend and training load look normal; keeping current targets"
	}
	return strings.Join(parts, "; ")
}
