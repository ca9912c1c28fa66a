// Package analysis classifies a user's rolling weight and training history
// and converts the classification into bounded, audited adjustments. Nothing
// here is persisted as state; every report is recomputed from the logs.
package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/mkovalev/gain-planner/internal/domain"
)

const (
	// Stagnation compares the latest weight against a sample ~14 days prior;
	// anything under the minimal delta counts as no gain.
	stagnationWindowDays = 14
	stagnationMinDeltaKg = 0.2

	// A stagnation that has lasted this long is reported as a plateau.
	plateauDays = 21

	// Rapid gain is a weekly rate above this, computed from two samples.
	rapidGainWeeklyKg = 1.0

	// Overtraining looks at the trailing week of workouts and needs at
	// least this many sessions to say anything.
	trailingWorkoutDays = 7
	minWorkoutsForRatio = 3
	overtrainingRatio   = 0.5
	highRiskRatio       = 0.75

	// The weight window must span at least this many days before the
	// analyzer classifies it at all.
	minWindowDays = 10
)

// RiskLevel tiers the overtraining classification.
type RiskLevel string

const (
	RiskNone     RiskLevel = ""
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// TrendReport is the full classification of a user's recent history. The
// numbers behind every verdict are kept so the summary can reference them.
type TrendReport struct {
	// Weight trend.
	LatestWeightKg    float64
	ReferenceWeightKg float64
	WindowDeltaKg     float64
	WindowDays        int
	WeeklyRateKg      float64
	Stagnant          bool
	DaysStagnant      int
	RapidGain         bool

	// Training load, trailing week.
	TotalWorkouts      int
	HighIntensityCount int
	HighIntensityRatio float64
	Overtraining       bool
	Risk               RiskLevel

	Triggers []domain.AdaptationTrigger
}

// Class returns the dominant trend class for the report. Weight verdicts
// outrank overtraining because they drive the calorie delta.
func (r *TrendReport) Class() domain.TrendClass {
	switch {
	case r.Stagnant:
		return domain.TrendStagnant
	case r.RapidGain:
		return domain.TrendRapidGain
	case r.Overtraining:
		return domain.TrendOvertraining
	default:
		return domain.TrendNormal
	}
}

// AnalyzeTrends classifies body-stats and workout history as of now. Both
// series may arrive unsorted; they are ordered by date before analysis.
// With too little history the report stays all-normal.
func AnalyzeTrends(stats []domain.BodyStatsRecord, workouts []domain.WorkoutLogRecord, now time.Time) *TrendReport {
	report := &TrendReport{}
	analyzeWeight(report, stats)
	analyzeTraining(report, workouts, now)

	if report.Stagnant {
		if report.DaysStagnant >= plateauDays {
			report.Triggers = append(report.Triggers, domain.TriggerPlateau)
		} else {
			report.Triggers = append(report.Triggers, domain.TriggerWeightStagnation)
		}
	}
	if report.RapidGain {
		report.Triggers = append(report.Triggers, domain.TriggerRapidGain)
	}
	if report.Overtraining {
		report.Triggers = append(report.Triggers, domain.TriggerOvertraining)
	}
	return report
}

func analyzeWeight(report *TrendReport, stats []domain.BodyStatsRecord) {
	if len(stats) < 2 {
		return
	}
	sorted := make([]domain.BodyStatsRecord, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	latest := sorted[len(sorted)-1]
	reference := closestTo(sorted, latest.Date.AddDate(0, 0, -stagnationWindowDays))

	windowDays := int(latest.Date.Sub(reference.Date).Hours() / 24)
	if windowDays < minWindowDays {
		return
	}

	delta := latest.WeightKg - reference.WeightKg
	report.LatestWeightKg = latest.WeightKg
	report.ReferenceWeightKg = reference.WeightKg
	report.WindowDeltaKg = math.Round(delta*100) / 100
	report.WindowDays = windowDays
	report.WeeklyRateKg = math.Round(delta/float64(windowDays)*7*100) / 100

	if delta < stagnationMinDeltaKg {
		report.Stagnant = true
		report.DaysStagnant = daysStagnant(sorted, latest)
	} else if report.WeeklyRateKg > rapidGainWeeklyKg {
		report.RapidGain = true
	}
}

// daysStagnant walks back from the latest sample to the most recent one that
// is meaningfully below it, measuring how long the trend has been flat.
func daysStagnant(sorted []domain.BodyStatsRecord, latest domain.BodyStatsRecord) int {
	for i := len(sorted) - 2; i >= 0; i-- {
		if latest.WeightKg-sorted[i].WeightKg >= stagnationMinDeltaKg {
			return int(latest.Date.Sub(sorted[i].Date).Hours() / 24)
		}
	}
	return int(latest.Date.Sub(sorted[0].Date).Hours() / 24)
}

func closestTo(sorted []domain.BodyStatsRecord, target time.Time) domain.BodyStatsRecord {
	best := sorted[0]
	bestGap := math.Abs(best.Date.Sub(target).Hours())
	for _, rec := range sorted[1:] {
		if gap := math.Abs(rec.Date.Sub(target).Hours()); gap < bestGap {
			best, bestGap = rec, gap
		}
	}
	return best
}

func analyzeTraining(report *TrendReport, workouts []domain.WorkoutLogRecord, now time.Time) {
	cutoff := now.AddDate(0, 0, -trailingWorkoutDays)
	for _, w := range workouts {
		if w.Date.Before(cutoff) || w.Date.After(now) {
			continue
		}
		report.TotalWorkouts++
		if w.Intensity == domain.WorkoutHigh {
			report.HighIntensityCount++
		}
	}
	if report.TotalWorkouts < minWorkoutsForRatio {
		return
	}
	report.HighIntensityRatio = math.Round(float64(report.HighIntensityCount)/float64(report.TotalWorkouts)*100) / 100
	switch {
	case report.HighIntensityRatio > highRiskRatio:
		report.Overtraining = true
		report.Risk = RiskHigh
	case report.HighIntensityRatio > overtrainingRatio:
		report.Overtraining = true
		report.Risk = RiskModerate
	}
}
