package domain

import (
	"time"

	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// BiologicalSex selects the Mifflin-St Jeor constant.
type BiologicalSex string

const (
	SexMale   BiologicalSex = "male"
	SexFemale BiologicalSex = "female"
)

func (s BiologicalSex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// ActivityLevel scales BMR into TDEE. The five levels are ordered; their
// multipliers are strictly increasing.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtreme   ActivityLevel = "extreme"
)

// ActivityLevels lists the levels in ascending order of energy expenditure.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityVery,
	ActivityExtreme,
}

func (l ActivityLevel) Valid() bool {
	for _, known := range ActivityLevels {
		if l == known {
			return true
		}
	}
	return false
}

type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

func (l FitnessLevel) Valid() bool {
	return l == FitnessBeginner || l == FitnessIntermediate || l == FitnessAdvanced
}

// GoalIntensity sizes the calorie surplus when no explicit weekly gain rate
// is set, and scales adaptive adjustments.
type GoalIntensity string

const (
	IntensityConservative GoalIntensity = "conservative"
	IntensityModerate     GoalIntensity = "moderate"
	IntensityAggressive   GoalIntensity = "aggressive"
)

func (i GoalIntensity) Valid() bool {
	return i == IntensityConservative || i == IntensityModerate || i == IntensityAggressive
}

// ProteinPreference nudges the per-kg protein target up or down.
type ProteinPreference string

const (
	ProteinMinimum  ProteinPreference = "minimum"
	ProteinModerate ProteinPreference = "moderate"
	ProteinHigh     ProteinPreference = "high"
)

func (p ProteinPreference) Valid() bool {
	return p == ProteinMinimum || p == ProteinModerate || p == ProteinHigh
}

// WorkoutIntensity classifies a logged session for overtraining analysis.
type WorkoutIntensity string

const (
	WorkoutLow      WorkoutIntensity = "low"
	WorkoutModerate WorkoutIntensity = "moderate"
	WorkoutHigh     WorkoutIntensity = "high"
)

func (i WorkoutIntensity) Valid() bool {
	return i == WorkoutLow || i == WorkoutModerate || i == WorkoutHigh
}

// AdaptationTrigger names the trend condition that produced an adjustment.
type AdaptationTrigger string

const (
	TriggerWeightStagnation AdaptationTrigger = "weight_stagnation"
	TriggerRapidGain        AdaptationTrigger = "rapid_gain"
	TriggerOvertraining     AdaptationTrigger = "overtraining"
	TriggerPlateau          AdaptationTrigger = "plateau"
)

// TrendClass classifies recent weight/training history. It is recomputed per
// request, never persisted.
type TrendClass string

const (
	TrendStagnant     TrendClass = "stagnant"
	TrendRapidGain    TrendClass = "rapid_gain"
	TrendOvertraining TrendClass = "overtraining"
	TrendNormal       TrendClass = "normal"
)

// Bounds for biometric inputs. Values outside these are hard failures, not
// clamps.
const (
	MinAge      = 10
	MaxAge      = 120
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 300

	MinWeeklyGainKg = 0.1
	MaxWeeklyGainKg = 2.0
)

// BiometricProfile holds the user-owned inputs of the calculation pipeline.
// Mutations go through ProfileService so snapshot invalidation fires.
type BiometricProfile struct {
	UserID          string
	Age             int
	Sex             BiologicalSex
	HeightCm        float64
	CurrentWeightKg float64
	ActivityLevel   ActivityLevel
	FitnessLevel    FitnessLevel
	DietaryTags     []string
	HealthFlags     []string
}

// Validate enforces the range and enum invariants so illegal states never
// travel past the boundary.
func (p *BiometricProfile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return apperrors.NewOutOfRangeError("age", float64(p.Age), MinAge, MaxAge)
	}
	if !p.Sex.Valid() {
		return apperrors.NewInvalidEnumError("biologicalSex", string(p.Sex))
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		return apperrors.NewOutOfRangeError("heightCm", p.HeightCm, MinHeightCm, MaxHeightCm)
	}
	if p.CurrentWeightKg < MinWeightKg || p.CurrentWeightKg > MaxWeightKg {
		return apperrors.NewOutOfRangeError("currentWeightKg", p.CurrentWeightKg, MinWeightKg, MaxWeightKg)
	}
	if !p.ActivityLevel.Valid() {
		return apperrors.NewInvalidEnumError("activityLevel", string(p.ActivityLevel))
	}
	if p.FitnessLevel != "" && !p.FitnessLevel.Valid() {
		return apperrors.NewInvalidEnumError("fitnessLevel", string(p.FitnessLevel))
	}
	return nil
}

// Goal describes the desired weight gain. Exactly one of WeeklyGainKg and
// Intensity drives surplus sizing; Intensity is the fallback when
// WeeklyGainKg is zero.
type Goal struct {
	UserID         string
	TargetWeightKg float64
	WeeklyGainKg   float64
	Intensity      GoalIntensity
	TargetDate     *time.Time
}

// Validate checks the goal against the profile's current weight.
func (g *Goal) Validate(currentWeightKg float64) error {
	if g.TargetWeightKg <= currentWeightKg {
		return apperrors.NewValidationError("targetWeightKg",
			"target weight must be above current weight for a gain plan")
	}
	if g.WeeklyGainKg != 0 {
		if g.WeeklyGainKg < MinWeeklyGainKg || g.WeeklyGainKg > MaxWeeklyGainKg {
			return apperrors.NewOutOfRangeError("weeklyGainKg", g.WeeklyGainKg, MinWeeklyGainKg, MaxWeeklyGainKg)
		}
	} else if !g.Intensity.Valid() {
		return apperrors.NewInvalidEnumError("goalIntensity", string(g.Intensity))
	}
	return nil
}

// MacroTargets is a gram target per macronutrient.
type MacroTargets struct {
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// CalculationSnapshot caches the pipeline output for a user. It is a pure
// function of (profile, goal) at computation time, never a source of truth.
// targetCalories == tdee + surplus always holds.
type CalculationSnapshot struct {
	UserID         string
	BMR            int
	TDEE           int
	TargetCalories int
	Macros         MacroTargets
	LastCalculated time.Time
}

// Surplus is the daily kcal above TDEE implied by the snapshot.
func (s *CalculationSnapshot) Surplus() int {
	return s.TargetCalories - s.TDEE
}

// BodyStatsRecord is one point of the append-only weight time series.
// Immutable once written.
type BodyStatsRecord struct {
	UserID       string
	Date         time.Time
	WeightKg     float64
	BodyFatPct   *float64
	Measurements map[string]float64
}

// ExerciseEntry is one exercise within a logged workout.
type ExerciseEntry struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

// Volume is sets x reps x weight for the entry.
func (e ExerciseEntry) Volume() float64 {
	return float64(e.Sets) * float64(e.Reps) * e.WeightKg
}

// WorkoutLogRecord is one point of the append-only training time series.
type WorkoutLogRecord struct {
	UserID      string
	Date        time.Time
	DurationMin int
	Intensity   WorkoutIntensity
	Exercises   []ExerciseEntry
	TotalVolume float64
}

// MacroAdjustments carries gram deltas relative to the current targets.
type MacroAdjustments struct {
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
}

// WorkoutAdjustments carries training-load deltas.
type WorkoutAdjustments struct {
	VolumeChangePct float64 `json:"volumeChangePct"`
	IntensityChange string  `json:"intensityChange"`
	RestDaysAdded   int     `json:"restDaysAdded"`
}

// AdaptationRecord is a bounded, audited adjustment proposal. Applied flips
// to true only when the orchestrator folds the delta into a new snapshot.
// Triggers holds every condition that fired; deltas from simultaneous
// triggers are composed additively.
type AdaptationRecord struct {
	ID                 string
	UserID             string
	Triggers           []AdaptationTrigger
	CalorieAdjustment  int
	MacroAdjustments   MacroAdjustments
	WorkoutAdjustments WorkoutAdjustments
	Reasoning          string
	EffectiveDate      time.Time
	Applied            bool
}

// MaxCalorieAdjustment bounds a single adaptation's calorie delta.
const MaxCalorieAdjustment = 150

// FoodItem is an immutable reference entry with per-100g nutrients.
type FoodItem struct {
	Key             string  `json:"key"`
	Category        string  `json:"category"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
	CarbsPer100g    float64 `json:"carbsPer100g"`
	FatPer100g      float64 `json:"fatPer100g"`
}
