package services

import (
	"context"
	"time"

	"github.com/mkovalev/gain-planner/internal/analysis"
	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"github.com/mkovalev/gain-planner/internal/logger"
)

// History windows fed into the trend analyzer.
const (
	weightLookbackDays  = 28
	workoutLookbackDays = 7
)

// AdaptationService inspects historical logs against the current snapshot
// and produces bounded adjustment records. Applying a record folds its delta
// into a fresh snapshot.
type AdaptationService struct {
	profiles    domain.ProfileStore
	logs        domain.LogbookStore
	adaptations domain.AdaptationStore
	plans       *PlanService
	now         func() time.Time
}

func NewAdaptationService(profiles domain.ProfileStore, logs domain.LogbookStore,
	adaptations domain.AdaptationStore, plans *PlanService) *AdaptationService {
	return &AdaptationService{
		profiles:    profiles,
		logs:        logs,
		adaptations: adaptations,
		plans:       plans,
		now:         time.Now,
	}
}

// AnalyzeAndAdapt classifies the user's recent history and persists an
// adaptation record with the proposed deltas. A no-trigger history still
// yields a record so the audit trail shows the check happened.
func (s *AdaptationService) AnalyzeAndAdapt(ctx context.Context, userID string) (*domain.AdaptationRecord, error) {
	snapshot, err := s.plans.RefreshSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats, err := s.logs.BodyStatsRange(ctx, userID, now.AddDate(0, 0, -weightLookbackDays), now)
	if err != nil {
		return nil, err
	}
	workouts, err := s.logs.WorkoutRange(ctx, userID, now.AddDate(0, 0, -workoutLookbackDays), now)
	if err != nil {
		return nil, err
	}

	intensity := domain.IntensityModerate
	if goal, err := s.profiles.GetGoal(ctx, userID); err == nil && goal.Intensity.Valid() {
		intensity = goal.Intensity
	}

	report := analysis.AnalyzeTrends(stats, workouts, now)
	record := analysis.BuildAdaptation(userID, report, intensity, snapshot.Macros, now)

	if err := s.adaptations.SaveAdaptation(ctx, record); err != nil {
		return nil, err
	}
	logger.Info("adaptation recorded",
		"user_id", userID, "triggers", record.Triggers,
		"calorie_adjustment", record.CalorieAdjustment)
	return record, nil
}

// ApplyAdaptation folds an accepted record's deltas into a new snapshot and
// flips the record's applied flag. Applying twice is rejected.
func (s *AdaptationService) ApplyAdaptation(ctx context.Context, userID, recordID string) (*domain.CalculationSnapshot, error) {
	record, err := s.adaptations.GetAdaptation(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}
	if record.Applied {
		return nil, apperrors.NewValidationError("recordId", "adaptation has already been applied")
	}

	snapshot, err := s.plans.ApplyDelta(ctx, userID, record.CalorieAdjustment, record.MacroAdjustments)
	if err != nil {
		return nil, err
	}
	if err := s.adaptations.MarkApplied(ctx, userID, recordID); err != nil {
		return nil, err
	}
	logger.Info("adaptation applied",
		"user_id", userID, "record_id", recordID,
		"target_calories", snapshot.TargetCalories)
	return snapshot, nil
}

// History lists the user's adaptation records, newest first.
func (s *AdaptationService) History(ctx context.Context, userID string) ([]domain.AdaptationRecord, error) {
	return s.adaptations.ListAdaptations(ctx, userID)
}
