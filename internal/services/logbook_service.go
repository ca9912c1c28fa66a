package services

import (
	"context"
	"time"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// LogbookService appends and reads the two append-only time series.
type LogbookService struct {
	logs domain.LogbookStore
	now  func() time.Time
}

func NewLogbookService(logs domain.LogbookStore) *LogbookService {
	return &LogbookService{logs: logs, now: time.Now}
}

// AddBodyStats validates and appends a weight sample. Records are immutable
// once written; corrections are new records.
func (s *LogbookService) AddBodyStats(ctx context.Context, record *domain.BodyStatsRecord) error {
	if record.UserID == "" {
		return apperrors.NewValidationError("userId", "must not be empty")
	}
	if record.WeightKg < domain.MinWeightKg || record.WeightKg > domain.MaxWeightKg {
		return apperrors.NewOutOfRangeError("weightKg", record.WeightKg, domain.MinWeightKg, domain.MaxWeightKg)
	}
	if record.BodyFatPct != nil && (*record.BodyFatPct <= 0 || *record.BodyFatPct >= 100) {
		return apperrors.NewOutOfRangeError("bodyFatPct", *record.BodyFatPct, 0, 100)
	}
	if record.Date.IsZero() {
		record.Date = s.now()
	}
	return s.logs.AppendBodyStats(ctx, record)
}

// AddWorkout validates and appends a training session. TotalVolume is
// derived from the exercises when the caller leaves it zero.
func (s *LogbookService) AddWorkout(ctx context.Context, record *domain.WorkoutLogRecord) error {
	if record.UserID == "" {
		return apperrors.NewValidationError("userId", "must not be empty")
	}
	if record.DurationMin <= 0 {
		return apperrors.NewValidationError("durationMin", "must be positive")
	}
	if !record.Intensity.Valid() {
		return apperrors.NewInvalidEnumError("intensity", string(record.Intensity))
	}
	if record.Date.IsZero() {
		record.Date = s.now()
	}
	if record.TotalVolume == 0 {
		for _, exercise := range record.Exercises {
			record.TotalVolume += exercise.Volume()
		}
	}
	return s.logs.AppendWorkout(ctx, record)
}

// BodyStats returns the weight series for [from, to], ordered by date.
func (s *LogbookService) BodyStats(ctx context.Context, userID string, from, to time.Time) ([]domain.BodyStatsRecord, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("to", "range end precedes range start")
	}
	return s.logs.BodyStatsRange(ctx, userID, from, to)
}

// Workouts returns the training series for [from, to], ordered by date.
func (s *LogbookService) Workouts(ctx context.Context, userID string, from, to time.Time) ([]domain.WorkoutLogRecord, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("to", "range end precedes range start")
	}
	return s.logs.WorkoutRange(ctx, userID, from, to)
}
