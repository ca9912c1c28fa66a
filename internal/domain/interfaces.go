package domain

import (
	"context"
	"time"
)

// ProfileStore persists the user-owned inputs of the pipeline.
type ProfileStore interface {
	SaveProfile(ctx context.Context, profile *BiometricProfile) error
	GetProfile(ctx context.Context, userID string) (*BiometricProfile, error)
	SaveGoal(ctx context.Context, goal *Goal) error
	GetGoal(ctx context.Context, userID string) (*Goal, error)
}

// SnapshotStore holds the cached calculation result per user. GetSnapshot
// returns (nil, nil) when no snapshot has ever been computed.
type SnapshotStore interface {
	GetSnapshot(ctx context.Context, userID string) (*CalculationSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *CalculationSnapshot) error
}

// LogbookStore appends and range-queries the two time series. Records are
// immutable once written.
type LogbookStore interface {
	AppendBodyStats(ctx context.Context, record *BodyStatsRecord) error
	BodyStatsRange(ctx context.Context, userID string, from, to time.Time) ([]BodyStatsRecord, error)
	AppendWorkout(ctx context.Context, record *WorkoutLogRecord) error
	WorkoutRange(ctx context.Context, userID string, from, to time.Time) ([]WorkoutLogRecord, error)
}

// AdaptationStore persists adjustment proposals and their applied flag.
type AdaptationStore interface {
	SaveAdaptation(ctx context.Context, record *AdaptationRecord) error
	GetAdaptation(ctx context.Context, userID, id string) (*AdaptationRecord, error)
	ListAdaptations(ctx context.Context, userID string) ([]AdaptationRecord, error)
	MarkApplied(ctx context.Context, userID, id string) error
}
