package services

import (
	"context"
	"time"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// In-memory store fakes. They copy on read so tests catch accidental aliasing.

type fakeProfileStore struct {
	profiles map[string]domain.BiometricProfile
	goals    map[string]domain.Goal
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles: make(map[string]domain.BiometricProfile),
		goals:    make(map[string]domain.Goal),
	}
}

func (s *fakeProfileStore) SaveProfile(_ context.Context, profile *domain.BiometricProfile) error {
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *fakeProfileStore) GetProfile(_ context.Context, userID string) (*domain.BiometricProfile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("profile", userID)
	}
	return &profile, nil
}

func (s *fakeProfileStore) SaveGoal(_ context.Context, goal *domain.Goal) error {
	s.goals[goal.UserID] = *goal
	return nil
}

func (s *fakeProfileStore) GetGoal(_ context.Context, userID string) (*domain.Goal, error) {
	goal, ok := s.goals[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("goal", userID)
	}
	return &goal, nil
}

type fakeSnapshotStore struct {
	snapshots map[string]domain.CalculationSnapshot
	saves     int
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{snapshots: make(map[string]domain.CalculationSnapshot)}
}

func (s *fakeSnapshotStore) GetSnapshot(_ context.Context, userID string) (*domain.CalculationSnapshot, error) {
	snapshot, ok := s.snapshots[userID]
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

func (s *fakeSnapshotStore) SaveSnapshot(_ context.Context, snapshot *domain.CalculationSnapshot) error {
	s.saves++
	s.snapshots[snapshot.UserID] = *snapshot
	return nil
}

type fakeLogbookStore struct {
	stats    []domain.BodyStatsRecord
	workouts []domain.WorkoutLogRecord
}

func (s *fakeLogbookStore) AppendBodyStats(_ context.Context, record *domain.BodyStatsRecord) error {
	s.stats = append(s.stats, *record)
	return nil
}

func (s *fakeLogbookStore) BodyStatsRange(_ context.Context, userID string, from, to time.Time) ([]domain.BodyStatsRecord, error) {
	var out []domain.BodyStatsRecord
	for _, r := range s.stats {
		if r.UserID == userID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeLogbookStore) AppendWorkout(_ context.Context, record *domain.WorkoutLogRecord) error {
	s.workouts = append(s.workouts, *record)
	return nil
}

func (s *fakeLogbookStore) WorkoutRange(_ context.Context, userID string, from, to time.Time) ([]domain.WorkoutLogRecord, error) {
	var out []domain.WorkoutLogRecord
	for _, r := range s.workouts {
		if r.UserID == userID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeAdaptationStore struct {
	records map[string]*domain.AdaptationRecord
}

func newFakeAdaptationStore() *fakeAdaptationStore {
	return &fakeAdaptationStore{records: make(map[string]*domain.AdaptationRecord)}
}

func (s *fakeAdaptationStore) SaveAdaptation(_ context.Context, record *domain.AdaptationRecord) error {
	stored := *record
	s.records[record.ID] = &stored
	return nil
}

func (s *fakeAdaptationStore) GetAdaptation(_ context.Context, userID, id string) (*domain.AdaptationRecord, error) {
	stored, ok := s.records[id]
	if !ok || stored.UserID != userID {
		return nil, apperrors.NewNotFoundError("adaptation", id)
	}
	record := *stored
	return &record, nil
}

func (s *fakeAdaptationStore) ListAdaptations(_ context.Context, userID string) ([]domain.AdaptationRecord, error) {
	var out []domain.AdaptationRecord
	for _, stored := range s.records {
		if stored.UserID == userID {
			out = append(out, *stored)
		}
	}
	return out, nil
}

func (s *fakeAdaptationStore) MarkApplied(_ context.Context, userID, id string) error {
	stored, ok := s.records[id]
	if !ok || stored.UserID != userID {
		return apperrors.NewNotFoundError("adaptation", id)
	}
	stored.Applied = true
	return nil
}
