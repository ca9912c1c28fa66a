package services

import (
	"context"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"github.com/mkovalev/gain-planner/internal/logger"
)

// ProfileService owns the only mutation path for profiles and goals, so
// snapshot invalidation always fires with the mutation.
type ProfileService struct {
	profiles domain.ProfileStore
	plans    *PlanService
}

func NewProfileService(profiles domain.ProfileStore, plans *PlanService) *ProfileService {
	return &ProfileService{profiles: profiles, plans: plans}
}

// UpdateProfile validates and saves a profile. A change to age, weight,
// height or activity level invalidates the user's snapshot.
func (s *ProfileService) UpdateProfile(ctx context.Context, profile *domain.BiometricProfile) error {
	if profile.UserID == "" {
		return apperrors.NewValidationError("userId", "must not be empty")
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	existing, err := s.profiles.GetProfile(ctx, profile.UserID)
	if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return err
	}

	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		return err
	}

	if existing == nil || pipelineInputsChanged(existing, profile) {
		if err := s.plans.Invalidate(ctx, profile.UserID); err != nil {
			return err
		}
		logger.Info("profile change invalidated snapshot", "user_id", profile.UserID)
	}
	return nil
}

func pipelineInputsChanged(a, b *domain.BiometricProfile) bool {
	return a.Age != b.Age ||
		a.CurrentWeightKg != b.CurrentWeightKg ||
		a.HeightCm != b.HeightCm ||
		a.ActivityLevel != b.ActivityLevel ||
		a.Sex != b.Sex
}

// GetProfile reads the stored profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.BiometricProfile, error) {
	return s.profiles.GetProfile(ctx, userID)
}

// SetGoal validates the goal against the current profile and saves it. The
// goal is a pipeline input, so any change invalidates the snapshot.
func (s *ProfileService) SetGoal(ctx context.Context, goal *domain.Goal) error {
	if goal.UserID == "" {
		return apperrors.NewValidationError("userId", "must not be empty")
	}
	profile, err := s.profiles.GetProfile(ctx, goal.UserID)
	if err != nil {
		return err
	}
	if err := goal.Validate(profile.CurrentWeightKg); err != nil {
		return err
	}
	if err := s.profiles.SaveGoal(ctx, goal); err != nil {
		return err
	}
	return s.plans.Invalidate(ctx, goal.UserID)
}

// GetGoal reads the stored goal.
func (s *ProfileService) GetGoal(ctx context.Context, userID string) (*domain.Goal, error) {
	return s.profiles.GetGoal(ctx, userID)
}
