package repository

import (
	"context"
	"errors"

	"github.com/mkovalev/gain-planner/internal/database"
	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"gorm.io/gorm"
)

// ProfileRepository persists profiles and goals in Postgres.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *domain.BiometricProfile) error {
	row := database.UserProfile{
		UserID:          profile.UserID,
		Age:             profile.Age,
		Sex:             string(profile.Sex),
		HeightCm:        profile.HeightCm,
		CurrentWeightKg: profile.CurrentWeightKg,
		ActivityLevel:   string(profile.ActivityLevel),
		FitnessLevel:    string(profile.FitnessLevel),
		DietaryTags:     toJSON(profile.DietaryTags),
		HealthFlags:     toJSON(profile.HealthFlags),
	}

	var existing database.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return apperrors.NewDatabaseError(err)
		}
		return nil
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	row.Model = existing.Model
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.BiometricProfile, error) {
	var row database.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("profile", userID)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	profile := &domain.BiometricProfile{
		UserID:          row.UserID,
		Age:             row.Age,
		Sex:             domain.BiologicalSex(row.Sex),
		HeightCm:        row.HeightCm,
		CurrentWeightKg: row.CurrentWeightKg,
		ActivityLevel:   domain.ActivityLevel(row.ActivityLevel),
		FitnessLevel:    domain.FitnessLevel(row.FitnessLevel),
	}
	fromJSON(row.DietaryTags, &profile.DietaryTags)
	fromJSON(row.HealthFlags, &profile.HealthFlags)
	return profile, nil
}

func (r *ProfileRepository) SaveGoal(ctx context.Context, goal *domain.Goal) error {
	row := database.UserGoal{
		UserID:         goal.UserID,
		TargetWeightKg: goal.TargetWeightKg,
		WeeklyGainKg:   goal.WeeklyGainKg,
		Intensity:      string(goal.Intensity),
		TargetDate:     goal.TargetDate,
	}

	var existing database.UserGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", goal.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return apperrors.NewDatabaseError(err)
		}
		return nil
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	row.Model = existing.Model
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ProfileRepository) GetGoal(ctx context.Context, userID string) (*domain.Goal, error) {
	var row database.UserGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("goal", userID)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &domain.Goal{
		UserID:         row.UserID,
		TargetWeightKg: row.TargetWeightKg,
		WeeklyGainKg:   row.WeeklyGainKg,
		Intensity:      domain.GoalIntensity(row.Intensity),
		TargetDate:     row.TargetDate,
	}, nil
}
