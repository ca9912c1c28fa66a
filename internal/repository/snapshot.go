package repository

import (
	"context"
	"errors"

	"github.com/mkovalev/gain-planner/internal/database"
	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"gorm.io/gorm"
)

// SnapshotRepository persists the per-user calculation cache.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshot returns (nil, nil) when the user has no snapshot yet; that is
// the never-computed case, not an error.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, userID string) (*domain.CalculationSnapshot, error) {
	var row database.Snapshot
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &domain.CalculationSnapshot{
		UserID:         row.UserID,
		BMR:            row.BMR,
		TDEE:           row.TDEE,
		TargetCalories: row.TargetCalories,
		Macros: domain.MacroTargets{
			ProteinG: row.ProteinG,
			CarbsG:   row.CarbsG,
			FatG:     row.FatG,
		},
		LastCalculated: row.LastCalculated,
	}, nil
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.CalculationSnapshot) error {
	row := database.Snapshot{
		UserID:         snapshot.UserID,
		BMR:            snapshot.BMR,
		TDEE:           snapshot.TDEE,
		TargetCalories: snapshot.TargetCalories,
		ProteinG:       snapshot.Macros.ProteinG,
		CarbsG:         snapshot.Macros.CarbsG,
		FatG:           snapshot.Macros.FatG,
		LastCalculated: snapshot.LastCalculated,
	}

	var existing database.Snapshot
	err := r.db.WithContext(ctx).Where("user_id = ?", snapshot.UserID).First(&existing).Error
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
