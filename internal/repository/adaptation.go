package repository

import (
	"context"
	"errors"

	"github.com/mkovalev/gain-planner/internal/database"
	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"gorm.io/gorm"
)

// AdaptationRepository persists adjustment proposals.
type AdaptationRepository struct {
	db *gorm.DB
}

func NewAdaptationRepository(db *gorm.DB) *AdaptationRepository {
	return &AdaptationRepository{db: db}
}

func (r *AdaptationRepository) SaveAdaptation(ctx context.Context, record *domain.AdaptationRecord) error {
	row := database.AdaptationEntry{
		RecordID:           record.ID,
		UserID:             record.UserID,
		Triggers:           toJSON(record.Triggers),
		CalorieAdjustment:  record.CalorieAdjustment,
		MacroAdjustments:   toJSON(record.MacroAdjustments),
		WorkoutAdjustments: toJSON(record.WorkoutAdjustments),
		Reasoning:          record.Reasoning,
		EffectiveDate:      record.EffectiveDate,
		Applied:            record.Applied,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AdaptationRepository) GetAdaptation(ctx context.Context, userID, id string) (*domain.AdaptationRecord, error) {
	var row database.AdaptationEntry
	err := r.db.WithContext(ctx).Where("user_id = ? AND record_id = ?", userID, id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("adaptation", id)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	record := rowToAdaptation(row)
	return &record, nil
}

func (r *AdaptationRepository) ListAdaptations(ctx context.Context, userID string) ([]domain.AdaptationRecord, error) {
	var rows []database.AdaptationEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("effective_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	records := make([]domain.AdaptationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToAdaptation(row))
	}
	return records, nil
}

func (r *AdaptationRepository) MarkApplied(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Model(&database.AdaptationEntry{}).
		Where("user_id = ? AND record_id = ?", userID, id).
		Update("applied", true)
	if result.Error != nil {
		return apperrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("adaptation", id)
	}
	return nil
}

func rowToAdaptation(row database.AdaptationEntry) domain.AdaptationRecord {
	record := domain.AdaptationRecord{
		ID:                row.RecordID,
		UserID:            row.UserID,
		CalorieAdjustment: row.CalorieAdjustment,
		Reasoning:         row.Reasoning,
		EffectiveDate:     row.EffectiveDate,
		Applied:           row.Applied,
	}
	fromJSON(row.Triggers, &record.Triggers)
	fromJSON(row.MacroAdjustments, &record.MacroAdjustments)
	fromJSON(row.WorkoutAdjustments, &record.WorkoutAdjustments)
	return record
}
