package repository

import (
	"context"
	"time"

	"github.com/mkovalev/gain-planner/internal/database"
	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"gorm.io/gorm"
)

// LogbookRepository persists the two append-only time series. Entries are
// never updated or deleted.
type LogbookRepository struct {
	db *gorm.DB
}

func NewLogbookRepository(db *gorm.DB) *LogbookRepository {
	return &LogbookRepository{db: db}
}

func (r *LogbookRepository) AppendBodyStats(ctx context.Context, record *domain.BodyStatsRecord) error {
	row := database.BodyStatsEntry{
		UserID:       record.UserID,
		Date:         record.Date,
		WeightKg:     record.WeightKg,
		BodyFatPct:   record.BodyFatPct,
		Measurements: toJSON(record.Measurements),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (r *LogbookRepository) BodyStatsRange(ctx context.Context, userID string, from, to time.Time) ([]domain.BodyStatsRecord, error) {
	var rows []database.BodyStatsEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	records := make([]domain.BodyStatsRecord, 0, len(rows))
	for _, row := range rows {
		record := domain.BodyStatsRecord{
			UserID:     row.UserID,
			Date:       row.Date,
			WeightKg:   row.WeightKg,
			BodyFatPct: row.BodyFatPct,
		}
		fromJSON(row.Measurements, &record.Measurements)
		records = append(records, record)
	}
	return records, nil
}

func (r *LogbookRepository) AppendWorkout(ctx context.Context, record *domain.WorkoutLogRecord) error {
	row := database.WorkoutEntry{
		UserID:      record.UserID,
		Date:        record.Date,
		DurationMin: record.DurationMin,
		Intensity:   string(record.Intensity),
		Exercises:   toJSON(record.Exercises),
		TotalVolume: record.TotalVolume,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (r *LogbookRepository) WorkoutRange(ctx context.Context, userID string, from, to time.Time) ([]domain.WorkoutLogRecord, error) {
	var rows []database.WorkoutEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	records := make([]domain.WorkoutLogRecord, 0, len(rows))
	for _, row := range rows {
		record := domain.WorkoutLogRecord{
			UserID:      row.UserID,
			Date:        row.Date,
			DurationMin: row.DurationMin,
			Intensity:   domain.WorkoutIntensity(row.Intensity),
			TotalVolume: row.TotalVolume,
		}
		fromJSON(row.Exercises, &record.Exercises)
		records = append(records, record)
	}
	return records, nil
}
