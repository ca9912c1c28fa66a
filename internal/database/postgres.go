package database

import (
	"fmt"
	"time"

	"github.com/mkovalev/gain-planner/internal/config"
	"github.com/mkovalev/gain-planner/internal/database/migrations"
	"github.com/mkovalev/gain-planner/internal/logger"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserProfile is the persisted shape of a biometric profile.
type UserProfile struct {
	gorm.Model
	UserID          string `gorm:"uniqueIndex"`
	Age             int
	Sex             string
	HeightCm        float64
	CurrentWeightKg float64
	ActivityLevel   string
	FitnessLevel    string
	DietaryTags     datatypes.JSON
	HealthFlags     datatypes.JSON
}

// UserGoal is the persisted gain goal, one per user.
type UserGoal struct {
	gorm.Model
	UserID         string `gorm:"uniqueIndex"`
	TargetWeightKg float64
	WeeklyGainKg   float64
	Intensity      string
	TargetDate     *time.Time
}

// Snapshot is the persisted calculation cache, one row per user, overwritten
// on every recompute.
type Snapshot struct {
	gorm.Model
	UserID         string `gorm:"uniqueIndex"`
	BMR            int
	TDEE           int
	TargetCalories int
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	LastCalculated time.Time
}

// BodyStatsEntry is one append-only weight sample.
type BodyStatsEntry struct {
	gorm.Model
	UserID       string    `gorm:"index:idx_body_stats_user_date"`
	Date         time.Time `gorm:"index:idx_body_stats_user_date"`
	WeightKg     float64
	BodyFatPct   *float64
	Measurements datatypes.JSON
}

// WorkoutEntry is one append-only training session.
type WorkoutEntry struct {
	gorm.Model
	UserID      string    `gorm:"index:idx_workouts_user_date"`
	Date        time.Time `gorm:"index:idx_workouts_user_date"`
	DurationMin int
	Intensity   string
	Exercises   datatypes.JSON
	TotalVolume float64
}

// AdaptationEntry is a persisted adjustment proposal.
type AdaptationEntry struct {
	gorm.Model
	RecordID           string `gorm:"uniqueIndex"`
	UserID             string `gorm:"index"`
	Triggers           datatypes.JSON
	CalorieAdjustment  int
	MacroAdjustments   datatypes.JSON
	WorkoutAdjustments datatypes.JSON
	Reasoning          string
	EffectiveDate      time.Time
	Applied            bool
}

// NewPostgresDB opens the connection and brings the schema up to date.
func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&UserProfile{},
		&UserGoal{},
		&Snapshot{},
		&BodyStatsEntry{},
		&WorkoutEntry{},
		&AdaptationEntry{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database connection established and migrations completed")
	return db, nil
}
