package migrations

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Migration is a versioned schema change outside AutoMigrate's reach.
type Migration struct {
	ID string
	Up func(*gorm.DB) error
}

// MigrationRecord tracks executed migrations.
type MigrationRecord struct {
	ID        string `gorm:"primaryKey"`
	AppliedAt time.Time
}

var registry = make(map[string]Migration)

// Register adds a migration to the registry. Called from init functions of
// the migration files; IDs sort lexicographically in execution order.
func Register(id string, up func(*gorm.DB) error) {
	registry[id] = Migration{ID: id, Up: up}
}

// RunMigrations executes every pending migration in ID order.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var executed []MigrationRecord
	if err := db.Find(&executed).Error; err != nil {
		return fmt.Errorf("failed to read executed migrations: %w", err)
	}
	done := make(map[string]bool, len(executed))
	for _, m := range executed {
		done[m.ID] = true
	}

	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if done[id] {
			continue
		}
		if err := registry[id].Up(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", id, err)
		}
		record := MigrationRecord{ID: id, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", id, err)
		}
	}
	return nil
}
