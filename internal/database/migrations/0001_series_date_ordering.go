package migrations

import "gorm.io/gorm"

// The time-series tables are queried by (user_id, date) ranges; the composite
// indexes come from struct tags, but existing rows written before dates were
// normalized need their time component truncated so range bounds behave.
func init() {
	Register("0001_series_date_ordering", func(db *gorm.DB) error {
		if err := db.Exec("UPDATE body_stats_entries SET date = date_trunc('day', date)").Error; err != nil {
			return err
		}
		return db.Exec("UPDATE workout_entries SET date = date_trunc('day', date)").Error
	})
}
