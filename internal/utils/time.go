package utils

import "time"

// IsStale reports whether a snapshot computed at lastCalculated has aged past
// thresholdHours as of now. A zero lastCalculated means never computed and is
// always stale. The policy lives here as a free function so it stays
// decoupled from the storage record's shape.
func IsStale(lastCalculated, now time.Time, thresholdHours int) bool {
	if lastCalculated.IsZero() {
		return true
	}
	return now.Sub(lastCalculated) > time.Duration(thresholdHours)*time.Hour
}
