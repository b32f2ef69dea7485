package sqlite

import (
	"time"
)

// storeTime formats a countdown timestamp for storage. Timestamps are
// normalized to UTC and written as RFC3339 text so started_at comparisons in
// SQL stay correct regardless of the zone a countdown ran in
func storeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// storeNullableTime formats an optional timestamp, mapping nil to NULL
func storeNullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return storeTime(*t)
}
