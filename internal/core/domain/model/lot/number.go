package lot

import (
	"fmt"
	"time"
)

// numberPrefix is the literal prefix of every lot number.
const numberPrefix = "LOT"

// NextNumber builds the lot number for the next lot created on the given day:
// LOT-YYYYMMDD-NNNN, where NNNN is the 1-based daily sequence derived from
// the number of lots already created since local midnight. The sequence
// resets every calendar day. Callers must serialize number generation per day
// (the lot number carries a unique constraint as the backstop).
func NextNumber(now time.Time, createdToday int64) string {
	return fmt.Sprintf("%s-%s-%04d", numberPrefix, now.Format("20060102"), createdToday+1)
}

// StartOfDay returns local midnight of the given time, the lower bound for
// the daily sequence count.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
