package dispatch

import (
	"strconv"
	"time"
)

const numberPrefix = "DSP"

// GenerateNumber produces a dispatch order number of the form
// DSP-<last 6 digits of the creation epoch-millis>, e.g. "DSP-807321".
// The format is fixed for compatibility with existing consumers.
//
// Uniqueness is ultimately guaranteed by the database constraint on the
// dispatch number column.
func GenerateNumber() string {
	return GenerateNumberAt(time.Now())
}

// GenerateNumberAt produces a dispatch number stamped with the given creation time.
// Split out from GenerateNumber so the timestamp fragment is testable.
func GenerateNumberAt(createdAt time.Time) string {
	millis := strconv.FormatInt(createdAt.UnixMilli(), 10)
	return numberPrefix + "-" + millis[len(millis)-6:]
}
