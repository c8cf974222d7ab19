package order

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const numberPrefix = "ORD"

const numberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateNumber produces a unique order number of the form
// ORD-<last 4 digits of the creation epoch-millis>-<6 random uppercase
// base-36 characters>, e.g. "ORD-4821-K7Q0ZD". The format is fixed for
// compatibility with existing consumers of order numbers.
//
// Uniqueness is ultimately guaranteed by the database constraint on the
// order number column; the random suffix makes collisions improbable.
func GenerateNumber() string {
	return GenerateNumberAt(time.Now())
}

// GenerateNumberAt produces an order number stamped with the given creation time.
// Split out from GenerateNumber so the timestamp fragment is testable.
func GenerateNumberAt(createdAt time.Time) string {
	millis := strconv.FormatInt(createdAt.UnixMilli(), 10)
	stamp := millis[len(millis)-4:]

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = numberAlphabet[rand.IntN(len(numberAlphabet))]
	}

	return numberPrefix + "-" + stamp + "-" + string(suffix)
}
