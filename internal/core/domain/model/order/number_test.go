package order_test

import (
	"regexp"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	t.Run("matches_required_format", func(t *testing.T) {
		pattern := regexp.MustCompile(`^ORD-\d{4}-[0-9A-Z]{6}$`)

		for range 100 {
			number := order.GenerateNumber()
			assert.Regexp(t, pattern, number)
		}
	})

	t.Run("embeds_last_four_digits_of_epoch_millis", func(t *testing.T) {
		createdAt := time.UnixMilli(1714060807321)

		number := order.GenerateNumberAt(createdAt)

		require.Len(t, number, 15)
		assert.Equal(t, "ORD-7321-", number[:9])
	})

	t.Run("random_suffix_varies", func(t *testing.T) {
		createdAt := time.UnixMilli(1714060807321)
		seen := make(map[string]bool)
		for range 50 {
			seen[order.GenerateNumberAt(createdAt)] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}
