package kernel_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func mustRange(t *testing.T, start, end string) kernel.DateRange {
	t.Helper()
	r, err := kernel.NewDateRange(day(t, start), day(t, end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("should create valid range", func(t *testing.T) {
		r, err := kernel.NewDateRange(day(t, "2026-01-01"), day(t, "2026-01-05"))

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, day(t, "2026-01-01"), r.Start())
		assert.Equal(t, day(t, "2026-01-05"), r.End())
	})

	t.Run("single-day range is valid", func(t *testing.T) {
		r, err := kernel.NewDateRange(day(t, "2026-01-01"), day(t, "2026-01-01"))

		require.NoError(t, err)
		require.NoError(t, r.Validate())
	})

	t.Run("should fail when end precedes start", func(t *testing.T) {
		_, err := kernel.NewDateRange(day(t, "2026-01-05"), day(t, "2026-01-01"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "endDate")
	})

	t.Run("should fail on missing boundaries", func(t *testing.T) {
		_, err := kernel.NewDateRange(time.Time{}, day(t, "2026-01-05"))
		require.Error(t, err)

		_, err = kernel.NewDateRange(day(t, "2026-01-01"), time.Time{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r kernel.DateRange

		require.Error(t, r.Validate())
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, "2026-01-05", "2026-01-10")

	t.Run("disjoint ranges do not overlap", func(t *testing.T) {
		assert.False(t, base.Overlaps(mustRange(t, "2026-01-11", "2026-01-15")))
		assert.False(t, base.Overlaps(mustRange(t, "2026-01-01", "2026-01-04")))
	})

	t.Run("shared boundary day counts as overlap", func(t *testing.T) {
		assert.True(t, base.Overlaps(mustRange(t, "2026-01-10", "2026-01-15")))
		assert.True(t, base.Overlaps(mustRange(t, "2026-01-01", "2026-01-05")))
	})

	t.Run("partial intersection overlaps", func(t *testing.T) {
		assert.True(t, base.Overlaps(mustRange(t, "2026-01-08", "2026-01-20")))
		assert.True(t, base.Overlaps(mustRange(t, "2026-01-03", "2026-01-07")))
	})

	t.Run("containment overlaps both ways", func(t *testing.T) {
		assert.True(t, base.Overlaps(mustRange(t, "2026-01-06", "2026-01-09")))
		assert.True(t, base.Overlaps(mustRange(t, "2026-01-01", "2026-01-20")))
	})

	t.Run("overlap is symmetric", func(t *testing.T) {
		other := mustRange(t, "2026-01-10", "2026-01-15")

		assert.Equal(t, base.Overlaps(other), other.Overlaps(base))
	})
}

func TestDateRange_Contains(t *testing.T) {
	base := mustRange(t, "2026-01-05", "2026-01-10")

	assert.True(t, base.Contains(day(t, "2026-01-05")))
	assert.True(t, base.Contains(day(t, "2026-01-10")))
	assert.True(t, base.Contains(day(t, "2026-01-07")))
	assert.False(t, base.Contains(day(t, "2026-01-04")))
	assert.False(t, base.Contains(day(t, "2026-01-11")))
}

func TestDateRange_IsEqual(t *testing.T) {
	assert.True(t, mustRange(t, "2026-01-05", "2026-01-10").IsEqual(mustRange(t, "2026-01-05", "2026-01-10")))
	assert.False(t, mustRange(t, "2026-01-05", "2026-01-10").IsEqual(mustRange(t, "2026-01-05", "2026-01-11")))
}
