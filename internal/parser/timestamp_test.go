package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
)

func TestParseTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("empty means now", func(t *testing.T) {
		got, err := ParseTimestamp("", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("now keyword, any case", func(t *testing.T) {
		for _, input := range []string{"now", "Now", "NOW", "  now  "} {
			got, err := ParseTimestamp(input, now)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, now, got)
		}
	})

	t.Run("RFC 3339", func(t *testing.T) {
		got, err := ParseTimestamp("2025-03-10T09:00:00Z", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("date and time literal", func(t *testing.T) {
		got, err := ParseTimestamp("2025-03-10 09:15", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC), got)
	})

	t.Run("date only is midnight", func(t *testing.T) {
		got, err := ParseTimestamp("2025-03-10", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("natural language is anchored to now", func(t *testing.T) {
		got, err := ParseTimestamp("yesterday", now)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Day())
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("garbage is a validation error", func(t *testing.T) {
		_, err := ParseTimestamp("not a time at all %%%", now)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}
