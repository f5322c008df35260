package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
)

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name      string
		logged    float64
		estimated float64
		want      float64
	}{
		{"half of estimate", 5, 10, 50},
		{"exactly on estimate", 10, 10, 100},
		{"over estimate is unbounded", 15, 10, 150},
		{"zero logged", 0, 10, 0},
		{"zero estimate", 5, 0, 0},
		{"negative estimate", 5, -3, 0},
		{"negative logged counts as zero", -5, 10, 0},
		{"NaN logged counts as zero", math.NaN(), 10, 0},
		{"NaN estimate", 5, math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Efficiency(tt.logged, tt.estimated), 1e-9)
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		logged    float64
		estimated float64
		want      float64
	}{
		{"halfway", 5, 10, 0.5},
		{"complete", 10, 10, 1},
		{"over estimate clamps to full", 25, 10, 1},
		{"nothing logged", 0, 10, 0},
		{"zero estimate clamps to empty", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.logged, tt.estimated), 1e-9)
		})
	}
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		efficiency float64
		want       Level
	}{
		{0, LevelCritical},
		{49.99, LevelCritical},
		{50, LevelWarning},
		{79.99, LevelWarning},
		{80, LevelGood},
		{100, LevelGood},
		{100.01, LevelExcellent},
		{250, LevelExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetLevel(tt.efficiency),
			"efficiency %.2f", tt.efficiency)
	}
}

func TestDuration(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("positive span", func(t *testing.T) {
		hours, err := Duration(start, start.Add(90*time.Minute))
		require.NoError(t, err)
		assert.InDelta(t, 1.5, hours, 1e-9)
	})

	t.Run("end equals start is rejected", func(t *testing.T) {
		_, err := Duration(start, start)
		assert.ErrorIs(t, err, errors.ErrEndBeforeStart)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := Duration(start, start.Add(-time.Hour))
		assert.ErrorIs(t, err, errors.ErrEndBeforeStart)
	})
}

func TestAveragePerDay(t *testing.T) {
	assert.InDelta(t, 4.0, AveragePerDay(20, 5), 1e-9)
	assert.Zero(t, AveragePerDay(20, 0))
	assert.Zero(t, AveragePerDay(20, -1))
}
