package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTrend(t *testing.T) {
	t.Run("Zero previous means no meaningful comparison", func(t *testing.T) {
		trend := computeTrend(decimal.NewFromInt(500), decimal.Zero, goodWhenRising)
		assert.False(t, trend.Valid)
	})

	t.Run("Unchanged value is a valid zero trend", func(t *testing.T) {
		x := decimal.NewFromInt(42_000)
		trend := computeTrend(x, x, goodWhenRising)
		assert.True(t, trend.Valid)
		assert.True(t, trend.Percent.IsZero())
		assert.True(t, trend.Favorable)
	})

	t.Run("Percentage change", func(t *testing.T) {
		// (150 - 100) / 100 * 100 = 50%
		trend := computeTrend(decimal.NewFromInt(150), decimal.NewFromInt(100), goodWhenRising)
		assert.True(t, decimal.NewFromInt(50).Equal(trend.Percent))
		assert.True(t, trend.Favorable)
	})

	t.Run("Falling income is unfavorable", func(t *testing.T) {
		trend := computeTrend(decimal.NewFromInt(80), decimal.NewFromInt(100), goodWhenRising)
		assert.True(t, decimal.NewFromInt(-20).Equal(trend.Percent))
		assert.False(t, trend.Favorable)
	})

	t.Run("Rising expense is unfavorable despite positive percentage", func(t *testing.T) {
		trend := computeTrend(decimal.NewFromInt(120), decimal.NewFromInt(100), goodWhenFalling)
		assert.True(t, decimal.NewFromInt(20).Equal(trend.Percent))
		assert.False(t, trend.Favorable)
	})

	t.Run("Falling expense is favorable", func(t *testing.T) {
		trend := computeTrend(decimal.NewFromInt(80), decimal.NewFromInt(100), goodWhenFalling)
		assert.True(t, trend.Favorable)
	})
}
