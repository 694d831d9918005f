package pacer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalPacer(t *testing.T) {
	t.Run("spacing", func(t *testing.T) {
		const interval = 20 * time.Millisecond
		p := NewIntervalPacer(interval)

		var starts []time.Time
		for range 5 {
			require.NoError(t, p.Wait(t.Context()))
			starts = append(starts, time.Now())
		}

		for i := 1; i < len(starts); i++ {
			assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), interval)
		}
	})
	t.Run("late wakeups do not shorten the next gap", func(t *testing.T) {
		const interval = 3 * time.Millisecond
		p := NewIntervalPacer(interval)

		starts := make([]time.Time, 0, 100)
		for range 100 {
			require.NoError(t, p.Wait(t.Context()))
			starts = append(starts, time.Now())
		}

		var early int
		for i := 1; i < len(starts); i++ {
			if starts[i].Sub(starts[i-1]) < interval {
				early++
			}
		}
		assert.Zero(t, early, "gaps shorter than %s", interval)
	})
	t.Run("first wait does not block", func(t *testing.T) {
		p := NewIntervalPacer(time.Hour)

		start := time.Now()
		require.NoError(t, p.Wait(t.Context()))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})
	t.Run("zero interval does not block", func(t *testing.T) {
		p := NewIntervalPacer(0)

		start := time.Now()
		for range 100 {
			require.NoError(t, p.Wait(t.Context()))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})
	t.Run("cancelled context", func(t *testing.T) {
		p := NewIntervalPacer(time.Hour)
		require.NoError(t, p.Wait(t.Context()))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		require.Error(t, p.Wait(ctx))
	})
}
