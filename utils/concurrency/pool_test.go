package concurrency

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {

	t.Run("NoError", func(t *testing.T) {

		acc := make([]int, 8)

		pool := NewPool(make([]bool, 4))

		for i := range acc {
			pool.Run(func(r bool) (err error) {
				acc[i]++
				return
			})
		}

		require.NoError(t, pool.Wait())

		for i := range acc {
			require.Equal(t, 1, acc[i])
		}
	})

	t.Run("WithError", func(t *testing.T) {

		var ran atomic.Int64

		pool := NewPool(make([]bool, 4))

		for i := 0; i < 8; i++ {
			pool.Run(func(r bool) (err error) {
				ran.Add(1)
				if i == 2 {
					return fmt.Errorf("something bad happened")
				}
				return
			})
		}

		require.Error(t, pool.Wait())

		// A failing task must not keep the remaining ones from running.
		require.Equal(t, int64(8), ran.Load())
	})

	t.Run("BoundedParallelism", func(t *testing.T) {

		var inFlight, peak atomic.Int64

		pool := NewPool(make([]bool, 2))

		for i := 0; i < 16; i++ {
			pool.Run(func(r bool) (err error) {
				if n := inFlight.Add(1); n > peak.Load() {
					peak.Store(n)
				}
				inFlight.Add(-1)
				return
			})
		}

		require.NoError(t, pool.Wait())
		require.LessOrEqual(t, peak.Load(), int64(2))
	})
}
