package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	const (
		threshold = 200 * time.Millisecond
		// use 1.5*Resolution in order to avoid test failures because of the Resolution+1ms error,
		// which happens rarely, but better to not happen at all
		resolution = Resolution + Resolution/2
	)

	for i := 0; i < int(2*time.Second/threshold); i++ {
		if time.Since(Now()) > resolution {
			require.Fail(t, "the timer is too slow")
		}

		time.Sleep(threshold)
	}
}

func BenchmarkNow(b *testing.B) {
	b.Run("time.Now", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = time.Now()
		}
	})

	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Now()
		}
	})
}
