package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which the cached time is refreshed.
const Resolution = 500 * time.Millisecond

// millis holds the cached unix-time in milliseconds.
var millis atomic.Int64

// Now returns the cached wall clock. It can lag the real one by up to
// [Resolution], which is precise enough for arming accept deadlines.
func Now() time.Time {
	return time.UnixMilli(millis.Load())
}

func init() {
	// seed before the ticker goroutine gets scheduled, so early callers
	// never observe the zero time
	millis.Store(time.Now().UnixMilli())

	go func() {
		for now := range time.Tick(Resolution) {
			millis.Store(now.UnixMilli())
		}
	}()
}
