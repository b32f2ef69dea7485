package refresh

import (
	"sync"
	"time"
)

// Scheduler repeatedly invokes fn on a fixed interval until fn returns false
// or the returned cancel function is called. Implementations must guarantee
// that cancel is synchronous: once it returns, no further invocation of fn is
// in flight or will ever happen.
type Scheduler func(interval time.Duration, fn func() bool) (cancel func())

// TickerScheduler is the production Scheduler, driving fn from a time.Ticker
// goroutine. Cancel waits for the goroutine to exit, so a tick observed after
// cancel returns is impossible. Cancel may be called more than once.
func TickerScheduler(interval time.Duration, fn func() bool) (cancel func()) {
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// A tick racing the stop signal must lose.
				select {
				case <-stop:
					return
				default:
				}
				if !fn() {
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
		})
		<-done
	}
}

// Ensure TickerScheduler satisfies the Scheduler contract at compile time.
var _ Scheduler = TickerScheduler
