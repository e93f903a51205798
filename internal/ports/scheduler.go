package ports

import "time"

// Timer is an outstanding delayed callback.
type Timer interface {
	// Stop cancels the timer, reporting whether it was still pending.
	Stop() bool
}

// Scheduler is the delayed-callback primitive the debounce coordinator runs
// settlements on. Injected so tests can drive time by hand.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}
