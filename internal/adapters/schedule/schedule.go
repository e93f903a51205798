// Package schedule provides the wall-clock implementation of the scheduler
// port backing debounce timers.
package schedule

import (
	"time"

	"aliashist/internal/ports"
)

// Wall schedules callbacks on real timers.
type Wall struct{}

// NewWall creates a wall-clock scheduler.
func NewWall() Wall {
	return Wall{}
}

// After runs fn once d has elapsed. *time.Timer satisfies ports.Timer.
func (Wall) After(d time.Duration, fn func()) ports.Timer {
	return time.AfterFunc(d, fn)
}
