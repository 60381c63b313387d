package component

import "time"

// LifetimeComponent destroys an entity after the remaining duration elapses.
// The lifetime system decrements it each frame.
type LifetimeComponent struct {
	Remaining time.Duration
}
