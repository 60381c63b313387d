package component

// HealthComponent tracks hit points.
type HealthComponent struct {
	Current int
	Max     int
}

// Depleted reports whether the entity is out of hit points.
func (h HealthComponent) Depleted() bool {
	return h.Current <= 0
}

// DeadComponent marks an entity whose gameplay is over but whose data is
// still needed (death animation, score tally). Systems exclude it via
// Without rather than checking health everywhere.
type DeadComponent struct{}
