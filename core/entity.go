package core

// Entity is an opaque handle identifying a logical object in the world.
// It carries no data; components are attached through the engine's stores.
// The Alive flag is a snapshot taken when the handle was issued - the world
// tracks authoritative liveness.
type Entity struct {
	ID    uint64
	Alive bool
}

// NoEntity is the null handle. Hierarchical components use it as the
// no-parent sentinel.
var NoEntity = Entity{}

// IsZero reports whether e is the null handle.
func (e Entity) IsZero() bool {
	return e.ID == 0
}
