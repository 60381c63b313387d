package component

// NameComponent gives an entity a human-readable name for lookup and
// debugging. Names are not required to be unique; name lookup returns the
// first match in pool order.
type NameComponent struct {
	Name string
}

// TagComponent attaches a set of free-form tags to an entity. Tag lookup
// scans the tag pool, so cost is proportional to the number of tagged
// entities, not the world size.
type TagComponent struct {
	Tags []string
}

// Contains reports whether the tag set includes tag.
func (t TagComponent) Contains(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}
