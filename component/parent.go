package component

import (
	"github.com/eskarin-dev/gridfall/core"
)

// ParentComponent links an entity to a parent by handle value. The link is a
// plain value copy, never ownership: destroying the parent does not cascade
// to children, and a stale link simply stops resolving. core.NoEntity means
// no parent.
type ParentComponent struct {
	Parent core.Entity
}

// HasParent reports whether the link is set.
func (p ParentComponent) HasParent() bool {
	return !p.Parent.IsZero()
}
