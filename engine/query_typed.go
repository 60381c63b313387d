package engine

import (
	"github.com/eskarin-dev/gridfall/core"
)

// Typed multi-component queries. QueryN returns a lazy cursor over every
// entity holding all N component types, yielding the entity together with
// its current component values. The cursor seeds from the smallest of the
// involved stores, so cost is proportional to the smallest pool rather than
// the total entity count, and each candidate is dropped on its first failing
// probe.
//
// Cursors are cheap descriptors: nothing is evaluated until Next is called,
// and a cursor cannot be rewound - issue a fresh query to re-iterate.
// Mutating any involved store while a cursor is live is undefined.
//
// Usage:
//
//	q := engine.Query2[component.Position, component.Health](world)
//	for q.Next() {
//	    pos, hp := q.Values()
//	    ...
//	}

// Cursor1 iterates entities holding component A.
type Cursor1[A any] struct {
	sa     *Store[A]
	seed   []core.Entity
	idx    int
	entity core.Entity
	a      A
}

// Query1 returns a lazy cursor over all entities holding A.
func Query1[A any](w *World) *Cursor1[A] {
	sa := GetStore[A](w)
	return &Cursor1[A]{sa: sa, seed: sa.view(), idx: -1}
}

// Next advances the cursor. False when exhausted.
func (c *Cursor1[A]) Next() bool {
	for c.idx++; c.idx < len(c.seed); c.idx++ {
		e := c.seed[c.idx]
		a, ok := c.sa.Get(e)
		if !ok {
			continue
		}
		c.entity, c.a = e, a
		return true
	}
	return false
}

// Entity returns the entity at the cursor. Valid only after Next returned true.
func (c *Cursor1[A]) Entity() core.Entity { return c.entity }

// Values returns the component values at the cursor.
func (c *Cursor1[A]) Values() A { return c.a }

// Cursor2 iterates entities holding components A and B.
type Cursor2[A, B any] struct {
	sa     *Store[A]
	sb     *Store[B]
	seed   []core.Entity
	idx    int
	entity core.Entity
	a      A
	b      B
}

// Query2 returns a lazy cursor over all entities holding both A and B.
func Query2[A, B any](w *World) *Cursor2[A, B] {
	sa, sb := GetStore[A](w), GetStore[B](w)
	c := &Cursor2[A, B]{sa: sa, sb: sb, idx: -1}
	c.seed = sa.view()
	if sb.Len() < sa.Len() {
		c.seed = sb.view()
	}
	return c
}

// Next advances the cursor. False when exhausted.
func (c *Cursor2[A, B]) Next() bool {
	for c.idx++; c.idx < len(c.seed); c.idx++ {
		e := c.seed[c.idx]
		a, ok := c.sa.Get(e)
		if !ok {
			continue
		}
		b, ok := c.sb.Get(e)
		if !ok {
			continue
		}
		c.entity, c.a, c.b = e, a, b
		return true
	}
	return false
}

// Entity returns the entity at the cursor. Valid only after Next returned true.
func (c *Cursor2[A, B]) Entity() core.Entity { return c.entity }

// Values returns the component values at the cursor.
func (c *Cursor2[A, B]) Values() (A, B) { return c.a, c.b }

// Cursor3 iterates entities holding components A, B and C.
type Cursor3[A, B, C any] struct {
	sa     *Store[A]
	sb     *Store[B]
	sc     *Store[C]
	seed   []core.Entity
	idx    int
	entity core.Entity
	a      A
	b      B
	c      C
}

// Query3 returns a lazy cursor over all entities holding A, B and C.
func Query3[A, B, C any](w *World) *Cursor3[A, B, C] {
	sa, sb, sc := GetStore[A](w), GetStore[B](w), GetStore[C](w)
	cur := &Cursor3[A, B, C]{sa: sa, sb: sb, sc: sc, idx: -1}
	cur.seed = sa.view()
	if sb.Len() < len(cur.seed) {
		cur.seed = sb.view()
	}
	if sc.Len() < len(cur.seed) {
		cur.seed = sc.view()
	}
	return cur
}

// Next advances the cursor. False when exhausted.
func (c *Cursor3[A, B, C]) Next() bool {
	for c.idx++; c.idx < len(c.seed); c.idx++ {
		e := c.seed[c.idx]
		a, ok := c.sa.Get(e)
		if !ok {
			continue
		}
		b, ok := c.sb.Get(e)
		if !ok {
			continue
		}
		cc, ok := c.sc.Get(e)
		if !ok {
			continue
		}
		c.entity, c.a, c.b, c.c = e, a, b, cc
		return true
	}
	return false
}

// Entity returns the entity at the cursor. Valid only after Next returned true.
func (c *Cursor3[A, B, C]) Entity() core.Entity { return c.entity }

// Values returns the component values at the cursor.
func (c *Cursor3[A, B, C]) Values() (A, B, C) { return c.a, c.b, c.c }

// Cursor4 iterates entities holding components A, B, C and D.
type Cursor4[A, B, C, D any] struct {
	sa     *Store[A]
	sb     *Store[B]
	sc     *Store[C]
	sd     *Store[D]
	seed   []core.Entity
	idx    int
	entity core.Entity
	a      A
	b      B
	c      C
	d      D
}

// Query4 returns a lazy cursor over all entities holding A, B, C and D.
func Query4[A, B, C, D any](w *World) *Cursor4[A, B, C, D] {
	sa, sb, sc, sd := GetStore[A](w), GetStore[B](w), GetStore[C](w), GetStore[D](w)
	cur := &Cursor4[A, B, C, D]{sa: sa, sb: sb, sc: sc, sd: sd, idx: -1}
	cur.seed = sa.view()
	if sb.Len() < len(cur.seed) {
		cur.seed = sb.view()
	}
	if sc.Len() < len(cur.seed) {
		cur.seed = sc.view()
	}
	if sd.Len() < len(cur.seed) {
		cur.seed = sd.view()
	}
	return cur
}

// Next advances the cursor. False when exhausted.
func (c *Cursor4[A, B, C, D]) Next() bool {
	for c.idx++; c.idx < len(c.seed); c.idx++ {
		e := c.seed[c.idx]
		a, ok := c.sa.Get(e)
		if !ok {
			continue
		}
		b, ok := c.sb.Get(e)
		if !ok {
			continue
		}
		cc, ok := c.sc.Get(e)
		if !ok {
			continue
		}
		d, ok := c.sd.Get(e)
		if !ok {
			continue
		}
		c.entity, c.a, c.b, c.c, c.d = e, a, b, cc, d
		return true
	}
	return false
}

// Entity returns the entity at the cursor. Valid only after Next returned true.
func (c *Cursor4[A, B, C, D]) Entity() core.Entity { return c.entity }

// Values returns the component values at the cursor.
func (c *Cursor4[A, B, C, D]) Values() (A, B, C, D) { return c.a, c.b, c.c, c.d }

// Cursor5 iterates entities holding components A, B, C, D and E.
type Cursor5[A, B, C, D, E any] struct {
	sa     *Store[A]
	sb     *Store[B]
	sc     *Store[C]
	sd     *Store[D]
	se     *Store[E]
	seed   []core.Entity
	idx    int
	entity core.Entity
	a      A
	b      B
	c      C
	d      D
	e      E
}

// Query5 returns a lazy cursor over all entities holding A, B, C, D and E.
func Query5[A, B, C, D, E any](w *World) *Cursor5[A, B, C, D, E] {
	sa, sb := GetStore[A](w), GetStore[B](w)
	sc, sd := GetStore[C](w), GetStore[D](w)
	se := GetStore[E](w)
	cur := &Cursor5[A, B, C, D, E]{sa: sa, sb: sb, sc: sc, sd: sd, se: se, idx: -1}
	cur.seed = sa.view()
	if sb.Len() < len(cur.seed) {
		cur.seed = sb.view()
	}
	if sc.Len() < len(cur.seed) {
		cur.seed = sc.view()
	}
	if sd.Len() < len(cur.seed) {
		cur.seed = sd.view()
	}
	if se.Len() < len(cur.seed) {
		cur.seed = se.view()
	}
	return cur
}

// Next advances the cursor. False when exhausted.
func (c *Cursor5[A, B, C, D, E]) Next() bool {
	for c.idx++; c.idx < len(c.seed); c.idx++ {
		e := c.seed[c.idx]
		a, ok := c.sa.Get(e)
		if !ok {
			continue
		}
		b, ok := c.sb.Get(e)
		if !ok {
			continue
		}
		cc, ok := c.sc.Get(e)
		if !ok {
			continue
		}
		d, ok := c.sd.Get(e)
		if !ok {
			continue
		}
		ee, ok := c.se.Get(e)
		if !ok {
			continue
		}
		c.entity, c.a, c.b, c.c, c.d, c.e = e, a, b, cc, d, ee
		return true
	}
	return false
}

// Entity returns the entity at the cursor. Valid only after Next returned true.
func (c *Cursor5[A, B, C, D, E]) Entity() core.Entity { return c.entity }

// Values returns the component values at the cursor.
func (c *Cursor5[A, B, C, D, E]) Values() (A, B, C, D, E) {
	return c.a, c.b, c.c, c.d, c.e
}

// Each2 drains a fresh two-component query, calling fn for every match.
// Convenience for systems that always consume the full result.
func Each2[A, B any](w *World, fn func(core.Entity, A, B)) {
	q := Query2[A, B](w)
	for q.Next() {
		fn(q.entity, q.a, q.b)
	}
}

// Each3 drains a fresh three-component query.
func Each3[A, B, C any](w *World, fn func(core.Entity, A, B, C)) {
	q := Query3[A, B, C](w)
	for q.Next() {
		fn(q.entity, q.a, q.b, q.c)
	}
}
