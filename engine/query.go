package engine

import (
	"github.com/eskarin-dev/gridfall/core"
)

// QueryBuilder accumulates inclusion and exclusion predicates over component
// stores. The first With call fixes the primary store used as the iteration
// seed; later With calls add inclusion probes and Without calls add exclusion
// probes. A builder is a cheap descriptor - nothing is evaluated until the
// result cursor is advanced.
//
// Example:
//
//	res := world.Query().
//	    With(stores.Tag).
//	    Without(stores.Dead).
//	    Execute()
//	for res.Next() {
//	    e := res.Entity()
//	    ...
//	}
type QueryBuilder struct {
	include []QueryableStore
	exclude []AnyStore
}

// Query starts a new builder against this world's stores.
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		include: make([]QueryableStore, 0, 4),
	}
}

// With requires candidates to hold a component in store. The first call
// selects the seed store; subsequent calls add membership probes.
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	qb.include = append(qb.include, store)
	return qb
}

// Without rejects candidates holding a component in store.
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	qb.exclude = append(qb.exclude, store)
	return qb
}

// Execute returns a lazy, single-pass cursor over entities that hold every
// included component and none of the excluded ones. Filtering happens per
// Next call and short-circuits on the first failing probe, so partial
// consumption never scans the full seed. Re-running a query requires a fresh
// Execute; results are never cached across world mutations.
func (qb *QueryBuilder) Execute() *QueryResult {
	r := &QueryResult{
		include: qb.include,
		exclude: qb.exclude,
		idx:     -1,
	}
	if len(qb.include) > 0 {
		r.seed = qb.include[0].view()
	}
	return r
}

// QueryResult is the pull cursor produced by QueryBuilder.Execute. It is a
// read view: advancing it never mutates the underlying stores. Mutating a
// store mid-iteration is undefined; collect first if that is needed.
type QueryResult struct {
	include []QueryableStore
	exclude []AnyStore
	seed    []core.Entity
	idx     int
	current core.Entity
}

// Next advances to the next matching entity. It returns false when the seed
// store is exhausted; an empty result is a normal outcome, not an error.
func (r *QueryResult) Next() bool {
	for r.idx++; r.idx < len(r.seed); r.idx++ {
		e := r.seed[r.idx]
		if !r.matches(e) {
			continue
		}
		r.current = e
		return true
	}
	return false
}

// Entity returns the entity at the cursor. Valid only after Next returned
// true.
func (r *QueryResult) Entity() core.Entity {
	return r.current
}

// Collect drains the cursor into a slice.
func (r *QueryResult) Collect() []core.Entity {
	result := make([]core.Entity, 0)
	for r.Next() {
		result = append(result, r.current)
	}
	return result
}

// Each drains the cursor, calling fn for every match. fn must not mutate the
// stores under query.
func (r *QueryResult) Each(fn func(core.Entity)) {
	for r.Next() {
		fn(r.current)
	}
}

func (r *QueryResult) matches(e core.Entity) bool {
	for i := 1; i < len(r.include); i++ {
		if !r.include[i].Has(e) {
			return false
		}
	}
	for _, s := range r.exclude {
		if s.Has(e) {
			return false
		}
	}
	return true
}
