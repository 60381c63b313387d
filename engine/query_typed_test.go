package engine

import (
	"testing"

	"github.com/eskarin-dev/gridfall/core"
)

type tagA struct{ N int }
type tagB struct{ N int }
type tagC struct{ N int }
type tagD struct{ N int }
type tagE struct{ N int }

func TestQuery2YieldsIntersectionWithValues(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	Set(w, e1, posComp{X: 1, Y: 2})
	Set(w, e1, hpComp{Current: 100, Max: 100})

	e2 := w.CreateEntity()
	Set(w, e2, posComp{X: 0, Y: 0}) // no health: excluded

	q := Query2[posComp, hpComp](w)
	count := 0
	for q.Next() {
		count++
		if q.Entity().ID != e1.ID {
			t.Errorf("yielded entity %d, want %d", q.Entity().ID, e1.ID)
		}
		p, h := q.Values()
		if p != (posComp{X: 1, Y: 2}) {
			t.Errorf("position = %+v, want {1 2}", p)
		}
		if h != (hpComp{Current: 100, Max: 100}) {
			t.Errorf("health = %+v, want {100 100}", h)
		}
	}
	if count != 1 {
		t.Errorf("query yielded %d entities, want 1", count)
	}
}

func TestQuery2MatchesHasComponentExactly(t *testing.T) {
	w := NewWorld()

	// A spread of component combinations.
	for i := 0; i < 32; i++ {
		e := w.CreateEntity()
		if i%2 == 0 {
			Set(w, e, posComp{X: i})
		}
		if i%3 == 0 {
			Set(w, e, hpComp{Current: i})
		}
	}

	want := make(map[uint64]bool)
	for _, e := range w.AllEntities() {
		if Has[posComp](w, e) && Has[hpComp](w, e) {
			want[e.ID] = true
		}
	}

	got := make(map[uint64]bool)
	q := Query2[posComp, hpComp](w)
	for q.Next() {
		got[q.Entity().ID] = true
	}

	if len(got) != len(want) {
		t.Fatalf("query yielded %d entities, want %d", len(got), len(want))
	}
	for id := range want {
		if !got[id] {
			t.Errorf("entity %d missing from query result", id)
		}
	}
}

func TestQuery2SeedsFromEitherSide(t *testing.T) {
	// The intersection must be identical whichever store is smaller.
	build := func(posCount, hpCount int) *World {
		w := NewWorld()
		for i := 0; i < posCount; i++ {
			Set(w, w.CreateEntity(), posComp{X: i})
		}
		for i := 0; i < hpCount; i++ {
			e := w.CreateEntity()
			Set(w, e, posComp{X: -1})
			Set(w, e, hpComp{Current: i})
		}
		return w
	}

	for _, counts := range [][2]int{{20, 3}, {3, 20}} {
		w := build(counts[0], counts[1])
		q := Query2[posComp, hpComp](w)
		n := 0
		for q.Next() {
			n++
		}
		if n != counts[1] {
			t.Errorf("pos=%d hp=%d: query yielded %d, want %d",
				counts[0], counts[1], n, counts[1])
		}
	}
}

func TestQuery3Through5(t *testing.T) {
	w := NewWorld()

	full := w.CreateEntity()
	Set(w, full, tagA{1})
	Set(w, full, tagB{2})
	Set(w, full, tagC{3})
	Set(w, full, tagD{4})
	Set(w, full, tagE{5})

	partial := w.CreateEntity()
	Set(w, partial, tagA{1})
	Set(w, partial, tagB{2})
	Set(w, partial, tagC{3})
	Set(w, partial, tagD{4})
	// no tagE

	q3 := Query3[tagA, tagB, tagC](w)
	n3 := 0
	for q3.Next() {
		n3++
		a, b, c := q3.Values()
		if a.N+b.N+c.N != 6 {
			t.Errorf("Query3 values = %d %d %d", a.N, b.N, c.N)
		}
	}
	if n3 != 2 {
		t.Errorf("Query3 yielded %d, want 2", n3)
	}

	q4 := Query4[tagA, tagB, tagC, tagD](w)
	n4 := 0
	for q4.Next() {
		n4++
	}
	if n4 != 2 {
		t.Errorf("Query4 yielded %d, want 2", n4)
	}

	q5 := Query5[tagA, tagB, tagC, tagD, tagE](w)
	n5 := 0
	for q5.Next() {
		n5++
		if q5.Entity().ID != full.ID {
			t.Errorf("Query5 yielded entity %d, want %d", q5.Entity().ID, full.ID)
		}
		_, _, _, _, e := q5.Values()
		if e.N != 5 {
			t.Errorf("Query5 E value = %d, want 5", e.N)
		}
	}
	if n5 != 1 {
		t.Errorf("Query5 yielded %d, want 1", n5)
	}
}

func TestQueryEmptyWorldYieldsNothing(t *testing.T) {
	w := NewWorld()
	q := Query2[posComp, hpComp](w)
	if q.Next() {
		t.Error("query on empty world yielded an entity")
	}
}

func TestQueryIsNotCachedAcrossCalls(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Set(w, e, posComp{X: 1})
	Set(w, e, hpComp{Current: 1})

	q := Query2[posComp, hpComp](w)
	n := 0
	for q.Next() {
		n++
	}
	if n != 1 {
		t.Fatalf("first pass yielded %d, want 1", n)
	}

	// A fresh query re-executes against current state.
	e2 := w.CreateEntity()
	Set(w, e2, posComp{X: 2})
	Set(w, e2, hpComp{Current: 2})

	q = Query2[posComp, hpComp](w)
	n = 0
	for q.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("second pass yielded %d, want 2", n)
	}
}

func TestEach2And3(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Set(w, e, posComp{X: 7})
	Set(w, e, hpComp{Current: 8})
	Set(w, e, velComp{DX: 9})

	hits2 := 0
	Each2(w, func(got core.Entity, p posComp, h hpComp) {
		hits2++
		if got.ID != e.ID || p.X != 7 || h.Current != 8 {
			t.Errorf("Each2 = (%d, %+v, %+v)", got.ID, p, h)
		}
	})
	if hits2 != 1 {
		t.Errorf("Each2 visited %d entities, want 1", hits2)
	}

	hits3 := 0
	Each3(w, func(got core.Entity, p posComp, h hpComp, v velComp) {
		hits3++
		if v.DX != 9 {
			t.Errorf("Each3 velocity = %+v", v)
		}
	})
	if hits3 != 1 {
		t.Errorf("Each3 visited %d entities, want 1", hits3)
	}
}
