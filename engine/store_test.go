package engine

import (
	"testing"

	"github.com/eskarin-dev/gridfall/core"
)

func TestStoreSetGetRoundTrip(t *testing.T) {
	s := NewStore[posComp]()
	e := core.Entity{ID: 1, Alive: true}

	s.Set(e, posComp{X: 3, Y: 4})

	got, ok := s.Get(e)
	if !ok {
		t.Fatal("component missing after Set")
	}
	if got != (posComp{X: 3, Y: 4}) {
		t.Errorf("Get = %+v, want {3 4}", got)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	s := NewStore[posComp]()
	e := core.Entity{ID: 1, Alive: true}

	s.Set(e, posComp{X: 1})
	s.Set(e, posComp{X: 2})

	if got, _ := s.Get(e); got.X != 2 {
		t.Errorf("X = %d after overwrite, want 2", got.X)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d after overwrite, want 1", s.Len())
	}
}

func TestStoreRemoveIdempotent(t *testing.T) {
	s := NewStore[posComp]()
	e := core.Entity{ID: 1, Alive: true}
	s.Set(e, posComp{})

	s.Remove(e)
	s.Remove(e)

	if s.Has(e) {
		t.Error("component present after Remove")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStoreAllInsertionOrder(t *testing.T) {
	s := NewStore[posComp]()
	ids := []uint64{5, 2, 9, 1}
	for _, id := range ids {
		s.Set(core.Entity{ID: id, Alive: true}, posComp{X: int(id)})
	}

	all := s.All()
	if len(all) != len(ids) {
		t.Fatalf("All returned %d entities, want %d", len(all), len(ids))
	}
	for i, id := range ids {
		if all[i].ID != id {
			t.Errorf("All[%d].ID = %d, want %d (insertion order)", i, all[i].ID, id)
		}
	}

	// All returns a copy, not the internal slice.
	all[0].ID = 777
	if s.All()[0].ID == 777 {
		t.Error("All exposed internal storage")
	}
}

func TestStoreEachVisitsAllPairs(t *testing.T) {
	s := NewStore[posComp]()
	for id := uint64(1); id <= 3; id++ {
		s.Set(core.Entity{ID: id, Alive: true}, posComp{X: int(id * 10)})
	}

	seen := make(map[uint64]int)
	s.Each(func(e core.Entity, p posComp) {
		seen[e.ID] = p.X
	})

	if len(seen) != 3 {
		t.Fatalf("Each visited %d entities, want 3", len(seen))
	}
	for id, x := range seen {
		if x != int(id*10) {
			t.Errorf("entity %d paired with X=%d, want %d", id, x, id*10)
		}
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[posComp]()
	var entities []core.Entity
	for id := uint64(1); id <= 10; id++ {
		e := core.Entity{ID: id, Alive: true}
		entities = append(entities, e)
		s.Set(e, posComp{})
	}

	s.RemoveBatch(entities[2:7])

	if s.Len() != 5 {
		t.Fatalf("Len = %d after batch remove, want 5", s.Len())
	}
	for _, e := range entities[2:7] {
		if s.Has(e) {
			t.Errorf("entity %d survived batch remove", e.ID)
		}
	}
	for _, e := range entities[:2] {
		if !s.Has(e) {
			t.Errorf("entity %d lost by batch remove", e.ID)
		}
	}

	// Batch with no overlap is a no-op.
	s.RemoveBatch(entities[2:7])
	if s.Len() != 5 {
		t.Errorf("Len = %d after redundant batch remove, want 5", s.Len())
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[posComp]()
	s.Set(core.Entity{ID: 1, Alive: true}, posComp{})
	s.Set(core.Entity{ID: 2, Alive: true}, posComp{})

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", s.Len())
	}
}
