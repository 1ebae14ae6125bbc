package entity

import (
	"fmt"
	"iter"
)

// Handle is a stable reference to a stored entity. A handle outlives
// storage growth and compaction; it stops resolving once its entity has
// been reaped, even if the slot is later reused.
type Handle struct {
	Index      uint32
	Generation uint32
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Index, h.Generation)
}

// slot maps a handle index to the entity's position in the dense array.
type slot struct {
	dense      int
	generation uint32
	live       bool
}

// Store owns every entity in a single dense, insertion-ordered slice.
// It is not safe for concurrent use; the frame loop owns it exclusively.
type Store struct {
	entities []Entity
	handles  []Handle // parallel to entities
	slots    []slot
	free     []uint32
}

// NewStore creates an empty store with room for capacity entities.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		entities: make([]Entity, 0, capacity),
		handles:  make([]Handle, 0, capacity),
		slots:    make([]slot, 0, capacity),
	}
}

// Create appends e and returns its handle. Create may reallocate the
// backing array, so pointers obtained from Get or All before the call
// must be re-fetched through their handles afterwards.
func (s *Store) Create(e Entity) Handle {
	var h Handle
	if n := len(s.free); n > 0 {
		h.Index = s.free[n-1]
		s.free = s.free[:n-1]
		h.Generation = s.slots[h.Index].generation
	} else {
		h.Index = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	s.slots[h.Index] = slot{dense: len(s.entities), generation: h.Generation, live: true}
	s.entities = append(s.entities, e)
	s.handles = append(s.handles, h)
	return h
}

// Get resolves h. The pointer is valid until the next Create or Reap.
func (s *Store) Get(h Handle) (*Entity, bool) {
	if int(h.Index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.Index]
	if !sl.live || sl.generation != h.Generation {
		return nil, false
	}
	return &s.entities[sl.dense], true
}

// Contains reports whether h still refers to a stored entity.
func (s *Store) Contains(h Handle) bool {
	_, ok := s.Get(h)
	return ok
}

// Len returns the number of stored entities, dead ones included.
func (s *Store) Len() int {
	return len(s.entities)
}

// All iterates every stored entity in creation order, including entities
// marked dead that have not been reaped yet. Entities may be mutated
// through the yielded pointer; the store itself must not be modified
// during iteration.
func (s *Store) All() iter.Seq2[Handle, *Entity] {
	return func(yield func(Handle, *Entity) bool) {
		for i := range s.entities {
			if !yield(s.handles[i], &s.entities[i]) {
				return
			}
		}
	}
}

// Reap removes every dead entity, preserving the relative order of the
// survivors, and returns the handles that were removed.
func (s *Store) Reap() []Handle {
	var reaped []Handle
	kept := 0
	for i := range s.entities {
		h := s.handles[i]
		if s.entities[i].Dead() {
			reaped = append(reaped, h)
			sl := &s.slots[h.Index]
			sl.live = false
			sl.generation++
			s.free = append(s.free, h.Index)
			continue
		}
		if kept != i {
			s.entities[kept] = s.entities[i]
			s.handles[kept] = h
		}
		s.slots[h.Index].dense = kept
		kept++
	}

	clear(s.entities[kept:])
	s.entities = s.entities[:kept]
	s.handles = s.handles[:kept]
	return reaped
}
