package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/hackdex/internal/catalog"
)

// Phase is the page lifecycle state.
type Phase int

const (
	// PhaseLoading is the initial phase, before the catalog has arrived.
	PhaseLoading Phase = iota
	// PhaseReady means the catalog and display names are loaded.
	PhaseReady
	// PhaseError is terminal: the load failed and nothing is shown.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Snapshot represents the state available to renderers.
type Snapshot struct {
	Phase    Phase
	Hacks    []catalog.Hack
	Names    catalog.Names
	Err      error
	LoadedAt time.Time
}

// Ready reports whether the catalog can be filtered.
func (s Snapshot) Ready() bool {
	return s.Phase == PhaseReady
}

// Store holds the loaded catalog. It is written once by Resolve and
// read-only afterwards. The zero value is a Store in PhaseLoading.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Resolve leaves PhaseLoading: to PhaseError when err is non-nil, otherwise
// to PhaseReady with cat. Only the first call has any effect; it reports
// whether this call was the one that resolved the store.
func (s *Store) Resolve(cat catalog.Catalog, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseLoading {
		return false
	}
	s.snapshot.LoadedAt = time.Now()
	if err != nil {
		s.snapshot.Phase = PhaseError
		s.snapshot.Err = err
		return true
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.Hacks = cloneHacks(cat.Hacks)
	if s.snapshot.Hacks == nil {
		s.snapshot.Hacks = []catalog.Hack{}
	}
	s.snapshot.Names = cloneNames(cat.Names)
	return true
}

// Phase returns the current phase.
func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Phase
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Hacks = cloneHacks(s.snapshot.Hacks)
	if s.snapshot.Phase == PhaseReady && snap.Hacks == nil {
		snap.Hacks = []catalog.Hack{}
	}
	snap.Names = cloneNames(s.snapshot.Names)
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}

func cloneHacks(hacks []catalog.Hack) []catalog.Hack {
	if len(hacks) == 0 {
		return nil
	}
	dup := make([]catalog.Hack, len(hacks))
	copy(dup, hacks)
	for i := range dup {
		dup[i].Pokedex = cloneStrings(hacks[i].Pokedex)
		dup[i].Features = cloneStrings(hacks[i].Features)
		dup[i].Languages = cloneStrings(hacks[i].Languages)
	}
	return dup
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append(make([]string, 0, len(values)), values...)
}

func cloneNames(names catalog.Names) catalog.Names {
	if names == nil {
		return nil
	}
	dup := make(catalog.Names, len(names))
	for category, labels := range names {
		inner := make(map[string]string, len(labels))
		for k, v := range labels {
			inner[k] = v
		}
		dup[category] = inner
	}
	return dup
}
