// Package state holds the hackdex page state.
//
// # Overview
//
// The page moves through a degenerate state machine:
//
//	Loading ──Resolve(cat, nil)──→ Ready
//	   │
//	   └─────Resolve(_, err)────→ Error (terminal)
//
// There is no way back to Loading and no way out of Error. Ready supports
// any number of filter and render passes over the catalog, which is
// written once by Resolve and never mutated afterwards.
//
// # Core Types
//
// Store:
//   - Zero value is ready to use, in PhaseLoading
//   - Resolve is one-shot; later calls are ignored and return false
//   - Uses sync.RWMutex so the load command and the UI can share it
//
// Snapshot:
//   - Phase, catalog, display names, load error and load time
//   - Returned by value with defensive copies of slices and maps
//
// # Usage Example
//
//	store := &state.Store{}
//	cat, err := catalog.Load(ctx, client)
//	store.Resolve(cat, err)
//
//	snap := store.Snapshot()
//	if snap.Ready() {
//		visible := filter.Apply(snap.Hacks, criteria)
//		cards := render.BuildCards(visible, snap.Names)
//	}
//
// The copy in Snapshot costs one pass over the catalog; callers take it
// once per phase change, not once per keystroke.
package state
