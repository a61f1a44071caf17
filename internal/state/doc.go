// Package state provides thread-safe state management for repository data.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// fetched repository list between the background refresh loop and the UI.
// It acts as the coordination point where network results meet rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Refresh):            Consumer (UI):
//	┌────────────────┐            ┌────────────────┐
//	│ ListRepos()    │            │                │
//	│      ↓         │            │                │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓         │
//	│  repeat...     │            │  render views  │
//	└────────────────┘            └────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest repository list
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (refresh loop), multiple readers (UI poll ticks)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains repos, timestamps, and error info
//   - Returned by value with defensive copies
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace repository data
//	store.Update(repos, nil)
//	→ snapshot.Repos = repos
//	→ snapshot.HasRepos = true
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//	→ snapshot.LastUpdated = now
//
//	// Error case: Keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.Repos = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//	→ snapshot.LastUpdated = now
//
// This ensures the UI always has the most recent successful data to display,
// while also being informed of fetch failures. A temporarily unreachable
// network should degrade to stale-but-useful data, never to a blank screen.
//
// # Offline Detection
//
// Snapshot.IsOffline reports true after two consecutive failures. A single
// failed fetch is usually a blip and is not worth alarming the viewer over;
// repeated failures flip the header indicator so stale data is labeled as
// such.
//
// # Defensive Copying
//
// Both Update and Snapshot copy the repo slice so the UI and the refresh
// loop never share a backing array. Errors are wrapped rather than shared.
// The cost is negligible (tens of repos × small structs) and much simpler
// than alternative coordination strategies.
//
// # Usage Example
//
//	// Refresh goroutine:
//	store := &state.Store{}
//	for {
//		repos, err := client.ListRepos(ctx, user)
//		store.Update(repos, err)
//		time.Sleep(interval)
//	}
//
//	// UI goroutine:
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//		snap := store.Snapshot()
//		render(snap)
//	}
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// For tests:
//   - No initialization required
//   - Thread-safe from first use
//   - Snapshot() returns zero Snapshot if never updated
//   - Updates are atomic and immediately visible
//
// # Design Rationale
//
// This package intentionally avoids:
//   - Channels (mutex is simpler for single writer/multiple readers)
//   - Incremental updates (full snapshot replacement is easier)
//   - Versioning/history (only the latest list matters)
//   - Pub/sub (the UI polls snapshots on its own schedule)
//
// The design prioritizes simplicity and correctness over maximum
// performance, which is appropriate for a portfolio fetching one page of
// repositories a few times per hour.
package state
