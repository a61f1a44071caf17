// Package app provides the orchestration layer for the Foyer application.
//
// # Overview
//
// This package wires together configuration, preferences, repository polling,
// state management, and the UI to create the complete Foyer TUI experience.
// It serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load profile configuration from ~/.config/foyer/config.toml
//  2. Load user preferences (theme, reduced motion) from prefs.toml
//  3. Initialize the forge HTTP client for the GitHub API
//  4. Create a shared state.Store for UI and poller coordination
//  5. Launch the background poller goroutine for repository updates
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Main Run function and dependency wiring
//   - poller.go: Background goroutine that fetches the repository list periodically
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read profile config
//	       ├─────> prefs.Load()       Read theme / motion prefs
//	       ├─────> forge.NewClient()  Create HTTP client
//	       ├─────> state.Store{}      Shared state container
//	       ├─────> StartPoller()      Launch background updates
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> ListRepos()                        │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller refreshes the repository list at a configurable interval
// (default: 5 minutes). The GitHub API is rate limited, so consecutive
// failures back the interval off exponentially up to a cap rather than
// hammering a service that is already saying no. A success resets the
// cadence.
//
// The UI reads snapshots from the store on its own 1 second tick. This
// separation keeps the UI responsive even during slow API calls, and the
// manual refresh key in the Projects view bypasses the cadence entirely.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Forge client initialization failure (malformed api_base)
//
// Recoverable errors (logged, polling continues):
//   - Periodic repository fetch failures
//   - Network timeouts during polling
//
// A missing configuration file is not an error; built-in defaults produce a
// complete profile.
//
// # Logging
//
// The poller logs through a charmbracelet/log Logger supplied by the caller.
// While the TUI owns the terminal the CLI hands over a file-backed or
// discarding logger, never stderr, so log lines cannot corrupt the alternate
// screen.
package app
