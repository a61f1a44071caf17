package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/calegray/foyer/internal/forge"
)

// Snapshot represents the latest repository data available to the UI.
type Snapshot struct {
	Repos               []forge.Repo
	HasRepos            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(repos []forge.Repo, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Repos = cloneRepos(repos)
	s.snapshot.HasRepos = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Repos = cloneRepos(s.snapshot.Repos)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRepos(repos []forge.Repo) []forge.Repo {
	if len(repos) == 0 {
		return nil
	}
	dup := make([]forge.Repo, len(repos))
	copy(dup, repos)
	return dup
}
