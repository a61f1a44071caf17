package app

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calegray/foyer/internal/forge"
	"github.com/calegray/foyer/internal/state"
)

const (
	defaultRefreshInterval = 5 * time.Minute
	maxBackoff             = 15 * time.Minute
	fetchTimeout           = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the API is unreachable. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client forge.RepoLister, user string, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, client, user); err != nil {
				failures++
				logger.Warn("repo refresh failed", "user", user, "failures", failures, "err", err)
			} else {
				if failures > 0 {
					logger.Info("repo refresh recovered", "user", user)
				}
				failures = 0
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(calculateBackoff(failures, interval)):
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. Zero failures means the regular cadence.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func refresh(ctx context.Context, store *state.Store, client forge.RepoLister, user string) error {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	repos, err := client.ListRepos(ctx, user)
	if err != nil {
		store.Update(nil, err)
		return err
	}
	forge.SortByPushed(repos)
	store.Update(repos, nil)
	return nil
}
