package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calegray/foyer/internal/config"
	"github.com/calegray/foyer/internal/forge"
)

// listTimeout bounds the one-shot repository fetch.
const listTimeout = 30 * time.Second

// newReposCmd prints the repository list without starting the TUI.
func newReposCmd(configPath *string) *cobra.Command {
	var (
		user  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Print the repository list",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if user == "" {
				user = cfg.GitHubUser
			}

			client, err := forge.NewClient(cfg.APIBase)
			if err != nil {
				return fmt.Errorf("init forge client: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), listTimeout)
			defer cancel()
			logger.Debug("fetching repositories", "user", user)
			repos, err := client.ListRepos(ctx, user)
			if err != nil {
				return fmt.Errorf("list repos: %w", err)
			}
			repos = forge.Filter(repos, cfg.ShowForks, cfg.ShowArchived)
			forge.SortByPushed(repos)
			if limit > 0 && len(repos) > limit {
				repos = repos[:limit]
			}
			logger.Debug("fetched repositories", "count", len(repos))

			for _, r := range repos {
				lang := r.Language
				if lang == "" {
					lang = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-12s %5d★  %s\n",
					r.Name, lang, r.Stars, r.PushedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "GitHub user (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many repositories")
	return cmd
}
