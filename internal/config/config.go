package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// TagGroup is one titled group of tags shown in the Home view.
type TagGroup struct {
	Title  string
	Labels []string
}

// Config captures everything Foyer needs to render a profile.
type Config struct {
	Name         string
	Role         string
	Location     string
	Tagline      string
	GitHubUser   string
	APIBase      string
	RefreshEvery time.Duration
	ShowForks    bool
	ShowArchived bool
	AboutPath    string
	Tags         []TagGroup
}

const (
	defaultConfigPath = "~/.config/foyer/config.toml"
	defaultName       = "Cale Gray"
	defaultRole       = "Infrastructure engineer"
	defaultLocation   = "Portland, OR"
	defaultTagline    = "I build small sharp tools and keep servers honest."
	defaultGitHubUser = "calegray"
	defaultRefresh    = 5 * time.Minute
)

func defaultTags() []TagGroup {
	return []TagGroup{
		{Title: "Languages", Labels: []string{"Go", "Rust", "Python", "TypeScript", "SQL"}},
		{Title: "Infra", Labels: []string{"Linux", "Docker", "Kubernetes", "Terraform", "Postgres"}},
		{Title: "Interests", Labels: []string{"TUIs", "Distributed systems", "Homelab", "Cycling"}},
	}
}

// Load locates and parses the foyer config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Name:         defaultName,
		Role:         defaultRole,
		Location:     defaultLocation,
		Tagline:      defaultTagline,
		GitHubUser:   defaultGitHubUser,
		RefreshEvery: defaultRefresh,
		Tags:         defaultTags(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Name           string `toml:"name"`
		Role           string `toml:"role"`
		Location       string `toml:"location"`
		Tagline        string `toml:"tagline"`
		GitHubUser     string `toml:"github_user"`
		APIBase        string `toml:"api_base"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		ShowForks      bool   `toml:"show_forks"`
		ShowArchived   bool   `toml:"show_archived"`
		AboutPath      string `toml:"about_path"`
		Tags           []struct {
			Title  string   `toml:"title"`
			Labels []string `toml:"labels"`
		} `toml:"tags"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Role); v != "" {
		cfg.Role = v
	}
	if v := strings.TrimSpace(raw.Location); v != "" {
		cfg.Location = v
	}
	if v := strings.TrimSpace(raw.Tagline); v != "" {
		cfg.Tagline = v
	}
	if v := strings.TrimSpace(raw.GitHubUser); v != "" {
		cfg.GitHubUser = v
	}
	cfg.APIBase = strings.TrimSpace(raw.APIBase)
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}
	cfg.ShowForks = raw.ShowForks
	cfg.ShowArchived = raw.ShowArchived
	if v := strings.TrimSpace(raw.AboutPath); v != "" {
		cfg.AboutPath = mustExpand(v)
	}

	if len(raw.Tags) > 0 {
		tags := make([]TagGroup, 0, len(raw.Tags))
		for _, g := range raw.Tags {
			title := strings.TrimSpace(g.Title)
			labels := make([]string, 0, len(g.Labels))
			for _, l := range g.Labels {
				if l = strings.TrimSpace(l); l != "" {
					labels = append(labels, l)
				}
			}
			if title == "" || len(labels) == 0 {
				continue
			}
			tags = append(tags, TagGroup{Title: title, Labels: labels})
		}
		if len(tags) > 0 {
			cfg.Tags = tags
		}
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
