package forge

import (
	"sort"
	"time"
)

// Repo is one public repository as the forge API reports it.
type Repo struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
	Topics      []string  `json:"topics"`
	PushedAt    time.Time `json:"pushed_at"`
}

// Filter returns the repos that pass the visibility rules. The input is
// not modified.
func Filter(repos []Repo, showForks, showArchived bool) []Repo {
	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		if r.Fork && !showForks {
			continue
		}
		if r.Archived && !showArchived {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByPushed orders repos most recently pushed first, in place.
func SortByPushed(repos []Repo) {
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].PushedAt.After(repos[j].PushedAt)
	})
}
