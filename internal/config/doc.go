// Package config handles loading and parsing Foyer profile configuration files.
//
// # Overview
//
// This package reads Foyer's TOML configuration to discover who the profile
// belongs to, which GitHub account to pull projects from, and which tag groups
// the Home view renders. Every field is optional; a missing file yields a
// fully usable default profile.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/foyer/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # TOML Format
//
// Example config.toml:
//
//	name = "Cale Gray"
//	role = "Infrastructure engineer"
//	location = "Portland, OR"
//	tagline = "I build small sharp tools and keep servers honest."
//	github_user = "calegray"
//	refresh_seconds = 300
//	show_forks = false
//	show_archived = false
//	about_path = "~/notes/about.md"
//
//	[[tags]]
//	title = "Languages"
//	labels = ["Go", "Rust", "Python"]
//
//	[[tags]]
//	title = "Infra"
//	labels = ["Linux", "Docker", "Kubernetes"]
//
// Tag groups replace the built-in ones wholesale when at least one valid
// group (non-empty title and at least one label) is present.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths are
// converted to absolute ones, for both the config file location and the
// about_path field.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. Missing
// config files are NOT an error - defaults are used instead, so Foyer works
// out-of-the-box.
package config
