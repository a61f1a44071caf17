// Package content carries the static copy baked into the binary.
package content

import _ "embed"

//go:embed about.md
var aboutMD string

// About returns the built-in about page markdown. A config about_path
// overrides it at runtime.
func About() string { return aboutMD }
