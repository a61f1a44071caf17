package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/foyer/internal/prefs"
	"github.com/calegray/foyer/internal/ui"
)

// newThemesCmd lists the bundled themes, marking the saved one.
func newThemesCmd(prefsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, _ := prefs.Load(*prefsPath)
			for _, name := range ui.ThemeNames() {
				marker := " "
				if name == saved.Theme {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
