package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arige/devctl/internal/project"
	"github.com/arige/devctl/internal/ui"
)

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show or bump the app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.Detect(".")
			if err != nil {
				return fmt.Errorf("no project found: %w", err)
			}
			fmt.Printf("%s %s\n", proj.Name, proj.Version)
			return nil
		},
	}

	cmd.AddCommand(versionBumpCmd())

	return cmd
}

func versionBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bump <major|minor|patch>",
		Short: "Bump the app version and save the project file",
		Example: `  devctl version bump patch
  devctl version bump minor`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.Detect(".")
			if err != nil {
				return fmt.Errorf("no project found: %w", err)
			}

			old := proj.Version
			next, err := proj.BumpVersion(args[0])
			if err != nil {
				return err
			}

			if err := proj.Save(); err != nil {
				return fmt.Errorf("save project: %w", err)
			}

			ui.NewRenderer().Success("Version %s -> %s", old, next)
			return nil
		},
	}
}
