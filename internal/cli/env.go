package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arige/devctl/internal/envsync"
	"github.com/arige/devctl/internal/project"
	"github.com/arige/devctl/internal/ui"
)

func envCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Environment file workflows",
	}

	cmd.AddCommand(envSyncCmd())

	return cmd
}

func envSyncCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Rewrite env files from the project's environment map",
		Example: `  devctl env sync
  devctl env sync --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := ui.NewRenderer()

			proj, err := project.Detect(".")
			if err != nil {
				return fmt.Errorf("no project found: %w", err)
			}

			syncer := envsync.New(proj)
			if err := syncer.Sync(); err != nil {
				return err
			}
			renderer.Success("Synced %d env file(s)", len(proj.EnvFiles))

			if !watch {
				return nil
			}

			renderer.Dim("Watching %s for changes (Ctrl+C to stop)...", project.ConfigFileName)
			return syncer.Watch(cmd.Context(), 750*time.Millisecond)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-sync whenever the project file changes")

	return cmd
}
