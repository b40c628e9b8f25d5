package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arige/devctl/internal/logging"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "devctl",
		Short: "Interactive control panel for mobile app development",
		Long: `devctl orchestrates device discovery, build/run, versioning, and
environment-configuration workflows for mobile projects.

Common workflows:
  devctl devices select          Pick a connected device or simulator
  devctl devices list            Show discovered devices
  devctl run android             Select a device and run the app on it
  devctl version bump patch      Bump the app version
  devctl env sync -w             Keep env files in sync with .devctl.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show underlying commands and debug logs")
}

func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version

	rootCmd.AddCommand(devicesCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(envCmd())

	return rootCmd.ExecuteContext(ctx)
}
