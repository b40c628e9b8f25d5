package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arige/devctl/internal/device"
	"github.com/arige/devctl/internal/process"
	"github.com/arige/devctl/internal/project"
	"github.com/arige/devctl/internal/ui"
)

func runCmd() *cobra.Command {
	var deviceName string

	cmd := &cobra.Command{
		Use:   "run <android|ios>",
		Short: "Run the app on a selected device",
		Long: `Discover devices for the platform, pick a target (interactively unless
--device is given), boot it if needed, and invoke the project's configured
run command. A {device} placeholder in the command is replaced with the
chosen device id.`,
		Example: `  devctl run android
  devctl run ios
  devctl run android -d emulator-5554
  devctl run ios -d "iPhone 15"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"android", "ios"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			renderer := ui.NewRenderer()

			src, err := parseSource(args[0])
			if err != nil {
				return err
			}

			proj, err := project.Detect(".")
			if err != nil {
				return fmt.Errorf("no project found: %w", err)
			}
			renderer.Info("Project: %s %s", proj.Name, proj.Version)

			runLine, err := proj.RunCommand(string(src))
			if err != nil {
				return err
			}

			devices := enumerate(ctx, renderer, src)

			outcome, err := resolveTarget(devices, src, deviceName, proj, renderer)
			if err != nil {
				return err
			}

			targetID := ""
			switch outcome.Kind {
			case device.OutcomeNone:
				return fmt.Errorf("no selectable %s devices found", src)
			case device.OutcomeDefault:
				renderer.Info("Target: default emulator")
			case device.OutcomeDevice:
				renderer.Info("Target: %s (%s)", outcome.Device.Name, outcome.Device.ID)
				targetID = outcome.Device.ID

				if src == device.SourceIOS && outcome.Device.Category == device.CategorySimulator {
					renderer.StartSpinner("Booting %s...", outcome.Device.Name)
					sim := device.NewSimctlClient(process.NewRunner())
					err := sim.Boot(ctx, outcome.Device.ID)
					renderer.StopSpinner()
					if err != nil {
						return fmt.Errorf("boot simulator: %w", err)
					}
				}
			}

			return execRunCommand(ctx, runLine, targetID, renderer)
		},
	}

	cmd.Flags().StringVarP(&deviceName, "device", "d", "", "Target device name or id (skips the interactive prompt)")

	return cmd
}

// resolveTarget prefers, in order: the --device flag, the project's
// default_device, then an interactive selection.
func resolveTarget(devices device.Categorized, src device.Source, flagValue string, proj *project.Project, renderer *ui.Renderer) (device.Outcome, error) {
	for _, wanted := range []string{flagValue, proj.DefaultDevice} {
		if wanted == "" {
			continue
		}
		if dev, ok := device.Find(devices, wanted); ok {
			return device.Outcome{Kind: device.OutcomeDevice, Device: dev}, nil
		}
		if wanted == flagValue {
			return device.Outcome{}, fmt.Errorf("device not found: %s", wanted)
		}
		renderer.Warning("Configured default device %q not found, selecting interactively", wanted)
	}

	return selectInteractive(devices, src, renderer)
}

// execRunCommand runs the configured command line, streaming its output.
func execRunCommand(ctx context.Context, runLine, targetID string, renderer *ui.Renderer) error {
	runLine = strings.TrimSpace(strings.ReplaceAll(runLine, "{device}", targetID))
	fields := strings.Fields(runLine)
	if len(fields) == 0 {
		return fmt.Errorf("run command is empty")
	}

	renderer.Dim("Running: %s", runLine)

	runner := process.NewRunner()
	outChan, errChan := runner.Run(ctx, fields[0], fields[1:])

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-outChan:
			if !ok {
				outChan = nil
			} else {
				fmt.Println(line.Content)
			}

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
			} else if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}
		}

		if outChan == nil && errChan == nil {
			return nil
		}
	}
}
