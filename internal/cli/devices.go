package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arige/devctl/internal/device"
	"github.com/arige/devctl/internal/process"
	"github.com/arige/devctl/internal/ui"
)

func devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Discover and select devices, simulators, and emulators",
	}

	cmd.AddCommand(devicesListCmd())
	cmd.AddCommand(devicesSelectCmd())

	return cmd
}

func parseSource(s string) (device.Source, error) {
	switch device.Source(s) {
	case device.SourceAndroid:
		return device.SourceAndroid, nil
	case device.SourceIOS:
		return device.SourceIOS, nil
	default:
		return "", fmt.Errorf("unknown source %q (valid: android, ios)", s)
	}
}

// enumerate runs one listing pass with a spinner.
func enumerate(ctx context.Context, renderer *ui.Renderer, source device.Source) device.Categorized {
	lister := device.NewLister(process.NewRunner())

	renderer.StartSpinner("Scanning %s devices...", source)
	devices := lister.List(ctx, source)
	renderer.StopSpinner()

	return devices
}

func devicesListCmd() *cobra.Command {
	var (
		source  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered devices",
		Example: `  devctl devices list
  devctl devices list --source ios
  devctl devices list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(source)
			if err != nil {
				return err
			}

			renderer := ui.NewRenderer()
			devices := enumerate(cmd.Context(), renderer, src)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(devices)
			}

			renderer.RenderDeviceTable(devices)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "android", "Device source (android, ios)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func devicesSelectCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Interactively select a device",
		Example: `  devctl devices select
  devctl devices select --source ios`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(source)
			if err != nil {
				return err
			}

			renderer := ui.NewRenderer()
			devices := enumerate(cmd.Context(), renderer, src)

			outcome, err := selectInteractive(devices, src, renderer)
			if err != nil {
				return err
			}

			switch outcome.Kind {
			case device.OutcomeNone:
				renderer.Warning("No selectable devices found")
			case device.OutcomeDefault:
				renderer.Success("Using the default emulator")
			case device.OutcomeDevice:
				renderer.Success("Selected %s (%s)", outcome.Device.Name, outcome.Device.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "android", "Device source (android, ios)")

	return cmd
}

// selectInteractive drives one selection session over an enumeration pass.
// Android sessions accept "e" as a shortcut for the default emulator.
func selectInteractive(devices device.Categorized, source device.Source, renderer *ui.Renderer) (device.Outcome, error) {
	prompter, err := ui.NewLinePrompter()
	if err != nil {
		return device.Outcome{}, fmt.Errorf("prompt setup: %w", err)
	}
	defer prompter.Close()

	opts := device.SelectOptions{
		Title: fmt.Sprintf("Available %s targets", source),
		Intercept: func(line string) bool {
			if line == "?" || line == "help" {
				renderer.Dim("Enter the number next to a device to select it.")
				return true
			}
			return false
		},
	}
	if source == device.SourceAndroid {
		opts.EscapeToken = "e"
		opts.EscapeHint = "the default emulator"
	}

	selector := device.NewSelector(prompter, os.Stderr)
	return selector.Select(devices, opts)
}
