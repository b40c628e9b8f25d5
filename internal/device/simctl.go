package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// SimctlClient wraps the small slice of `xcrun simctl` the run workflow
// needs: resolving a simulator's state and booting it before install/launch.
type SimctlClient struct {
	runner CommandRunner
}

func NewSimctlClient(runner CommandRunner) *SimctlClient {
	return &SimctlClient{runner: runner}
}

// State returns the CoreSimulator state ("Booted", "Shutdown", ...) for the
// given UDID, or an empty string when the device is unknown to simctl.
func (c *SimctlClient) State(ctx context.Context, udid string) (string, error) {
	output, err := c.runner.RunSilent(ctx, "xcrun", []string{"simctl", "list", "devices", "-j"})
	if err != nil {
		return "", fmt.Errorf("simctl list: %w", err)
	}

	state := ""
	gjson.ParseBytes(output).Get("devices").ForEach(func(_, runtimeDevices gjson.Result) bool {
		runtimeDevices.ForEach(func(_, dev gjson.Result) bool {
			if dev.Get("udid").String() == udid {
				state = dev.Get("state").String()
				return false
			}
			return true
		})
		return state == ""
	})

	return state, nil
}

// Boot starts the simulator if it is not already running and brings the
// Simulator app to the foreground.
func (c *SimctlClient) Boot(ctx context.Context, udid string) error {
	state, err := c.State(ctx, udid)
	if err != nil {
		return err
	}
	if state == "Booted" {
		return nil
	}

	if _, err := c.runner.RunSilent(ctx, "xcrun", []string{"simctl", "boot", udid}); err != nil {
		return fmt.Errorf("boot %s: %w", udid, err)
	}

	_, _ = c.runner.RunSilent(ctx, "open", []string{"-a", "Simulator"})
	return nil
}

// Shutdown stops a running simulator. Shutting down an already stopped
// simulator is not an error.
func (c *SimctlClient) Shutdown(ctx context.Context, udid string) error {
	_, err := c.runner.RunSilent(ctx, "xcrun", []string{"simctl", "shutdown", udid})
	if err != nil && !strings.Contains(err.Error(), "current state: Shutdown") {
		return fmt.Errorf("shutdown %s: %w", udid, err)
	}
	return nil
}
