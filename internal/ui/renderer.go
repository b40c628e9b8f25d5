package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/arige/devctl/internal/device"
)

// Renderer handles terminal output with colors and a progress spinner.
type Renderer struct {
	spin *spinner.Spinner
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// StartSpinner starts an animated spinner with a message.
func (r *Renderer) StartSpinner(format string, args ...any) {
	if r.spin != nil {
		return
	}
	r.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	r.spin.Suffix = " " + fmt.Sprintf(format, args...)
	r.spin.Start()
}

// StopSpinner stops the spinner and clears its line.
func (r *Renderer) StopSpinner() {
	if r.spin == nil {
		return
	}
	r.spin.Stop()
	r.spin = nil
}

// Success prints a success message.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (r *Renderer) Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("✗"), fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (r *Renderer) Warning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", yellow("!"), fmt.Sprintf(format, args...))
}

// Info prints an info message.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", fmt.Sprintf(format, args...))
}

// Dim prints dimmed/secondary text.
func (r *Renderer) Dim(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", dim(fmt.Sprintf(format, args...)))
}

// RenderDeviceTable prints one enumeration pass as a table, grouped the same
// way the interactive selector displays it.
func (r *Renderer) RenderDeviceTable(devices device.Categorized) {
	if devices.Empty() {
		r.Info("No devices found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "ID", "OS", "CATEGORY"})

	appendRows := func(list []device.Device) {
		for _, d := range list {
			osVersion := d.OSVersion
			if osVersion == "" {
				osVersion = "-"
			}
			t.AppendRow(table.Row{d.Name, d.ID, osVersion, d.Category.String()})
		}
	}

	appendRows(devices.Physical)
	appendRows(devices.Offline)
	appendRows(devices.Simulators)

	fmt.Fprintln(os.Stderr, bold("Devices"))
	t.Render()
}
