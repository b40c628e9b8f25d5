package device

import (
	"context"

	"github.com/arige/devctl/internal/logging"
)

// CommandRunner is the single collaborator the lister needs: one external
// listing invocation, full captured output, no streaming.
type CommandRunner interface {
	RunSilent(ctx context.Context, name string, args []string) ([]byte, error)
}

// Lister enumerates devices for one source per call. Enumeration failures
// are logged and degrade to empty buckets; they never abort the workflow.
type Lister struct {
	runner CommandRunner
}

func NewLister(runner CommandRunner) *Lister {
	return &Lister{runner: runner}
}

// List performs one enumeration pass for the given source and returns
// filtered buckets with simulators already deduplicated.
func (l *Lister) List(ctx context.Context, source Source) Categorized {
	switch source {
	case SourceAndroid:
		return l.listAndroid(ctx)
	case SourceIOS:
		return l.listIOS(ctx)
	default:
		logging.Error("unknown device source %q", source)
		return Categorized{}
	}
}

func (l *Lister) listAndroid(ctx context.Context) Categorized {
	var out Categorized

	raw, err := l.runner.RunSilent(ctx, "adb", []string{"devices", "-l"})
	if err != nil {
		logging.Error("adb device listing failed: %v", err)
	} else {
		out.Physical = ParseADBDevices(string(raw))
	}

	raw, err = l.runner.RunSilent(ctx, "emulator", []string{"-list-avds"})
	if err != nil {
		logging.Error("emulator image listing failed: %v", err)
	} else {
		out.Simulators = DedupeByModel(ParseAVDList(string(raw)))
	}

	return out
}

func (l *Lister) listIOS(ctx context.Context) Categorized {
	raw, err := l.runner.RunSilent(ctx, "xcrun", []string{"xctrace", "list", "devices"})
	if err != nil {
		logging.Error("xctrace device listing failed: %v", err)
		return Categorized{}
	}

	out := ParseXCTraceDevices(string(raw))
	out.Simulators = DedupeByModel(out.Simulators)
	return out
}
