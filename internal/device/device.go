package device

import (
	"regexp"
	"strings"
)

// Source identifies which toolchain a listing came from.
type Source string

const (
	SourceAndroid Source = "android"
	SourceIOS     Source = "ios"
)

// Category buckets a discovered device.
type Category int

const (
	CategoryPhysical Category = iota
	CategoryOffline
	CategorySimulator
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategoryOffline:
		return "offline"
	case CategorySimulator:
		return "simulator"
	default:
		return "unknown"
	}
}

// Device represents one discovered device, simulator, or emulator image.
// Records are created fresh on every enumeration pass and live only for one
// categorize -> dedupe -> select cycle.
type Device struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	OSVersion string   `json:"os_version,omitempty"`
	Platform  string   `json:"platform,omitempty"`

	// Index is assigned during one selection render and is meaningless
	// outside that session.
	Index int `json:"-"`
}

// Categorized is the result of one enumeration pass, already filtered and
// (for simulators) deduplicated.
type Categorized struct {
	Physical   []Device `json:"physical"`
	Offline    []Device `json:"offline"`
	Simulators []Device `json:"simulators"`
}

// Empty reports whether the pass found nothing at all.
func (c Categorized) Empty() bool {
	return len(c.Physical) == 0 && len(c.Offline) == 0 && len(c.Simulators) == 0
}

// Selectable returns physical devices and simulators in display order.
// Offline devices are informational only.
func (c Categorized) Selectable() []Device {
	out := make([]Device, 0, len(c.Physical)+len(c.Simulators))
	out = append(out, c.Physical...)
	out = append(out, c.Simulators...)
	return out
}

// Find resolves a device by id (exact), name (exact, case-insensitive), or
// name substring, in that order.
func Find(c Categorized, nameOrID string) (Device, bool) {
	candidates := c.Selectable()

	for _, d := range candidates {
		if d.ID == nameOrID {
			return d, true
		}
	}

	lower := strings.ToLower(nameOrID)
	for _, d := range candidates {
		if strings.ToLower(d.Name) == lower {
			return d, true
		}
	}

	for _, d := range candidates {
		if strings.Contains(strings.ToLower(d.Name), lower) {
			return d, true
		}
	}

	return Device{}, false
}

var trailingVersionRe = regexp.MustCompile(`\s*\(\d+(?:\.\d+)*\)\s*$`)

// ModelName derives the deduplication grouping key: the display name with a
// trailing parenthesized version and a trailing "Simulator" word stripped.
// It is never shown to the user in place of Name.
func (d Device) ModelName() string {
	name := trailingVersionRe.ReplaceAllString(d.Name, "")
	name = strings.TrimSuffix(strings.TrimSpace(name), "Simulator")
	return strings.TrimSpace(name)
}
