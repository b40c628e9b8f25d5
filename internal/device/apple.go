package device

import (
	"regexp"
	"strings"
)

// sectionMarker prefixes the header lines that `xcrun xctrace list devices`
// (and the older `instruments -s devices`) emit between device groups.
const sectionMarker = "=="

// A grammar is one line shape the Apple listing may use. Grammars are tried
// in a fixed order and the first match wins; a line matching none of them
// produces no record and no error.
type grammar struct {
	name  string
	match func(line string) (Device, bool)
}

var (
	parenLineRe = regexp.MustCompile(`^(.+?)(?:\s+\((\d+(?:\.\d+)*)\))?\s+\(([^()]+)\)$`)
	simLineRe   = regexp.MustCompile(`^(.+?)\s+Simulator\s+\((\d+(?:\.\d+)*)\)\s+\(([^()]+)\)$`)

	braceLineRe = regexp.MustCompile(`^\{(.+)\}$`)
	braceKeyRes = map[string]*regexp.Regexp{
		"platform": regexp.MustCompile(`platform:\s*([^,}]+)`),
		"id":       regexp.MustCompile(`\bid:\s*([^,}]+)`),
		"os":       regexp.MustCompile(`OS:\s*([^,}]+)`),
		"name":     regexp.MustCompile(`name:\s*([^,}]+)`),
	}
)

// appleGrammars is the ordered matcher table. Order matters: the general
// parenthesized form is tried first, then the brace key/value dialect, then
// the simplified "<name> Simulator (ver) (id)" fallback.
var appleGrammars = []grammar{
	{
		name: "paren",
		match: func(line string) (Device, bool) {
			m := parenLineRe.FindStringSubmatch(line)
			if m == nil {
				return Device{}, false
			}
			return Device{
				Name:      strings.TrimSpace(m[1]),
				OSVersion: m[2],
				ID:        strings.TrimSpace(m[3]),
			}, true
		},
	},
	{
		name: "brace",
		match: func(line string) (Device, bool) {
			m := braceLineRe.FindStringSubmatch(line)
			if m == nil {
				return Device{}, false
			}
			fields := make(map[string]string, len(braceKeyRes))
			for key, re := range braceKeyRes {
				km := re.FindStringSubmatch(m[1])
				if km == nil {
					return Device{}, false
				}
				fields[key] = strings.TrimSpace(km[1])
			}
			return Device{
				Name:      fields["name"],
				ID:        fields["id"],
				OSVersion: fields["os"],
				Platform:  fields["platform"],
			}, true
		},
	},
	{
		name: "simulator",
		match: func(line string) (Device, bool) {
			m := simLineRe.FindStringSubmatch(line)
			if m == nil {
				return Device{}, false
			}
			return Device{
				Name:      strings.TrimSpace(m[1]),
				OSVersion: m[2],
				ID:        strings.TrimSpace(m[3]),
			}, true
		},
	},
}

// ParseXCTraceDevices converts the sectioned Apple device listing into
// categorized records. Marker lines switch the current category; every other
// non-blank line is tried against the grammar table. Name-based inclusion
// filters are applied here, at categorization time.
func ParseXCTraceDevices(raw string) Categorized {
	var out Categorized
	current := CategoryPhysical

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, sectionMarker) {
			current = categoryForMarker(line)
			continue
		}

		dev, ok := matchAppleLine(line)
		if !ok {
			continue
		}
		dev.Category = current

		if !includeDevice(dev) {
			continue
		}

		switch current {
		case CategoryPhysical:
			out.Physical = append(out.Physical, dev)
		case CategoryOffline:
			out.Offline = append(out.Offline, dev)
		case CategorySimulator:
			out.Simulators = append(out.Simulators, dev)
		}
	}

	return out
}

func matchAppleLine(line string) (Device, bool) {
	for _, g := range appleGrammars {
		if dev, ok := g.match(line); ok {
			return dev, true
		}
	}
	return Device{}, false
}

// categoryForMarker maps a section header to its category. The simulator
// check runs first so a header naming both offline and simulators lands in
// the simulator bucket.
func categoryForMarker(marker string) Category {
	switch {
	case strings.Contains(marker, "Simulator"):
		return CategorySimulator
	case strings.Contains(marker, "Offline"):
		return CategoryOffline
	default:
		return CategoryPhysical
	}
}

// includeDevice applies the per-category name filters: only iPhone
// simulators are selectable targets, and Macs/iPads are excluded from the
// physical list. Offline entries are kept unconditionally. The filter is
// idempotent, it only inspects fields it never modifies.
func includeDevice(d Device) bool {
	name := strings.ToLower(d.Name)
	switch d.Category {
	case CategorySimulator:
		return strings.Contains(name, "iphone")
	case CategoryPhysical:
		return !strings.Contains(name, "macbook") && !strings.Contains(name, "ipad")
	default:
		return true
	}
}
