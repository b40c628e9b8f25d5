package device

import (
	"strconv"
	"strings"
)

// DedupeByModel collapses simulator records to one per logical model, keeping
// the variant with the highest OS version. Ties keep the first-encountered
// record. Output order follows first appearance of each model in the input,
// but callers must not rely on ordering.
//
// Only the simulator category is ever deduplicated; physical and offline
// devices pass through untouched elsewhere.
func DedupeByModel(devices []Device) []Device {
	best := make(map[string]Device, len(devices))
	var order []string

	for _, d := range devices {
		model := d.ModelName()
		cur, seen := best[model]
		if !seen {
			best[model] = d
			order = append(order, model)
			continue
		}
		// Strictly greater only, so an equal-version duplicate never
		// displaces the first-seen winner.
		if CompareVersions(extractVersion(d), extractVersion(cur)) > 0 {
			best[model] = d
		}
	}

	out := make([]Device, 0, len(order))
	for _, model := range order {
		out = append(out, best[model])
	}
	return out
}

// extractVersion returns the comparable version for a record: its reported
// OSVersion, else a trailing parenthesized version in the name, else "0".
func extractVersion(d Device) string {
	if d.OSVersion != "" {
		return d.OSVersion
	}
	if m := trailingVersionRe.FindString(d.Name); m != "" {
		return strings.Trim(strings.TrimSpace(m), "()")
	}
	return "0"
}

// CompareVersions compares dot-separated numeric versions component-wise,
// left to right. Missing trailing components count as zero; a component that
// does not parse as an integer counts as zero. Returns -1, 0, or 1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(strings.TrimSpace(as[i]))
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(strings.TrimSpace(bs[i]))
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
