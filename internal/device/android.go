package device

import (
	"regexp"
	"strings"
)

// avdIDPrefix synthesizes an id for emulator images, which adb does not
// report until they are running.
const avdIDPrefix = "avd:"

const genericAndroidName = "Android Device"

var (
	adbLineRe  = regexp.MustCompile(`^(\S+)\s+device(?:\s+(.*))?$`)
	adbModelRe = regexp.MustCompile(`model:(\S+)`)
)

// ParseADBDevices converts `adb devices -l` output into physical device
// records. The header line and anything not matching the
// `<serial> device <details>` shape is ignored.
func ParseADBDevices(raw string) []Device {
	var devices []Device

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := adbLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := genericAndroidName
		if model := adbModelRe.FindStringSubmatch(m[2]); model != nil {
			name = strings.ReplaceAll(model[1], "_", " ")
		}

		devices = append(devices, Device{
			ID:       m[1],
			Name:     name,
			Category: CategoryPhysical,
		})
	}

	return devices
}

// ParseAVDList converts `emulator -list-avds` output into simulator records.
// The output is a flat list of image names with no structured fields, so the
// id is synthesized and no version is recorded.
func ParseAVDList(raw string) []Device {
	var devices []Device

	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		devices = append(devices, Device{
			ID:       avdIDPrefix + name,
			Name:     name,
			Category: CategorySimulator,
		})
	}

	return devices
}
