package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXCTrace = `== Devices ==
My iPhone (17.2) (00008120-001E30E11A68401E)
MacBook Pro (FVFGK2ABCDEF)
iPad Air (16.1) (00008101-FFFFFFFFFFFFFFFF)
this line matches no grammar at all
== Devices Offline ==
Old iPhone (15.0) (OFF-1)
== Simulators ==
iPhone 15 (17.0) (SIM-1)
iPhone 15 (18.4) (SIM-2)
Apple Watch Series 9 (45mm) (10.0) (WATCH-1)
{ platform:iOS Simulator, arch:arm64, id:BRACE-1, OS:17.5, name:iPhone 15 Pro }
`

func TestParseXCTraceDevicesSections(t *testing.T) {
	out := ParseXCTraceDevices(sampleXCTrace)

	// MacBook and iPad are filtered out of the physical bucket.
	require.Len(t, out.Physical, 1)
	assert.Equal(t, "My iPhone", out.Physical[0].Name)
	assert.Equal(t, "17.2", out.Physical[0].OSVersion)
	assert.Equal(t, "00008120-001E30E11A68401E", out.Physical[0].ID)
	assert.Equal(t, CategoryPhysical, out.Physical[0].Category)

	// Offline entries are kept unconditionally.
	require.Len(t, out.Offline, 1)
	assert.Equal(t, "Old iPhone", out.Offline[0].Name)
	assert.Equal(t, CategoryOffline, out.Offline[0].Category)

	// Only iPhone simulators survive the inclusion filter.
	require.Len(t, out.Simulators, 3)
	assert.Equal(t, "SIM-1", out.Simulators[0].ID)
	assert.Equal(t, "SIM-2", out.Simulators[1].ID)
	assert.Equal(t, "BRACE-1", out.Simulators[2].ID)
}

func TestParseXCTraceDevicesEmpty(t *testing.T) {
	out := ParseXCTraceDevices("")
	assert.Empty(t, out.Physical)
	assert.Empty(t, out.Offline)
	assert.Empty(t, out.Simulators)
	assert.True(t, out.Empty())
}

func TestBraceGrammar(t *testing.T) {
	dev, ok := matchAppleLine("{ platform:iOS Simulator, arch:arm64, id:BRACE-1, OS:17.5, name:iPhone 15 Pro }")
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 Pro", dev.Name)
	assert.Equal(t, "BRACE-1", dev.ID)
	assert.Equal(t, "17.5", dev.OSVersion)
	assert.Equal(t, "iOS Simulator", dev.Platform)

	// All four keys are mandatory.
	_, ok = matchAppleLine("{ platform:iOS, id:X, name:iPhone }")
	assert.False(t, ok)
}

func TestParenGrammarOptionalVersion(t *testing.T) {
	dev, ok := matchAppleLine("My iPhone (00008120-001E30E11A68401E)")
	require.True(t, ok)
	assert.Equal(t, "My iPhone", dev.Name)
	assert.Empty(t, dev.OSVersion)
	assert.Equal(t, "00008120-001E30E11A68401E", dev.ID)
}

func TestParenGrammarNameWithParens(t *testing.T) {
	dev, ok := matchAppleLine("Apple Watch Series 9 (45mm) (10.0) (WATCH-1)")
	require.True(t, ok)
	assert.Equal(t, "Apple Watch Series 9 (45mm)", dev.Name)
	assert.Equal(t, "10.0", dev.OSVersion)
	assert.Equal(t, "WATCH-1", dev.ID)
}

func TestSimulatorFallbackGrammar(t *testing.T) {
	// The general paren grammar claims these lines first, keeping the
	// "Simulator" word in the display name; the model key strips it.
	dev, ok := matchAppleLine("iPhone 15 Simulator (17.0) (SIM-9)")
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 Simulator", dev.Name)
	assert.Equal(t, "iPhone 15", dev.ModelName())

	// The dedicated fallback regex extracts the stripped name directly.
	m := simLineRe.FindStringSubmatch("iPhone 15 Simulator (17.0) (SIM-9)")
	require.NotNil(t, m)
	assert.Equal(t, "iPhone 15", m[1])
}

func TestIncludeDeviceIdempotent(t *testing.T) {
	input := []Device{
		{Name: "iPhone 15", Category: CategorySimulator},
		{Name: "Apple TV", Category: CategorySimulator},
		{Name: "MacBook Air", Category: CategoryPhysical},
		{Name: "Pixel", Category: CategoryPhysical},
		{Name: "anything", Category: CategoryOffline},
	}

	filter := func(in []Device) []Device {
		var out []Device
		for _, d := range in {
			if includeDevice(d) {
				out = append(out, d)
			}
		}
		return out
	}

	once := filter(input)
	twice := filter(once)
	assert.Equal(t, once, twice)
	require.Len(t, once, 3)
}

func TestCategoryForMarker(t *testing.T) {
	assert.Equal(t, CategoryPhysical, categoryForMarker("== Devices =="))
	assert.Equal(t, CategoryOffline, categoryForMarker("== Devices Offline =="))
	assert.Equal(t, CategorySimulator, categoryForMarker("== Simulators =="))
	// Simulator wins when both words appear.
	assert.Equal(t, CategorySimulator, categoryForMarker("== Offline Simulators =="))
}
