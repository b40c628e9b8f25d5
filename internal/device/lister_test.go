package device

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	outputs map[string]string
	err     error
}

func (f *fakeRunner) RunSilent(_ context.Context, name string, args []string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := name + " " + strings.Join(args, " ")
	out, ok := f.outputs[key]
	if !ok {
		return nil, errors.New("unexpected command: " + key)
	}
	return []byte(out), nil
}

func TestListAndroid(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"adb devices -l":      "List of devices attached\nAB12\tdevice model:Pixel_7\n",
		"emulator -list-avds": "Pixel_7_API_34\nPixel_7_API_35\n",
	}}

	out := NewLister(runner).List(context.Background(), SourceAndroid)

	require.Len(t, out.Physical, 1)
	assert.Equal(t, "AB12", out.Physical[0].ID)
	assert.Equal(t, "Pixel 7", out.Physical[0].Name)

	assert.Empty(t, out.Offline)

	require.Len(t, out.Simulators, 2)
	assert.Equal(t, "avd:Pixel_7_API_34", out.Simulators[0].ID)
}

func TestListIOSDeduplicatesSimulators(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"xcrun xctrace list devices": sampleXCTrace,
	}}

	out := NewLister(runner).List(context.Background(), SourceIOS)

	require.Len(t, out.Physical, 1)
	require.Len(t, out.Offline, 1)

	// iPhone 15 collapses to the 18.4 variant; iPhone 15 Pro stays.
	require.Len(t, out.Simulators, 2)
	byModel := map[string]Device{}
	for _, d := range out.Simulators {
		byModel[d.ModelName()] = d
	}
	assert.Equal(t, "SIM-2", byModel["iPhone 15"].ID)
	assert.Equal(t, "BRACE-1", byModel["iPhone 15 Pro"].ID)
}

func TestListDegradesToEmptyOnCommandFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec format error")}
	lister := NewLister(runner)

	for _, src := range []Source{SourceAndroid, SourceIOS} {
		out := lister.List(context.Background(), src)
		assert.True(t, out.Empty(), "source %s", src)
	}
}

func TestListUnknownSource(t *testing.T) {
	out := NewLister(&fakeRunner{}).List(context.Background(), Source("windows"))
	assert.True(t, out.Empty())
}

func TestFind(t *testing.T) {
	devices := sampleCategorized()

	d, ok := Find(devices, "SIM-2")
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 Pro", d.Name)

	d, ok = Find(devices, "pixel 7")
	require.True(t, ok)
	assert.Equal(t, "PHY-1", d.ID)

	d, ok = Find(devices, "galaxy")
	require.True(t, ok)
	assert.Equal(t, "PHY-2", d.ID)

	// Offline devices are never resolvable.
	_, ok = Find(devices, "OFF-1")
	assert.False(t, ok)

	_, ok = Find(devices, "nonexistent")
	assert.False(t, ok)
}
