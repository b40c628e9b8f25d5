package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `name: myapp
version: 1.2.3
default_device: emulator-5554
run:
  android: gradle installDebug
  ios: xcodebuild -scheme MyApp -destination id={device}
env:
  API_URL: https://api.example.com
  FEATURE_FLAG: "true"
env_files:
  - .env
  - ios/App/.env
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestDetect(t *testing.T) {
	dir := writeProject(t, sampleConfig)

	proj, err := Detect(dir)
	require.NoError(t, err)

	assert.Equal(t, "myapp", proj.Name)
	assert.Equal(t, "1.2.3", proj.Version)
	assert.Equal(t, "emulator-5554", proj.DefaultDevice)
	assert.Equal(t, "gradle installDebug", proj.Run["android"])
	assert.Equal(t, "https://api.example.com", proj.Env["API_URL"])
	assert.Len(t, proj.EnvFiles, 2)
	assert.Equal(t, dir, proj.Dir())
}

func TestDetectMissingConfig(t *testing.T) {
	_, err := Detect(t.TempDir())
	assert.Error(t, err)
}

func TestDetectNameDefaultsToDirectory(t *testing.T) {
	dir := writeProject(t, "version: 0.1.0\n")

	proj, err := Detect(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), proj.Name)
}

func TestRunCommand(t *testing.T) {
	dir := writeProject(t, sampleConfig)
	proj, err := Detect(dir)
	require.NoError(t, err)

	cmd, err := proj.RunCommand("android")
	require.NoError(t, err)
	assert.Equal(t, "gradle installDebug", cmd)

	_, err = proj.RunCommand("windows")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := writeProject(t, sampleConfig)
	proj, err := Detect(dir)
	require.NoError(t, err)

	proj.Version = "2.0.0"
	require.NoError(t, proj.Save())

	reloaded, err := Detect(dir)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", reloaded.Version)
	assert.Equal(t, proj.Env, reloaded.Env)
}

func TestBumpVersion(t *testing.T) {
	cases := []struct {
		part string
		want string
	}{
		{"patch", "1.2.4"},
		{"minor", "1.3.0"},
		{"major", "2.0.0"},
	}

	for _, tc := range cases {
		proj := &Project{Version: "1.2.3"}
		got, err := proj.BumpVersion(tc.part)
		require.NoError(t, err, tc.part)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.want, proj.Version)
	}
}

func TestBumpVersionErrors(t *testing.T) {
	_, err := (&Project{Version: "1.2.3"}).BumpVersion("huge")
	assert.Error(t, err)

	_, err = (&Project{}).BumpVersion("patch")
	assert.Error(t, err)

	_, err = (&Project{Version: "not-a-version"}).BumpVersion("patch")
	assert.Error(t, err)
}
