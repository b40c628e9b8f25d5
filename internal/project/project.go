// Package project loads and persists the .devctl.yaml control-panel config:
// app identity, run commands per platform, and the environment map that the
// env workflow writes out.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project marker devctl looks for.
const ConfigFileName = ".devctl.yaml"

// Project is the parsed project configuration.
type Project struct {
	Name          string            `yaml:"name"`
	Version       string            `yaml:"version"`
	DefaultDevice string            `yaml:"default_device,omitempty"`
	Run           map[string]string `yaml:"run,omitempty"`
	Env           map[string]string `yaml:"env,omitempty"`
	EnvFiles      []string          `yaml:"env_files,omitempty"`

	path string
}

// Detect loads the project config from dir.
func Detect(dir string) (*Project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no project found in %s: %w", dir, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	if p.Name == "" {
		p.Name = filepath.Base(absDir)
	}
	p.path = path

	return &p, nil
}

// Path returns the config file location the project was loaded from.
func (p *Project) Path() string { return p.path }

// Dir returns the project root directory.
func (p *Project) Dir() string { return filepath.Dir(p.path) }

// Save writes the config back to the file it was loaded from.
func (p *Project) Save() error {
	if p.path == "" {
		return fmt.Errorf("project has no backing file")
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// RunCommand returns the configured run command line for a platform.
func (p *Project) RunCommand(platform string) (string, error) {
	cmd, ok := p.Run[platform]
	if !ok || cmd == "" {
		return "", fmt.Errorf("no run command configured for %s in %s", platform, ConfigFileName)
	}
	return cmd, nil
}
