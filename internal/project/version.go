package project

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// BumpVersion increments the project's semantic version and returns the new
// value. part is one of "major", "minor", "patch". The project is not saved;
// callers decide when to persist.
func (p *Project) BumpVersion(part string) (string, error) {
	if p.Version == "" {
		return "", fmt.Errorf("project has no version set")
	}

	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return "", fmt.Errorf("parse version %q: %w", p.Version, err)
	}

	var next semver.Version
	switch part {
	case "major":
		next = v.IncMajor()
	case "minor":
		next = v.IncMinor()
	case "patch":
		next = v.IncPatch()
	default:
		return "", fmt.Errorf("unknown version part %q (use major, minor, or patch)", part)
	}

	p.Version = next.String()
	return p.Version, nil
}
