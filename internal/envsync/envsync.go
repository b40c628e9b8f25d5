// Package envsync rewrites the project's environment files from the env map
// in .devctl.yaml and can keep them in sync as the config changes.
package envsync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arige/devctl/internal/logging"
	"github.com/arige/devctl/internal/project"
)

// Syncer writes the project's env map to its configured target files.
type Syncer struct {
	proj *project.Project
}

func New(proj *project.Project) *Syncer {
	return &Syncer{proj: proj}
}

// Sync rewrites every configured env file. Targets are written whole; keys
// are emitted sorted so reruns are byte-stable.
func (s *Syncer) Sync() error {
	if len(s.proj.EnvFiles) == 0 {
		return fmt.Errorf("no env_files configured in %s", project.ConfigFileName)
	}

	content := Render(s.proj.Env)
	for _, target := range s.proj.EnvFiles {
		path := target
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.proj.Dir(), target)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("env target dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		logging.Debug("wrote %d env entries to %s", len(s.proj.Env), target)
	}

	return nil
}

// Render formats an env map as KEY=VALUE lines, sorted by key.
func Render(env map[string]string) string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, env[k])
	}
	return b.String()
}

// Watch blocks until ctx is done, re-reading the project config and
// re-syncing targets whenever the config file changes. Events are debounced
// because editors emit bursts of writes for one save.
func (s *Syncer) Watch(ctx context.Context, debounce time.Duration) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(s.proj.Dir()); err != nil {
		return err
	}

	var mu sync.Mutex
	var pending *time.Timer

	dir := s.proj.Dir()
	resync := func() {
		proj, err := project.Detect(dir)
		if err != nil {
			logging.Error("reload project: %v", err)
			return
		}

		if err := New(proj).Sync(); err != nil {
			logging.Error("env sync: %v", err)
			return
		}
		logging.Info("env files re-synced")
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if pending != nil {
				pending.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != project.ConfigFileName {
				continue
			}
			// Write, create, rename (atomic saves), chmod (some editors).
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) == 0 {
				continue
			}

			mu.Lock()
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, resync)
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Error("watch: %v", err)
		}
	}
}
