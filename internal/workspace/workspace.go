// Package workspace materializes the on-disk layout of a run: the run
// directory itself, the best_models checkpoint subdirectory, the logs
// subdirectory, and the persisted config record.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/vikibrezinova/fast-coref/internal/runid"
)

// ConfigFileName is the record written into every run directory.
const ConfigFileName = "config"

const (
	bestModelsDirName = "best_models"
	logsDirName       = "logs"
)

// Workspace holds the resolved run directories.
type Workspace struct {
	RunDir       string
	BestModelDir string
	LogDir       string
}

// Bootstrap resolves and creates the run's directory tree. All
// creation is idempotent; rerunning with the same arguments returns
// identical paths without error.
//
// Without an override the run directory is <baseModelDir>/<runName>
// and best_models is created beneath it. With an override the
// directory is taken as-is (it is expected to hold a prior run) and
// best_models falls back to the run directory itself when the
// subdirectory is absent, which supports resuming from a flat legacy
// layout. The logs subdirectory is created in both modes.
func Bootstrap(baseModelDir, runName, overrideDir string) (Workspace, error) {
	var ws Workspace

	if overrideDir == "" {
		ws.RunDir = filepath.Join(baseModelDir, runName)
		ws.BestModelDir = filepath.Join(ws.RunDir, bestModelsDirName)
		if err := os.MkdirAll(ws.BestModelDir, 0o755); err != nil {
			return Workspace{}, fmt.Errorf("create best model dir %s: %w", ws.BestModelDir, err)
		}
	} else {
		ws.RunDir = overrideDir
		ws.BestModelDir = filepath.Join(ws.RunDir, bestModelsDirName)
		if info, err := os.Stat(ws.BestModelDir); err != nil || !info.IsDir() {
			ws.BestModelDir = ws.RunDir
		}
	}

	ws.LogDir = filepath.Join(ws.RunDir, logsDirName)
	if err := os.MkdirAll(ws.LogDir, 0o755); err != nil {
		return Workspace{}, fmt.Errorf("create log dir %s: %w", ws.LogDir, err)
	}

	return ws, nil
}

// RecordConfig writes the significant options to <runDir>/config as
// "key: value" lines sorted by key, replacing any prior content so a
// rerun with fewer options leaves no stale lines. Each line is also
// emitted to the logger.
func RecordConfig(runDir string, opts map[string]any, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		val := runid.Render(opts[k])
		logger.Info("significant option", zap.String("key", k), zap.String("value", val))
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(val)
		b.WriteString("\n")
	}

	recordPath := filepath.Join(runDir, ConfigFileName)
	if err := os.WriteFile(recordPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write config record %s: %w", recordPath, err)
	}
	return nil
}
