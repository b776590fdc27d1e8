// Package experiment is the boundary to the training/evaluation
// engine. The launcher resolves identity, paths, and directories, then
// hands the complete settings to a Runner exactly once.
package experiment

import (
	"context"

	"go.uber.org/zap"

	"github.com/vikibrezinova/fast-coref/internal/config"
	"github.com/vikibrezinova/fast-coref/internal/paths"
	"github.com/vikibrezinova/fast-coref/internal/workspace"
)

// Settings is the fully resolved configuration handed to the engine.
// Env carries process-level environment required by external tooling;
// it is passed explicitly rather than mutated into the global
// environment so the engine owns when and whether to apply it.
type Settings struct {
	Params    *config.Params
	RunName   string
	RunDigest string
	Workspace workspace.Workspace
	Data      paths.Layout
	Env       map[string]string
}

// DefaultEnv returns the environment the external tooling expects.
// HuggingFace tokenizers fork worker threads that deadlock under the
// data loader, hence the parallelism toggle.
func DefaultEnv() map[string]string {
	return map[string]string{
		"TOKENIZERS_PARALLELISM": "false",
	}
}

// Runner executes a training/evaluation job from resolved settings.
type Runner interface {
	Run(ctx context.Context, s Settings) error
}

// New returns the default Runner. The actual model, training loop, and
// scorer invocation live outside this module; the default runner logs
// the handoff and returns, which keeps the launcher testable on its
// own.
func New(logger *zap.Logger) Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &engine{logger: logger}
}

type engine struct {
	logger *zap.Logger
}

func (e *engine) Run(ctx context.Context, s Settings) error {
	e.logger.Info("handing off to experiment engine",
		zap.String("run", s.RunName),
		zap.String("digest", s.RunDigest),
		zap.String("dataset", s.Params.Dataset),
		zap.String("model_dir", s.Workspace.RunDir),
		zap.String("data_dir", s.Data.DataDir),
		zap.Bool("eval", s.Params.EvalModel),
	)
	return ctx.Err()
}
