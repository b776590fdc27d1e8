package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vikibrezinova/fast-coref/internal/config"
	"github.com/vikibrezinova/fast-coref/internal/experiment"
	"github.com/vikibrezinova/fast-coref/internal/paths"
	"github.com/vikibrezinova/fast-coref/internal/runid"
	"github.com/vikibrezinova/fast-coref/internal/workspace"
)

// NewLaunchCmd wires the full resolution pipeline: significant-option
// diffing, run naming, path resolution, directory bootstrap, config
// record, then a single handoff to the experiment engine.
func NewLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Resolve the run identity, bootstrap its directories, and start the experiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := newLogger(params)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // best-effort

			if err := config.CheckDrift(); err != nil {
				return err
			}

			opts, err := params.Significant(config.PathExists)
			if err != nil {
				return err
			}

			name := runid.Name(params.Dataset, opts)
			digest := runid.Digest(params.Dataset, opts)

			layout, err := paths.Resolve(params.Dataset, params.BaseDataDir, params.DataDir, params.CrossValSplit)
			if err != nil {
				return err
			}

			ws, err := workspace.Bootstrap(params.BaseModelDir, name, params.ModelDir)
			if err != nil {
				return err
			}

			logger.Info("run resolved",
				zap.String("name", name),
				zap.String("digest", digest),
				zap.String("model_dir", ws.RunDir),
				zap.String("data_dir", layout.DataDir),
			)

			if err := workspace.RecordConfig(ws.RunDir, opts, logger); err != nil {
				return err
			}

			runner := experiment.New(logger)
			return runner.Run(cmd.Context(), experiment.Settings{
				Params:    params,
				RunName:   name,
				RunDigest: digest,
				Workspace: ws,
				Data:      layout,
				Env:       experiment.DefaultEnv(),
			})
		},
	}
}
