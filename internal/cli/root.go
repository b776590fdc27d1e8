package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vikibrezinova/fast-coref/internal/config"
	"github.com/vikibrezinova/fast-coref/internal/logging"
	"github.com/vikibrezinova/fast-coref/internal/version"
)

// NewRootCmd constructs the fastcoref command tree. Every
// hyperparameter flag is registered once on the root and inherited by
// the subcommands, so launch and resolve see an identical surface.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fastcoref",
		Short:         "fastcoref – coreference training run launcher",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewLaunchCmd())
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewDoctorCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadParams resolves flag values into validated launcher parameters.
func loadParams(fs *pflag.FlagSet) (*config.Params, error) {
	p, err := config.Load(fs)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return p, nil
}

// newLogger builds the logger configured by the shared logging flags.
func newLogger(p *config.Params) (*zap.Logger, error) {
	return logging.NewLogger(p.LogLevel, p.LogFormat)
}
