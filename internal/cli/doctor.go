package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vikibrezinova/fast-coref/internal/config"
)

// NewDoctorCmd validates the configuration and the significant-option
// allow-list against the default table.
func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and option-schema consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(cmd.Flags())
			if err != nil {
				return err
			}

			if err := config.CheckDrift(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config OK. Dataset: %s, significant options tracked: %d\n",
				params.Dataset, len(config.SignificantOpts))
			fmt.Fprintf(out, "Eval mode: %v, save model: %v\n", params.EvalModel, params.ToSaveModel)
			return nil
		},
	}
}
