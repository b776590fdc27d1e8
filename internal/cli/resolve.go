package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vikibrezinova/fast-coref/internal/config"
	"github.com/vikibrezinova/fast-coref/internal/paths"
	"github.com/vikibrezinova/fast-coref/internal/runid"
)

// NewResolveCmd prints the run identity and directory layout a launch
// would use, without creating anything. The only filesystem access is
// the singleton-file existence check, which feeds the run name.
func NewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the run name and directory layout without touching disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(cmd.Flags())
			if err != nil {
				return err
			}

			if err := config.CheckDrift(); err != nil {
				return err
			}

			opts, err := params.Significant(config.PathExists)
			if err != nil {
				return err
			}

			layout, err := paths.Resolve(params.Dataset, params.BaseDataDir, params.DataDir, params.CrossValSplit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run name: %s\n", runid.Name(params.Dataset, opts))
			fmt.Fprintf(out, "Digest:   %s\n", runid.Digest(params.Dataset, opts))
			fmt.Fprintf(out, "Data dir: %s\n", layout.DataDir)
			if layout.ConllDir != "" {
				fmt.Fprintf(out, "Conll dir: %s\n", layout.ConllDir)
			}

			keys := make([]string, 0, len(opts))
			for k := range opts {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "  %s: %s\n", k, runid.Render(opts[k]))
			}
			return nil
		},
	}
}
