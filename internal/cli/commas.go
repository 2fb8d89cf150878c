package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/numfmt/pkg/numfmt"
)

func newCommasCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commas [value...]",
		Short: "inserts thousands separators",
		Long: `
Inserts a comma between every group of three digits of each value's
integer part. Values are used verbatim and never rejected.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return run(cmd, args, cfg, log, func(v string) (string, error) {
				return numfmt.AddCommas(v), nil
			})
		},
	}
}
