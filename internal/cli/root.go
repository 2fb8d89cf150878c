package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/internal/logging"
	"github.com/rpgo/numfmt/internal/output"
)

// ErrInvalidNumber is returned for command line values that do not parse
// as a finite number.
var ErrInvalidNumber = errors.New("invalid number")

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	format     string
	verbose    bool
}

// NewRootCommand builds the numfmt command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "numfmt",
		Short: "formats numbers for people",
		Long: `
Formats numbers with thousands separators or as abbreviated magnitudes
("1.5 million"). Values are taken from the arguments, or read one per
line from stdin when no arguments are given. Put negative values after
"--" so they are not taken for flags.
`,
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.format, "format", "", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newCommasCommand(opts),
		newAbbrevCommand(opts),
		newCurrencyCommand(opts),
		newPercentCommand(opts),
	)
	return cmd
}

// load resolves the configuration for cmd: defaults, then the config file,
// then the format flag. Only --verbose produces log output.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Configuration, logging.Logger, error) {
	var log logging.Logger = logging.NopLogger{}
	if o.verbose {
		log = logging.New(cmd.ErrOrStderr(), true)
	}

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.NewInputParser().LoadFromFile(o.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		log.Debugf("loaded configuration from %s", o.configPath)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = o.format
	}
	return cfg, log, nil
}

// values returns args, or the non-blank lines of stdin when args is empty.
func values(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var vals []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		vals = append(vals, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return vals, nil
}

// run formats every value with fn and writes the results in the
// configured output format.
func run(cmd *cobra.Command, args []string, cfg *config.Configuration, log logging.Logger, fn func(string) (string, error)) error {
	vals, err := values(cmd, args)
	if err != nil {
		return err
	}
	log.Debugf("%s: formatting %d values as %s", cmd.Name(), len(vals), cfg.Format)

	results := make([]output.Result, 0, len(vals))
	for _, v := range vals {
		out, err := fn(v)
		if err != nil {
			return err
		}
		results = append(results, output.Result{Command: cmd.Name(), Input: v, Output: out})
	}
	return output.Write(cmd.OutOrStdout(), cfg.Format, results)
}
