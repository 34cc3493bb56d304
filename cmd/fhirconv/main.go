// Package main implements the fhirconv CLI, which converts FHIR resources
// between releases.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/internal/config"
	"github.com/gofhir/converter/pkg/logger"
	"github.com/gofhir/converter/transition"
)

const version = "0.1.0"

// app carries the loaded settings into sub-commands.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "fhirconv",
		Short: "Convert FHIR resources between releases",
		Long: `fhirconv converts FHIR JSON resources from one release to another,
currently R4 (4.0.1) to R5 (5.0.0).

Settings come from flags, FHIRCONV_* environment variables and an
optional fhirconv.yaml, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.SetDefault(cfg.Logger(cmd.ErrOrStderr()))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./fhirconv.yaml)")
	pf.String("from", string(fc.R4), "source release")
	pf.String("to", string(fc.R5), "target release")
	pf.StringP("output", "o", config.OutputText, "output format: text, json, yaml, dump")
	pf.BoolP("quiet", "q", false, "only report failures")
	pf.Bool("strict-parse", false, "check the lexical form of date, uri and id style values")
	pf.String("log-level", "warn", "log level: debug, info, warn, error, none")
	pf.String("log-format", "console", "log format: console, json")

	root.AddCommand(
		newConvertCmd(a),
		newBatchCmd(a),
		newBundleCmd(a),
		newAuditCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and the supported transitions",
		Args:  cobra.NoArgs,
		// settings are not needed to print the version
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fhirconv v%s\n", version)
			for _, pair := range transition.Standard(transition.Config{}).Pairs() {
				from, to := pair[0], pair[1]
				fmt.Fprintf(out, "  %s (%s) -> %s (%s)\n", from, from.Release(), to, to.Release())
			}
			return nil
		},
	}
}
