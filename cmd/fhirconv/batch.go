package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fc "github.com/gofhir/converter"
)

func newBatchCmd(a *app) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "batch [flags] <file>...",
		Short: "Convert many resources in parallel",
		Example: `  fhirconv batch --workers 8 data/*.json
  fhirconv batch --where "status = 'active'" -o json data/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.newConverter(cmd)
			if err != nil {
				return err
			}
			defer conv.Close()

			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			resources := make([][]byte, len(inputs))
			for i, in := range inputs {
				resources[i] = in.data
			}

			br := conv.ConvertBatch(cmd.Context(), resources)

			outputs := make([]conversionOutput, 0, len(inputs))
			for i, jr := range br.Results {
				if jr.Error != nil {
					r := fc.NewResult()
					r.Fail(fc.StageConvert, jr.Error)
					outputs = append(outputs, newOutput(inputs[i].name, r))
					continue
				}
				outputs = append(outputs, newOutput(inputs[i].name, jr.Result))
				jr.Result.Release()
			}

			if err := writeOutputs(cmd.OutOrStdout(), a.cfg, outputs); err != nil {
				return err
			}

			if !a.cfg.Quiet {
				m := conv.Metrics()
				fmt.Fprintf(cmd.ErrOrStderr(), "%d resources in %s: %d converted, %d skipped, %d failed (avg %s)\n",
					br.TotalJobs,
					br.TotalDuration.Round(time.Millisecond),
					br.TotalJobs-br.SkippedJobs-br.FailedJobs,
					br.SkippedJobs,
					br.FailedJobs,
					m.AverageConversionTime().Round(time.Microsecond),
				)
			}
			if stats {
				enc := yaml.NewEncoder(cmd.ErrOrStderr())
				if err := enc.Encode(conv.Metrics().Snapshot()); err != nil {
					return err
				}
				if err := enc.Close(); err != nil {
					return err
				}
			}
			if br.Aborted {
				return fmt.Errorf("batch stopped after %d failures", a.cfg.MaxFailures)
			}
			if br.FailedJobs > 0 {
				return fmt.Errorf("%d of %d resources failed to convert", br.FailedJobs, br.TotalJobs)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("where", "", "FHIRPath predicate selecting the resources to convert")
	f.Int("workers", 0, "worker count (default number of CPUs)")
	f.Duration("timeout", 0, "per resource timeout")
	f.Int("max-failures", 0, "stop after this many failures (0 means no limit)")
	f.BoolVar(&stats, "stats", false, "print conversion metrics as YAML on stderr")
	return cmd
}

func newBundleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bundle <file>",
		Short: "Convert the entries of a Bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.newConverter(cmd)
			if err != nil {
				return err
			}
			defer conv.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			outputs := []conversionOutput{}
			var converted, skipped, failed, total int
			for entry := range conv.ConvertBundleStreamParallel(cmd.Context(), f) {
				total++
				name := fmt.Sprintf("%s#entry[%d]", args[0], entry.Index)
				if entry.FullURL != "" {
					name = entry.FullURL
				}
				if entry.Error != nil {
					if entry.Index < 0 {
						return entry.Error
					}
					r := fc.NewResult()
					r.Fail(fc.StageConvert, entry.Error)
					entry.Result = r
				}
				o := newOutput(name, entry.Result)
				switch {
				case o.Skipped:
					skipped++
				case o.failed():
					failed++
				default:
					converted++
				}
				outputs = append(outputs, o)
				entry.Result.Release()
			}

			if err := writeOutputs(cmd.OutOrStdout(), a.cfg, outputs); err != nil {
				return err
			}
			if !a.cfg.Quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d entries, %d converted, %d skipped, %d failed\n",
					args[0], total, converted, skipped, failed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d entries failed to convert", failed, total)
			}
			return nil
		},
	}
}
