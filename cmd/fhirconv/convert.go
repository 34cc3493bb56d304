package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofhir/converter/engine"
	"github.com/gofhir/converter/node/xmlnode"
	"github.com/gofhir/converter/pkg/logger"
)

func (a *app) newConverter(cmd *cobra.Command) (*engine.Converter, error) {
	from, to, err := a.cfg.Versions()
	if err != nil {
		return nil, err
	}
	conv, err := engine.New(cmd.Context(), from, to, a.cfg.Options()...)
	if err != nil {
		return nil, err
	}
	conv.SetLogger(logger.Default())
	return conv, nil
}

func newConvertCmd(a *app) *cobra.Command {
	var xml bool

	cmd := &cobra.Command{
		Use:   "convert [flags] <file>... | -",
		Short: "Convert resources one by one",
		Example: `  fhirconv convert patient.json
  fhirconv convert -o json conceptmaps/*.json
  cat valueset.json | fhirconv convert -o dump -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the filter reads JSON, and XML input never reaches it
			if xml && a.cfg.Where != "" {
				return errors.New("--where cannot be used with --xml")
			}
			conv, err := a.newConverter(cmd)
			if err != nil {
				return err
			}
			defer conv.Close()

			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			outputs := make([]conversionOutput, 0, len(inputs))
			for _, in := range inputs {
				if xml {
					tree, err := xmlnode.ParseBytes(in.data)
					if err != nil {
						return fmt.Errorf("%s: %w", in.name, err)
					}
					result, err := conv.ConvertNode(cmd.Context(), tree)
					if err != nil {
						return err
					}
					outputs = append(outputs, newOutput(in.name, result))
					result.Release()
					continue
				}

				result, err := conv.Convert(cmd.Context(), in.data)
				if err != nil {
					return err
				}
				outputs = append(outputs, newOutput(in.name, result))
				result.Release()
			}

			if err := writeOutputs(cmd.OutOrStdout(), a.cfg, outputs); err != nil {
				return err
			}
			if n := failures(outputs); n > 0 {
				return fmt.Errorf("%d of %d resources failed to convert", n, len(outputs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&xml, "xml", false, "read FHIR XML instead of JSON; not combinable with --where")
	cmd.Flags().String("where", "", "FHIRPath predicate selecting the resources to convert")
	return cmd
}
