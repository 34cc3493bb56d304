package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofhir/converter/internal/config"
	"github.com/gofhir/converter/pkg/logger"
	"github.com/gofhir/converter/registry"
	"github.com/gofhir/converter/schema"
	"github.com/gofhir/converter/transition"
)

func newAuditCmd(a *app) *cobra.Command {
	var fetch bool

	cmd := &cobra.Command{
		Use:   "audit [flags] [definitions]...",
		Short: "Check the conversion tables against R4 StructureDefinitions",
		Long: `audit loads R4 StructureDefinitions (files, Bundles such as
profiles-resources.json, or package directories) and reports, for every
conversion table, the element names it does not handle and the elements it
renames, restructures or drops.

With --fetch the core package of the source release is downloaded from
packages.fhir.org (or taken from ~/.fhir/packages when present).

Without definitions only the changes are listed.`,
		Example: `  fhirconv audit profiles-types.json profiles-resources.json
  fhirconv audit -o yaml ~/.fhir/packages/hl7.fhir.r4.core#4.0.1
  fhirconv audit --fetch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 && a.cfg.Definitions != "" {
				paths = []string{a.cfg.Definitions}
			}
			if fetch {
				from, _, err := a.cfg.Versions()
				if err != nil {
					return err
				}
				dir, err := registry.NewClient().Fetch(cmd.Context(), from.CorePackage(), from.Release())
				if err != nil {
					return err
				}
				paths = append(paths, dir)
			}

			cat := schema.NewCatalogue()
			for _, path := range paths {
				stats, err := cat.LoadPath(path)
				if err != nil {
					return err
				}
				logger.Info("%s: %d definitions, %d ignored, %d errors",
					path, stats.StructureDefinitions, stats.Ignored, stats.Errors)
			}

			step := transition.NewR4ToR5(transition.Config{})
			report := schema.Audit(cat, step.Registry().Tables())

			out := cmd.OutOrStdout()
			switch a.cfg.Output {
			case config.OutputYAML:
				data, err := report.YAML()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				if err != nil {
					return err
				}
			case config.OutputJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			default:
				if err := report.WriteText(out); err != nil {
					return err
				}
			}

			if len(paths) > 0 && !report.Complete() {
				return fmt.Errorf("conversion tables are incomplete")
			}
			return nil
		},
	}

	cmd.Flags().String("definitions", "", "default definitions path when no argument is given")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "download the core package of the source release")
	return cmd
}
