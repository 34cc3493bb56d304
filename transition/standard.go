package transition

import (
	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/node"
	"github.com/gofhir/converter/transition/r4r5"
)

// Config tunes the built-in steps.
type Config struct {
	// StrictFormats checks the lexical form of string based primitives.
	StrictFormats bool
}

// R4ToR5 adapts an r4r5 registry to Step.
type R4ToR5 struct {
	reg *r4r5.Registry
}

// NewR4ToR5 builds the R4 -> R5 step.
func NewR4ToR5(cfg Config) *R4ToR5 {
	var opts []r4r5.Option
	if cfg.StrictFormats {
		opts = append(opts, r4r5.WithStrictFormats())
	}
	return &R4ToR5{reg: r4r5.New(opts...)}
}

func (*R4ToR5) From() fc.FHIRVersion { return fc.R4 }

func (*R4ToR5) To() fc.FHIRVersion { return fc.R5 }

// Convert extracts the R5 form of n.
func (s *R4ToR5) Convert(n node.Node) (fc.Resource, error) {
	res, err := s.reg.ExtractResource(n)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *R4ToR5) Supports(resourceType string) bool { return s.reg.Supports(resourceType) }

func (s *R4ToR5) ResourceTypes() []string { return s.reg.ResourceTypes() }

// Registry exposes the underlying tables, e.g. for coverage audits.
func (s *R4ToR5) Registry() *r4r5.Registry { return s.reg }

// Standard returns a catalogue with every built-in step.
func Standard(cfg Config) *Catalogue {
	c, err := NewCatalogue(NewR4ToR5(cfg))
	if err != nil {
		panic(err)
	}
	return c
}
