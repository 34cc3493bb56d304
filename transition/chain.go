package transition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/node"
)

// ErrNoEncoder is returned when a chain of several steps has no encoder to
// feed one step's output to the next.
var ErrNoEncoder = errors.New("multi step chain needs an encoder")

// Encoder turns a converted resource back into a source tree for the next
// step. Hosts supply it, typically by serializing to the wire format and
// parsing the bytes again.
type Encoder interface {
	Encode(res fc.Resource) (node.Node, error)
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(res fc.Resource) (node.Node, error)

// Encode calls f.
func (f EncoderFunc) Encode(res fc.Resource) (node.Node, error) {
	return f(res)
}

// Chain runs a sequence of steps, each taking the previous step's release.
type Chain struct {
	steps []Step
	enc   Encoder
}

// NewChain checks that steps join up and returns the chain. enc may be nil
// for a single step.
func NewChain(enc Encoder, steps ...Step) (*Chain, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty chain", ErrNoPath)
	}
	for i := 1; i < len(steps); i++ {
		if steps[i-1].To() != steps[i].From() {
			return nil, fmt.Errorf("%w: gap between %s and %s",
				ErrNoPath, steps[i-1].To(), steps[i].From())
		}
	}
	if len(steps) > 1 && enc == nil {
		return nil, ErrNoEncoder
	}
	return &Chain{steps: steps, enc: enc}, nil
}

// Plan looks up the path from -> to in c and chains it.
func (c *Catalogue) Plan(from, to fc.FHIRVersion, enc Encoder) (*Chain, error) {
	path, err := c.Path(from, to)
	if err != nil {
		return nil, err
	}
	return NewChain(enc, path...)
}

// From returns the source release.
func (ch *Chain) From() fc.FHIRVersion { return ch.steps[0].From() }

// To returns the target release.
func (ch *Chain) To() fc.FHIRVersion { return ch.steps[len(ch.steps)-1].To() }

// Len returns the number of steps.
func (ch *Chain) Len() int { return len(ch.steps) }

// Supports reports whether the first step accepts resourceType. Later steps
// are assumed to accept what earlier ones produce.
func (ch *Chain) Supports(resourceType string) bool {
	return ch.steps[0].Supports(resourceType)
}

// ResourceTypes lists the resource types the first step accepts.
func (ch *Chain) ResourceTypes() []string {
	return ch.steps[0].ResourceTypes()
}

// String renders the chain as "R4 -> R5".
func (ch *Chain) String() string {
	parts := []string{ch.From().String()}
	for _, s := range ch.steps {
		parts = append(parts, s.To().String())
	}
	return strings.Join(parts, " -> ")
}

// Convert runs every step. The context is checked between steps only; a
// single step always runs to completion.
func (ch *Chain) Convert(ctx context.Context, n node.Node) (fc.Resource, error) {
	var res fc.Resource
	for i, s := range ch.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 {
			next, err := ch.enc.Encode(res)
			if err != nil {
				return nil, fmt.Errorf("encode %s output: %w", s.From(), err)
			}
			n = next
		}
		out, err := s.Convert(n)
		if err != nil {
			if len(ch.steps) > 1 {
				return nil, fmt.Errorf("%s -> %s: %w", s.From(), s.To(), err)
			}
			return nil, err
		}
		res = out
	}
	return res, nil
}
