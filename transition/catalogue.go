// Package transition catalogues single release conversion steps and chains
// them so any two supported releases can be bridged.
package transition

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/node"
)

var (
	// ErrUnknownVersion is returned for a release the catalogue does not know.
	ErrUnknownVersion = errors.New("unknown FHIR version")

	// ErrNoPath is returned when no sequence of steps joins two releases.
	ErrNoPath = errors.New("no conversion path")

	// ErrDuplicateStep is returned when two steps cover the same releases.
	ErrDuplicateStep = errors.New("duplicate conversion step")
)

// Step converts one resource from release From to release To.
// Implementations hold no per call state and are safe for concurrent use.
type Step interface {
	From() fc.FHIRVersion
	To() fc.FHIRVersion
	Convert(n node.Node) (fc.Resource, error)
	Supports(resourceType string) bool
	ResourceTypes() []string
}

type key struct {
	from, to fc.FHIRVersion
}

// Catalogue holds the available steps keyed by (from, to).
type Catalogue struct {
	mu    sync.RWMutex
	steps map[key]Step
}

// NewCatalogue creates a catalogue holding steps.
func NewCatalogue(steps ...Step) (*Catalogue, error) {
	c := &Catalogue{steps: make(map[key]Step, len(steps))}
	for _, s := range steps {
		if err := c.Register(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a step. Steps must move to a later release.
func (c *Catalogue) Register(s Step) error {
	from, to := s.From(), s.To()
	if !from.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownVersion, from)
	}
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownVersion, to)
	}
	if !from.Before(to) {
		return fmt.Errorf("step %s -> %s does not move forward", from, to)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := key{from, to}
	if _, ok := c.steps[k]; ok {
		return fmt.Errorf("%w: %s -> %s", ErrDuplicateStep, from, to)
	}
	c.steps[k] = s
	return nil
}

// Step returns the step converting from into to, if registered.
func (c *Catalogue) Step(from, to fc.FHIRVersion) (Step, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.steps[key{from, to}]
	return s, ok
}

// Path returns the fewest steps that take from to to, in order. A missing
// link is an error.
func (c *Catalogue) Path(from, to fc.FHIRVersion) ([]Step, error) {
	if !from.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, from)
	}
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, to)
	}
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	// breadth first over release order, so the first hit is the shortest path
	prev := map[fc.FHIRVersion]Step{}
	queue := []fc.FHIRVersion{from}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == to {
			break
		}
		for _, s := range c.outgoing(v) {
			if _, seen := prev[s.To()]; seen || s.To() == from {
				continue
			}
			prev[s.To()] = s
			queue = append(queue, s.To())
		}
	}

	if _, ok := prev[to]; !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
	}
	var path []Step
	for v := to; v != from; {
		s := prev[v]
		path = append([]Step{s}, path...)
		v = s.From()
	}
	return path, nil
}

// outgoing returns the steps leaving v, shortest hop first.
func (c *Catalogue) outgoing(v fc.FHIRVersion) []Step {
	var out []Step
	for k, s := range c.steps {
		if k.from == v {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To().Before(out[j].To()) })
	return out
}

// Pairs lists the registered (from, to) pairs in release order.
func (c *Catalogue) Pairs() [][2]fc.FHIRVersion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pairs := make([][2]fc.FHIRVersion, 0, len(c.steps))
	for k := range c.steps {
		pairs = append(pairs, [2]fc.FHIRVersion{k.from, k.to})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0].Before(pairs[j][0])
		}
		return pairs[i][1].Before(pairs[j][1])
	})
	return pairs
}
