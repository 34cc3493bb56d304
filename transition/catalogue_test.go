package transition

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
	"github.com/gofhir/converter/node"
)

// stubResource records the steps it passed through.
type stubResource struct {
	rt    string
	trail []string
}

func (s *stubResource) ResourceType() string { return s.rt }

type stubStep struct {
	from, to fc.FHIRVersion
	fail     error
}

func (s stubStep) From() fc.FHIRVersion { return s.from }
func (s stubStep) To() fc.FHIRVersion { return s.to }

func (s stubStep) Convert(n node.Node) (fc.Resource, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	res := &stubResource{rt: n.ResourceType()}
	if prev, ok := node.Find(n, "trail"); ok {
		for _, c := range prev.Children() {
			text, _ := c.Text()
			res.trail = append(res.trail, text)
		}
	}
	res.trail = append(res.trail, string(s.from)+">"+string(s.to))
	return res, nil
}

func (s stubStep) Supports(rt string) bool { return rt == "Patient" }
func (s stubStep) ResourceTypes() []string { return []string{"Patient"} }

// reencode carries the trail into the next step's input.
var reencode = EncoderFunc(func(res fc.Resource) (node.Node, error) {
	sr := res.(*stubResource)
	return node.Resource(sr.rt, node.Element("trail", node.Values("step", sr.trail...)...)), nil
})

func TestNewCatalogue_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  error
	}{
		{"unknown source", []Step{stubStep{from: "R3", to: fc.R4}}, ErrUnknownVersion},
		{"unknown target", []Step{stubStep{from: fc.R4, to: "R6"}}, ErrUnknownVersion},
		{"duplicate", []Step{stubStep{from: fc.R4, to: fc.R5}, stubStep{from: fc.R4, to: fc.R5}}, ErrDuplicateStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogue(tt.steps...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := NewCatalogue(stubStep{from: fc.R5, to: fc.R4})
	assert.Error(t, err, "backward step")
}

func TestCatalogue_Path(t *testing.T) {
	c, err := NewCatalogue(
		stubStep{from: fc.R4, to: fc.R4B},
		stubStep{from: fc.R4B, to: fc.R5},
	)
	require.NoError(t, err)

	path, err := c.Path(fc.R4, fc.R5)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, fc.R4B, path[0].To())
	assert.Equal(t, fc.R5, path[1].To())

	path, err = c.Path(fc.R4B, fc.R5)
	require.NoError(t, err)
	assert.Len(t, path, 1)
}

func TestCatalogue_PathPrefersDirect(t *testing.T) {
	c, err := NewCatalogue(
		stubStep{from: fc.R4, to: fc.R4B},
		stubStep{from: fc.R4B, to: fc.R5},
		stubStep{from: fc.R4, to: fc.R5},
	)
	require.NoError(t, err)

	path, err := c.Path(fc.R4, fc.R5)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, fc.R4, path[0].From())
}

func TestCatalogue_PathErrors(t *testing.T) {
	c, err := NewCatalogue(stubStep{from: fc.R4, to: fc.R4B})
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to fc.FHIRVersion
		want     error
	}{
		{"gap", fc.R4, fc.R5, ErrNoPath},
		{"same release", fc.R4, fc.R4, ErrNoPath},
		{"backwards", fc.R4B, fc.R4, ErrNoPath},
		{"unknown from", "R3", fc.R5, ErrUnknownVersion},
		{"unknown to", fc.R4, "R6", ErrUnknownVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Path(tt.from, tt.to)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalogue_Pairs(t *testing.T) {
	c, err := NewCatalogue(
		stubStep{from: fc.R4B, to: fc.R5},
		stubStep{from: fc.R4, to: fc.R5},
		stubStep{from: fc.R4, to: fc.R4B},
	)
	require.NoError(t, err)

	assert.Equal(t, [][2]fc.FHIRVersion{
		{fc.R4, fc.R4B},
		{fc.R4, fc.R5},
		{fc.R4B, fc.R5},
	}, c.Pairs())
}

func TestChain_Convert(t *testing.T) {
	c, err := NewCatalogue(
		stubStep{from: fc.R4, to: fc.R4B},
		stubStep{from: fc.R4B, to: fc.R5},
	)
	require.NoError(t, err)

	ch, err := c.Plan(fc.R4, fc.R5, reencode)
	require.NoError(t, err)
	assert.Equal(t, "R4 -> R4B -> R5", ch.String())
	assert.Equal(t, 2, ch.Len())
	assert.True(t, ch.Supports("Patient"))

	res, err := ch.Convert(context.Background(), node.Resource("Patient"))
	require.NoError(t, err)
	assert.Equal(t, []string{"R4>R4B", "R4B>R5"}, res.(*stubResource).trail)
}

func TestChain_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewChain(nil)
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("gap", func(t *testing.T) {
		_, err := NewChain(reencode, stubStep{from: fc.R4, to: fc.R4B}, stubStep{from: fc.R4, to: fc.R5})
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("no encoder", func(t *testing.T) {
		_, err := NewChain(nil, stubStep{from: fc.R4, to: fc.R4B}, stubStep{from: fc.R4B, to: fc.R5})
		assert.ErrorIs(t, err, ErrNoEncoder)
	})

	t.Run("step failure names the step", func(t *testing.T) {
		boom := errors.New("boom")
		ch, err := NewChain(reencode, stubStep{from: fc.R4, to: fc.R4B}, stubStep{from: fc.R4B, to: fc.R5, fail: boom})
		require.NoError(t, err)
		_, err = ch.Convert(context.Background(), node.Resource("Patient"))
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "R4B -> R5")
	})

	t.Run("encoder failure", func(t *testing.T) {
		bad := EncoderFunc(func(fc.Resource) (node.Node, error) { return nil, errors.New("cannot encode") })
		ch, err := NewChain(bad, stubStep{from: fc.R4, to: fc.R4B}, stubStep{from: fc.R4B, to: fc.R5})
		require.NoError(t, err)
		_, err = ch.Convert(context.Background(), node.Resource("Patient"))
		assert.ErrorContains(t, err, "cannot encode")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ch, err := NewChain(nil, stubStep{from: fc.R4, to: fc.R5})
		require.NoError(t, err)
		_, err = ch.Convert(ctx, node.Resource("Patient"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStandard(t *testing.T) {
	c := Standard(Config{})
	assert.Equal(t, [][2]fc.FHIRVersion{{fc.R4, fc.R5}}, c.Pairs())

	ch, err := c.Plan(fc.R4, fc.R5, nil)
	require.NoError(t, err)
	assert.True(t, ch.Supports("ConceptMap"))
	assert.False(t, ch.Supports("Observation"))

	res, err := ch.Convert(context.Background(), node.Resource("Basic", node.Value("id", "b1")))
	require.NoError(t, err)
	basic, ok := res.(*r5.Basic)
	require.True(t, ok, "got %T", res)
	assert.Equal(t, "b1", *basic.Id)

	_, err = c.Plan(fc.R4B, fc.R5, nil)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestStandard_UnknownTypeReturnsNil(t *testing.T) {
	step := NewR4ToR5(Config{})
	res, err := step.Convert(node.Resource("Foo"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, mapping.ErrUnknownResourceType)
}

func TestStandard_StrictFormats(t *testing.T) {
	n := node.Resource("Patient", node.Value("birthDate", "1 May 1970"))

	_, err := NewR4ToR5(Config{}).Convert(n)
	assert.NoError(t, err)

	_, err = NewR4ToR5(Config{StrictFormats: true}).Convert(n)
	assert.Error(t, err)
}
