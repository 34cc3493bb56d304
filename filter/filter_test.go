package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fc "github.com/gofhir/converter"
)

var patient = []byte(`{
	"resourceType": "Patient",
	"id": "p1",
	"active": true,
	"gender": "female",
	"name": [{"family": "Chalmers", "given": ["Peter", "James"]}]
}`)

func TestFilter_Match(t *testing.T) {
	f := New(16, nil)

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"empty matches all", "", true},
		{"blank matches all", "   ", true},
		{"boolean true", "active", true},
		{"comparison", "gender = 'female'", true},
		{"comparison false", "gender = 'male'", false},
		{"resource type", "resourceType = 'Patient'", true},
		{"non-empty collection", "name.given", true},
		{"empty collection", "telecom", false},
		{"exists", "name.where(family = 'Chalmers').exists()", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Match(tt.expr, patient)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_CompileError(t *testing.T) {
	f := New(16, nil)

	_, err := f.Match("name.where(", patient)
	assert.ErrorContains(t, err, "compile filter")
	assert.Error(t, f.Compile("(("))
	assert.NoError(t, f.Compile(""))
	assert.Equal(t, 0, f.Len(), "failed compilations are not cached")
}

func TestFilter_CachesExpressions(t *testing.T) {
	m := fc.NewMetrics()
	f := New(16, m)

	for i := 0; i < 3; i++ {
		_, err := f.Match("active", patient)
		require.NoError(t, err)
	}
	require.NoError(t, f.Compile("gender = 'female'"))

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, uint64(2), m.CacheMisses())
	assert.Equal(t, uint64(2), m.CacheHits())

	f.Clear()
	assert.Equal(t, 0, f.Len())
}

func BenchmarkFilter_Match(b *testing.B) {
	f := New(16, nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = f.Match("gender = 'female'", patient)
	}
}
