//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Grav(t *testing.T) {
	t.Parallel()

	s := NewStoreFrom(testCategories())
	got := s.Filter("Physics", "grav")
	assert.Equal(t, []Row{{Name: "Gravitational Constant", Value: "6.67430 × 10^-11 m^3 kg^-1 s^-2"}}, got)
}

func TestFilter_EmptyTermReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for _, c := range builtinCategories {
		got := s.Filter(c.Name, "")
		require.Len(t, got, len(c.Entries))
		for i, e := range c.Entries {
			assert.Equal(t, Row{Name: e.Name, Value: e.Value}, got[i])
		}
	}
}

func TestFilter_Cases(t *testing.T) {
	t.Parallel()

	s := NewStoreFrom(testCategories())
	tests := []struct {
		name     string
		category string
		term     string
		want     []string
	}{
		{name: "upper term", category: "Physics", term: "CONSTANT", want: []string{"Gravitational Constant", "Gas Constant"}},
		{name: "mixed case", category: "Physics", term: "sPeEd", want: []string{"Speed of Light"}},
		{name: "value text is not searched", category: "Physics", term: "m/s", want: []string{}},
		{name: "description is not searched", category: "Chemistry", term: "chemistry", want: []string{}},
		{name: "no match", category: "Physics", term: "zzz", want: []string{}},
		{name: "empty category", category: "Empty", term: "", want: []string{}},
		{name: "unknown category", category: "Biology", term: "", want: []string{}},
		{name: "unicode", category: "Physics", term: "light", want: []string{"Speed of Light"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.Filter(tt.category, tt.term)
			require.NotNil(t, got)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

// Every returned row matches, every matching entry is returned exactly once, in catalog order.
func TestFilter_SoundAndComplete(t *testing.T) {
	t.Parallel()

	s := NewStore()
	terms := []string{"", "a", "CON", "of", "(", "π", "√", "log10", "water", "constant", "xyz"}
	for _, c := range builtinCategories {
		for _, term := range terms {
			got := s.Filter(c.Name, term)
			var want []Row
			for _, e := range c.Entries {
				if strings.Contains(strings.ToLower(e.Name), strings.ToLower(term)) {
					want = append(want, Row{Name: e.Name, Value: e.Value})
				}
			}
			if want == nil {
				want = []Row{}
			}
			assert.Equal(t, want, got, "category=%s term=%q", c.Name, term)
			assert.Equal(t, got, s.Filter(c.Name, term), "filter must be repeatable")
		}
	}
}

func TestFilterCustom(t *testing.T) {
	t.Parallel()

	s := NewStoreFrom(testCategories())
	assert.Empty(t, s.FilterCustom(""))

	require.NoError(t, s.AddCustom("Hubble Constant", "70 km/s/Mpc", ""))
	require.NoError(t, s.AddCustom("Rydberg Constant", "10973731.568160 m^-1", ""))
	require.NoError(t, s.AddCustom("Bohr Radius", "5.29177210903 × 10^-11 m", ""))

	assert.Equal(t, []Row{
		{Name: "Hubble Constant", Value: "70 km/s/Mpc"},
		{Name: "Rydberg Constant", Value: "10973731.568160 m^-1"},
	}, s.FilterCustom("constant"))
	assert.Len(t, s.FilterCustom(""), 3)
	// Custom constants are not reachable through category filtering.
	assert.Empty(t, s.Filter("Physics", "hubble"))
}
