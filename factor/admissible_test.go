package factor_test

import (
	"sort"
	"testing"

	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) letter.Word {
	t.Helper()
	w, err := letter.ParseWord(s)
	require.NoError(t, err)
	return w
}

// TestAdmissibleFactors_Scenario reproduces the spec's literal unit check:
// admissible_factors("uldr") = {("u",1,1),("l",2,2),("d",3,3),("r",4,4)}.
func TestAdmissibleFactors_Scenario(t *testing.T) {
	w := mustParse(t, "uldr")
	got := factor.AdmissibleFactors(w)

	type tuple struct {
		content       string
		start, finish int
	}
	want := []tuple{
		{"u", 1, 1},
		{"l", 2, 2},
		{"d", 3, 3},
		{"r", 4, 4},
	}

	gotTuples := make([]tuple, 0, len(got))
	for _, f := range got {
		gotTuples = append(gotTuples, tuple{f.Content.String(), f.Start, f.Finish})
	}
	sort.Slice(gotTuples, func(i, j int) bool { return gotTuples[i].start < gotTuples[j].start })

	assert.Equal(t, want, gotTuples)
}

// TestAdmissibleFactors_Invariants checks the size bounds of every
// admissible factor: it is non-empty and no longer than the word. It does
// not check maximality.
func TestAdmissibleFactors_Invariants(t *testing.T) {
	w := mustParse(t, "rrddrurddrdllldldluullurrruluu")
	n := len(w)

	for _, f := range factor.AdmissibleFactors(w) {
		assert.Greater(t, f.Len(), 0)
		assert.LessOrEqual(t, f.Len(), n)
	}
}

func TestFactorsByStart_AllPositionsPresent(t *testing.T) {
	w := mustParse(t, "uldr")
	byStart := factor.FactorsByStart(w)
	assert.Len(t, byStart, len(w))
	for p := 1; p <= len(w); p++ {
		_, ok := byStart[p]
		assert.True(t, ok, "position %d missing", p)
	}
}

func TestFactorsByStart_AscendingLength(t *testing.T) {
	w := mustParse(t, "rrddrurddrdllldldluullurrruluu")
	for _, fs := range factor.FactorsByStart(w) {
		for i := 1; i < len(fs); i++ {
			assert.LessOrEqual(t, fs[i-1].Len(), fs[i].Len())
		}
	}
}
