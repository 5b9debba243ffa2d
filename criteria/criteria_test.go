package criteria_test

import (
	"testing"

	"github.com/alexpetrov/polytile/criteria"
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete end-to-end scenarios from spec.md §8: each boundary word must be
// recognized by the orchestrator under the stated first-match criterion.
func TestAnyFactorization_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		word string
		kind factor.CriterionKind
	}{
		{"translation", "rrddrurddrdllldldluullurrruluu", factor.Translation},
		{"halfturn", "rddrurdruuurdrdrdrdldrddrdllululdddluldluullurrulllllurruuur", factor.HalfTurn},
		{"quarterturn", "druuurddrurrddrdlldrrrdlddrdldluldluullurullurulluur", factor.QuarterTurn},
		{"type1reflection", "rrrdrdddrurdddddlulddlullldluululuuurururu", factor.TypeOneReflection},
		{"type2reflection", "ruuurddrrddldrrrdlddddllluuldddlulluuuuluulurrrurd", factor.TypeTwoReflection},
		{"type1halfturnreflection", "urrdrrdlddlddldrrrrdldllulldlullurrululurrullururr", factor.TypeOneHalfTurnReflection},
		{"type2halfturnreflection", "drdrdllddrurddddlllddldluurulluulluurdruurdruulurrur", factor.TypeTwoHalfTurnReflection},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := letter.ParseWord(tc.word)
			require.NoError(t, err)

			bwf, ok := criteria.AnyFactorization(w)
			require.True(t, ok, "expected %s to match some criterion", tc.name)
			assert.Equal(t, tc.kind, bwf.Kind)
			assert.True(t, bwf.Factorization.Valid(len(w)))
			assert.Equal(t, len(w), len(bwf.Factorization.Concat()))
		})
	}
}

func TestAnyFactorization_UnitSquareIsTranslation(t *testing.T) {
	w, err := letter.ParseWord("urdl")
	require.NoError(t, err)

	bwf, ok := criteria.AnyFactorization(w)
	require.True(t, ok)
	assert.Equal(t, factor.Translation, bwf.Kind)
	// The unit square's half (length 2) is covered by its two admissible
	// length-1 factors alone, so the search collapses to the four-factor
	// degenerate form A B Â B̂ rather than the general six-factor A B C Â B̂ Ĉ.
	require.Len(t, bwf.Factorization.Factors, 4)
	for _, f := range bwf.Factorization.Factors {
		assert.Equal(t, 1, f.Len())
	}
}

func TestAnyFactorizationConcurrent_MatchesSequential(t *testing.T) {
	w, err := letter.ParseWord("urdl")
	require.NoError(t, err)

	seq, seqOk := criteria.AnyFactorization(w)
	conc, concOk := criteria.AnyFactorizationConcurrent(w)
	assert.Equal(t, seqOk, concOk)
	assert.Equal(t, seq.Kind, conc.Kind)
}

func TestAnyFactorization_NonClosingPathYieldsNoFactorization(t *testing.T) {
	w, err := letter.ParseWord("uu")
	require.NoError(t, err)

	_, ok := criteria.AnyFactorization(w)
	assert.False(t, ok)
}
