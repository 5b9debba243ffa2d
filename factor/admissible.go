package factor

import (
	"sort"

	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// AdmissibleFactors returns every maximal (admissible) A-half of a gapped
// mirror pair (A, Â) on the cyclic word w, per spec.md §4.3: Â =
// Backtrack(A), A and Â start at antipodal positions, and the pair cannot
// be extended by one letter on either side while preserving that property.
//
// len(w) must be even; AdmissibleFactors considers every size-1 center (a
// letter) and every size-2 center (the gap between two consecutive
// letters), 2n centers in total, and records a factor wherever both arms
// extend by the same positive length.
//
// Results are deduplicated by (Start, Finish); order is unspecified here —
// callers needing determinism use FactorsByStart/FactorsByFinish.
func AdmissibleFactors(w letter.Word) []Factor {
	n := len(w)
	if n == 0 || n%2 != 0 {
		return nil
	}

	w2 := word.Twice(w)
	b2 := word.Twice(letter.Backtrack(w))

	seen := make(map[[2]int]bool)
	var out []Factor

	record := func(start, finish int) {
		start = word.Mod1(start, n)
		finish = word.Mod1(finish, n)
		key := [2]int{start, finish}
		if seen[key] {
			return
		}
		seen[key] = true
		f, err := NewFactor(w, start, finish)
		if err != nil {
			return
		}
		out = append(out, f)
	}

	half := n / 2
	win := func(s2 letter.Word, start1based int) letter.Word {
		// A 1-based, length-n window into a doubled (length 2n) word,
		// starting at start1based in [1, n].
		return s2[start1based-1 : start1based-1+n]
	}

	for c := 1; c <= n; c++ {
		// Size-1 center: through the letter at position c.
		d := word.Mod1(c+half, n)

		r := word.CommonPrefix(win(w2, c), win(b2, word.Mod1(n-d+1, n)))
		l := word.CommonPrefix(win(w2, d), win(b2, word.Mod1(n-c+1, n)))
		if len(r) == len(l) && len(r) > 0 {
			record(c-len(l)+1, c+len(r)-1)
		}

		// Size-2 center: the gap between the letter at c and the letter at
		// c+1. The antipodal gap sits between d and d+1, using the same d;
		// the backtrack-side window starts exactly where the size-1 case's
		// did, only the forward-word-side window shifts by one letter to
		// read from just past the gap.
		r2 := word.CommonPrefix(win(w2, word.Mod1(c+1, n)), win(b2, word.Mod1(n-d+1, n)))
		l2 := word.CommonPrefix(win(w2, word.Mod1(d+1, n)), win(b2, word.Mod1(n-c+1, n)))
		if len(r2) == len(l2) && len(r2) > 0 {
			record(c+1-len(l2), c+len(r2))
		}
	}

	return out
}

// byPosition groups factors by a position (Start or Finish), sorted by
// ascending length. Every position in [1, n] is present as a key, with an
// empty slice where no admissible factor touches it.
func byPosition(n int, factors []Factor, key func(Factor) int) map[int][]Factor {
	out := make(map[int][]Factor, n)
	for p := 1; p <= n; p++ {
		out[p] = nil
	}
	for _, f := range factors {
		p := key(f)
		out[p] = append(out[p], f)
	}
	for p := range out {
		fs := out[p]
		sort.SliceStable(fs, func(i, j int) bool { return fs[i].Len() < fs[j].Len() })
		out[p] = fs
	}
	return out
}

// FactorsByStart maps every position in [1, len(w)] to the admissible
// factors starting there, ascending by length.
func FactorsByStart(w letter.Word) map[int][]Factor {
	return byPosition(len(w), AdmissibleFactors(w), func(f Factor) int { return f.Start })
}

// FactorsByFinish maps every position in [1, len(w)] to the admissible
// factors finishing there, ascending by length.
func FactorsByFinish(w letter.Word) map[int][]Factor {
	return byPosition(len(w), AdmissibleFactors(w), func(f Factor) int { return f.Finish })
}
