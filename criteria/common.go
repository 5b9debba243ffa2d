// Package criteria implements the seven boundary criteria of spec.md §4.4
// (translation, half-turn, quarter-turn, and the four reflection variants)
// as independent search procedures over a cyclic boundary word, plus the
// AnyFactorization orchestrator that tries them in the fixed spec order.
//
// Every detector shares the same shape: nested loops over candidate cyclic
// split points, each loop pruned as soon as the accumulated factor lengths
// can no longer fit the remaining budget. factorAt and backtrackPair below
// are the common primitives that shape is built from (spec.md §9,
// "Detector shape").
package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// factorAt extracts the length-L factor of w starting at the 1-based
// cyclic position start.
func factorAt(w letter.Word, start, length int) (factor.Factor, error) {
	n := len(w)
	finish := word.Mod1(start+length-1, n)
	return factor.NewFactor(w, start, finish)
}

// backtrackPair reports whether b is exactly Backtrack(a.Content) -- the
// shape every "Â" factor in every criterion must satisfy relative to its A.
func backtrackPair(a, b factor.Factor) bool {
	if a.Len() != b.Len() {
		return false
	}
	bt := letter.Backtrack(a.Content)
	for i := range bt {
		if bt[i] != b.Content[i] {
			return false
		}
	}
	return true
}

// chain builds a Factorization from factors already known to be
// contiguous on the cycle, without re-validating adjacency (callers
// construct each factor's start from the previous factor's NextStart).
func chain(factors ...factor.Factor) factor.Factorization {
	return factor.Factorization{Factors: append([]factor.Factor(nil), factors...)}
}

// bw wraps a Factorization with its CriterionKind.
func bw(kind factor.CriterionKind, fz factor.Factorization) factor.BWFactorization {
	return factor.BWFactorization{Factorization: fz, Kind: kind}
}
