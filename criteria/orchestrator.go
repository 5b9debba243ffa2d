package criteria

import (
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
)

// detector is the common shape every criterion search implements: given a
// cyclic boundary word, either find a BWFactorization or report failure.
type detector func(letter.Word) (factor.BWFactorization, bool)

// orderedDetectors lists the seven detectors in the fixed canonical order
// spec.md §4.4 mandates for tie-breaking.
var orderedDetectors = [...]detector{
	DetectTranslation,
	DetectHalfTurn,
	DetectQuarterTurn,
	DetectTypeOneReflection,
	DetectTypeTwoReflection,
	DetectTypeOneHalfTurnReflection,
	DetectTypeTwoHalfTurnReflection,
}

// AnyFactorization tries every criterion in canonical order and returns the
// first that matches. Detectors never error; a word that satisfies none of
// them simply yields (zero value, false) -- the NoFactorization outcome. A
// word whose path does not close is not a boundary word and yields the same
// outcome without any detector being run.
func AnyFactorization(w letter.Word) (factor.BWFactorization, bool) {
	if geom.PathVector(w) != (geom.Vec{}) {
		return factor.BWFactorization{}, false
	}
	for _, d := range orderedDetectors {
		if bwf, ok := d(w); ok {
			return bwf, ok
		}
	}
	return factor.BWFactorization{}, false
}

// AnyFactorizationConcurrent runs all seven detectors concurrently and
// returns the result belonging to the first kind (in canonical order) that
// matched, not the first to finish -- so the observable outcome is
// identical to AnyFactorization regardless of scheduling (spec.md §5).
func AnyFactorizationConcurrent(w letter.Word) (factor.BWFactorization, bool) {
	type result struct {
		bwf factor.BWFactorization
		ok  bool
	}
	if geom.PathVector(w) != (geom.Vec{}) {
		return factor.BWFactorization{}, false
	}
	results := make([]result, len(orderedDetectors))
	done := make(chan int, len(orderedDetectors))
	for i, d := range orderedDetectors {
		go func(i int, d detector) {
			bwf, ok := d(w)
			results[i] = result{bwf, ok}
			done <- i
		}(i, d)
	}
	for range orderedDetectors {
		<-done
	}
	for _, r := range results {
		if r.ok {
			return r.bwf, true
		}
	}
	return factor.BWFactorization{}, false
}
