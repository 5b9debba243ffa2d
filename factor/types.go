// Package factor defines the Factor/Factorization/BWFactorization value
// types every criterion detector in package criteria produces, and the
// admissible-factor index (the translation criterion's search space) built
// on top of them.
package factor

import (
	"errors"
	"fmt"

	"github.com/alexpetrov/polytile/letter"
	"github.com/alexpetrov/polytile/word"
)

// ErrOutOfRange is returned by NewFactor when start or finish falls outside
// [1, len(w)].
var ErrOutOfRange = word.ErrOutOfRange

// ErrInternalInvariant wraps any check on internal factorization structure
// that should be impossible to fail given a correct detector. It signals a
// programmer bug in this module, not a malformed or unrecognized input.
var ErrInternalInvariant = errors.New("factor: internal invariant violated")

// CriterionKind tags which of the seven boundary criteria produced a
// BWFactorization.
type CriterionKind int

const (
	Translation CriterionKind = iota
	HalfTurn
	QuarterTurn
	TypeOneReflection
	TypeTwoReflection
	TypeOneHalfTurnReflection
	TypeTwoHalfTurnReflection
)

// Kinds lists every CriterionKind in the fixed orchestration order
// AnyFactorization tries them in.
var Kinds = [7]CriterionKind{
	Translation,
	HalfTurn,
	QuarterTurn,
	TypeOneReflection,
	TypeTwoReflection,
	TypeOneHalfTurnReflection,
	TypeTwoHalfTurnReflection,
}

func (k CriterionKind) String() string {
	switch k {
	case Translation:
		return "Translation"
	case HalfTurn:
		return "HalfTurn"
	case QuarterTurn:
		return "QuarterTurn"
	case TypeOneReflection:
		return "TypeOneReflection"
	case TypeTwoReflection:
		return "TypeTwoReflection"
	case TypeOneHalfTurnReflection:
		return "TypeOneHalfTurnReflection"
	case TypeTwoHalfTurnReflection:
		return "TypeTwoHalfTurnReflection"
	default:
		return fmt.Sprintf("CriterionKind(%d)", int(k))
	}
}

// Factor is a contiguous, possibly wrapping, cyclic substring of a boundary
// word. Length is len(Content), never Finish-Start: a factor that wraps has
// Start > Finish.
type Factor struct {
	Content letter.Word
	Start   int // 1-based
	Finish  int // 1-based, inclusive
}

// NewFactor extracts the cyclic substring of w from start to finish
// (1-based, inclusive) and returns it as a Factor.
func NewFactor(w letter.Word, start, finish int) (Factor, error) {
	content, err := word.Extract(w, start, finish)
	if err != nil {
		return Factor{}, err
	}
	return Factor{Content: content, Start: start, Finish: finish}, nil
}

// Len returns the factor's length (its content length).
func (f Factor) Len() int { return len(f.Content) }

// NextStart returns the 1-based start position immediately following this
// factor on a cycle of length n: Finish+1 mod n.
func (f Factor) NextStart(n int) int { return word.Mod1(f.Finish+1, n) }

// Factorization is an ordered list of Factors whose contents, concatenated,
// equal a cyclic rotation of the source word, each factor's Start equal to
// its predecessor's Finish+1 (mod n).
type Factorization struct {
	Factors []Factor
}

// Concat concatenates every factor's content in order.
func (fz Factorization) Concat() letter.Word {
	var total int
	for _, f := range fz.Factors {
		total += f.Len()
	}
	out := make(letter.Word, 0, total)
	for _, f := range fz.Factors {
		out = append(out, f.Content...)
	}
	return out
}

// Valid reports whether consecutive factors chain correctly on a cycle of
// length n: each factor's Start equals its predecessor's Finish+1 (mod n).
func (fz Factorization) Valid(n int) bool {
	for i := 1; i < len(fz.Factors); i++ {
		if fz.Factors[i].Start != fz.Factors[i-1].NextStart(n) {
			return false
		}
	}
	return true
}

// BWFactorization pairs a Factorization with the CriterionKind of the
// boundary criterion that produced it.
type BWFactorization struct {
	Factorization Factorization
	Kind          CriterionKind
}
