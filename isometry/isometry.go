// Every builder in this package presumes its caller already validated the
// factorization's shape -- that is package criteria's job. A shape mismatch
// here (a wrong factor count, or type-2 reflection angles that disagree) is
// an InternalInvariantViolated per spec.md §7, surfaced as
// factor.ErrInternalInvariant rather than a panic escaping to the caller.
package isometry

import (
	"fmt"

	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
)

// builder is the per-kind transform construction function.
type builder func(poly geom.Polygon, w letter.Word, fz factor.Factorization) []geom.Transform

var builders = map[factor.CriterionKind]builder{
	factor.Translation:                buildTranslation,
	factor.HalfTurn:                   buildHalfTurn,
	factor.QuarterTurn:                buildQuarterTurn,
	factor.TypeOneReflection:          buildTypeOneReflection,
	factor.TypeTwoReflection:          buildTypeTwoReflection,
	factor.TypeOneHalfTurnReflection:  buildTypeOneHalfTurnReflection,
	factor.TypeTwoHalfTurnReflection:  buildTypeTwoHalfTurnReflection,
}

// Build returns the neighbor transforms for bwf over the boundary word w.
// poly is the seed polygon (geom.PolygonFromWord(w)).
//
// Build recovers any internal panic raised while walking the factorization
// (an out-of-range pivot, a shape assumption violated) and reports it as
// factor.ErrInternalInvariant, per spec.md §7 -- callers that already
// trust a detector's output will never observe this in practice.
func Build(poly geom.Polygon, w letter.Word, bwf factor.BWFactorization) (transforms []geom.Transform, err error) {
	b, ok := builders[bwf.Kind]
	if !ok {
		return nil, fmt.Errorf("isometry: %w: unknown criterion kind %v", factor.ErrInternalInvariant, bwf.Kind)
	}

	defer func() {
		if r := recover(); r != nil {
			transforms = nil
			err = fmt.Errorf("isometry: %w: %v", factor.ErrInternalInvariant, r)
		}
	}()
	return b(poly, w, bwf.Factorization), nil
}

// vertexAt returns the polygon vertex at a 1-based cyclic word position.
func vertexAt(poly geom.Polygon, pos int) geom.Point {
	n := len(poly)
	idx := (pos - 1) % n
	if idx < 0 {
		idx += n
	}
	return poly[idx]
}

// translateTo returns the translation that carries the vertex at fromPos to
// the vertex at toPos.
func translateTo(poly geom.Polygon, fromPos, toPos int) geom.Vec {
	return vertexAt(poly, toPos).Sub(vertexAt(poly, fromPos))
}

func mustFactors(fz factor.Factorization, n int) []factor.Factor {
	if len(fz.Factors) != n {
		panic(fmt.Sprintf("expected %d factors, got %d", n, len(fz.Factors)))
	}
	return fz.Factors
}
