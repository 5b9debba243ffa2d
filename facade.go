package polytile

import (
	"errors"

	"github.com/alexpetrov/polytile/criteria"
	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/isometry"
	"github.com/alexpetrov/polytile/tiling"
)

// ErrNoFactorization is returned by Tile when the boundary word is
// well-formed but matches none of the seven criteria -- spec.md §7's
// NoFactorization outcome, surfaced as an error here because Tile has no
// tiling to hand back.
var ErrNoFactorization = errors.New("polytile: no factorization")

// FactorizationResult bundles everything Factorize produces for a
// recognized boundary word: the tagged factorization, the seed polygon it
// was computed over, and the neighbor transforms the isometry builder
// derived from it.
type FactorizationResult struct {
	BW         factor.BWFactorization
	Seed       geom.Polygon
	Transforms []geom.Transform
}

// Factorize parses boundary, validates it, and runs the seven criteria in
// canonical order (spec.md §4.4, §9). found is false, with a zero
// FactorizationResult, when boundary is well-formed but matches no
// criterion -- the NoFactorization outcome, not an error. err is non-nil
// for a malformed boundary word, or wraps factor.ErrInternalInvariant when
// the isometry builder rejects the factorization's shape.
func Factorize(boundary string) (result FactorizationResult, found bool, err error) {
	w, err := ParseBoundary(boundary)
	if err != nil {
		return FactorizationResult{}, false, err
	}

	bwf, ok := criteria.AnyFactorization(w)
	if !ok {
		return FactorizationResult{}, false, nil
	}

	seed := geom.PolygonFromWord(w)
	transforms, err := isometry.Build(seed, w, bwf)
	if err != nil {
		return FactorizationResult{}, false, err
	}

	return FactorizationResult{BW: bwf, Seed: seed, Transforms: transforms}, true, nil
}

// Tile factorizes boundary and, on success, expands the resulting seed
// polygon and transforms into the surrounding tiling via tiling.Generate.
// It returns ErrNoFactorization when boundary admits no criterion.
func Tile(boundary string, opts ...tiling.Option) (*tiling.Result, error) {
	fr, found, err := Factorize(boundary)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoFactorization
	}
	return tiling.Generate(fr.Seed, fr.Transforms, opts...)
}
