package isometry

import (
	"fmt"

	"github.com/alexpetrov/polytile/factor"
	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
)

// buildTranslation implements spec.md §4.5's Translation table: u and v are
// the path vectors of the A and B factors of the BN decomposition
// W = A B C Â B̂ Ĉ; the six neighbor transforms are pure translations by
// {u, v, v-u, -u, -v, u-v}. When C is empty the search collapses to the
// four-factor degenerate form W = A B Â B̂ (the unit square "urdl" is the
// spec's canonical example); u and v are read off the same two leading
// factors, and only the four edge-sharing translations {u, v, -u, -v} are
// returned, since v-u and u-v meet the seed at a corner only.
func buildTranslation(_ geom.Polygon, _ letter.Word, fz factor.Factorization) []geom.Transform {
	fs := fz.Factors
	if len(fs) != 4 && len(fs) != 6 {
		panic(fmt.Sprintf("isometry: translation expects 4 or 6 factors, got %d", len(fs)))
	}
	a, b := fs[0], fs[1]

	u := geom.PathVector(a.Content)
	v := geom.PathVector(b.Content)

	if len(fs) == 4 {
		return []geom.Transform{
			geom.Translate(u),
			geom.Translate(v),
			geom.Translate(u.Neg()),
			geom.Translate(v.Neg()),
		}
	}

	return []geom.Transform{
		geom.Translate(u),
		geom.Translate(v),
		geom.Translate(v.Sub(u)),
		geom.Translate(u.Neg()),
		geom.Translate(v.Neg()),
		geom.Translate(u.Sub(v)),
	}
}
