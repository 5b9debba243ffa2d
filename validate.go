package polytile

import (
	"errors"
	"fmt"

	"github.com/alexpetrov/polytile/geom"
	"github.com/alexpetrov/polytile/letter"
)

// ErrMalformedBoundary is returned when an input string is not a valid
// boundary word: wrong alphabet, odd length, too short, a non-closing
// path, or a cheaply-detected self-intersection (spec.md §6-7).
var ErrMalformedBoundary = errors.New("polytile: malformed boundary")

// ParseBoundary parses s as a clockwise boundary word and validates the
// invariants spec.md §3 requires of one: even length >= 4, and a closed,
// simple path.
func ParseBoundary(s string) (letter.Word, error) {
	w, err := letter.ParseWord(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBoundary, err)
	}
	if err := validateBoundary(w); err != nil {
		return nil, err
	}
	return w, nil
}

func validateBoundary(w letter.Word) error {
	n := len(w)
	if n < 4 || n%2 != 0 {
		return fmt.Errorf("%w: length must be even and >= 4, got %d", ErrMalformedBoundary, n)
	}
	if v := geom.PathVector(w); v != (geom.Vec{}) {
		return fmt.Errorf("%w: path does not close, ends at %+v", ErrMalformedBoundary, v)
	}
	if selfIntersects(w) {
		return fmt.Errorf("%w: boundary self-intersects", ErrMalformedBoundary)
	}
	return nil
}

// selfIntersects reports whether the path traced by w visits any lattice
// point more than once, other than its shared start/end point -- a cheap
// necessary condition for a simple closed polygon (spec.md §7).
func selfIntersects(w letter.Word) bool {
	pts := geom.PathPoints(w)
	seen := make(map[geom.Point]bool, len(pts))
	for _, p := range pts[:len(pts)-1] {
		if seen[p] {
			return true
		}
		seen[p] = true
	}
	return false
}
