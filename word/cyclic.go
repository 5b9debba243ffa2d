// Package word provides the cyclic string operations boundary words are
// manipulated through: cyclic substring extraction, doubling, common-prefix
// comparison, and the Θ-drome / reflection predicates the criterion
// detectors in package criteria are built on.
//
// Every position accepted or returned by this package is 1-based and
// wraps modulo the word length, matching the convention spec.md fixes for
// Factor.Start/Factor.Finish.
package word

import (
	"errors"

	"github.com/alexpetrov/polytile/letter"
)

// ErrOutOfRange indicates a position argument outside [1, len(w)].
var ErrOutOfRange = errors.New("word: position out of [1, len(w)] range")

// Mod1 maps any integer x onto the 1-based cyclic range [1, n]. n must be
// positive.
func Mod1(x, n int) int {
	x = (x - 1) % n
	if x < 0 {
		x += n
	}
	return x + 1
}

// Extract returns the cyclic substring of w running from position s to
// position f, inclusive, both 1-based. If s <= f this is the ordinary
// substring w[s-1:f]; if s > f it wraps through the end of w and back
// around to the start.
func Extract(w letter.Word, s, f int) (letter.Word, error) {
	n := len(w)
	if s < 1 || s > n || f < 1 || f > n {
		return nil, ErrOutOfRange
	}
	if s <= f {
		out := make(letter.Word, f-s+1)
		copy(out, w[s-1:f])
		return out, nil
	}
	out := make(letter.Word, 0, (n-s+1)+f)
	out = append(out, w[s-1:]...)
	out = append(out, w[:f]...)
	return out, nil
}

// Twice returns w concatenated with itself: Twice(W) = W ++ W. This is the
// standard trick for treating a cyclic word as a linear one long enough to
// read any rotation or wraparound factor as an ordinary substring.
func Twice(w letter.Word) letter.Word {
	out := make(letter.Word, 0, 2*len(w))
	out = append(out, w...)
	out = append(out, w...)
	return out
}

// CommonPrefix returns the longest word that is a prefix of both a and b.
// It is a purely linear comparison; callers are responsible for rotating
// their inputs to account for cyclic wraparound before calling it (as
// AdmissibleFactors does via Twice).
func CommonPrefix(a, b letter.Word) letter.Word {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	out := make(letter.Word, i)
	copy(out, a[:i])
	return out
}
