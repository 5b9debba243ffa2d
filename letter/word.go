package letter

import "strings"

// Word is a finite, non-empty sequence of Letters. Every factorization
// operation elsewhere in this module treats a Word as cyclic; Word itself
// carries no notion of a start offset.
type Word []Letter

// ParseWord converts a lowercase string over {r,u,l,d} into a Word. Returns
// ErrBadLetter at the first illegal byte.
func ParseWord(s string) (Word, error) {
	w := make(Word, len(s))
	for i := 0; i < len(s); i++ {
		l, err := Parse(s[i])
		if err != nil {
			return nil, err
		}
		w[i] = l
	}
	return w, nil
}

// String renders w as its lowercase letter sequence.
func (w Word) String() string {
	var sb strings.Builder
	sb.Grow(len(w))
	for _, l := range w {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	c := make(Word, len(w))
	copy(c, w)
	return c
}

// ComplementWord maps Complement letter-wise over w.
func ComplementWord(w Word) Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[i] = Complement(l)
	}
	return out
}

// ReverseWord returns w with its letters in reverse order (no complement).
func ReverseWord(w Word) Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[len(w)-1-i] = l
	}
	return out
}

// Backtrack returns the word that retraces w in the opposite lattice
// direction: Backtrack(W) = Complement(Reverse(W)).
func Backtrack(w Word) Word {
	return ComplementWord(ReverseWord(w))
}
