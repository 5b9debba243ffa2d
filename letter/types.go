// Package letter defines the four-letter alphabet {R, U, L, D} that every
// boundary word is built from, and the pure rotation/reflection/backtrack
// transforms on single letters and on whole words.
//
// The alphabet order is fixed at [R, U, L, D]. Every rotation and reflection
// is implemented as an index shift over this ordering, so changing the order
// would silently invert the rotation sense used by every caller in this
// module — never reorder the Letter constants.
package letter

import "errors"

// ErrBadLetter indicates a byte outside {'r','u','l','d'} (lowercase only).
var ErrBadLetter = errors.New("letter: byte is not one of r,u,l,d")

// ErrBadAngle indicates an angle not divisible by the operation's required step.
var ErrBadAngle = errors.New("letter: angle is not a supported multiple")

// Letter is one of the four unit moves on the integer lattice. The constant
// order R,U,L,D is load-bearing: Rotate and Reflect both advance this index.
type Letter uint8

const (
	R Letter = iota // (+1, 0)
	U               // (0, -1) -- y axis points down (screen convention)
	L               // (-1, 0)
	D               // (0, +1)
)

// numLetters is the alphabet size; rotation/reflection index arithmetic is
// modulo this constant.
const numLetters = 4

// String renders l as its canonical lowercase byte.
func (l Letter) String() string {
	switch l {
	case R:
		return "r"
	case U:
		return "u"
	case L:
		return "l"
	case D:
		return "d"
	default:
		return "?"
	}
}

// DX, DY return the unit lattice displacement of l under the screen-down
// y-axis convention: R=(+1,0), U=(0,-1), L=(-1,0), D=(0,+1).
func (l Letter) DX() int {
	switch l {
	case R:
		return 1
	case L:
		return -1
	default:
		return 0
	}
}

func (l Letter) DY() int {
	switch l {
	case U:
		return -1
	case D:
		return 1
	default:
		return 0
	}
}

// Parse converts a single ASCII byte into a Letter. Accepts 'r','u','l','d'
// (lowercase only, per the external boundary-word alphabet contract).
func Parse(b byte) (Letter, error) {
	switch b {
	case 'r':
		return R, nil
	case 'u':
		return U, nil
	case 'l':
		return L, nil
	case 'd':
		return D, nil
	default:
		return 0, ErrBadLetter
	}
}

// index returns l's position in the fixed [R,U,L,D] ordering.
func index(l Letter) int { return int(l) }

// fromIndex maps a (possibly out-of-range or negative) index back onto the
// alphabet, wrapping modulo numLetters.
func fromIndex(i int) Letter {
	i %= numLetters
	if i < 0 {
		i += numLetters
	}
	return Letter(i)
}
