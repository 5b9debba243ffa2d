package letter

// Rotate implements tθ: rotates l by theta degrees, counter-clockwise in the
// mathematical sense, by advancing the alphabet index by theta/90 mod 4.
// theta must be a multiple of 90; any other value returns l unchanged along
// with ErrBadAngle so callers can decide whether to treat it as a programmer
// error.
func Rotate(l Letter, theta int) (Letter, error) {
	if theta%90 != 0 {
		return l, ErrBadAngle
	}

	return fromIndex(index(l) + theta/90), nil
}

// MustRotate is Rotate without the error return, for call sites where theta
// is a compile-time constant known to be a multiple of 90.
func MustRotate(l Letter, theta int) Letter {
	r, err := Rotate(l, theta)
	if err != nil {
		panic(err)
	}
	return r
}

// Complement rotates l by 180 degrees: Complement = tθ(_, 180).
func Complement(l Letter) Letter {
	return fromIndex(index(l) + 2)
}

// isOdd reports whether l sits at an odd 1-based position in [R,U,L,D],
// i.e. l is R or L.
func isOdd(l Letter) bool {
	return l == R || l == L
}

// reflectStep is the full rotation fθ applies, keyed by angle and by
// whether the input letter is odd- or even-indexed (1-based). Table from
// spec.md §4.1.
func reflectStep(theta int, odd bool) int {
	switch theta {
	case -45:
		if odd {
			return -90
		}
		return 90
	case 0:
		if odd {
			return 0
		}
		return 180
	case 45:
		if odd {
			return 90
		}
		return -90
	case 90:
		if odd {
			return 180
		}
		return 0
	default:
		return 0
	}
}

// Reflect implements fθ: reflects l across the line through the origin at
// angle theta from the x-axis, for theta in {-45, 0, 45, 90}. Any other
// angle returns ErrBadAngle. Reflect is its own inverse: Reflect(Reflect(l,
// theta), theta) == l.
func Reflect(l Letter, theta int) (Letter, error) {
	switch theta {
	case -45, 0, 45, 90:
	default:
		return l, ErrBadAngle
	}

	step := reflectStep(theta, isOdd(l))

	return fromIndex(index(l) + step/90), nil
}

// MustReflect is Reflect without the error return, for theta values known at
// the call site to be one of the four supported angles.
func MustReflect(l Letter, theta int) Letter {
	r, err := Reflect(l, theta)
	if err != nil {
		panic(err)
	}
	return r
}
