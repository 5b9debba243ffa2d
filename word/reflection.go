package word

import "github.com/alexpetrov/polytile/letter"

// ReflectionAngles is the fixed, ordered set of axis angles the four-letter
// alphabet supports reflection across. Order matters: ReflectionAngle
// returns the first matching angle in this order.
var ReflectionAngles = [4]int{-45, 0, 45, 90}

// IsReflection reports whether a and b are the same length and, at every
// position k, a[k] == Reflect(b[k], theta).
func IsReflection(a, b letter.Word, theta int) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		r, err := letter.Reflect(b[k], theta)
		if err != nil || a[k] != r {
			return false
		}
	}
	return true
}

// IsAnyReflection reports whether a is a reflection of b at some angle in
// ReflectionAngles.
func IsAnyReflection(a, b letter.Word) bool {
	for _, theta := range ReflectionAngles {
		if IsReflection(a, b, theta) {
			return true
		}
	}
	return false
}

// ReflectionAngle returns the first angle (in ReflectionAngles order) at
// which a is a reflection of b, and true; or 0, false if none match.
func ReflectionAngle(a, b letter.Word) (int, bool) {
	for _, theta := range ReflectionAngles {
		if IsReflection(a, b, theta) {
			return theta, true
		}
	}
	return 0, false
}
