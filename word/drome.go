package word

import "github.com/alexpetrov/polytile/letter"

// IsThetaDrome reports whether w folds onto itself under rotation by theta
// degrees: walking i from the front and j from the back, it requires
// Rotate(w[i], theta+180) == w[j] at every step until the pointers meet.
// The empty word is a Θ-drome for any theta, by convention.
//
// theta=180 gives the ordinary palindrome predicate (IsPalindrome); theta=90
// gives the 90-drome predicate (Is90Drome). This resolves the two candidate
// forms the source left ambiguous (spec.md "Open questions") in favor of the
// one that makes Is90Drome("urrddr") report true, as the scenario oracle
// requires.
func IsThetaDrome(w letter.Word, theta int) bool {
	n := len(w)
	if n == 0 {
		return true
	}

	i, j := 0, n-1
	for i < j {
		rotated, err := letter.Rotate(w[i], theta+180)
		if err != nil {
			return false
		}
		if rotated != w[j] {
			return false
		}
		i++
		j--
	}
	return true
}

// IsPalindrome is IsThetaDrome at theta=180: the path folds onto itself
// under a half-turn.
func IsPalindrome(w letter.Word) bool { return IsThetaDrome(w, 180) }

// Is90Drome is IsThetaDrome at theta=90: the path folds onto itself under a
// quarter-turn.
func Is90Drome(w letter.Word) bool { return IsThetaDrome(w, 90) }
