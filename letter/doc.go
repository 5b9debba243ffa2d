// Package letter is the alphabet at the bottom of every boundary-word
// computation in this module: four unit lattice moves and the handful of
// pure functions (Rotate, Reflect, Complement, Backtrack) that the
// factorization criteria are built from.
//
// See package word for the cyclic string operations layered on top of Word.
package letter
