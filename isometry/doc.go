// Package isometry turns a BWFactorization into the list of geom.Transform
// values that carry a seed polygon to each of its immediate neighbors in
// the isohedral tiling (spec.md §4.5).
package isometry
