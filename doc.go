// Package polytile decides whether a polyomino admits an isohedral tiling
// of the plane, and, when it does, builds the plane isometries that
// generate that tiling from a single seed tile.
//
// 🧩 What is polytile?
//
//	A small, dependency-light engine that takes the clockwise boundary
//	word of a polyomino and answers one question: does this shape tile
//	the plane so that every copy is reachable from every other by a
//	symmetry of the tiling?
//
//	  • Boundary factorization: seven independent criteria, each either
//	    a translation, a half-turn, a quarter-turn, or one of four
//	    reflection variants
//	  • Isometry builder: turns a successful factorization into the
//	    concrete rotations, reflections and translations that place the
//	    seed tile's neighbors
//	  • Tiling generator: a bounded BFS that expands a seed polygon
//	    under those isometries into the surrounding patch of tiles
//
// Under the hood, everything is organized under focused subpackages:
//
//	letter/   — the four-letter alphabet and its rotation/reflection transforms
//	word/     — cyclic word operations: extraction, Θ-dromes, reflections
//	factor/   — the Factor/Factorization value types and the admissible-factor index
//	criteria/ — the seven boundary criteria and their orchestrator
//	isometry/ — builds plane transforms from a successful factorization
//	geom/     — lattice points, polygons, and the Transform value type
//	tiling/   — the bounded BFS tiling generator
//	cmd/polytile/ — a CLI front end over the above
//
// Quick example: the boundary word "urdl" (a single unit square, traced
// clockwise) satisfies the translation criterion trivially, and tiles the
// plane the way unit squares always do.
//
//	go get github.com/alexpetrov/polytile
package polytile
