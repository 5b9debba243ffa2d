// Package tiling provides a bounded breadth-first expansion of a seed
// polygon under a list of neighbor transforms, producing the lattice
// polygons of an isohedral tiling (spec.md §4.6).
package tiling

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("tiling: invalid option supplied")

// ErrNoSeed is returned when Generate is called with an empty seed polygon.
var ErrNoSeed = errors.New("tiling: seed polygon is empty")

// Option configures a Generate run via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Generate is invoked.
type Option func(*Config)

// Config holds the bound Generate clips its BFS expansion to: either a
// window centered on the origin, or (for diagnostic use, spec.md §4.6) a
// maximum BFS depth. When MaxDepth > 0 it takes precedence over the window.
type Config struct {
	// WindowX, WindowY bound the search: a polygon is kept iff at least one
	// vertex lies in [-WindowX/2, WindowX/2] x [-WindowY/2, WindowY/2].
	WindowX, WindowY int

	// MaxDepth, if > 0, replaces the window test with "BFS depth <= MaxDepth".
	MaxDepth int

	// OnVisit, if set, is called once for every polygon accepted into the
	// visited set, in discovery order.
	OnVisit func(depth int)

	err error
}

// DefaultConfig returns a Config with a generous default window and no
// depth bound.
func DefaultConfig() Config {
	return Config{
		WindowX:  64,
		WindowY:  64,
		MaxDepth: 0,
		OnVisit:  func(int) {},
	}
}

// WithWindow sets the bounding window's full width x and height y, centered
// on the origin (each half-extent is x/2, y/2). Both must be positive.
func WithWindow(x, y int) Option {
	return func(c *Config) {
		if x <= 0 || y <= 0 {
			c.err = fmt.Errorf("%w: window extents must be positive, got (%d, %d)", ErrOptionViolation, x, y)
			return
		}
		c.WindowX, c.WindowY = x, y
	}
}

// WithMaxDepth bounds the BFS by depth instead of by window, for
// diagnostic use (spec.md §4.6). depth must be >= 0; 0 disables the bound.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		if depth < 0 {
			c.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, depth)
			return
		}
		c.MaxDepth = depth
	}
}

// WithOnVisit registers a callback invoked once per polygon accepted into
// the visited set.
func WithOnVisit(fn func(depth int)) Option {
	return func(c *Config) {
		if fn != nil {
			c.OnVisit = fn
		}
	}
}

// Result holds the outcome of a Generate run.
type Result struct {
	// Polygons lists every distinct polygon found, in BFS discovery order.
	Polygons []PolygonEntry
}
