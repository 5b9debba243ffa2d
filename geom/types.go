// Package geom holds the plane-geometry value types the rest of this module
// shares: lattice Points and Vecs, Polygons, and the tagged Transform value
// that the isometry builder constructs and the tiling generator interprets.
//
// Transforms are deliberately data, not closures (spec.md §9): a tagged
// struct the tiling generator can apply, compare, and log, instead of a
// captured lambda.
package geom

// Vec is an integer displacement on the lattice.
type Vec struct {
	DX, DY int
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.DX + o.DX, v.DY + o.DY} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.DX, -v.DY} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.DX - o.DX, v.DY - o.DY} }

// Point is a lattice coordinate.
type Point struct {
	X, Y int
}

// Translate returns p+v.
func (p Point) Translate(v Vec) Point { return Point{p.X + v.DX, p.Y + v.DY} }

// Sub returns the vector from o to p (p-o).
func (p Point) Sub(o Point) Vec { return Vec{p.X - o.X, p.Y - o.Y} }

// Polygon is an ordered sequence of lattice points. Equality between
// Polygons is strict sequence equality: no canonicalization, no rotation of
// the starting vertex. The tiling generator's dedup depends on this.
type Polygon []Point

// Equal reports whether p and o have the same vertices in the same order.
func (p Polygon) Equal(o Polygon) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Key returns a value suitable for use as a map key encoding p's exact
// vertex sequence, for the tiling generator's visited set.
func (p Polygon) Key() string {
	buf := make([]byte, 0, len(p)*12)
	for _, pt := range p {
		buf = appendInt(buf, pt.X)
		buf = append(buf, ',')
		buf = appendInt(buf, pt.Y)
		buf = append(buf, ';')
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
