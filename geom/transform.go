package geom

import "fmt"

// Op tags the kind of affine map a Transform represents.
type Op int

const (
	OpTranslate Op = iota
	OpRotate
	OpMirror
)

// Transform is an immutable, serializable affine map on a Polygon: a
// translation, or a rotation/mirror about one of the polygon's own vertices
// followed by a translation. Constructed once by package isometry and
// interpreted by package tiling and by Apply below — never a closure, per
// spec.md §9.
type Transform struct {
	Op Op

	// Vec is used when Op == OpTranslate.
	Vec Vec

	// Angle is used when Op == OpRotate (one of -90, 90, 180) or
	// Op == OpMirror (one of -45, 0, 45, 90).
	Angle int

	// PivotVertexIndex selects the polygon vertex rotation/mirror pivots
	// about, before any final translation. Used when Op != OpTranslate.
	PivotVertexIndex int

	// ThenTranslate is applied after the rotation/mirror. Used when
	// Op != OpTranslate.
	ThenTranslate Vec
}

// Translate builds a pure translation transform.
func Translate(v Vec) Transform {
	return Transform{Op: OpTranslate, Vec: v}
}

// Rotate builds a rotate-then-translate transform: rotate by angle
// (-90, 90, or 180) about the polygon's pivotIdx-th vertex, then translate
// by then.
func Rotate(angle, pivotIdx int, then Vec) Transform {
	return Transform{Op: OpRotate, Angle: angle, PivotVertexIndex: pivotIdx, ThenTranslate: then}
}

// Mirror builds a mirror-then-translate transform: reflect across the line
// at angle theta (-45, 0, 45, or 90) through the polygon's pivotIdx-th
// vertex, then translate by then.
func Mirror(angle, pivotIdx int, then Vec) Transform {
	return Transform{Op: OpMirror, Angle: angle, PivotVertexIndex: pivotIdx, ThenTranslate: then}
}

// rotateVec rotates a displacement by angle degrees, one of -90, 90, 180,
// under the screen-down y-axis convention (spec.md §4.5).
func rotateVec(v Vec, angle int) Vec {
	switch angle {
	case 180:
		return Vec{-v.DX, -v.DY}
	case 90:
		return Vec{v.DY, -v.DX}
	case -90:
		return Vec{-v.DY, v.DX}
	default:
		panic(fmt.Sprintf("geom: rotateVec: unsupported angle %d", angle))
	}
}

// mirrorVec reflects a displacement across the line through the origin at
// angle theta, one of -45, 0, 45, 90 (spec.md §4.5; the 45-degree cases are
// already stated in the y-axis-inverted form the rest of this module uses,
// so mirrorVec agrees with letter.Reflect at every angle).
func mirrorVec(v Vec, theta int) Vec {
	switch theta {
	case -45:
		return Vec{v.DY, v.DX}
	case 0:
		return Vec{v.DX, -v.DY}
	case 45:
		return Vec{-v.DY, -v.DX}
	case 90:
		return Vec{-v.DX, v.DY}
	default:
		panic(fmt.Sprintf("geom: mirrorVec: unsupported angle %d", theta))
	}
}

// Apply maps poly through t, producing a new Polygon. Apply never mutates
// poly.
func Apply(t Transform, poly Polygon) Polygon {
	switch t.Op {
	case OpTranslate:
		return translatePoly(poly, t.Vec)
	case OpRotate:
		return pivotPoly(poly, t.PivotVertexIndex, t.ThenTranslate, func(v Vec) Vec {
			return rotateVec(v, t.Angle)
		})
	case OpMirror:
		return pivotPoly(poly, t.PivotVertexIndex, t.ThenTranslate, func(v Vec) Vec {
			return mirrorVec(v, t.Angle)
		})
	default:
		panic(fmt.Sprintf("geom: Apply: unknown op %d", t.Op))
	}
}

func translatePoly(poly Polygon, v Vec) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = p.Translate(v)
	}
	return out
}

func pivotPoly(poly Polygon, pivotIdx int, then Vec, f func(Vec) Vec) Polygon {
	pivot := poly[pivotIdx]
	out := make(Polygon, len(poly))
	for i, p := range poly {
		d := p.Sub(pivot)
		mapped := pivot.Translate(f(d))
		out[i] = mapped.Translate(then)
	}
	return out
}
