package geom

import "github.com/alexpetrov/polytile/letter"

// PathPoints walks w letter by letter from the origin and returns every
// point visited, starting with (0,0). len(PathPoints(w)) == len(w)+1.
func PathPoints(w letter.Word) []Point {
	pts := make([]Point, 0, len(w)+1)
	cur := Point{0, 0}
	pts = append(pts, cur)
	for _, l := range w {
		cur = cur.Translate(Vec{l.DX(), l.DY()})
		pts = append(pts, cur)
	}
	return pts
}

// PathVector returns the net displacement of walking w from the origin:
// end point minus start point. A boundary word must satisfy
// PathVector(w) == (0,0) (the path closes).
func PathVector(w letter.Word) Vec {
	var v Vec
	for _, l := range w {
		v.DX += l.DX()
		v.DY += l.DY()
	}
	return v
}

// PolygonFromWord builds the closed polygon traced by w: PathPoints(w) with the
// final (duplicate, closing) point dropped.
func PolygonFromWord(w letter.Word) Polygon {
	pts := PathPoints(w)
	if len(pts) == 0 {
		return nil
	}
	return Polygon(pts[:len(pts)-1])
}
