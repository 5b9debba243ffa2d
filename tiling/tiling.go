package tiling

import (
	"github.com/alexpetrov/polytile/geom"
)

// PolygonEntry pairs a discovered polygon with its BFS depth from the seed.
type PolygonEntry struct {
	Polygon geom.Polygon
	Depth   int
}

type queueItem struct {
	poly  geom.Polygon
	depth int
}

// Generate runs the bounded BFS expansion of spec.md §4.6: starting from
// seed, it repeatedly applies every transform in transforms to each visited
// polygon, keeping any image that is in bounds and not already visited
// (exact vertex-sequence equality, via geom.Polygon.Key), until the queue
// empties. Output order is BFS discovery order and is deterministic given
// (seed, transforms, Config).
func Generate(seed geom.Polygon, transforms []geom.Transform, opts ...Option) (*Result, error) {
	if len(seed) == 0 {
		return nil, ErrNoSeed
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	visited := make(map[string]bool)
	queue := []queueItem{{poly: seed, depth: 0}}
	visited[seed.Key()] = true

	res := &Result{Polygons: make([]PolygonEntry, 0, 16)}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Polygons = append(res.Polygons, PolygonEntry{Polygon: item.poly, Depth: item.depth})
		cfg.OnVisit(item.depth)

		for _, t := range transforms {
			next := geom.Apply(t, item.poly)
			key := next.Key()
			if visited[key] {
				continue
			}
			if !inBounds(next, item.depth+1, cfg) {
				continue
			}
			visited[key] = true
			queue = append(queue, queueItem{poly: next, depth: item.depth + 1})
		}
	}

	return res, nil
}

func inBounds(p geom.Polygon, depth int, cfg Config) bool {
	if cfg.MaxDepth > 0 {
		return depth <= cfg.MaxDepth
	}
	halfX, halfY := cfg.WindowX/2, cfg.WindowY/2
	for _, v := range p {
		if v.X >= -halfX && v.X <= halfX && v.Y >= -halfY && v.Y <= halfY {
			return true
		}
	}
	return false
}
