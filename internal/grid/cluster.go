package grid

import "grid-inspector/pkg/geometry"

// ClusterResult lists one representative contour per physical slot.
type ClusterResult struct {
	Representatives []int // contour indices, in discovery order
	Stats           ClusterStats
}

// Cluster collapses contour fragments that belong to the same slot.
//
// Contours are visited in index order. Each unused eligible contour becomes a
// representative and absorbs every later unused contour whose centroid lies
// closer than MergeDistance to its own. Absorbed contours are never compared
// against anything else, so the grouping is greedy and not transitive: with
// centroids at 0, 15 and 29 on a line the first two merge and the third stays.
func Cluster(contours []Contour, p Params) ClusterResult {
	res := ClusterResult{Stats: ClusterStats{Contours: len(contours)}}

	// Eligible contours keep their original index so discovery order survives.
	type candidate struct {
		index    int
		centroid geometry.Point2D
	}
	candidates := make([]candidate, 0, len(contours))
	for i, c := range contours {
		area := c.Area()
		if area >= p.MaxSlotArea {
			res.Stats.Oversize++
			continue
		}
		centroid, ok := c.Centroid()
		if area == 0 || !ok {
			res.Stats.Degenerate++
			continue
		}
		candidates = append(candidates, candidate{index: i, centroid: centroid})
	}

	used := make([]bool, len(candidates))
	for i := range candidates {
		if used[i] {
			continue
		}
		used[i] = true
		res.Representatives = append(res.Representatives, candidates[i].index)

		for j := i + 1; j < len(candidates); j++ {
			if used[j] {
				continue
			}
			if candidates[i].centroid.Distance(candidates[j].centroid) < p.MergeDistance {
				used[j] = true
				res.Stats.Merged++
			}
		}
	}

	return res
}
