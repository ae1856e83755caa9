package mood

import (
	"math/rand"

	"github.com/muesli/clusters"
)

const (
	// DefaultClusterCount is the number of dominant colours extracted.
	DefaultClusterCount = 5

	// DefaultIterations is the fixed number of refinement passes.
	DefaultIterations = 5
)

// colorObservation wraps an RGB to implement clusters.Observation.
type colorObservation struct {
	coords clusters.Coordinates
}

func newColorObservation(c RGB) colorObservation {
	return colorObservation{coords: clusters.Coordinates{float64(c.R), float64(c.G), float64(c.B)}}
}

func (o colorObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o colorObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// DominantColors groups colors into k clusters with a fixed number of k-means
// iterations and returns the centroids.
//
// Centroids start at colours drawn uniformly with replacement from the input.
// A cluster that ends up empty keeps its previous centroid. The result has at
// most k entries and is empty for empty input.
func DominantColors(colors []RGB, k, iterations int, rng *rand.Rand) []RGB {
	if len(colors) == 0 || k <= 0 {
		return nil
	}

	obs := make(clusters.Observations, len(colors))
	for i, c := range colors {
		obs[i] = newColorObservation(c)
	}

	cc := make(clusters.Clusters, k)
	for i := range cc {
		seed := obs[rng.Intn(len(obs))].Coordinates()
		cc[i].Center = append(clusters.Coordinates(nil), seed...)
	}

	for i := 0; i < iterations; i++ {
		cc.Reset()
		for _, o := range obs {
			ci := cc.Nearest(o)
			cc[ci].Append(o)
		}
		// Recenter leaves the centre of an empty cluster untouched.
		cc.Recenter()
	}

	centroids := make([]RGB, len(cc))
	for i, c := range cc {
		centroids[i] = rgbFromFloats(c.Center[0], c.Center[1], c.Center[2])
	}
	return centroids
}
