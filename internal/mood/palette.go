package mood

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Swatch is one palette entry with the share of samples it covers.
type Swatch struct {
	Color string  `json:"color"` // "#rrggbb"
	Share float64 `json:"share"` // Percentage of samples, 0-100
}

// ExtractPalette partitions the samples with converging k-means and returns the
// distinct cluster centres ordered by share, largest first. k is capped at the
// number of samples.
func ExtractPalette(samples []RGB, k int) ([]Swatch, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	k = min(k, len(samples))
	if k <= 0 {
		return nil, nil
	}

	var obs clusters.Observations
	for _, s := range samples {
		obs = append(obs, newColorObservation(s))
	}

	km := kmeans.New()
	result, err := km.Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("partitioning palette: %w", err)
	}

	// Shares come from a final nearest-centre pass so every sample counts once.
	// Clusters that settle on the same colour are merged into one swatch.
	counts := make(map[string]int, len(result))
	var order []string
	for _, o := range obs {
		c := result[result.Nearest(o)]
		hex := rgbFromFloats(c.Center[0], c.Center[1], c.Center[2]).Hex()
		if _, ok := counts[hex]; !ok {
			order = append(order, hex)
		}
		counts[hex]++
	}

	swatches := make([]Swatch, 0, len(order))
	for _, hex := range order {
		share := float64(counts[hex]) / float64(len(samples)) * 100
		swatches = append(swatches, Swatch{
			Color: hex,
			Share: math.Round(share*10) / 10,
		})
	}

	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		switch {
		case a.Share > b.Share:
			return -1
		case a.Share < b.Share:
			return 1
		default:
			return 0
		}
	})

	return swatches, nil
}

// AccentColor returns the most prominent colour of the whole image with
// prominentcolor's default background masks applied.
func AccentColor(img image.Image) (string, error) {
	items, err := prominentcolor.KmeansWithArgs(prominentcolor.ArgumentNoCropping, img)
	if err != nil {
		return "", fmt.Errorf("finding prominent colour: %w", err)
	}

	var best *prominentcolor.ColorItem
	for i, item := range items {
		if best == nil || item.Cnt > best.Cnt {
			best = &items[i]
		}
	}
	if best == nil {
		return "", errors.New("no prominent colour found")
	}

	c := best.Color
	return RGB{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}.Hex(), nil
}
