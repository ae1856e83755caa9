package mood

import (
	"math/rand"
	"testing"
)

func TestDominantColors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if got := DominantColors(nil, 5, 5, rand.New(rand.NewSource(1))); len(got) != 0 {
			t.Errorf("DominantColors(nil) = %v, want empty", got)
		}
	})

	t.Run("zero k", func(t *testing.T) {
		colors := []RGB{{1, 2, 3}}
		if got := DominantColors(colors, 0, 5, rand.New(rand.NewSource(1))); len(got) != 0 {
			t.Errorf("DominantColors(k=0) = %v, want empty", got)
		}
	})

	t.Run("uniform input", func(t *testing.T) {
		colors := make([]RGB, 50)
		for i := range colors {
			colors[i] = RGB{200, 100, 50}
		}
		got := DominantColors(colors, 5, 5, rand.New(rand.NewSource(42)))
		if len(got) != 5 {
			t.Fatalf("DominantColors() returned %d centroids, want 5", len(got))
		}
		for _, c := range got {
			if c != (RGB{200, 100, 50}) {
				t.Errorf("centroid = %v, want {200 100 50}", c)
			}
		}
	})

	t.Run("k larger than input", func(t *testing.T) {
		colors := []RGB{{0, 0, 0}, {255, 255, 255}}
		got := DominantColors(colors, 5, 5, rand.New(rand.NewSource(7)))
		if len(got) != 5 {
			t.Fatalf("DominantColors() returned %d centroids, want 5", len(got))
		}
	})

	t.Run("centroids stay within input range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		colors := make([]RGB, 100)
		for i := range colors {
			colors[i] = RGB{uint8(100 + rng.Intn(50)), uint8(rng.Intn(30)), 200}
		}
		got := DominantColors(colors, 5, 5, rand.New(rand.NewSource(9)))
		for _, c := range got {
			if c.R < 100 || c.R > 149 || c.G > 29 || c.B != 200 {
				t.Errorf("centroid %v outside input bounds", c)
			}
		}
	})

	t.Run("deterministic with same seed", func(t *testing.T) {
		colors := []RGB{{10, 20, 30}, {200, 10, 10}, {0, 250, 0}, {40, 40, 40}, {90, 0, 200}, {255, 255, 0}}
		a := DominantColors(colors, 3, 5, rand.New(rand.NewSource(11)))
		b := DominantColors(colors, 3, 5, rand.New(rand.NewSource(11)))
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("centroid %d differs: %v vs %v", i, a[i], b[i])
			}
		}
	})
}
