package mood

import (
	"math"
	"math/rand"
)

const (
	// floorThreshold is the score below which a bucket gets a random floor.
	floorThreshold = 20

	floorMin = 10
	floorMax = 40

	// chromaticSaturation is the saturation below which hue bonuses never apply.
	chromaticSaturation = 10
)

// Scores maps every mood bucket to a score in [0,100].
type Scores map[Mood]int

// Primary returns the highest scoring mood; ties go to the earliest mood in Moods.
func (s Scores) Primary() Mood {
	best := Moods[0]
	for _, m := range Moods[1:] {
		if s[m] > s[best] {
			best = m
		}
	}
	return best
}

// rule adds base points when match holds, plus bonusPts when bonus holds as well.
type rule struct {
	mood     Mood
	base     float64
	match    func(HSL) bool
	bonusPts float64
	bonus    func(HSL) bool
	hueBonus bool // bonus depends on hue and only applies to chromatic colours
}

func between(v, lo, hi float64) bool { return v > lo && v < hi }

func within(v, lo, hi float64) bool { return v >= lo && v <= hi }

var rules = []rule{
	{
		mood:     Chic,
		base:     20,
		match:    func(c HSL) bool { return c.S < 15 && between(c.L, 30, 70) },
		bonusPts: 5,
		bonus:    func(c HSL) bool { return c.L < 40 },
	},
	{
		mood:     Lovely,
		base:     20,
		match:    func(c HSL) bool { return c.L > 70 && c.S < 70 },
		bonusPts: 10,
		bonus:    func(c HSL) bool { return c.H >= 330 || c.H <= 20 },
		hueBonus: true,
	},
	{
		mood:     Hip,
		base:     25,
		match:    func(c HSL) bool { return c.S > 70 && between(c.L, 40, 70) },
		bonusPts: 10,
		bonus:    func(c HSL) bool { return within(c.H, 60, 180) },
		hueBonus: true,
	},
	{
		mood:     Classy,
		base:     20,
		match:    func(c HSL) bool { return c.L < 30 },
		bonusPts: 10,
		bonus:    func(c HSL) bool { return (within(c.H, 200, 260) || c.H >= 340 || c.H <= 10) && c.S > 20 },
		hueBonus: true,
	},
	{
		mood:     Casual,
		base:     15,
		match:    func(c HSL) bool { return within(c.S, 30, 70) && within(c.L, 40, 70) },
		bonusPts: 10,
		bonus:    func(c HSL) bool { return within(c.H, 190, 240) },
		hueBonus: true,
	},
	{
		mood:     Vintage,
		base:     15,
		match:    func(c HSL) bool { return within(c.S, 15, 50) && within(c.L, 30, 60) },
		bonusPts: 10,
		bonus:    func(c HSL) bool { return within(c.H, 20, 60) },
		hueBonus: true,
	},
	{
		mood:     Minimal,
		base:     30,
		match:    func(c HSL) bool { return c.S < 10 },
		bonusPts: 5,
		bonus:    func(c HSL) bool { return c.L > 85 || c.L < 15 },
	},
	{
		mood:     Avantgarde,
		base:     25,
		match:    func(c HSL) bool { return c.S > 80 && (c.L < 25 || c.L > 75) },
		bonusPts: 15,
		bonus:    func(c HSL) bool { return within(c.H, 260, 320) && c.S > 40 },
		hueBonus: true,
	},
}

// accumulate sums the raw rule contributions of every colour.
func accumulate(colors []RGB) map[Mood]float64 {
	raw := make(map[Mood]float64, len(Moods))
	for _, m := range Moods {
		raw[m] = 0
	}

	for _, c := range colors {
		hsl := c.HSL()
		for _, r := range rules {
			if !r.match(hsl) {
				continue
			}
			raw[r.mood] += r.base
			if r.hueBonus && hsl.S < chromaticSaturation {
				continue
			}
			if r.bonus != nil && r.bonus(hsl) {
				raw[r.mood] += r.bonusPts
			}
		}
	}
	return raw
}

// normalize scales raw scores so the maximum becomes 100.
// All-zero input stays zero.
func normalize(raw map[Mood]float64) Scores {
	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}

	scores := make(Scores, len(Moods))
	for _, m := range Moods {
		v := raw[m]
		if max > 0 {
			v = v / max * 100
		}
		scores[m] = int(math.Round(v))
	}
	return scores
}

// applyFloor lifts weak buckets to a random value in [floorMin, floorMax] so no
// category renders as a flat zero.
func applyFloor(scores Scores, rng *rand.Rand) {
	for _, m := range Moods {
		if scores[m] >= floorThreshold {
			continue
		}
		floor := floorMin + rng.Intn(floorMax-floorMin+1)
		if floor > scores[m] {
			scores[m] = floor
		}
	}
}

// ScoreColors scores dominant colours into the eight mood buckets.
func ScoreColors(colors []RGB, rng *rand.Rand) Scores {
	scores := normalize(accumulate(colors))
	applyFloor(scores, rng)
	return scores
}
