package snake

import "image/color"

// FoodKind identifies the effect a food item has when eaten.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodSpeed
)

// Spawn weights: 70% normal, 20% bonus, 10% speed.
const (
	normalThreshold = 0.7
	bonusThreshold  = 0.9
)

type foodSpec struct {
	name  string
	score int
	speed float64
	inner color.RGBA
	outer color.RGBA
}

var foodSpecs = [...]foodSpec{
	FoodNormal: {
		name:  "normal",
		score: 1,
		inner: color.RGBA{R: 0xff, G: 0x3d, B: 0x3d, A: 0xff},
		outer: color.RGBA{R: 0xa8, G: 0x00, B: 0x00, A: 0xff},
	},
	FoodBonus: {
		name:  "bonus",
		score: 3,
		inner: color.RGBA{R: 0xff, G: 0xd9, B: 0x3d, A: 0xff},
		outer: color.RGBA{R: 0xb3, G: 0x8f, B: 0x00, A: 0xff},
	},
	FoodSpeed: {
		name:  "speed",
		score: 1,
		speed: 1,
		inner: color.RGBA{R: 0x3d, G: 0xff, B: 0xea, A: 0xff},
		outer: color.RGBA{R: 0x00, G: 0x8f, B: 0x8f, A: 0xff},
	},
}

func (k FoodKind) spec() foodSpec {
	if k < FoodNormal || k > FoodSpeed {
		return foodSpecs[FoodNormal]
	}
	return foodSpecs[k]
}

// ScoreDelta is the number of points awarded for eating this kind.
func (k FoodKind) ScoreDelta() int { return k.spec().score }

// SpeedDelta is the change in ticks/second applied when eating this kind.
func (k FoodKind) SpeedDelta() float64 { return k.spec().speed }

// Colors returns the inner and outer radial gradient colors of this kind.
func (k FoodKind) Colors() (inner, outer color.RGBA) {
	s := k.spec()
	return s.inner, s.outer
}

func (k FoodKind) String() string { return k.spec().name }

// PickKind maps a uniform sample r in [0, 1) to a food kind.
func PickKind(r float64) FoodKind {
	switch {
	case r < normalThreshold:
		return FoodNormal
	case r < bonusThreshold:
		return FoodBonus
	default:
		return FoodSpeed
	}
}

// Food is the single item on the board.
type Food struct {
	Cell Cell
	Kind FoodKind
}

// Placed reports whether the food occupies a real cell.
func (f Food) Placed() bool {
	return f.Cell != NoCell
}

// Rand is the randomness the spawner needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Spawner places food on free cells of a square grid.
type Spawner struct {
	rng       Rand
	tileCount int
}

// NewSpawner creates a spawner for a tileCount x tileCount grid.
func NewSpawner(rng Rand, tileCount int) *Spawner {
	return &Spawner{rng: rng, tileCount: tileCount}
}

// Place draws a weighted food kind, then samples cells uniformly until one
// is not covered by the snake. If the snake fills the grid the food is
// placed at NoCell.
func (s *Spawner) Place(body []Cell) Food {
	food := Food{Kind: PickKind(s.rng.Float64()), Cell: NoCell}

	if len(body) >= s.tileCount*s.tileCount {
		return food
	}

	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		occupied[c] = struct{}{}
	}

	for {
		c := Cell{X: s.rng.Intn(s.tileCount), Y: s.rng.Intn(s.tileCount)}
		if _, taken := occupied[c]; !taken {
			food.Cell = c
			return food
		}
	}
}
