package t2048

import "math/rand"

// Spawner places new tiles on a grid.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// NewSpawner creates a spawner that yields a 4 with probability fourProb
// and a 2 otherwise.
func NewSpawner(rng *rand.Rand, fourProb float64) *Spawner {
	return &Spawner{rng: rng, fourProb: fourProb}
}

// Spawn puts a tile into a uniformly chosen empty cell.
// Returns false without touching the grid when it is full.
func (s *Spawner) Spawn(g *Grid) (Pos, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Pos{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return cell, true
}
