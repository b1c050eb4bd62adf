// food.go implements food placement.

package game

import (
	"math/rand"
)

// PlaceFood picks a cell uniformly at random among those not covered by the
// snake. Free cells are enumerated in row-major order, so a seeded rng always
// yields the same cell for the same snake.
func PlaceFood(bounds Bounds, s *Snake, rng *rand.Rand) (Point, error) {
	occupied := make(map[Point]struct{}, s.Length())
	occupied[s.head] = struct{}{}
	for _, p := range s.tail {
		occupied[p] = struct{}{}
	}

	free := make([]Point, 0, max(bounds.Cells()-len(occupied), 0))
	for row := 0; row < bounds.Height; row++ {
		for col := 0; col < bounds.Width; col++ {
			p := Point{Row: row, Col: col}
			if _, ok := occupied[p]; ok {
				continue
			}
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return Point{}, ErrNoValidFoodCell
	}

	return free[rng.Intn(len(free))], nil
}
