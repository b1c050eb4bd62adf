package game

import (
	"fmt"
	"math/rand"
)

// Cell is what a grid square shows in a frame.
type Cell uint8

const (
	Empty Cell = iota
	SnakeHead
	SnakeTail
	Food
)

// noFood sits outside every grid, so the head can never land on it.
var noFood = Point{Row: -1, Col: -1}

// Grid owns the snake and the food and runs ticks.
//
// cells is a view rebuilt on every Render; collision logic only ever asks
// the snake.
type Grid struct {
	bounds Bounds
	snake  *Snake
	food   Point
	rng    *rand.Rand
	cells  [][]Cell

	final *TickResult
}

// NewGrid creates a rows x cols grid with the initial snake and a first food.
func NewGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return NewGridWithSnake(rows, cols, InitialSnake(), rng)
}

// NewGridWithSnake is NewGrid with a caller-supplied snake.
func NewGridWithSnake(rows, cols int, s *Snake, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}
	b := Bounds{Width: cols, Height: rows}
	if !b.Contains(s.head) {
		return nil, fmt.Errorf("snake head %v: %w", s.head, ErrOutOfBounds)
	}
	for _, p := range s.tail {
		if !b.Contains(p) {
			return nil, fmt.Errorf("snake segment %v: %w", p, ErrOutOfBounds)
		}
	}

	g := &Grid{
		bounds: b,
		snake:  s,
		rng:    rng,
		cells:  make([][]Cell, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}

	food, err := PlaceFood(b, s, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d grid has no room for food", ErrInvalidSize, rows, cols)
	}
	g.food = food
	return g, nil
}

func (g *Grid) Bounds() Bounds {
	return g.bounds
}

func (g *Grid) Snake() *Snake {
	return g.snake
}

// Food returns the food cell; ok is false once the board is full.
func (g *Grid) Food() (p Point, ok bool) {
	return g.food, g.food != noFood
}

// SetFood moves the food to p. Used to stage scenarios.
func (g *Grid) SetFood(p Point) error {
	if !g.bounds.Contains(p) {
		return fmt.Errorf("food %v: %w", p, ErrOutOfBounds)
	}
	if g.snake.Contains(p) {
		return fmt.Errorf("food %v: %w", p, ErrCellOccupied)
	}
	g.food = p
	return nil
}

// Tick advances the game by one step.
//
// The direction is read once at the start. A tick either completes or
// reports GameOver without having changed anything. Once the game is over
// every further call returns the same result.
func (g *Grid) Tick() TickResult {
	if g.final != nil {
		return *g.final
	}

	dir := g.snake.Direction()
	mv := g.snake.Move(dir, g.bounds, g.food)

	switch mv.Kind {
	case Lost:
		return g.finish(TickResult{Status: GameOver, Reason: mv.Loss, Length: mv.Length})
	case AdvancedAndAte:
		food, err := PlaceFood(g.bounds, g.snake, g.rng)
		if err != nil {
			g.food = noFood
			return g.finish(TickResult{Status: GameOver, Reason: BoardFilled, Length: mv.Length, Ate: true})
		}
		g.food = food
		return TickResult{Status: Continue, Length: mv.Length, Ate: true}
	default:
		return TickResult{Status: Continue, Length: mv.Length}
	}
}

func (g *Grid) finish(r TickResult) TickResult {
	g.final = &r
	return r
}

// Render rebuilds the cell view from the snake and food and returns a
// frame that does not share memory with the grid.
func (g *Grid) Render() Frame {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Empty
		}
	}
	if food, ok := g.Food(); ok {
		g.cells[food.Row][food.Col] = Food
	}
	for _, p := range g.snake.tail {
		g.cells[p.Row][p.Col] = SnakeTail
	}
	h := g.snake.head
	g.cells[h.Row][h.Col] = SnakeHead

	return newFrame(g.cells)
}
