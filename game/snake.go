package game

import "sync/atomic"

// MoveKind classifies the result of a single snake move.
type MoveKind int

const (
	Advanced MoveKind = iota
	AdvancedAndAte
	Lost
)

func (k MoveKind) String() string {
	switch k {
	case Advanced:
		return "advanced"
	case AdvancedAndAte:
		return "advanced_and_ate"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// MoveResult reports what a move did. Loss and Length are only meaningful
// when Kind is Lost; Length is the snake length at the moment of the loss.
type MoveResult struct {
	Kind   MoveKind
	Loss   LossReason
	Length int
}

// Snake is a head, an ordered tail and a direction.
//
// tail[0] is the most recently vacated head position and tail[len-1] the
// oldest segment. The direction is the only field that may be touched from
// another goroutine; head and tail belong to whoever drives ticks.
type Snake struct {
	head      Point
	tail      []Point
	direction atomic.Pointer[Point]
}

func NewSnake(head, direction Point, tail []Point) *Snake {
	s := &Snake{
		head: head,
		tail: append([]Point(nil), tail...),
	}
	s.SetDirection(direction)
	return s
}

// InitialSnake is the starting snake: top-left, two cells long, heading right.
func InitialSnake() *Snake {
	return NewSnake(Point{Row: 0, Col: 1}, Right, []Point{{Row: 0, Col: 0}})
}

func (s *Snake) Head() Point {
	return s.head
}

// Tail returns a copy of the tail segments, newest first.
func (s *Snake) Tail() []Point {
	out := make([]Point, len(s.tail))
	copy(out, s.tail)
	return out
}

func (s *Snake) Length() int {
	return 1 + len(s.tail)
}

// Direction returns a snapshot of the current direction.
func (s *Snake) Direction() Point {
	return *s.direction.Load()
}

// SetDirection replaces the direction. Safe to call concurrently with ticks;
// the new value applies from the next snapshot taken by Direction.
func (s *Snake) SetDirection(d Point) {
	s.direction.Store(&d)
}

// Contains reports whether p is the head or any tail segment.
func (s *Snake) Contains(p Point) bool {
	return p == s.head || s.inTail(p)
}

func (s *Snake) inTail(p Point) bool {
	for _, t := range s.tail {
		if t == p {
			return true
		}
	}
	return false
}

// Move advances the snake one cell along dir.
//
// Self-collision is checked before bounds, and nothing is mutated unless
// both checks pass. Landing on food keeps the oldest tail segment, growing
// the snake by one.
func (s *Snake) Move(dir Point, bounds Bounds, food Point) MoveResult {
	newHead := s.head.Add(dir)
	if s.inTail(newHead) {
		return MoveResult{Kind: Lost, Loss: SelfCollision, Length: s.Length()}
	}
	if !bounds.Contains(newHead) {
		return MoveResult{Kind: Lost, Loss: OutOfBounds, Length: s.Length()}
	}

	newTail := make([]Point, 0, len(s.tail)+1)
	newTail = append(newTail, s.head)
	newTail = append(newTail, s.tail...)
	s.head = newHead

	if newHead == food {
		s.tail = newTail
		return MoveResult{Kind: AdvancedAndAte, Length: s.Length()}
	}

	s.tail = newTail[:len(newTail)-1]
	return MoveResult{Kind: Advanced, Length: s.Length()}
}
