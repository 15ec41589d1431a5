package main

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Move struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Flips []Point `json:"flips,omitempty"`
	Depth int     `json:"depth,omitempty"`
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func (m Move) IsValid(boardSize int) bool {
	return m.X >= 0 && m.Y >= 0 && m.X < boardSize && m.Y < boardSize
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}

func (m Move) FlipCount() int {
	return len(m.Flips)
}
