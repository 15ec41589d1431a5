package main

import "fmt"

var directions = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

// Flips returns the discs that would change color if playerCell were placed
// at (x, y). Empty result means the placement is illegal. Each direction is
// walked over opposing discs and kept only when the walk ends on an own
// disc; an empty cell or the board edge discards the whole run.
func (r Rules) Flips(board Board, x, y int, playerCell Cell) []Point {
	if !board.IsEmpty(x, y) {
		return nil
	}
	opponentCell := playerCell.Opponent()
	var total []Point
	for i := 0; i < 8; i++ {
		dx := directions[i][0]
		dy := directions[i][1]
		nx := x + dx
		ny := y + dy
		var run []Point
		for board.InBounds(nx, ny) && board.At(nx, ny) == opponentCell {
			run = append(run, Point{X: nx, Y: ny})
			nx += dx
			ny += dy
		}
		if len(run) > 0 && board.InBounds(nx, ny) && board.At(nx, ny) == playerCell {
			total = append(total, run...)
		}
	}
	return total
}

// LegalMoves scans the board in row-major order and returns every legal move
// for playerCell, each carrying its resolved flip list. An empty result is a
// forced pass, not an error.
func (r Rules) LegalMoves(board Board, playerCell Cell) []Move {
	var moves []Move
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if flips := r.Flips(board, x, y, playerCell); len(flips) > 0 {
				moves = append(moves, Move{X: x, Y: y, Flips: flips})
			}
		}
	}
	return moves
}

func (r Rules) HasAnyMove(board Board, playerCell Cell) bool {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if len(r.Flips(board, x, y, playerCell)) > 0 {
				return true
			}
		}
	}
	return false
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	if len(r.Flips(state.Board, move.X, move.Y, CellFromPlayer(player))) == 0 {
		return false, "no discs flipped"
	}
	return true, ""
}

func (r Rules) IsLegalDefault(state GameState, move Move) (bool, string) {
	return r.IsLegal(state, move, state.ToMove)
}

// IsGameOver reports whether the position is terminal: the board is full or
// neither side has a legal move.
func (r Rules) IsGameOver(board Board) bool {
	if board.IsFull() {
		return true
	}
	return !r.HasAnyMove(board, CellBlack) && !r.HasAnyMove(board, CellWhite)
}

// Winner returns the side with strictly more discs. The second return is
// false on equal counts (a draw).
func (r Rules) Winner(board Board) (PlayerColor, bool) {
	black := board.Count(CellBlack)
	white := board.Count(CellWhite)
	if black > white {
		return PlayerBlack, true
	}
	if white > black {
		return PlayerWhite, true
	}
	return PlayerBlack, false
}

// Advance applies a move for the side to move on a cloned state and resolves
// the pass/terminal transition. The input state is never mutated; illegal
// moves return an error and the original state.
func (r Rules) Advance(state GameState, x, y int) (GameState, []Point, error) {
	if state.Over() {
		return state, nil, fmt.Errorf("game over")
	}
	cell := CellFromPlayer(state.ToMove)
	flips := r.Flips(state.Board, x, y, cell)
	if len(flips) == 0 {
		return state, nil, ErrIllegalMove
	}
	next := state.Clone()
	next.Status = StatusRunning
	next.Board.Set(x, y, cell)
	for _, flip := range flips {
		next.Board.Set(flip.X, flip.Y, cell)
	}
	next.LastMove = Move{X: x, Y: y, Flips: flips}
	next.HasLastMove = true
	next.LastMessage = ""

	mover := state.ToMove
	opponent := otherPlayer(mover)
	opponentCell := CellFromPlayer(opponent)
	switch {
	case next.Board.IsFull():
		r.finish(&next)
	case r.HasAnyMove(next.Board, opponentCell):
		next.ToMove = opponent
	case r.HasAnyMove(next.Board, cell):
		// Opponent is skipped; decided once per move, never looped.
		next.ToMove = mover
		next.LastMessage = fmt.Sprintf("%s passes", opponentCell)
	default:
		r.finish(&next)
	}
	if next.Over() {
		next.LegalMoves = nil
	} else {
		next.LegalMoves = r.LegalMoves(next.Board, CellFromPlayer(next.ToMove))
	}
	return next, flips, nil
}

func (r Rules) finish(state *GameState) {
	winner, ok := r.Winner(state.Board)
	if !ok {
		state.Status = StatusDraw
		return
	}
	if winner == PlayerBlack {
		state.Status = StatusBlackWon
	} else {
		state.Status = StatusWhiteWon
	}
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d}", r.settings.BoardSize)
}
