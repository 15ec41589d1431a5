package main

import "errors"

// Errors returned by the engine boundary. Illegal input never leaves a
// partially applied board behind.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMoves = errors.New("no legal moves")
)

// LegalMoves returns every legal move for player in row-major order, each
// with its flip list. An empty result signals a forced pass.
func LegalMoves(board Board, player PlayerColor) []Move {
	rules := NewRules(GameSettings{BoardSize: board.Size()})
	return rules.LegalMoves(board, CellFromPlayer(player))
}

// ApplyMove places player's disc at (x, y) and flips the sandwiched discs,
// returning the new board. The input board is never mutated; an illegal
// target returns ErrIllegalMove.
func ApplyMove(board Board, x, y int, player PlayerColor) (Board, error) {
	rules := NewRules(GameSettings{BoardSize: board.Size()})
	cell := CellFromPlayer(player)
	flips := rules.Flips(board, x, y, cell)
	if len(flips) == 0 {
		return board, ErrIllegalMove
	}
	return applySearchMove(board, Move{X: x, Y: y, Flips: flips}, cell), nil
}

// ChooseMove picks a move for player at the given difficulty. The caller
// must ensure at least one legal move exists.
func ChooseMove(board Board, player PlayerColor, difficulty Difficulty) (Move, error) {
	return ChooseMoveForDifficulty(board, player, difficulty, GetConfig())
}

// AdvanceTurn applies the side to move's move at (x, y) and resolves the
// pass/terminal/winner transition, returning the successor state.
func AdvanceTurn(state GameState, x, y int) (GameState, error) {
	rules := NewRules(GameSettings{BoardSize: state.Board.Size()})
	next, _, err := rules.Advance(state, x, y)
	return next, err
}
