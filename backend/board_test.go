package main

import "testing"

func TestStartingBoardHasFourCenterDiscs(t *testing.T) {
	board := StartingBoard(8)
	if got := board.Count(CellBlack); got != 2 {
		t.Fatalf("expected 2 black discs, got %d", got)
	}
	if got := board.Count(CellWhite); got != 2 {
		t.Fatalf("expected 2 white discs, got %d", got)
	}
	if board.At(3, 3) != CellWhite || board.At(4, 4) != CellWhite {
		t.Fatalf("expected white discs on the main diagonal center")
	}
	if board.At(4, 3) != CellBlack || board.At(3, 4) != CellBlack {
		t.Fatalf("expected black discs on the anti-diagonal center")
	}
	if got := board.CountEmpty(); got != 60 {
		t.Fatalf("expected 60 empty cells, got %d", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := StartingBoard(8)
	clone := board.Clone()
	clone.Set(0, 0, CellBlack)
	if board.At(0, 0) != CellEmpty {
		t.Fatalf("mutating a clone must not touch the original")
	}
}

func TestCellOpponent(t *testing.T) {
	if CellBlack.Opponent() != CellWhite || CellWhite.Opponent() != CellBlack {
		t.Fatalf("black and white must be mutual opponents")
	}
	if CellEmpty.Opponent() != CellEmpty {
		t.Fatalf("empty has no opponent")
	}
}
