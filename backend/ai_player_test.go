package main

import (
	"testing"
	"time"
)

func waitForMove(t *testing.T, ai *AIPlayer) Move {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for !ai.HasMoveReady() {
		if time.Now().After(deadline) {
			t.Fatalf("worker never produced a move")
		}
		time.Sleep(time.Millisecond)
	}
	return ai.TakeMove()
}

func TestAIPlayerWorkerProducesLegalMove(t *testing.T) {
	ai := NewAIPlayer()
	state := DefaultGameState(DefaultGameSettings())
	ai.StartThinking(state, DifficultyHard)

	move := waitForMove(t, ai)
	if _, ok := containsMove(LegalMoves(state.Board, state.ToMove), move.X, move.Y); !ok {
		t.Fatalf("worker produced illegal move (%d,%d)", move.X, move.Y)
	}
	if move.Depth == 0 {
		t.Fatalf("hard moves should report their search depth")
	}
	if ai.HasMoveReady() {
		t.Fatalf("TakeMove should consume the result")
	}
}

func TestAIPlayerStopDiscardsResult(t *testing.T) {
	ai := NewAIPlayer()
	state := DefaultGameState(DefaultGameSettings())
	ai.StartThinking(state, DifficultyHard)
	ai.StopThinking()

	// Let the worker finish; its result must stay invisible.
	deadline := time.Now().Add(10 * time.Second)
	for ai.IsThinking() {
		if time.Now().After(deadline) {
			t.Fatalf("worker never finished")
		}
		time.Sleep(time.Millisecond)
	}
	if ai.HasMoveReady() {
		t.Fatalf("stopped worker must not publish a move")
	}
}

func TestSearchDepthReportedOnlyForHard(t *testing.T) {
	if searchDepthFor(DifficultyEasy) != 0 || searchDepthFor(DifficultyMedium) != 0 {
		t.Fatalf("only the minimax difficulty searches to depth")
	}
	if searchDepthFor(DifficultyHard) <= 0 {
		t.Fatalf("hard should report a positive depth")
	}
}
