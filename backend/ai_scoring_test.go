package main

import "testing"

func TestChooseMoveFailsWithoutLegalMoves(t *testing.T) {
	board := NewBoard(8)
	if _, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyHard, DefaultConfig()); err != ErrNoLegalMoves {
		t.Fatalf("expected ErrNoLegalMoves, got %v", err)
	}
}

func TestEasyShowsVariety(t *testing.T) {
	board := StartingBoard(8)
	seen := map[Point]bool{}
	for i := 0; i < 30; i++ {
		move, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyEasy, DefaultConfig())
		if err != nil {
			t.Fatalf("easy choice failed: %v", err)
		}
		rules := testRules()
		if ok, reason := rules.IsLegal(DefaultGameState(DefaultGameSettings()), move, PlayerBlack); !ok {
			t.Fatalf("easy picked an illegal move (%d,%d): %s", move.X, move.Y, reason)
		}
		seen[Point{X: move.X, Y: move.Y}] = true
	}
	// Four equally likely openings: 30 samples landing on a single one is
	// astronomically unlikely.
	if len(seen) < 2 {
		t.Fatalf("expected variety across 30 samples, saw %d distinct move(s)", len(seen))
	}
}

func TestHardIsDeterministic(t *testing.T) {
	board := StartingBoard(8)
	config := DefaultConfig()
	first, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyHard, config)
	if err != nil {
		t.Fatalf("hard choice failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		again, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyHard, config)
		if err != nil {
			t.Fatalf("hard choice failed: %v", err)
		}
		if !again.Equals(first) {
			t.Fatalf("hard must be deterministic: got (%d,%d) then (%d,%d)", first.X, first.Y, again.X, again.Y)
		}
	}
}

// cornerOfferBoard has a capturable corner alongside ordinary central
// options: black can take (0,0) or keep trading in the middle.
func cornerOfferBoard() Board {
	board := StartingBoard(8)
	board.Set(1, 0, CellWhite)
	board.Set(2, 0, CellBlack)
	return board
}

func TestGreedyTakesOfferedCorner(t *testing.T) {
	board := cornerOfferBoard()
	move, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyMedium, DefaultConfig())
	if err != nil {
		t.Fatalf("greedy choice failed: %v", err)
	}
	if move.X != 0 || move.Y != 0 {
		t.Fatalf("greedy should take the corner, got (%d,%d)", move.X, move.Y)
	}
}

func TestMinimaxTakesOfferedCorner(t *testing.T) {
	board := cornerOfferBoard()
	move, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyHard, DefaultConfig())
	if err != nil {
		t.Fatalf("minimax choice failed: %v", err)
	}
	if move.X != 0 || move.Y != 0 {
		t.Fatalf("minimax should take the corner, got (%d,%d)", move.X, move.Y)
	}
}

// A deep search can rate deferring a safe corner one disc higher, because
// at the horizon both lines own the corner and the deferring line flipped
// one extra disc on the way. The policy must still take the corner now.
func TestMinimaxNeverDefersSafeCorner(t *testing.T) {
	board := cornerOfferBoard()
	rules := testRules()
	for _, depth := range []int{2, 4, 6} {
		config := DefaultConfig()
		config.AiDepth = depth
		move := chooseMinimax(board, rules, PlayerBlack, config, &SearchStats{})
		if move.X != 0 || move.Y != 0 {
			t.Fatalf("depth %d: corner deferred for (%d,%d)", depth, move.X, move.Y)
		}
	}
}

func TestMinimaxTakesFarCorner(t *testing.T) {
	board := StartingBoard(8)
	board.Set(6, 7, CellWhite)
	board.Set(5, 7, CellBlack)
	move, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyHard, DefaultConfig())
	if err != nil {
		t.Fatalf("minimax choice failed: %v", err)
	}
	if move.X != 7 || move.Y != 7 {
		t.Fatalf("minimax should take the (7,7) corner, got (%d,%d)", move.X, move.Y)
	}
}

func TestGreedyAvoidsExposedXSquare(t *testing.T) {
	board := NewBoard(8)
	// Two options for black: the X-square (1,1) or the quiet (3,0).
	board.Set(2, 2, CellWhite)
	board.Set(3, 3, CellBlack)
	board.Set(2, 0, CellWhite)
	board.Set(1, 0, CellBlack)

	moves := NewRules(GameSettings{BoardSize: 8}).LegalMoves(board, CellBlack)
	if _, ok := containsMove(moves, 1, 1); !ok {
		t.Fatalf("setup broken: (1,1) should be legal")
	}
	if _, ok := containsMove(moves, 3, 0); !ok {
		t.Fatalf("setup broken: (3,0) should be legal")
	}

	move, err := ChooseMoveForDifficulty(board, PlayerBlack, DifficultyMedium, DefaultConfig())
	if err != nil {
		t.Fatalf("greedy choice failed: %v", err)
	}
	if move.X == 1 && move.Y == 1 {
		t.Fatalf("greedy must not hand over the corner via (1,1)")
	}
}

func TestMovePriorityOrdering(t *testing.T) {
	board := NewBoard(8)
	geo := geometryForSize(8)

	corner := movePriority(board, geo, NewMove(0, 0))
	edge := movePriority(board, geo, NewMove(4, 0))
	center := movePriority(board, geo, NewMove(3, 3))
	farCenter := movePriority(board, geo, NewMove(2, 5))
	xSquare := movePriority(board, geo, NewMove(1, 1))

	if !(corner > edge && edge > center && center > xSquare) {
		t.Fatalf("priority order broken: corner=%.0f edge=%.0f center=%.0f x=%.0f", corner, edge, center, xSquare)
	}
	if center <= farCenter {
		t.Fatalf("cells closer to the middle should rank higher: %.1f vs %.1f", center, farCenter)
	}

	// Once the adjacent corner is taken the X-square stops being toxic.
	board.Set(0, 0, CellWhite)
	if reclaimed := movePriority(board, geo, NewMove(1, 1)); reclaimed <= xSquare {
		t.Fatalf("X-square next to a filled corner should rank as an ordinary cell")
	}
}

func TestOrderCandidateMovesFrontLoadsCorners(t *testing.T) {
	board := NewBoard(8)
	moves := []Move{NewMove(3, 3), NewMove(1, 1), NewMove(0, 0), NewMove(4, 0)}
	ordered := orderCandidateMoves(board, moves)
	if ordered[0].X != 0 || ordered[0].Y != 0 {
		t.Fatalf("corner should come first, got (%d,%d)", ordered[0].X, ordered[0].Y)
	}
	last := ordered[len(ordered)-1]
	if last.X != 1 || last.Y != 1 {
		t.Fatalf("exposed X-square should come last, got (%d,%d)", last.X, last.Y)
	}
	if len(moves) != 4 || moves[0].X != 3 {
		t.Fatalf("ordering must not mutate the input slice")
	}
}

func TestTerminalScorePrefersFasterWins(t *testing.T) {
	rules := testRules()
	board := NewBoard(8)
	board.Set(0, 0, CellBlack)

	fast := terminalScore(board, rules, PlayerBlack, 4)
	slow := terminalScore(board, rules, PlayerBlack, 1)
	if fast <= slow {
		t.Fatalf("wins closer to the root should score higher: %.0f vs %.0f", fast, slow)
	}

	fastLoss := terminalScore(board, rules, PlayerWhite, 4)
	slowLoss := terminalScore(board, rules, PlayerWhite, 1)
	if fastLoss >= slowLoss {
		t.Fatalf("losses closer to the root should score lower: %.0f vs %.0f", fastLoss, slowLoss)
	}

	drawn := NewBoard(8)
	if score := terminalScore(drawn, rules, PlayerBlack, 3); score != 0 {
		t.Fatalf("a drawn terminal position scores zero, got %.0f", score)
	}
}

func TestMinimaxCountsNodes(t *testing.T) {
	board := StartingBoard(8)
	rules := testRules()
	stats := &SearchStats{}
	config := DefaultConfig()
	config.AiDepth = 3
	chooseMinimax(board, rules, PlayerBlack, config, stats)
	if stats.Nodes == 0 {
		t.Fatalf("search should visit nodes")
	}
}
