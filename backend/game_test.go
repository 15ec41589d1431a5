package main

import (
	"testing"
	"time"
)

func humanVsHumanSettings() GameSettings {
	s := DefaultGameSettings()
	s.BlackType = PlayerHuman
	s.WhiteType = PlayerHuman
	return s
}

func TestGameStartAssignsIDAndRuns(t *testing.T) {
	game := NewGame(humanVsHumanSettings())
	if game.ID() == "" {
		t.Fatalf("a new game should carry an id")
	}
	if game.State().Status != StatusNotStarted {
		t.Fatalf("new game should not be running yet")
	}
	game.Start()
	if game.State().Status != StatusRunning {
		t.Fatalf("started game should be running")
	}
}

func TestTryApplyMoveRecordsHistory(t *testing.T) {
	game := NewGame(humanVsHumanSettings())
	game.Start()

	ok, reason := game.TryApplyMove(NewMove(3, 2))
	if !ok {
		t.Fatalf("opening move rejected: %s", reason)
	}
	if game.History().Size() != 1 {
		t.Fatalf("expected 1 history entry, got %d", game.History().Size())
	}
	entry := game.History().All()[0]
	if entry.Player != PlayerBlack || entry.FlipCount != 1 || entry.IsAi {
		t.Fatalf("unexpected history entry: %+v", entry)
	}
	if game.State().ToMove != PlayerWhite {
		t.Fatalf("turn should have passed to white")
	}
}

func TestTryApplyMoveRejectsIllegal(t *testing.T) {
	game := NewGame(humanVsHumanSettings())
	game.Start()

	before := game.State()
	ok, reason := game.TryApplyMove(NewMove(0, 0))
	if ok {
		t.Fatalf("illegal move must be rejected")
	}
	if reason == "" {
		t.Fatalf("rejection should carry a reason")
	}
	after := game.State()
	if after.ToMove != before.ToMove || after.Board.Count(CellBlack) != before.Board.Count(CellBlack) {
		t.Fatalf("rejected move must leave the game untouched")
	}
	if game.History().Size() != 0 {
		t.Fatalf("rejected move must not enter the history")
	}
}

func TestTryApplyMoveRequiresRunningGame(t *testing.T) {
	game := NewGame(humanVsHumanSettings())
	if ok, _ := game.TryApplyMove(NewMove(3, 2)); ok {
		t.Fatalf("moves before Start must be rejected")
	}
}

func TestTickAppliesPendingHumanMove(t *testing.T) {
	game := NewGame(humanVsHumanSettings())
	game.Start()

	if game.Tick(false, nil) {
		t.Fatalf("nothing pending, tick should be a no-op")
	}
	if !game.SubmitHumanMove(NewMove(3, 2)) {
		t.Fatalf("human move submission failed")
	}
	if !game.Tick(false, nil) {
		t.Fatalf("tick should apply the pending move")
	}
	if game.State().ToMove != PlayerWhite {
		t.Fatalf("turn should have passed to white")
	}
}

func TestTickDrivesAiGameToCompletion(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BlackType = PlayerAI
	settings.WhiteType = PlayerAI
	settings.BlackDifficulty = DifficultyEasy
	settings.WhiteDifficulty = DifficultyEasy

	game := NewGame(settings)
	game.Start()

	deadline := time.Now().Add(30 * time.Second)
	for !game.State().Over() {
		if time.Now().After(deadline) {
			t.Fatalf("AI vs AI game did not finish in time")
		}
		if !game.Tick(false, nil) {
			time.Sleep(time.Millisecond)
		}
	}
	state := game.State()
	if total := state.Board.Count(CellBlack) + state.Board.Count(CellWhite); total < 5 {
		t.Fatalf("finished game has implausible disc total %d", total)
	}
	if game.History().Size() == 0 {
		t.Fatalf("finished game should have history")
	}
}

func TestControllerRejectsMoveOnAiTurn(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BlackType = PlayerAI
	settings.WhiteType = PlayerHuman
	controller := NewGameController(settings)
	controller.StartGame(settings)

	if ok, reason := controller.ApplyHumanMove(NewMove(3, 2)); ok || reason != "not human turn" {
		t.Fatalf("expected not human turn, got ok=%v reason=%q", ok, reason)
	}
}

func TestControllerUpdateSettingsWithoutReset(t *testing.T) {
	settings := humanVsHumanSettings()
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if ok, reason := controller.ApplyHumanMove(NewMove(3, 2)); !ok {
		t.Fatalf("opening move rejected: %s", reason)
	}
	id := controller.GameID()

	update := settings
	update.WhiteDifficulty = DifficultyMedium
	controller.UpdateSettings(update, false)

	if controller.GameID() != id {
		t.Fatalf("settings update without reset must keep the running game")
	}
	if controller.History().Size() != 1 {
		t.Fatalf("settings update without reset must keep the history")
	}
	if controller.Settings().WhiteDifficulty != DifficultyMedium {
		t.Fatalf("settings update not applied")
	}
}

func TestControllerResetStartsFresh(t *testing.T) {
	settings := humanVsHumanSettings()
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if ok, reason := controller.ApplyHumanMove(NewMove(3, 2)); !ok {
		t.Fatalf("opening move rejected: %s", reason)
	}
	id := controller.GameID()

	controller.StartGame(settings)
	if controller.GameID() == id {
		t.Fatalf("a restart should mint a new game id")
	}
	if controller.History().Size() != 0 {
		t.Fatalf("a restart should clear the history")
	}
	state := controller.State()
	if state.Board.Count(CellBlack) != 2 || state.Board.Count(CellWhite) != 2 {
		t.Fatalf("a restart should rebuild the starting position")
	}
}
