package main

import (
	"log"
	"time"

	"github.com/google/uuid"
)

type Game struct {
	id           string
	settings     GameSettings
	rules        Rules
	state        GameState
	history      MoveHistory
	blackPlayer  IPlayer
	whitePlayer  IPlayer
	hintAI       *AIPlayer
	hintForBoard string
	turnStart    time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.stopHint(nil)
	g.id = uuid.NewString()
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
		g.logMatchup()
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	if ok, reason := g.rules.IsLegalDefault(g.state, move); !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.stopHint(nil)
	mover := g.state.ToMove
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	next, flips, err := g.rules.Advance(g.state, move.X, move.Y)
	if err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return false, g.state.LastMessage
	}
	g.state = next

	entry := HistoryEntry{
		Move:      Move{X: move.X, Y: move.Y, Flips: flips, Depth: move.Depth},
		Player:    mover,
		ElapsedMs: elapsedMs,
		IsAi:      isAiMove,
		FlipCount: len(flips),
	}
	g.history.Push(entry)
	g.logMovePlayed(entry)

	if g.state.Over() {
		g.logResult()
	}
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one move: a pending human move, a ready
// AI move, or the start of AI thinking. It also drives the hint publisher
// for human turns. Returns true when a move was applied.
func (g *Game) Tick(hintEnabled bool, hintSink func(hintPayload)) bool {
	if g.state.Status != StatusRunning {
		g.stopHint(hintSink)
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		g.stopHint(hintSink)
		return false
	}
	if player.IsHuman() {
		if hintEnabled && hintSink != nil {
			g.startHint(hintSink)
		} else {
			g.stopHint(hintSink)
		}
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	g.stopHint(hintSink)
	ai, ok := player.(*AIPlayer)
	if ok {
		if ai.HasMoveReady() {
			move := ai.TakeMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		if !ai.IsThinking() {
			ai.StartThinking(g.state.Clone(), g.difficultyFor(g.state.ToMove))
		}
		return false
	}
	move, err := player.ChooseMove(g.state.Clone(), g.difficultyFor(g.state.ToMove))
	if err != nil {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) difficultyFor(color PlayerColor) Difficulty {
	if color == PlayerBlack {
		return g.settings.BlackDifficulty
	}
	return g.settings.WhiteDifficulty
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer()
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer()
	}
	if g.hintAI == nil {
		g.hintAI = NewAIPlayer()
	}
}

func (g *Game) ResetForConfigChange() {
	g.stopHint(nil)
	if aiBlack, ok := g.blackPlayer.(*AIPlayer); ok {
		aiBlack.StopThinking()
	}
	if aiWhite, ok := g.whitePlayer.(*AIPlayer); ok {
		aiWhite.StopThinking()
	}
	if g.hintAI != nil {
		g.hintAI.StopThinking()
	}
}

// startHint computes the engine move for the human side in the background
// and publishes it once ready. Keyed on the board so the same position is
// not re-searched every tick.
func (g *Game) startHint(hintSink func(hintPayload)) {
	if g.hintAI == nil {
		g.hintAI = NewAIPlayer()
	}
	key := boardKey(g.state.Board)
	if g.hintForBoard == key {
		if g.hintAI.HasMoveReady() {
			move := g.hintAI.TakeMove()
			if move.IsValid(g.settings.BoardSize) {
				hintSink(hintPayload{
					X:      move.X,
					Y:      move.Y,
					Player: playerToInt(g.state.ToMove),
					Depth:  move.Depth,
					Active: true,
				})
			}
		}
		return
	}
	g.hintAI.StopThinking()
	g.hintForBoard = key
	g.hintAI.StartThinking(g.state.Clone(), DifficultyHard)
}

func (g *Game) stopHint(hintSink func(hintPayload)) {
	g.hintForBoard = ""
	if g.hintAI != nil {
		g.hintAI.StopThinking()
	}
	if hintSink != nil {
		hintSink(hintPayload{Active: false})
	}
}

func boardKey(board Board) string {
	size := board.Size()
	buf := make([]byte, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			buf = append(buf, byte('0'+board.At(x, y)))
		}
	}
	return string(buf)
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerAI {
			return "AI"
		}
		return "Human"
	}
	log.Printf("[game %s] Black (%s) vs White (%s)", g.id, label(g.settings.BlackType), label(g.settings.WhiteType))
}

func (g *Game) logMovePlayed(entry HistoryEntry) {
	black := g.state.Board.Count(CellBlack)
	white := g.state.Board.Count(CellWhite)
	log.Printf("[game %s] %s plays (%d,%d) flips=%d score=%d-%d",
		g.id, CellFromPlayer(entry.Player), entry.Move.X, entry.Move.Y, entry.FlipCount, black, white)
}

func (g *Game) logResult() {
	switch g.state.Status {
	case StatusBlackWon:
		log.Printf("[game %s] Black wins %d-%d", g.id, g.state.Board.Count(CellBlack), g.state.Board.Count(CellWhite))
	case StatusWhiteWon:
		log.Printf("[game %s] White wins %d-%d", g.id, g.state.Board.Count(CellWhite), g.state.Board.Count(CellBlack))
	case StatusDraw:
		log.Printf("[game %s] draw %d-%d", g.id, g.state.Board.Count(CellBlack), g.state.Board.Count(CellWhite))
	}
}
