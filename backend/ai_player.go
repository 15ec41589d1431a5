package main

import (
	"sync"
	"sync/atomic"
)

// AIPlayer runs the decision engine off the game loop's goroutine. The
// search itself has no suspension points; stopping only abandons a result
// that has not been taken yet.
type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	stopSignal atomic.Bool
	readyMove  Move
	generation atomic.Uint64
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, difficulty Difficulty) (Move, error) {
	move, err := ChooseMoveForDifficulty(state.Board, state.ToMove, difficulty, GetConfig())
	if err != nil {
		return Move{}, err
	}
	move.Depth = searchDepthFor(difficulty)
	return move, nil
}

func (a *AIPlayer) StartThinking(state GameState, difficulty Difficulty) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)
	a.stopSignal.Store(false)

	generation := a.generation.Load()
	stateCopy := state.Clone()
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move, err := a.ChooseMove(stateCopy, difficulty)
		if a.stopSignal.Load() || a.generation.Load() != generation {
			a.thinking.Store(false)
			return
		}
		a.moveMutex.Lock()
		if err == nil {
			a.readyMove = move
		} else {
			a.readyMove = Move{X: -1, Y: -1}
		}
		a.moveMutex.Unlock()
		a.moveReady.Store(err == nil)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() Move {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}

// StopThinking invalidates any in-flight or ready result.
func (a *AIPlayer) StopThinking() {
	a.generation.Add(1)
	a.stopSignal.Store(true)
	a.moveReady.Store(false)
}

func searchDepthFor(difficulty Difficulty) int {
	if difficulty != DifficultyHard {
		return 0
	}
	depth := GetConfig().AiDepth
	if depth <= 0 {
		depth = DefaultConfig().AiDepth
	}
	return depth
}
