package main

type IPlayer interface {
	IsHuman() bool
	ChooseMove(state GameState, difficulty Difficulty) (Move, error)
}
