package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

type GameSettings struct {
	BoardSize       int        `json:"board_size"`
	BlackType       PlayerType `json:"-"`
	WhiteType       PlayerType `json:"-"`
	BlackStarts     bool       `json:"black_starts"`
	BlackDifficulty Difficulty `json:"black_difficulty"`
	WhiteDifficulty Difficulty `json:"white_difficulty"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:       8,
		BlackType:       PlayerHuman,
		WhiteType:       PlayerAI,
		BlackStarts:     true,
		BlackDifficulty: DifficultyHard,
		WhiteDifficulty: DifficultyHard,
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	default:
		return "hard"
	}
}

func difficultyFromString(value string) Difficulty {
	switch value {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}
