package main

import (
	"log"
	"math"
	"math/rand"
	"sort"
	"time"
)

const winScore = 1_000_000.0

type SearchStats struct {
	Start   time.Time
	Nodes   int64
	Cutoffs int64
}

type searchContext struct {
	rules  Rules
	player PlayerColor
	config Config
	stats  *SearchStats
}

// ChooseMoveForDifficulty picks a move for player on the given board.
// Easy samples uniformly, medium runs the greedy cascade, hard runs the
// fixed-depth minimax. Calling it with no legal move available is a caller
// error and fails with ErrNoLegalMoves.
func ChooseMoveForDifficulty(board Board, player PlayerColor, difficulty Difficulty, config Config) (Move, error) {
	rules := NewRules(GameSettings{BoardSize: board.Size()})
	moves := rules.LegalMoves(board, CellFromPlayer(player))
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMoves
	}
	switch difficulty {
	case DifficultyEasy:
		return chooseRandom(moves), nil
	case DifficultyMedium:
		return chooseGreedy(board, moves), nil
	default:
		stats := &SearchStats{Start: time.Now()}
		move := chooseMinimax(board, rules, player, config, stats)
		if config.AiLogSearchStats {
			logSearchStats("choose", stats, config.AiDepth)
		}
		return move, nil
	}
}

func chooseRandom(moves []Move) Move {
	return moves[rand.Intn(len(moves))]
}

// chooseGreedy runs the deterministic priority cascade: a corner if one is
// available, otherwise avoid X-squares whose corner is still empty (unless
// that filters everything out), then edges by flip count, then raw flip
// count.
func chooseGreedy(board Board, moves []Move) Move {
	geo := geometryForSize(board.Size())
	for _, corner := range geo.corners {
		for _, move := range moves {
			if move.X == corner.X && move.Y == corner.Y {
				return move
			}
		}
	}

	filtered := make([]Move, 0, len(moves))
	for _, move := range moves {
		if corner, ok := geo.xSquareCorner(Point{X: move.X, Y: move.Y}); ok {
			if board.At(corner.X, corner.Y) == CellEmpty {
				continue
			}
		}
		filtered = append(filtered, move)
	}
	if len(filtered) == 0 {
		filtered = moves
	}

	best := Move{X: -1, Y: -1}
	bestFlips := -1
	for _, move := range filtered {
		if !onBoundary(board.Size(), move.X, move.Y) || geo.isCorner(Point{X: move.X, Y: move.Y}) {
			continue
		}
		if move.FlipCount() > bestFlips {
			best = move
			bestFlips = move.FlipCount()
		}
	}
	if bestFlips >= 0 {
		return best
	}

	best = filtered[0]
	for _, move := range filtered[1:] {
		if move.FlipCount() > best.FlipCount() {
			best = move
		}
	}
	return best
}

// movePriority orders candidates corner > edge > center (closer to the
// middle is better) > X-square next to an empty corner. Used at every
// search node to front-load strong moves for pruning; it never changes
// which move wins, only the traversal order.
func movePriority(board Board, geo *boardGeometry, move Move) float64 {
	p := Point{X: move.X, Y: move.Y}
	if geo.isCorner(p) {
		return 1000.0
	}
	if corner, ok := geo.xSquareCorner(p); ok && board.At(corner.X, corner.Y) == CellEmpty {
		return -1000.0
	}
	if onBoundary(board.Size(), move.X, move.Y) {
		return 500.0
	}
	center := float64(board.Size()-1) / 2.0
	dist := math.Abs(float64(move.X)-center) + math.Abs(float64(move.Y)-center)
	return 100.0 * (1.0 - dist/(2.0*center))
}

func onBoundary(size, x, y int) bool {
	return x == 0 || y == 0 || x == size-1 || y == size-1
}

func orderCandidateMoves(board Board, moves []Move) []Move {
	geo := geometryForSize(board.Size())
	ordered := append([]Move(nil), moves...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return movePriority(board, geo, ordered[i]) > movePriority(board, geo, ordered[j])
	})
	return ordered
}

func chooseMinimax(board Board, rules Rules, player PlayerColor, config Config, stats *SearchStats) Move {
	depth := config.AiDepth
	if depth <= 0 {
		depth = DefaultConfig().AiDepth
	}
	ctx := searchContext{rules: rules, player: player, config: config, stats: stats}
	moves := orderCandidateMoves(board, rules.LegalMoves(board, CellFromPlayer(player)))
	// A corner disc can never be flipped back, so no continuation found by
	// the search improves on taking one now. Ordering puts corners first.
	geo := geometryForSize(board.Size())
	if geo.isCorner(Point{X: moves[0].X, Y: moves[0].Y}) {
		return moves[0]
	}
	best := moves[0]
	bestScore := math.Inf(-1)
	alpha := math.Inf(-1)
	beta := math.Inf(1)
	for _, move := range moves {
		child := applySearchMove(board, move, CellFromPlayer(player))
		score := minimax(child, ctx, depth-1, otherPlayer(player), alpha, beta)
		if score > bestScore {
			bestScore = score
			best = move
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best
}

// minimax searches depth plies below the current node, always scoring from
// ctx.player's perspective. A side with no legal move passes: the search
// recurses to the opponent one ply shallower. Terminal positions are only
// those the full game-over test reports.
func minimax(board Board, ctx searchContext, depth int, current PlayerColor, alpha, beta float64) float64 {
	if ctx.stats != nil {
		ctx.stats.Nodes++
	}
	if ctx.rules.IsGameOver(board) {
		return terminalScore(board, ctx.rules, ctx.player, depth)
	}
	if depth <= 0 {
		return EvaluateBoard(board, ctx.player, ctx.config)
	}
	cell := CellFromPlayer(current)
	moves := ctx.rules.LegalMoves(board, cell)
	if len(moves) == 0 {
		return minimax(board, ctx, depth-1, otherPlayer(current), alpha, beta)
	}
	moves = orderCandidateMoves(board, moves)

	maximizing := current == ctx.player
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, move := range moves {
		child := applySearchMove(board, move, cell)
		score := minimax(child, ctx, depth-1, otherPlayer(current), alpha, beta)
		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			if ctx.stats != nil {
				ctx.stats.Cutoffs++
			}
			break
		}
	}
	return best
}

// terminalScore prefers faster wins and slower losses: the remaining depth
// is added on top of the win constant.
func terminalScore(board Board, rules Rules, player PlayerColor, depth int) float64 {
	winner, ok := rules.Winner(board)
	if !ok {
		return 0.0
	}
	if winner == player {
		return winScore + float64(depth)
	}
	return -(winScore + float64(depth))
}

func applySearchMove(board Board, move Move, cell Cell) Board {
	child := board.Clone()
	child.Set(move.X, move.Y, cell)
	for _, flip := range move.Flips {
		child.Set(flip.X, flip.Y, cell)
	}
	return child
}

func logSearchStats(tag string, stats *SearchStats, depth int) {
	if stats == nil {
		return
	}
	elapsed := time.Since(stats.Start)
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	log.Printf("[ai:%s] t=%dms depth=%d nodes=%d nps=%.0f cutoffs=%d",
		tag, elapsed.Milliseconds(), depth, stats.Nodes, nps, stats.Cutoffs)
}
