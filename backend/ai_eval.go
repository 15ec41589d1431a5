package main

import "sync"

// boardGeometry holds the positional categories the evaluator and the move
// ordering rely on. Everything is derived from the board size; nothing is a
// literal coordinate table.
type boardGeometry struct {
	size    int
	corners []Point
	// xSquares and cSquares map each near-corner cell to its corner.
	xSquares map[Point]Point
	cSquares map[Point]Point
	// edges excludes corners and C-squares.
	edges map[Point]bool
}

type geometryCache struct {
	mu    sync.Mutex
	sizes map[int]*boardGeometry
}

var cachedGeometry = &geometryCache{sizes: make(map[int]*boardGeometry)}

func geometryForSize(size int) *boardGeometry {
	cachedGeometry.mu.Lock()
	defer cachedGeometry.mu.Unlock()
	if geo, ok := cachedGeometry.sizes[size]; ok {
		return geo
	}
	geo := buildGeometry(size)
	cachedGeometry.sizes[size] = geo
	return geo
}

func buildGeometry(size int) *boardGeometry {
	geo := &boardGeometry{
		size:     size,
		xSquares: make(map[Point]Point),
		cSquares: make(map[Point]Point),
		edges:    make(map[Point]bool),
	}
	last := size - 1
	geo.corners = []Point{{0, 0}, {last, 0}, {0, last}, {last, last}}
	for _, corner := range geo.corners {
		inX := 1
		if corner.X == last {
			inX = -1
		}
		inY := 1
		if corner.Y == last {
			inY = -1
		}
		geo.xSquares[Point{X: corner.X + inX, Y: corner.Y + inY}] = corner
		geo.cSquares[Point{X: corner.X + inX, Y: corner.Y}] = corner
		geo.cSquares[Point{X: corner.X, Y: corner.Y + inY}] = corner
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if x != 0 && x != last && y != 0 && y != last {
				continue
			}
			p := Point{X: x, Y: y}
			if geo.isCorner(p) {
				continue
			}
			if _, ok := geo.cSquares[p]; ok {
				continue
			}
			geo.edges[p] = true
		}
	}
	return geo
}

func (g *boardGeometry) isCorner(p Point) bool {
	for _, corner := range g.corners {
		if corner == p {
			return true
		}
	}
	return false
}

func (g *boardGeometry) isEdge(p Point) bool {
	return g.edges[p]
}

// xSquareCorner returns the corner diagonally adjacent to p, when p is an
// X-square.
func (g *boardGeometry) xSquareCorner(p Point) (Point, bool) {
	corner, ok := g.xSquares[p]
	return corner, ok
}

func (g *boardGeometry) cSquareCorner(p Point) (Point, bool) {
	corner, ok := g.cSquares[p]
	return corner, ok
}

// EvaluateBoard scores the board for player. Positive is good for player.
// The weight ordering (corner >> X-square > C-square > edge, and mobility >
// disc count) is what drives corner-seeking, near-corner avoidance and
// mobility preservation; the raw numbers are tunable via config.
func EvaluateBoard(board Board, player PlayerColor, config Config) float64 {
	weights := resolveHeuristicWeights(config)
	geo := geometryForSize(board.Size())
	rules := NewRules(GameSettings{BoardSize: board.Size()})
	me := CellFromPlayer(player)
	opp := me.Opponent()

	score := 0.0
	for _, corner := range geo.corners {
		switch board.At(corner.X, corner.Y) {
		case me:
			score += weights.Corner
		case opp:
			score -= weights.Corner
		}
	}
	for xsq, corner := range geo.xSquares {
		if board.At(corner.X, corner.Y) != CellEmpty {
			continue
		}
		switch board.At(xsq.X, xsq.Y) {
		case me:
			score -= weights.XSquare
		case opp:
			score += weights.XSquare
		}
	}
	for csq, corner := range geo.cSquares {
		if board.At(corner.X, corner.Y) != CellEmpty {
			continue
		}
		switch board.At(csq.X, csq.Y) {
		case me:
			score -= weights.CSquare
		case opp:
			score += weights.CSquare
		}
	}
	for edge := range geo.edges {
		switch board.At(edge.X, edge.Y) {
		case me:
			score += weights.Edge
		case opp:
			score -= weights.Edge
		}
	}

	myMobility := len(rules.LegalMoves(board, me))
	oppMobility := len(rules.LegalMoves(board, opp))
	score += float64(myMobility-oppMobility) * weights.Mobility

	score += float64(board.Count(me)-board.Count(opp)) * weights.Disc
	return score
}

func resolveHeuristicWeights(config Config) HeuristicConfig {
	if config.Heuristics == (HeuristicConfig{}) {
		config.Heuristics = DefaultConfig().Heuristics
	}
	return config.Heuristics
}
