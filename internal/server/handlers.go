package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/grid"
)

var errBoardTooLarge = errors.New("board too large")

type boardRequest struct {
	Layout    []string `json:"layout" binding:"required"`
	Heuristic string   `json:"heuristic"`
}

type solveRequest struct {
	boardRequest
	Strategy string `json:"strategy" binding:"required"`
}

type compareRequest struct {
	boardRequest
	// Strategies defaults to every strategy when empty.
	Strategies []string `json:"strategies"`
}

type statsResponse struct {
	Expanded   int     `json:"expanded"`
	Discovered int     `json:"discovered"`
	PathCost   float64 `json:"pathCost"`
	DurationMs float64 `json:"durationMs"`
}

type solutionResponse struct {
	Strategy string        `json:"strategy"`
	Found    bool          `json:"found"`
	Explored []grid.Point  `json:"explored"`
	Path     []grid.Point  `json:"path"`
	Stats    statsResponse `json:"stats"`
}

type generateResponse struct {
	Layout []string   `json:"layout"`
	Start  grid.Point `json:"start"`
	Goal   grid.Point `json:"goal"`
	Seed   uint64     `json:"seed"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error(), RequestID: c.GetString(requestIDKey)})
}

func (s *Server) handleStrategies(c *gin.Context) {
	type strategyInfo struct {
		Name      string `json:"name"`
		NeedsCost bool   `json:"needsCost"`
	}
	out := make([]strategyInfo, 0, len(search.Strategies))
	for _, strategy := range search.Strategies {
		out = append(out, strategyInfo{Name: strategy.String(), NeedsCost: strategy.NeedsCost()})
	}
	c.JSON(http.StatusOK, gin.H{"strategies": out, "heuristics": []string{"manhattan", "euclidean", "zero"}})
}

func (s *Server) handleGenerate(c *gin.Context) {
	opts := grid.DefaultGenerateOptions()
	opts.Seed = uint64(time.Now().UnixNano())
	rows, cols := 24, 40

	var err error
	parseInt := func(key string, dst *int) {
		if v := c.Query(key); v != "" && err == nil {
			*dst, err = strconv.Atoi(v)
		}
	}
	parseInt("rows", &rows)
	parseInt("cols", &cols)
	parseInt("clusters", &opts.Clusters)
	parseInt("steps", &opts.Steps)
	if v := c.Query("density"); v != "" && err == nil {
		opts.Density, err = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("seed"); v != "" && err == nil {
		opts.Seed, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("query: %w", err))
		return
	}
	if rows < 1 || cols < 1 || opts.Clusters < 0 || opts.Steps < 0 {
		s.fail(c, http.StatusBadRequest, errors.New("query: sizes must be positive and walk counts non-negative"))
		return
	}
	if rows > s.cfg.MaxCells/cols {
		s.fail(c, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %dx%d exceeds %d cells", errBoardTooLarge, rows, cols, s.cfg.MaxCells))
		return
	}
	// random walks cost no more than filling the largest accepted board
	if opts.Clusters > 0 && opts.Steps > s.cfg.MaxCells/opts.Clusters {
		s.fail(c, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d clusters of %d steps exceeds %d", errBoardTooLarge, opts.Clusters, opts.Steps, s.cfg.MaxCells))
		return
	}

	board, err := grid.Generate(rows, cols, opts)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, generateResponse{
		Layout: board.Layout(),
		Start:  board.Start(),
		Goal:   board.Goal(),
		Seed:   opts.Seed,
	})
}

func (s *Server) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	strategy, err := search.ParseStrategy(req.Strategy)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	board, heuristic, status, err := s.parseBoard(req.boardRequest)
	if err != nil {
		s.fail(c, status, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.SolveTimeout)
	defer cancel()
	solution, err := board.Solve(ctx, strategy, heuristic, s.searchOptions(c)...)
	s.observe(strategy, solution, err)
	if err != nil {
		s.fail(c, solveStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, toResponse(solution))
}

func (s *Server) handleCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	strategies := search.Strategies
	if len(req.Strategies) > 0 {
		strategies = make([]search.Strategy, 0, len(req.Strategies))
		for _, name := range req.Strategies {
			strategy, err := search.ParseStrategy(name)
			if err != nil {
				s.fail(c, http.StatusBadRequest, err)
				return
			}
			strategies = append(strategies, strategy)
		}
	}
	board, heuristic, status, err := s.parseBoard(req.boardRequest)
	if err != nil {
		s.fail(c, status, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.SolveTimeout)
	defer cancel()
	solutions, err := board.Compare(ctx, strategies, heuristic, s.searchOptions(c)...)
	if err != nil {
		s.metrics.solves.WithLabelValues("compare", "error").Inc()
		s.fail(c, solveStatus(err), err)
		return
	}
	out := make([]solutionResponse, 0, len(solutions))
	for _, solution := range solutions {
		s.observe(solution.Strategy, solution, nil)
		out = append(out, toResponse(solution))
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}

func (s *Server) parseBoard(req boardRequest) (*grid.Board, grid.Heuristic, int, error) {
	cells := 0
	if len(req.Layout) > 0 {
		cells = len(req.Layout) * len(req.Layout[0])
	}
	if cells > s.cfg.MaxCells {
		return nil, nil, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d cells exceeds %d", errBoardTooLarge, cells, s.cfg.MaxCells)
	}
	board, err := grid.Parse(req.Layout)
	if err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	heuristic, err := grid.ParseHeuristic(req.Heuristic)
	if err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	return board, heuristic, http.StatusOK, nil
}

func (s *Server) searchOptions(c *gin.Context) []search.Option {
	logger := s.logger.With().Str("request_id", c.GetString(requestIDKey)).Logger()
	return []search.Option{
		search.WithLogger(logger),
		search.WithMaxExpansions(s.cfg.MaxExpansions),
	}
}

func (s *Server) observe(strategy search.Strategy, solution grid.Solution, err error) {
	result := "found"
	switch {
	case err != nil:
		result = "error"
	case !solution.Found:
		result = "unreachable"
	}
	s.metrics.solves.WithLabelValues(strategy.String(), result).Inc()
	if err == nil {
		s.metrics.duration.WithLabelValues(strategy.String()).Observe(solution.Stats.Duration.Seconds())
		s.metrics.expanded.WithLabelValues(strategy.String()).Observe(float64(solution.Stats.Expanded))
	}
}

func solveStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, search.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func toResponse(solution grid.Solution) solutionResponse {
	return solutionResponse{
		Strategy: solution.Strategy.String(),
		Found:    solution.Found,
		Explored: orEmpty(solution.Explored),
		Path:     orEmpty(solution.Path),
		Stats: statsResponse{
			Expanded:   solution.Stats.Expanded,
			Discovered: solution.Stats.Discovered,
			PathCost:   solution.Stats.PathCost,
			DurationMs: float64(solution.Stats.Duration) / float64(time.Millisecond),
		},
	}
}

func orEmpty(points []grid.Point) []grid.Point {
	if points == nil {
		return []grid.Point{}
	}
	return points
}
