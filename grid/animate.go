package grid

import "github.com/pdrpinto/search"

// Animation paints a solution onto the board a few cells per tick: the
// explored trace first, then the path from the goal back to the start.
type Animation struct {
	board   *Board
	stepper *search.Stepper[Point]
}

// Animate clears the previous overlay and prepares to replay solution at
// speed cells per tick.
func (b *Board) Animate(solution Solution, speed int) *Animation {
	b.Reset()
	return &Animation{
		board:   b,
		stepper: search.NewStepper(solution.Explored, solution.Path, speed),
	}
}

// Tick paints the next frame and reports whether more frames remain.
func (a *Animation) Tick() (search.StepSnapshot[Point], bool) {
	frame := a.stepper.Step()
	paint := Explored
	if frame.Phase == search.PhasePath {
		paint = Path
	}
	for _, p := range frame.States {
		if !a.board.In(p) {
			continue
		}
		// markers and obstacles are never overpainted
		switch a.board.cells[a.board.index(p)] {
		case Free, Explored:
			a.board.set(p, paint)
		}
	}
	return frame, !a.stepper.Done()
}

// Finish paints every remaining frame at once.
func (a *Animation) Finish() {
	for {
		if _, more := a.Tick(); !more {
			return
		}
	}
}
