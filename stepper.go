package search

import "golang.org/x/exp/slices"

// Phase tells which part of a recorded search a frame reveals.
type Phase int

const (
	PhaseExploring Phase = iota
	PhasePath
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseExploring:
		return "exploring"
	case PhasePath:
		return "path"
	default:
		return "done"
	}
}

// StepSnapshot is one animation frame: the states revealed by a single Step.
type StepSnapshot[S comparable] struct {
	Phase     Phase
	States    []S
	StepIndex int
	Done      bool
}

// Stepper replays a finished search for UIs. It walks the discovery trace
// first, then the path from the goal side back to the start.
// It never runs the engine; everything it shows is already materialized.
type Stepper[S comparable] struct {
	explored []S
	path     []S
	speed    int

	exploredIndex int
	pathIndex     int
	stepCount     int
}

// NewStepper builds a replay revealing at most speed states per Step.
// A speed below one reveals a single state per Step.
func NewStepper[S comparable](explored, path []S, speed int) *Stepper[S] {
	if speed < 1 {
		speed = 1
	}
	reversed := slices.Clone(path)
	slices.Reverse(reversed)
	return &Stepper[S]{
		explored: slices.Clone(explored),
		path:     reversed,
		speed:    speed,
	}
}

// Done reports whether every state has been revealed.
func (s *Stepper[S]) Done() bool {
	return s.exploredIndex >= len(s.explored) && s.pathIndex >= len(s.path)
}

// Step advances the replay by one frame. Frames never mix phases.
func (s *Stepper[S]) Step() StepSnapshot[S] {
	if s.Done() {
		return StepSnapshot[S]{Phase: PhaseDone, StepIndex: s.stepCount, Done: true}
	}

	s.stepCount++
	if s.exploredIndex < len(s.explored) {
		end := min(s.exploredIndex+s.speed, len(s.explored))
		states := s.explored[s.exploredIndex:end]
		s.exploredIndex = end
		return StepSnapshot[S]{Phase: PhaseExploring, States: states, StepIndex: s.stepCount, Done: s.Done()}
	}

	end := min(s.pathIndex+s.speed, len(s.path))
	states := s.path[s.pathIndex:end]
	s.pathIndex = end
	return StepSnapshot[S]{Phase: PhasePath, States: states, StepIndex: s.stepCount, Done: s.Done()}
}

// Remaining is the number of states not yet revealed.
func (s *Stepper[S]) Remaining() int {
	return len(s.explored) - s.exploredIndex + len(s.path) - s.pathIndex
}
