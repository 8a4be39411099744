package seating

import "go.uber.org/zap"

// Result is the outcome of one generation run.
type Result struct {
	Assignments        []Assignment
	Students           int
	Capacity           int
	Swaps              int
	ResidualCollisions int
}

// Unassigned reports how many students did not receive a seat.
func (r Result) Unassigned() int {
	if n := r.Students - len(r.Assignments); n > 0 {
		return n
	}
	return 0
}

// Generator runs the slot builder, distributor and repair pass in sequence.
// It keeps no state between runs.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator constructs a Generator.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate allocates seats for the exam roster across the classrooms in the
// order supplied.
func (g *Generator) Generate(exam Exam, students []Student, classrooms []ClassroomSeatSource) Result {
	log := g.logger.With(zap.String("exam_id", exam.ID), zap.String("exam", exam.Name))
	log.Debug("generating seat plan",
		zap.Int("students", len(students)),
		zap.Int("classrooms", len(classrooms)),
	)

	slots := BuildSeatSlots(classrooms)
	log.Debug("seat slots built", zap.Int("slots", len(slots)))

	assignments := Distribute(students, slots)

	swaps := 0
	if exam.AvoidAdjacentSameBranch {
		swaps = Repair(assignments, students)
	}

	result := Result{
		Assignments:        assignments,
		Students:           len(students),
		Capacity:           len(slots),
		Swaps:              swaps,
		ResidualCollisions: CountCollisions(assignments, students),
	}
	log.Debug("seat plan generated",
		zap.Int("assigned", len(assignments)),
		zap.Int("swaps", swaps),
		zap.Int("residual_collisions", result.ResidualCollisions),
	)
	return result
}
