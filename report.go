package reportcard

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSubjects reports a subject count of zero.
	ErrNoSubjects = errors.New("number of subjects must be greater than zero")
	// ErrInvalidMaxMarks reports a maximum mark that is zero or negative.
	ErrInvalidMaxMarks = errors.New("maximum possible marks must be greater than zero")
)

// Input holds the raw answers collected from the user.
type Input struct {
	Name       string
	TotalMarks float64
	MaxMarks   float64
	Subjects   uint32
}

// StudentReport is a single student's marks with the derived statistics.
// Build it with NewReport; the derived fields are never set independently.
type StudentReport struct {
	Name       string
	TotalMarks float64
	MaxMarks   float64
	Subjects   uint32
	Average    float64
	Percentage float64
	Grade      Grade
}

// NewReport computes the derived statistics for in.
func NewReport(in Input) (StudentReport, error) {
	if in.Subjects == 0 {
		return StudentReport{}, ErrNoSubjects
	}
	if !(in.MaxMarks > 0) {
		return StudentReport{}, fmt.Errorf("%w (got %v)", ErrInvalidMaxMarks, in.MaxMarks)
	}
	pct := Percentage(in.TotalMarks, in.MaxMarks)
	return StudentReport{
		Name:       in.Name,
		TotalMarks: in.TotalMarks,
		MaxMarks:   in.MaxMarks,
		Subjects:   in.Subjects,
		Average:    Average(in.TotalMarks, in.Subjects),
		Percentage: pct,
		Grade:      AssignGrade(pct),
	}, nil
}
