package reportcard

// Grade is a letter grade derived from a percentage.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

func (g Grade) String() string { return string(g) }

// Average returns total divided by subjects. The caller must ensure
// subjects is non-zero.
func Average(total float64, subjects uint32) float64 {
	return total / float64(subjects)
}

// Percentage returns total as a percentage of maxMarks. The caller must
// ensure maxMarks is non-zero.
func Percentage(total, maxMarks float64) float64 {
	return (total / maxMarks) * 100
}

// AssignGrade maps a percentage to a letter grade:
//
//	[90, 100] A
//	[75, 90)  B
//	[60, 75)  C
//	otherwise D
//
// Values above 100, negative values and NaN all fall through to D.
func AssignGrade(percentage float64) Grade {
	switch {
	case percentage >= 90 && percentage <= 100:
		return GradeA
	case percentage >= 75 && percentage < 90:
		return GradeB
	case percentage >= 60 && percentage < 75:
		return GradeC
	default:
		return GradeD
	}
}
