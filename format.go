package reportcard

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/reflow/padding"
)

// LabelWidth is the column width labels are padded to.
const LabelWidth = 16

// Line is one labeled entry of the report card.
type Line struct {
	Label string
	Value string
}

// String renders the line as a padded label, a colon and the value.
func (l Line) String() string {
	return padding.String(l.Label, LabelWidth) + ": " + l.Value
}

// Lines returns the seven report card entries in display order.
func (r StudentReport) Lines() []Line {
	return []Line{
		{Label: "Name", Value: r.Name},
		{Label: "Marks Obtained", Value: formatMarks(r.TotalMarks)},
		{Label: "Max Marks", Value: formatMarks(r.MaxMarks)},
		{Label: "Subjects", Value: strconv.FormatUint(uint64(r.Subjects), 10)},
		{Label: "Average Marks", Value: fmt.Sprintf("%.2f", r.Average)},
		{Label: "Percentage", Value: fmt.Sprintf("%.2f%%", r.Percentage)},
		{Label: "Grade", Value: r.Grade.String()},
	}
}

// Strings returns Lines rendered with Line.String.
func (r StudentReport) Strings() []string {
	lines := r.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// WriteSummary prints the console summary block for r.
func WriteSummary(w io.Writer, r StudentReport) error {
	_, err := fmt.Fprintf(w, "\nStudent Summary:\nName: %s\nAverage Marks: %.2f\nPercentage: %.2f%%\nGrade: %s\n",
		r.Name, r.Average, r.Percentage, r.Grade)
	return err
}

// formatMarks prints marks in their shortest form, so 450 stays "450" and
// 87.5 stays "87.5".
func formatMarks(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
