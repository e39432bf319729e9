package reportcard

import (
	"bytes"
	"testing"
)

func TestLinesAshaScenario(t *testing.T) {
	r, err := NewReport(Input{Name: "Asha", TotalMarks: 450, MaxMarks: 500, Subjects: 5})
	if err != nil {
		t.Fatalf("NewReport: %v", err)
	}
	want := []string{
		"Name            : Asha",
		"Marks Obtained  : 450",
		"Max Marks       : 500",
		"Subjects        : 5",
		"Average Marks   : 90.00",
		"Percentage      : 90.00%",
		"Grade           : A",
	}
	got := r.Strings()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesFractionalMarks(t *testing.T) {
	r, err := NewReport(Input{Name: "Noor", TotalMarks: 87.5, MaxMarks: 120, Subjects: 3})
	if err != nil {
		t.Fatalf("NewReport: %v", err)
	}
	lines := r.Lines()
	if lines[1].Value != "87.5" {
		t.Fatalf("marks obtained = %q, want 87.5", lines[1].Value)
	}
	if lines[4].Value != "29.17" {
		t.Fatalf("average = %q, want 29.17", lines[4].Value)
	}
	if lines[5].Value != "72.92%" {
		t.Fatalf("percentage = %q, want 72.92%%", lines[5].Value)
	}
	if lines[6].Value != "C" {
		t.Fatalf("grade = %q, want C", lines[6].Value)
	}
}

func TestLineLongLabelNotTruncated(t *testing.T) {
	l := Line{Label: "A label longer than sixteen", Value: "x"}
	if got := l.String(); got != "A label longer than sixteen: x" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestWriteSummary(t *testing.T) {
	r, err := NewReport(Input{Name: "Ravi", TotalMarks: 0, MaxMarks: 100, Subjects: 1})
	if err != nil {
		t.Fatalf("NewReport: %v", err)
	}
	var out bytes.Buffer
	if err := WriteSummary(&out, r); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	want := "\nStudent Summary:\nName: Ravi\nAverage Marks: 0.00\nPercentage: 0.00%\nGrade: D\n"
	if out.String() != want {
		t.Fatalf("summary = %q, want %q", out.String(), want)
	}
}
