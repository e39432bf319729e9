package reportcard

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

func TestReadInputLinePrompter(t *testing.T) {
	var out bytes.Buffer
	in, err := ReadInput(NewLinePrompter(strings.NewReader("Asha\n 450 \r\n500\n5"), &out))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	want := Input{Name: "Asha", TotalMarks: 450, MaxMarks: 500, Subjects: 5}
	if in != want {
		t.Fatalf("input = %+v, want %+v", in, want)
	}
	prompts := PromptName + PromptTotal + PromptMax + PromptSubjects
	if out.String() != prompts {
		t.Fatalf("prompts = %q, want %q", out.String(), prompts)
	}
}

func TestReadInputParseErrors(t *testing.T) {
	cases := []struct {
		input string
		field string
	}{
		{"Asha\nabc\n500\n5\n", "total marks"},
		{"Asha\n450\nfive hundred\n5\n", "maximum marks"},
		{"Asha\n450\n500\nx\n", "number of subjects"},
		{"Asha\n450\n500\n-2\n", "number of subjects"},
		{"Asha\n450\n500\n2.5\n", "number of subjects"},
	}
	for _, tc := range cases {
		_, err := ReadInput(NewLinePrompter(strings.NewReader(tc.input), io.Discard))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%q: expected ParseError, got %v", tc.input, err)
		}
		if perr.Field != tc.field {
			t.Fatalf("%q: field = %q, want %q", tc.input, perr.Field, tc.field)
		}
		if !strings.HasSuffix(err.Error(), "please enter a valid number") {
			t.Fatalf("%q: unexpected message %q", tc.input, err.Error())
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Fatalf("%q: expected wrapped strconv.NumError", tc.input)
		}
	}
}

func TestReadInputAcceptsLeadingPlus(t *testing.T) {
	in, err := ReadInput(NewLinePrompter(strings.NewReader("Asha\n+450\n+500\n+5\n"), io.Discard))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	want := Input{Name: "Asha", TotalMarks: 450, MaxMarks: 500, Subjects: 5}
	if in != want {
		t.Fatalf("input = %+v, want %+v", in, want)
	}
	if _, err := ReadInput(NewLinePrompter(strings.NewReader("Asha\n1\n2\n++5\n"), io.Discard)); err == nil {
		t.Fatalf("expected error for doubled sign")
	}
}

func TestReadInputStopsAtFirstParseError(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadInput(NewLinePrompter(strings.NewReader("Asha\nbad\n500\n5\n"), &out))
	if err == nil {
		t.Fatalf("expected error")
	}
	if strings.Contains(out.String(), PromptMax) {
		t.Fatalf("prompted again after a parse error: %q", out.String())
	}
}

func TestReadInputUnexpectedEOF(t *testing.T) {
	_, err := ReadInput(NewLinePrompter(strings.NewReader("Asha\n450\n"), io.Discard))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestReadInputSanitizesName(t *testing.T) {
	in, err := ReadInput(NewLinePrompter(strings.NewReader("  José\x07 \n1\n2\n3\n"), io.Discard))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if in.Name != "José" {
		t.Fatalf("name = %q", in.Name)
	}
}

type fakeTTY struct {
	io.Reader
	bytes.Buffer
}

func (f *fakeTTY) Read(p []byte) (int, error) { return f.Reader.Read(p) }

func TestReadInputTerminalPrompter(t *testing.T) {
	tty := &fakeTTY{Reader: strings.NewReader("Asha\r375\r500\r5\r")}
	in, err := ReadInput(NewTerminalPrompter(tty))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	want := Input{Name: "Asha", TotalMarks: 375, MaxMarks: 500, Subjects: 5}
	if in != want {
		t.Fatalf("input = %+v, want %+v", in, want)
	}
	if !strings.Contains(tty.String(), PromptSubjects) {
		t.Fatalf("expected prompts echoed to terminal, got %q", tty.String())
	}
}
