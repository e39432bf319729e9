package reportcard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompts in the order ReadInput asks them.
const (
	PromptName     = "Enter student name: "
	PromptTotal    = "Enter total marks obtained: "
	PromptMax      = "Enter maximum possible marks: "
	PromptSubjects = "Enter number of subjects: "
)

// Prompter shows a prompt and returns the line typed in response, without
// its line terminator.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// ParseError reports an answer that is not a valid number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: please enter a valid number", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadInput asks for the student's name, marks obtained, maximum marks and
// subject count, in that order. It stops at the first answer that fails to
// parse.
func ReadInput(p Prompter) (Input, error) {
	var in Input
	name, err := ask(p, PromptName, "student name")
	if err != nil {
		return Input{}, err
	}
	in.Name = SanitizeName(name)

	raw, err := ask(p, PromptTotal, "total marks")
	if err != nil {
		return Input{}, err
	}
	if in.TotalMarks, err = parseFloat("total marks", raw); err != nil {
		return Input{}, err
	}

	raw, err = ask(p, PromptMax, "maximum marks")
	if err != nil {
		return Input{}, err
	}
	if in.MaxMarks, err = parseFloat("maximum marks", raw); err != nil {
		return Input{}, err
	}

	raw, err = ask(p, PromptSubjects, "number of subjects")
	if err != nil {
		return Input{}, err
	}
	value := strings.TrimSpace(raw)
	n, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 32)
	if err != nil {
		return Input{}, &ParseError{Field: "number of subjects", Value: value, Err: err}
	}
	in.Subjects = uint32(n)
	return in, nil
}

func ask(p Prompter, prompt, field string) (string, error) {
	line, err := p.Prompt(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	return line, nil
}

func parseFloat(field, raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return v, nil
}

type linePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter returns a Prompter that writes prompts to w and reads
// newline-terminated answers from r.
func NewLinePrompter(r io.Reader, w io.Writer) Prompter {
	return &linePrompter{r: bufio.NewReader(r), w: w}
}

func (p *linePrompter) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(p.w, prompt); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

type terminalPrompter struct {
	t *term.Terminal
}

// NewTerminalPrompter returns a Prompter with line editing and history for
// an interactive terminal. rw must already be in raw mode; see term.MakeRaw.
func NewTerminalPrompter(rw io.ReadWriter) Prompter {
	return &terminalPrompter{t: term.NewTerminal(rw, "")}
}

func (p *terminalPrompter) Prompt(prompt string) (string, error) {
	p.t.SetPrompt(prompt)
	return p.t.ReadLine()
}
