package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/reportcard"
	"pkt.systems/reportcard/pdf"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/reportcard")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		outPath     string
		fontPath    string
		center      bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("reportcard", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outPath, "output", "o", pdf.DefaultOutputPath, "Output PDF path (overwritten)")
	flags.StringVar(&fontPath, "font", "", "TTF path replacing the built-in Helvetica Bold")
	flags.BoolVar(&center, "center", false, "Center report lines using measured text width")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: reportcard [flags]\n")
		fmt.Fprintln(stderr, "\nPrompts for a student's marks, prints a summary and writes a PDF report card.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return 2
	}

	cfg := pdf.DefaultConfig()
	cfg.MeasureText = center
	if fontPath = strings.TrimSpace(fontPath); fontPath != "" {
		cfg.FontPath = normalizePath(fontPath)
	}
	if flags.Changed("output") {
		outPath = normalizePath(outPath)
		if err := ensureDir(outPath); err != nil {
			fmt.Fprintf(stderr, "open output: %v\n", err)
			return 1
		}
	}

	prompter, restore, err := newPrompter(stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "terminal: %v\n", err)
		return 1
	}
	in, err := reportcard.ReadInput(prompter)
	restore()
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	report, err := reportcard.NewReport(in)
	if err != nil {
		fmt.Fprintf(stderr, "invalid input: %v\n", err)
		return 1
	}

	if err := reportcard.WriteSummary(stdout, report); err != nil {
		fmt.Fprintf(stderr, "write summary: %v\n", err)
		return 1
	}
	if err := pdf.WriteFile(outPath, pdf.RenderRequest{Report: report, Config: cfg}); err != nil {
		fmt.Fprintf(stderr, "render pdf: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "PDF saved as %s\n", outPath)
	return 0
}

// newPrompter uses line editing when stdin is a terminal. The returned
// function restores the terminal and must be called once input is read.
func newPrompter(stdin io.Reader, stdout io.Writer) (reportcard.Prompter, func(), error) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return reportcard.NewLinePrompter(stdin, stdout), func() {}, nil
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	rw := struct {
		io.Reader
		io.Writer
	}{f, stdout}
	return reportcard.NewTerminalPrompter(rw), func() { _ = term.Restore(fd, state) }, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
