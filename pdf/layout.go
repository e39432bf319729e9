package pdf

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Placement is a line of text positioned on the page. Y is the baseline.
type Placement struct {
	X, Y float64
	Text string
}

// Layout positions lines inside the report box. The block of lines is
// centered vertically; each line sits LineHeight below the previous one.
// With a nil width function every line starts TextOffset left of the box
// center, otherwise the widest line is centered in the box. Lines are cut
// with an ellipsis only when MaxLineRune is set.
func Layout(cfg Config, lines []string, width func(string) float64) []Placement {
	if len(lines) == 0 {
		return nil
	}
	fitted := make([]string, len(lines))
	for i, line := range lines {
		fitted[i] = fitLine(line, cfg.MaxLineRune)
	}

	blockHeight := float64(len(fitted)) * cfg.LineHeight
	startY := cfg.BoxY + (cfg.BoxHeight-blockHeight)/2

	x := cfg.BoxX + cfg.BoxWidth/2 - cfg.TextOffset
	if width != nil {
		widest := 0.0
		for _, line := range fitted {
			if w := width(line); w > widest {
				widest = w
			}
		}
		x = cfg.BoxX + (cfg.BoxWidth-widest)/2
		if x < cfg.BoxX {
			x = cfg.BoxX
		}
	}

	out := make([]Placement, len(fitted))
	for i, line := range fitted {
		out[i] = Placement{
			X:    x,
			Y:    startY + float64(i)*cfg.LineHeight,
			Text: line,
		}
	}
	return out
}

func fitLine(line string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(line) <= limit {
		return line
	}
	return truncate.StringWithTail(line, uint(limit), "…")
}
