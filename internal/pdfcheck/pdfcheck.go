// Package pdfcheck inspects rendered PDFs in tests without a full parser.
// It understands the flat object layout written by fpdf: no object streams,
// one page tree, and plain Tj text operators when compression is off.
package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// PointsPerMM converts page sizes given in millimetres to PDF points.
const PointsPerMM = 72 / 25.4

var (
	pageRe     = regexp.MustCompile(`/Type\s*/Page\b[^s]`)
	countRe    = regexp.MustCompile(`/Count\s+(\d+)`)
	mediaBoxRe = regexp.MustCompile(`/MediaBox\s*\[\s*([-\d.]+)\s+([-\d.]+)\s+([-\d.]+)\s+([-\d.]+)\s*\]`)
	objRe      = regexp.MustCompile(`(?m)^(\d+)\s+\d+\s+obj`)
	showRe     = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)\s*Tj`)
)

// Info summarizes the structure of a PDF file.
type Info struct {
	Version  string
	Pages    int
	Count    int
	Objects  int
	MediaBox [4]float64
}

// Inspect checks the header, trailer and page tree of data.
func Inspect(data []byte) (Info, error) {
	var info Info
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return info, errors.New("missing %PDF header")
	}
	end := bytes.IndexAny(data, "\r\n")
	if end == -1 {
		return info, errors.New("truncated header")
	}
	info.Version = string(data[len("%PDF-"):end])
	if !bytes.Contains(data, []byte("trailer")) || !bytes.Contains(data, []byte("startxref")) {
		return info, errors.New("missing trailer")
	}
	if !bytes.HasSuffix(bytes.TrimRight(data, "\r\n"), []byte("%%EOF")) {
		return info, errors.New("missing EOF marker")
	}
	info.Objects = len(objRe.FindAllIndex(data, -1))
	if info.Objects == 0 {
		return info, errors.New("no objects found")
	}
	info.Pages = len(pageRe.FindAllIndex(data, -1))
	m := countRe.FindSubmatch(data)
	if m == nil {
		return info, errors.New("page tree has no /Count")
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return info, fmt.Errorf("page count: %w", err)
	}
	info.Count = n
	box := mediaBoxRe.FindSubmatch(data)
	if box == nil {
		return info, errors.New("missing /MediaBox")
	}
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(string(box[i+1]), 64)
		if err != nil {
			return info, fmt.Errorf("media box: %w", err)
		}
		info.MediaBox[i] = v
	}
	return info, nil
}

// PageSizeMM returns the media box size in millimetres.
func (i Info) PageSizeMM() (w, h float64) {
	return (i.MediaBox[2] - i.MediaBox[0]) / PointsPerMM, (i.MediaBox[3] - i.MediaBox[1]) / PointsPerMM
}

// ShownText returns the operands of every Tj operator in document order.
// It only works on uncompressed content streams.
func ShownText(data []byte) []string {
	matches := showRe.FindAllSubmatch(data, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, unescape(string(m[1])))
	}
	return out
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// PDFToTextCommand returns the pdftotext command that extracts the text of
// pdfPath to stdout.
func PDFToTextCommand(pdfPath string) *exec.Cmd {
	return exec.Command("pdftotext", "-layout", pdfPath, "-")
}
