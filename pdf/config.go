package pdf

import "time"

// Config holds page geometry and font settings. All lengths are in
// millimetres with y measured down from the top edge of the page.
type Config struct {
	PageWidth  float64
	PageHeight float64

	FontFamily string
	FontStyle  string
	FontPath   string
	FontBytes  []byte

	Title      string
	TitleSize  float64
	TitleX     float64
	TitleY     float64
	UnderlineX [2]float64
	UnderlineY float64
	StrokeMM   float64

	BoxX      float64
	BoxY      float64
	BoxWidth  float64
	BoxHeight float64

	FontSize    float64
	LineHeight  float64
	TextOffset  float64
	MaxLineRune int
	MeasureText bool

	Uncompressed bool
	DocTitle     string
	Author       string
	Creator      string
	CreationDate time.Time
}

const embeddedFontFamily = "ReportCard"

// DefaultConfig returns the A4 report card layout.
func DefaultConfig() Config {
	return Config{
		PageWidth:  210,
		PageHeight: 297,
		FontFamily: "Helvetica",
		FontStyle:  "B",
		Title:      "Student Report Card",
		TitleSize:  18,
		TitleX:     60,
		TitleY:     27,
		UnderlineX: [2]float64{55, 150},
		UnderlineY: 29,
		StrokeMM:   0.2,
		BoxX:       40,
		BoxY:       57,
		BoxWidth:   130,
		BoxHeight:  90,
		FontSize:   12,
		LineHeight: 10,
		TextOffset: 40,
		DocTitle:   "Report Card",
		Creator:    "reportcard",
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageWidth > 0 {
		dst.PageWidth = src.PageWidth
	}
	if src.PageHeight > 0 {
		dst.PageHeight = src.PageHeight
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.FontStyle != "" {
		dst.FontStyle = src.FontStyle
	}
	if src.FontPath != "" {
		dst.FontPath = src.FontPath
	}
	if len(src.FontBytes) > 0 {
		dst.FontBytes = src.FontBytes
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.TitleSize > 0 {
		dst.TitleSize = src.TitleSize
	}
	if src.TitleX > 0 {
		dst.TitleX = src.TitleX
	}
	if src.TitleY > 0 {
		dst.TitleY = src.TitleY
	}
	if src.UnderlineX != [2]float64{} {
		dst.UnderlineX = src.UnderlineX
	}
	if src.UnderlineY > 0 {
		dst.UnderlineY = src.UnderlineY
	}
	if src.StrokeMM > 0 {
		dst.StrokeMM = src.StrokeMM
	}
	if src.BoxX > 0 {
		dst.BoxX = src.BoxX
	}
	if src.BoxY > 0 {
		dst.BoxY = src.BoxY
	}
	if src.BoxWidth > 0 {
		dst.BoxWidth = src.BoxWidth
	}
	if src.BoxHeight > 0 {
		dst.BoxHeight = src.BoxHeight
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.TextOffset > 0 {
		dst.TextOffset = src.TextOffset
	}
	if src.MaxLineRune > 0 {
		dst.MaxLineRune = src.MaxLineRune
	}
	if src.MeasureText {
		dst.MeasureText = true
	}
	if src.Uncompressed {
		dst.Uncompressed = true
	}
	if src.DocTitle != "" {
		dst.DocTitle = src.DocTitle
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}
