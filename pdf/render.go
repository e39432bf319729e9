package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"pkt.systems/reportcard"
)

// DefaultOutputPath is where the CLI writes the report card.
const DefaultOutputPath = "report_card.pdf"

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Report reportcard.StudentReport
	Writer io.Writer
	Config Config
}

// Render draws the report card and writes the PDF to req.Writer. Nothing is
// written unless the whole document was built without error.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.FontSize <= 0 || cfg.LineHeight <= 0 || cfg.TitleSize <= 0 {
		return fmt.Errorf("pdf render: invalid font configuration")
	}
	if cfg.BoxX+cfg.BoxWidth > cfg.PageWidth || cfg.BoxY+cfg.BoxHeight > cfg.PageHeight {
		return fmt.Errorf("pdf render: box does not fit on a %gx%g page", cfg.PageWidth, cfg.PageHeight)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(!cfg.Uncompressed)
	doc.SetCatalogSort(true)
	doc.SetTitle(cfg.DocTitle, true)
	doc.SetCreator(cfg.Creator, true)
	if cfg.Author != "" {
		doc.SetAuthor(cfg.Author, true)
	}
	if !cfg.CreationDate.IsZero() {
		doc.SetCreationDate(cfg.CreationDate)
		doc.SetModificationDate(cfg.CreationDate)
	}

	face, err := loadFont(doc, cfg)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}

	doc.AddPage()
	doc.SetDrawColor(0, 0, 0)
	doc.SetTextColor(0, 0, 0)
	doc.SetLineWidth(cfg.StrokeMM)

	doc.SetFont(face.family, face.style, cfg.TitleSize)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: font setup failed: %w", err)
	}
	doc.Text(cfg.TitleX, cfg.TitleY, face.translate(cfg.Title))
	doc.Line(cfg.UnderlineX[0], cfg.UnderlineY, cfg.UnderlineX[1], cfg.UnderlineY)
	doc.Rect(cfg.BoxX, cfg.BoxY, cfg.BoxWidth, cfg.BoxHeight, "D")

	doc.SetFont(face.family, face.style, cfg.FontSize)
	var width func(string) float64
	if cfg.MeasureText {
		width = func(s string) float64 { return doc.GetStringWidth(face.translate(s)) }
	}
	for _, p := range Layout(cfg, req.Report.Strings(), width) {
		doc.Text(p.X, p.Y, face.translate(p.Text))
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// WriteFile renders the report card and writes it to path, replacing any
// existing file. The file is only created once rendering has succeeded.
func WriteFile(path string, req RenderRequest) (err error) {
	var buf bytes.Buffer
	req.Writer = &buf
	if err := Render(req); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf write: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pdf write: close: %w", cerr)
		}
	}()
	if _, err := buf.WriteTo(f); err != nil {
		return fmt.Errorf("pdf write: %w", err)
	}
	return nil
}
