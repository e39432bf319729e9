package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// fontFace is the font the page is drawn with, plus the translation needed
// to feed it UTF-8 text.
type fontFace struct {
	family    string
	style     string
	translate func(string) string
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Arial", "Times":
		return true
	default:
		return false
	}
}

func ensureFontPath(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".ttf") {
		return fmt.Errorf("font must be a .ttf file")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("font missing: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("font path is a directory")
	}
	return nil
}

// loadFont registers the configured font with doc. Core fonts only cover
// cp1252, so their text goes through the fpdf unicode translator.
func loadFont(doc *fpdf.Fpdf, cfg Config) (fontFace, error) {
	data := cfg.FontBytes
	if len(data) == 0 && cfg.FontPath != "" {
		if err := ensureFontPath(cfg.FontPath); err != nil {
			return fontFace{}, err
		}
		b, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return fontFace{}, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	if len(data) > 0 {
		doc.AddUTF8FontFromBytes(embeddedFontFamily, "", data)
		if err := doc.Error(); err != nil {
			return fontFace{}, fmt.Errorf("load font: %w", err)
		}
		return fontFace{
			family:    embeddedFontFamily,
			translate: func(s string) string { return s },
		}, nil
	}
	if !isCoreFont(cfg.FontFamily) {
		return fontFace{}, fmt.Errorf("core font family required when no font file is given, got %q", cfg.FontFamily)
	}
	return fontFace{
		family:    cfg.FontFamily,
		style:     cfg.FontStyle,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
	}, nil
}
