// Package pdf renders a StudentReport as a single-page PDF report card.
//
// The page carries a title, an underline, a bordered box and the seven
// report lines centered vertically inside the box. Horizontal placement
// uses a fixed offset from the box center unless Config.MeasureText is set,
// in which case the widest line is centered using measured glyph widths.
//
// Example:
//
//	report, _ := reportcard.NewReport(reportcard.Input{
//		Name: "Asha", TotalMarks: 450, MaxMarks: 500, Subjects: 5,
//	})
//	err := pdf.WriteFile("report_card.pdf", pdf.RenderRequest{
//		Report: report,
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The core Helvetica font is used by default. Set FontPath or FontBytes to
// embed a TrueType font instead.
package pdf
