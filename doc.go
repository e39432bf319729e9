// Package reportcard computes a student's report card from raw marks.
//
// The package turns the four answers a user types (name, marks obtained,
// maximum marks and subject count) into a StudentReport holding the derived
// average, percentage and letter grade. The pdf sub-package lays the report
// out on a single A4 page.
//
// Example:
//
//	in, err := reportcard.ReadInput(reportcard.NewLinePrompter(os.Stdin, os.Stdout))
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, err := reportcard.NewReport(in)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := reportcard.WriteSummary(os.Stdout, report); err != nil {
//		log.Fatal(err)
//	}
//
// Grades follow a fixed threshold table; see AssignGrade.
package reportcard
