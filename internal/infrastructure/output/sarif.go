// Package output provides formatters for seclog apply reports.
package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/reglet-dev/seclog/internal/application/dto"
)

// SARIFFormatter formats apply reports as SARIF 2.1.0 JSON.
// Failure kinds become rules and every file becomes a result located at
// that file, so code scanning dashboards can show rejected configurations.
//
// Usage:
//
//	formatter := output.NewSARIFFormatter(os.Stdout)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer) *SARIFFormatter {
	return &SARIFFormatter{writer: writer}
}

// Format writes the report as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(report *dto.ApplyReport) error {
	sarifReport := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("seclog", "https://reglet.dev/seclog")
	version := report.Version
	run.Tool.Driver.Version = &version
	run.Tool.Driver.Organization = ptrString("Reglet")

	mapper := newSARIFMapper(report)
	mapper.mapToRun(run)

	sarifReport.AddRun(run)

	if err := sarifReport.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
