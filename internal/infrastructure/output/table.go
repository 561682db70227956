package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TableFormatter formats apply reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *dto.ApplyReport) error {
	rule := f.colorize(strings.Repeat("─", 80), colorGray)

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "Schema: %s\n", f.colorize(report.Schema, colorBold))
	fmt.Fprintf(f.writer, "Executed: %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(report.Results) == 0 {
		fmt.Fprintln(f.writer, "No files applied.")
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Files:", colorBold))
	fmt.Fprintln(f.writer, rule)

	for _, res := range report.Results {
		f.formatResult(res)
	}

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintln(f.writer)

	f.formatSummary(report)

	return nil
}

// formatResult formats a single file.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatResult(res dto.FileResult) {
	symbol, color := f.getStatusInfo(res.Status)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize(symbol, color), f.colorize(res.Path, color))

	fmt.Fprintf(f.writer, "  Status: %s\n", f.colorize(strings.ToUpper(string(res.Status)), color))
	if !res.InvocationID.IsZero() {
		fmt.Fprintf(f.writer, "  Invocation: %s\n", res.InvocationID)
	}
	if res.Error != "" {
		label := "Error"
		if res.ErrorKind != "" {
			label = fmt.Sprintf("Error [%s]", res.ErrorKind)
		}
		fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize(label, colorRed), res.Error)
	}

	if len(res.Properties) > 0 {
		fmt.Fprintln(f.writer, "  Properties:")
		for _, p := range res.Properties {
			fmt.Fprintf(f.writer, "    - %s = %s\n", f.colorize(p.Name, colorBlue), p.Value)
		}
	}

	fmt.Fprintln(f.writer)
}

// formatSummary formats the summary statistics.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(report *dto.ApplyReport) {
	counts := make(map[values.Status]int)
	for _, res := range report.Results {
		counts[res.Status]++
	}

	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Files:      %d total\n", len(report.Results))
	fmt.Fprintf(f.writer, "  %s Applied:  %d\n", f.colorize("✓", colorGreen), counts[values.StatusApplied])
	fmt.Fprintf(f.writer, "  %s Partial:  %d\n", f.colorize("⚠", colorYellow), counts[values.StatusPartial])
	fmt.Fprintf(f.writer, "  %s Failed:   %d\n", f.colorize("✗", colorRed), counts[values.StatusFailed])
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
}

// getStatusInfo returns a symbol and color for the given status.
func (f *TableFormatter) getStatusInfo(status values.Status) (string, string) {
	switch status {
	case values.StatusApplied:
		return "✓", colorGreen
	case values.StatusPartial:
		return "⚠", colorYellow
	case values.StatusFailed:
		return "✗", colorRed
	default:
		return "?", colorReset
	}
}
