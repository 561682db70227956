package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

// CommonOptions contains output flags shared by commands that print reports.
type CommonOptions struct {
	// Output
	Format  string
	OutFile string

	// Execution
	Timeout time.Duration

	NoColor bool
}

// DefaultCommonOptions returns sensible defaults.
// Format is left empty so the system config can supply it.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Timeout: 30 * time.Second,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command, formats []string) {
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for entire execution (0 to disable)")
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		fmt.Sprintf("Output format: %v (default from system config, else table)", formats))
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored table output")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, func() {}
}

// ResolveFormat picks the first non-empty of the flag value and fallback,
// then checks it against formats.
func (opts *CommonOptions) ResolveFormat(fallback string, formats []string) (string, error) {
	format := opts.Format
	if format == "" {
		format = fallback
	}
	if format == "" {
		format = "table"
	}
	if !slices.Contains(formats, format) {
		return "", fmt.Errorf("invalid format: %s (valid: %v)", format, formats)
	}
	return format, nil
}

// OpenOutput returns the writer reports go to and a close function.
func (opts *CommonOptions) OpenOutput(stdout io.Writer) (io.Writer, func() error, error) {
	if opts.OutFile == "" {
		return stdout, func() error { return nil }, nil
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(opts.OutFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, file.Close, nil
}
