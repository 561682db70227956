package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/seclog/internal/application/services"
	"github.com/reglet-dev/seclog/internal/domain/qos"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/reglet-dev/seclog/internal/infrastructure/xmltree"
	"github.com/spf13/cobra"
)

// InitOptions are the flags of the init command.
type InitOptions struct {
	services.ScaffoldOptions

	Schema        string
	OutputPath    string
	Force         bool
	NoInteractive bool
}

// newInitCmd builds the init command.
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a secure logging configuration file",
		Long: `Write a new secure logging XML file. Settings not given as flags are
asked for interactively unless --no-interactive is set.`,
		Example: `  seclog init
  seclog init --no-interactive --file /var/log/dds-security.log --profile DEFAULT
  seclog init --schema legacy -o participant_logging.xml`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().String("schema", services.DefaultSchema, fmt.Sprintf("XML schema: %v", services.SchemaNames()))
	cmd.Flags().StringP("output", "o", "security_logging.xml", "Output file path (- for stdout)")
	cmd.Flags().String("file", "", "Log file path")
	cmd.Flags().String("verbosity", "", "Logging verbosity")
	cmd.Flags().String("distribute", "", "Distribute log messages over DDS: true or false")
	cmd.Flags().String("profile", "", "QoS profile of the distributed logging writer")
	cmd.Flags().String("depth", "", "History depth of the distributed logging writer")
	cmd.Flags().Bool("force", false, "Overwrite an existing output file")
	cmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")

	return cmd
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func runInit(cmd *cobra.Command, _ []string) error {
	opts := InitOptions{}
	opts.Schema, _ = cmd.Flags().GetString("schema")
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.File, _ = cmd.Flags().GetString("file")
	opts.Verbosity, _ = cmd.Flags().GetString("verbosity")
	opts.Distribute, _ = cmd.Flags().GetString("distribute")
	opts.Profile, _ = cmd.Flags().GetString("profile")
	opts.Depth, _ = cmd.Flags().GetString("depth")
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")

	if !opts.NoInteractive {
		if err := promptInitOptions(&opts); err != nil {
			return err
		}
	}

	b, err := services.Scaffold(opts.Schema, opts.ScaffoldOptions)
	if err != nil {
		return err
	}

	if opts.OutputPath == "-" {
		return writeScaffold(cmd.OutOrStdout(), b)
	}

	if !opts.Force {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.OutputPath)
		}
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeScaffold(file, b); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.OutputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Logging configuration saved to %s\n", opts.OutputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'seclog apply --schema %s %s' to preview the properties.\n", opts.Schema, opts.OutputPath)
	return nil
}

// writeScaffold renders b to w.
func writeScaffold(w io.Writer, b *xmltree.Builder) error {
	if _, err := b.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// promptInitOptions asks for every setting that was not given as a flag.
func promptInitOptions(opts *InitOptions) error {
	var err error

	if opts.File == "" {
		err = huh.NewInput().
			Title("Log file path").
			Description("Leave empty to keep the plugin default").
			Value(&opts.File).
			Run()
		if err != nil {
			return err
		}
	}

	if opts.Verbosity == "" {
		verbosityOptions := []huh.Option[string]{huh.NewOption("(plugin default)", "")}
		for _, v := range values.Verbosities() {
			verbosityOptions = append(verbosityOptions, huh.NewOption(v.String(), v.String()))
		}
		err = huh.NewSelect[string]().
			Title("Verbosity").
			Options(verbosityOptions...).
			Value(&opts.Verbosity).
			Run()
		if err != nil {
			return err
		}
	}

	if opts.Distribute == "" {
		distribute := false
		err = huh.NewConfirm().
			Title("Distribute log messages over DDS?").
			Value(&distribute).
			Run()
		if err != nil {
			return err
		}
		opts.Distribute = fmt.Sprint(distribute)
	}

	// Only distributed logging has a writer to configure
	if opts.Distribute == "true" && opts.Schema != services.SchemaLegacy && opts.Profile == "" && opts.Depth == "" {
		profileOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
		for _, p := range qos.Profiles() {
			profileOptions = append(profileOptions, huh.NewOption(fmt.Sprintf("%s (depth %d)", p.Name, p.Depth), p.Name))
		}
		err = huh.NewSelect[string]().
			Title("QoS profile of the logging writer").
			Options(profileOptions...).
			Value(&opts.Profile).
			Run()
		if err != nil {
			return err
		}
	}

	return nil
}
