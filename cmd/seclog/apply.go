package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/application/ports"
	"github.com/reglet-dev/seclog/internal/application/services"
	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// applyOptions holds the flags of the apply command.
type applyOptions struct {
	CommonOptions

	Properties    []string
	FailOn        string
	Jobs          int
	MaxProperties int
	Atomic        bool
}

var applyOpts = applyOptions{CommonOptions: DefaultCommonOptions()}

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <logging.xml>...",
	Short: "Translate secure logging XML files into security properties",
	Long: `Read each secure logging configuration file and translate it into the
com.rti.serv.secure.logging.* properties of a fresh property policy.

Files are translated independently and concurrently; results are printed in
input order. A failure stops translation of that file only, and properties
written before the failure stay in its policy unless --atomic is set.

Schemas:
  flat     <security_log> with file, verbosity, distribute and qos (default)
  publish  <security_log> with named verbosity levels and <publish><qos>
  legacy   <participant_security_log> with log_file, log_verbosity, distribute/enable`,
	Example: `  seclog apply logging.xml
  seclog apply --schema legacy --format properties a.xml b.xml
  seclog apply --property dds.sec.auth.identity_ca=file:ca.pem --atomic logging.xml
  seclog apply --fail-on 'status == "failed"' --format sarif -o seclog.sarif *.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		applyOpts.Format = viper.GetString("format")
		applyOpts.Jobs = viper.GetInt("jobs")
		applyOpts.FailOn = viper.GetString("fail-on")
		if !cmd.Flags().Changed("max-properties") {
			applyOpts.MaxProperties = cc.Container.SystemConfig().Policy.MaxProperties
		}
		return runApply(cc, cmd.OutOrStdout(), args, &applyOpts)
	}),
}

func init() {
	rootCmd.AddCommand(applyCmd)

	formats := []string{"table", "json", "yaml", "properties", "junit", "sarif"}
	applyOpts.RegisterFlags(applyCmd, formats)

	applyCmd.Flags().String("schema", "", fmt.Sprintf("XML schema: %v (default from system config, else %s)", services.SchemaNames(), services.DefaultSchema))
	applyCmd.Flags().String("version-constraint", "", "Accepted range for the root version attribute (default from system config, else ^1)")
	applyCmd.Flags().IntVar(&applyOpts.Jobs, "jobs", 0, "Maximum files translated concurrently (0 = all at once)")
	applyCmd.Flags().StringArrayVar(&applyOpts.Properties, "property", nil, "Property name=value already present in every policy (repeatable)")
	applyCmd.Flags().IntVar(&applyOpts.MaxProperties, "max-properties", 0, "Maximum properties a policy accepts (0 = no limit)")
	applyCmd.Flags().BoolVar(&applyOpts.Atomic, "atomic", false, "Restore a file's policy when its translation fails")
	applyCmd.Flags().StringVar(&applyOpts.FailOn, "fail-on", "", "Expression selecting failing files (default: "+services.DefaultFailOn+")")

	for _, name := range []string{"schema", "version-constraint", "format", "jobs", "fail-on"} {
		_ = viper.BindPFlag(name, applyCmd.Flags().Lookup(name))
	}
}

// runApply implements the core logic for the apply command.
func runApply(cc *CommandContext, stdout io.Writer, paths []string, opts *applyOptions) error {
	factory := cc.Container.FormatterFactory()
	sysCfg := cc.Container.SystemConfig()

	format, err := opts.ResolveFormat(sysCfg.Output.Format, factory.SupportedFormats())
	if err != nil {
		return err
	}

	seed, err := parseProperties(opts.Properties)
	if err != nil {
		return err
	}

	failPolicy, err := services.NewFailPolicy(opts.FailOn)
	if err != nil {
		return err
	}

	ctx, cancel := opts.ApplyToContext(cc.Context)
	defer cancel()

	cc.Logger.Debug("applying logging configuration",
		"files", len(paths),
		"schema", cc.Container.Translator().Schema(),
		"jobs", opts.Jobs,
	)

	report, err := cc.Container.ApplyFilesUseCase().Execute(ctx, dto.ApplyRequest{
		Paths: paths,
		Seed:  seed,
		Options: dto.ApplyOptions{
			MaxProperties: opts.MaxProperties,
			Jobs:          opts.Jobs,
			Atomic:        opts.Atomic,
		},
	})
	if err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	writer, closeOutput, err := opts.OpenOutput(stdout)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeOutput() // Best-effort cleanup
	}()
	if opts.OutFile != "" {
		cc.Logger.Info("writing output", "file", opts.OutFile, "format", format)
	}

	formatter, err := factory.Create(format, writer, ports.FormatterOptions{
		Indent: true,
		Color:  sysCfg.Output.Color && !opts.NoColor && opts.OutFile == "",
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	failing, err := failPolicy.Failing(report)
	if err != nil {
		return err
	}
	if len(failing) > 0 {
		return fmt.Errorf("apply failed: %d of %d files matched %s", len(failing), len(report.Results), failPolicy)
	}

	return nil
}

// parseProperties converts name=value pairs into seed properties, keeping
// their order. The value may contain '='.
func parseProperties(pairs []string) ([]policy.Property, error) {
	props := make([]policy.Property, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --property %q: expected name=value", pair)
		}
		props = append(props, policy.Property{Name: name, Value: value})
	}
	return props, nil
}
