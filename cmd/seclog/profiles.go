package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/seclog/internal/domain/qos"
	"github.com/spf13/cobra"
)

var profilesFormat string

// profilesCmd lists the built-in QoS profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the QoS profiles accepted in <qos><profile>",
	Long: `List the built-in QoS profiles a logging configuration may name in its
<qos><profile> element. Only the history depth is applied to the distributed
logging writer; the other columns describe the profile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runProfiles(cmd.OutOrStdout(), profilesFormat)
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)

	profilesCmd.Flags().StringVar(&profilesFormat, "format", "table", "Output format: table, json, yaml")
}

func runProfiles(w io.Writer, format string) error {
	profiles := qos.Profiles()

	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDEPTH\tHISTORY\tRELIABILITY\tDURABILITY")
		for _, p := range profiles {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", p.Name, p.Depth, p.History, p.Reliability, p.Durability)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	case "yaml":
		encoder := yaml.NewEncoder(w, yaml.Indent(2))
		if err := encoder.Encode(profiles); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("invalid format: %s (valid: table, json, yaml)", format)
	}
}
