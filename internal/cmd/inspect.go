package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/fitsmeta/cli/internal/fits"
	"github.com/fitsmeta/cli/internal/output"
)

var inspectOutputFlag string

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.fits>",
		Short: "Report per-HDU metadata for a FITS file",
		Long: `Report per-HDU metadata for a FITS file.

Equivalent to the bare "fitsmeta <file.fits>" invocation, with a selectable
encoding. The report is either an array of HDU descriptors or a single
{"error": ...} object; the exit code is 0 in both cases.

Examples:
  # JSON report (default)
  fitsmeta inspect light.fits

  # YAML report
  fitsmeta inspect light.fits -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().StringVarP(&inspectOutputFlag, "output", "o", "",
		"Output format: json, yaml (default: from config)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	format := inspectOutputFlag
	if format == "" {
		format = GetConfig().Output
	}

	parsed := output.ParseOutputFormat(format)
	if parsed == output.FormatTable {
		return fmt.Errorf("unsupported report format %q (valid: %v)",
			format, output.ValidReportFormats())
	}

	rep := fits.Normalize(args[0])

	out, err := renderReport(rep, parsed)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(bytes.TrimRight(out, "\n")))
	return nil
}

// renderReport encodes a report in the requested format.
func renderReport(rep fits.Report, format output.OutputFormat) ([]byte, error) {
	switch format {
	case output.FormatYAML:
		data, err := json.Marshal(rep)
		if err != nil {
			return nil, err
		}
		return yaml.JSONToYAML(data)
	default:
		return rep.RenderJSON()
	}
}
