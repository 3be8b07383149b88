package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/fitsmeta/cli/internal/fits"
	"github.com/fitsmeta/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a.fits> <b.fits>",
		Short: "Compare the normalized metadata of two FITS files",
		Long: `Compare the normalized metadata of two FITS files.

Both files are normalized to their metadata reports, then the reports are
diffed structurally. Identical metadata prints a confirmation; differing
metadata prints a human-readable change report. The exit code is 0 in
both cases.`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	fromFile, toFile := args[0], args[1]

	fromDoc, err := normalizedYAML(fromFile)
	if err != nil {
		return err
	}
	toDoc, err := normalizedYAML(toFile)
	if err != nil {
		return err
	}

	diff, err := output.CompareYAML(fromFile, fromDoc, toFile, toDoc, output.IsTTY())
	if err != nil {
		return fmt.Errorf("comparing metadata: %w", err)
	}

	styles := output.GetStyles()
	if diff == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s and %s have identical metadata\n",
			styles.Success.Render("✓"),
			styles.Noun.Render(fromFile),
			styles.Noun.Render(toFile))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), diff)
	return nil
}

// normalizedYAML normalizes a FITS file and renders its report as YAML for
// structural comparison.
func normalizedYAML(file string) ([]byte, error) {
	rep := fits.Normalize(file)
	if rep.IsError() {
		if _, statErr := os.Stat(file); os.IsNotExist(statErr) {
			return nil, WrapNotFound(errors.New(rep.Err), "cannot open FITS file")
		}
		return nil, WrapUnreadable(errors.New(rep.Err), "cannot read FITS file")
	}

	jsonDoc, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("encoding report for %s: %w", file, err)
	}
	yamlDoc, err := yaml.JSONToYAML(jsonDoc)
	if err != nil {
		return nil, fmt.Errorf("encoding report for %s: %w", file, err)
	}
	return yamlDoc, nil
}
