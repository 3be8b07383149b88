package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/yargevad/filepathx"

	"github.com/fitsmeta/cli/internal/fits"
	"github.com/fitsmeta/cli/internal/output"
)

// scanEntry pairs a file path with its normalized metadata report.
type scanEntry struct {
	File   string      `json:"file"`
	Report fits.Report `json:"report"`
}

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <pattern>...",
		Short: "Normalize every FITS file matching the given glob patterns",
		Long: `Normalize every FITS file matching the given glob patterns.

Patterns support ** for recursive matching, e.g. 'data/**/*.fits'. Each
matched file is normalized independently; files that fail to parse get an
error-shaped report instead of aborting the scan. The combined results are
printed as a JSON array of {file, report} objects.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return WrapNotFound(fmt.Errorf("no files match %v", args), "nothing to scan")
	}

	var entries []scanEntry
	err = output.RunWithSpinner(cmd.Context(), func() error {
		for _, file := range files {
			entries = append(entries, scanEntry{File: file, Report: fits.Normalize(file)})
		}
		return nil
	}, output.WithTitle(fmt.Sprintf("Scanning %d FITS files...", len(files))))
	if err != nil {
		return err
	}

	doc, err := json.MarshalIndent(entries, "", fits.Indent)
	if err != nil {
		return fmt.Errorf("encoding scan results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(doc))
	return nil
}

// expandPatterns resolves glob patterns to a sorted, deduplicated file list.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := filepathx.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
