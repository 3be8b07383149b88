package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitsmeta/cli/internal/fits"
	"github.com/fitsmeta/cli/internal/output"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.fits>",
		Short: "Show a human-readable HDU summary",
		Long: `Show a human-readable summary of a FITS file's structure.

Prints one table row per HDU with its index, type, header card count, data
dimensions, and element type. Unlike the report commands, info uses exit
codes to signal failure: 2 when the file does not exist, 3 when it cannot
be read as FITS.`,
		Args: cobra.ExactArgs(1),
		RunE: runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	file := args[0]

	rep := fits.Normalize(file)
	if rep.IsError() {
		if _, statErr := os.Stat(file); os.IsNotExist(statErr) {
			return WrapNotFound(errors.New(rep.Err), "cannot open FITS file")
		}
		return WrapUnreadable(errors.New(rep.Err), "cannot read FITS file")
	}

	styles := output.GetStyles()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		styles.Noun.Render(file),
		styles.Dim.Render(fmt.Sprintf("(%d HDUs)", len(rep.HDUs))))

	rows := make([]output.HDURow, 0, len(rep.HDUs))
	for _, d := range rep.HDUs {
		row := output.HDURow{
			Index: d.Index,
			Type:  d.Type,
			Cards: d.Header.Len(),
			Shape: d.DataShape,
		}
		if d.DataType != nil {
			row.DataType = *d.DataType
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.RenderHDUTable(rows))
	return nil
}
