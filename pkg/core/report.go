package core

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// WriteSummary prints the final run summary.
func WriteSummary(w io.Writer, report *Report) {
	header := fmt.Sprintf("Cleanup complete (%s mode)", report.Mode)
	if report.DryRun {
		header = fmt.Sprintf("Dry run complete (%s mode)", report.Mode)
	}
	color.New(color.FgGreen, color.Bold).Fprintln(w, header)

	fmt.Fprintf(w, "  Files deleted:       %d\n", report.FilesDeleted)
	fmt.Fprintf(w, "  Directories deleted: %d\n", report.DirsDeleted)
	fmt.Fprintf(w, "  Total items:         %d\n", report.TotalItems())
	fmt.Fprintf(w, "  Space freed:         %.2f MB\n", float64(report.SpaceFreed)/(1024*1024))
}
