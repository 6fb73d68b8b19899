// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

const bannerWidth = 20

// FormatSize formats a byte count as a human-readable size.
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// PrintBanner prints title between two rules of '='.
func PrintBanner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(Output, "%s\n%s\n%s\n", rule, Bold(title), rule)
}

// CatalogItem is one model in a catalog listing.
type CatalogItem struct {
	Model     string
	Target    string
	Artifacts []string
}

// PrintCatalog prints the models that a batch run would publish.
func PrintCatalog(items []CatalogItem) {
	if len(items) == 0 {
		fmt.Fprintln(Output, "No models listed.")
		return
	}

	fmt.Fprintln(Output, Bold("Models:"))
	for _, it := range items {
		fmt.Fprintf(Output, "  %s %s %s\n", Cyan(it.Model), Dim("→"), Yellow(it.Target))
		for _, a := range it.Artifacts {
			fmt.Fprintf(Output, "      %s\n", Dim(a))
		}
	}
}

// PrintSummary prints the outcome of a publish run.
func PrintSummary(done, total int) {
	if done == total {
		PrintSuccess(fmt.Sprintf("Published %d of %d model(s)", done, total))
		return
	}
	PrintError(fmt.Sprintf("Published %d of %d model(s)", done, total))
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}
