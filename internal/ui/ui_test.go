package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	orig := Output
	Output = &buf
	t.Cleanup(func() {
		Output = orig
		color.NoColor = false
	})
	return &buf
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero bytes", 0, "0 B"},
		{"bytes", 500, "500 B"},
		{"one KB", 1024, "1.0 KB"},
		{"kilobytes", 1536, "1.5 KB"},
		{"one MB", 1024 * 1024, "1.0 MB"},
		{"megabytes", 1536 * 1024, "1.5 MB"},
		{"one GB", 1024 * 1024 * 1024, "1.0 GB"},
		{"gigabytes", 4831838208, "4.5 GB"},  // 4.5 * 1024^3
		{"large file", 8375319756, "7.8 GB"}, // 7.8 * 1024^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestPrintBanner(t *testing.T) {
	// Arrange
	buf := captureOutput(t)

	// Act
	PrintBanner("google/gemma-2-27b-it to EricB/gemma-2-27b-it-UQFF")

	// Assert
	want := "====================\n" +
		"google/gemma-2-27b-it to EricB/gemma-2-27b-it-UQFF\n" +
		"====================\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintCatalog(t *testing.T) {
	tests := []struct {
		name     string
		items    []CatalogItem
		contains []string
	}{
		{
			name:     "empty",
			items:    nil,
			contains: []string{"No models listed."},
		},
		{
			name: "with artifacts",
			items: []CatalogItem{
				{
					Model:     "microsoft/Phi-3.5-mini-instruct",
					Target:    "EricB/Phi-3.5-mini-instruct-UQFF",
					Artifacts: []string{"phi3.5-mini-instruct-q4k.uqff"},
				},
			},
			contains: []string{
				"Models:",
				"microsoft/Phi-3.5-mini-instruct → EricB/Phi-3.5-mini-instruct-UQFF",
				"phi3.5-mini-instruct-q4k.uqff",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)

			PrintCatalog(tt.items)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		want  string
	}{
		{"all done", 3, 3, "✓ Published 3 of 3 model(s)\n"},
		{"stopped early", 1, 3, "✗ Published 1 of 3 model(s)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)

			PrintSummary(tt.done, tt.total)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string)
		want string
	}{
		{"success", PrintSuccess, "✓ done\n"},
		{"error", PrintError, "✗ done\n"},
		{"warning", PrintWarning, "⚠ done\n"},
		{"info", PrintInfo, "• done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)

			tt.fn("done")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
