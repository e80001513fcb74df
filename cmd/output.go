package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirforge/dirindex/dirindex/indexer"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the run summary with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// printSummary renders the post-run summary box.
func printSummary(w io.Writer, result *indexer.Result, outputDir string, written []string) {
	var lines []string
	lines = append(lines, titleStyle.Render("Directory index complete"))
	lines = append(lines, dimStyle.Render(fmt.Sprintf("root:     %s", result.Root)))
	lines = append(lines, dimStyle.Render(fmt.Sprintf("entries:  %d", result.EntryCount)))
	lines = append(lines, dimStyle.Render(fmt.Sprintf("nodes:    %d", result.NodeCount)))
	lines = append(lines, dimStyle.Render(fmt.Sprintf("duration: %s", result.Duration.Round(time.Millisecond))))
	lines = append(lines, dimStyle.Render(fmt.Sprintf("output:   %s", outputDir)))
	for _, name := range written {
		lines = append(lines, successStyle.Render("✓ ")+name)
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}
