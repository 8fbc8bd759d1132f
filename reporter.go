package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// https://github.com/muesli/termenv/blob/master/ansicolors.go
var (
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// reportRun renders the whole suite; the command prints the result.
// Formatting only, the outcomes are never altered here.
func reportRun(outcomes []CheckOutcome, summary RunSummary) string {
	var b strings.Builder
	for _, o := range outcomes {
		b.WriteString(reportOutcome(o))
		b.WriteString("\n")
	}
	b.WriteString(blue.Render("Test Results:"))
	b.WriteString("\n")
	b.WriteString(green.Render(fmt.Sprintf("✅ Passed: %d", summary.Passed)))
	b.WriteString("\n")
	b.WriteString(red.Render(fmt.Sprintf("❌ Failed: %d", summary.Failed)))
	b.WriteString("\n")
	if summary.Failed == 0 {
		b.WriteString(green.Render("🎉 All tests passed!"))
	} else {
		b.WriteString(yellow.Render("⚠️  Some tests failed. Make sure the server is running with 'harness run'."))
	}
	return b.String()
}

func reportOutcome(o CheckOutcome) string {
	if o.Passed {
		return green.Render(fmt.Sprintf("✅ %s passed", o.Spec.Name))
	}
	if len(o.MissingKeys) > 0 {
		return red.Render(fmt.Sprintf("❌ %s failed - missing keys: %s", o.Spec.Name, strings.Join(o.MissingKeys, ", ")))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "❌ %s failed\n", o.Spec.Name)
	fmt.Fprintf(&b, "   Status: %d\n", o.Result.StatusCode)
	fmt.Fprintf(&b, "   Error: %s", o.Result.Error)
	return red.Render(b.String())
}
