package internal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	countStyle   = color.New(color.FgCyan, color.Bold)
	messageStyle = color.New(color.FgWhite)
	headerStyle  = color.New(color.FgGreen, color.Bold)
)

// FormatReport renders a run report for terminal output.
func FormatReport(report *Report) string {
	var builder strings.Builder

	builder.WriteString(headerStyle.Sprint("post-processing complete"))
	builder.WriteString(fmt.Sprintf(": %s action(s) in %s round(s) across %s batch(es)\n",
		countStyle.Sprintf("%d", len(report.Applied)),
		countStyle.Sprintf("%d", report.Rounds),
		countStyle.Sprintf("%d", report.Batches)))

	for _, act := range report.Applied {
		builder.WriteString("  ")
		builder.WriteString(ruleStyle.Sprint(act.Rule))
		builder.WriteString(": ")
		builder.WriteString(messageStyle.Sprint(act.Message))
		builder.WriteString("\n")
	}
	return builder.String()
}
