package renderer

import (
	"fmt"
	"io"
	"time"

	"certcomply/pkg/models"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

type ANSIRenderer struct{}

func NewANSIRenderer() *ANSIRenderer {
	return &ANSIRenderer{}
}

func (a *ANSIRenderer) Render(w io.Writer, report *models.ComplianceReport) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	fmt.Fprintf(w, "═══ certcomply ═══\n")
	fmt.Fprintf(w, "Report: %s\n", report.ID)
	fmt.Fprintf(w, "Checked: %s\n\n", report.Timestamp.UTC().Format(time.RFC3339))

	a.renderRequest(w, report)

	if report.Error != "" {
		fmt.Fprintf(w, "[ ERROR ]\n")
		fmt.Fprintf(w, "  %s%s%s\n\n", colorRed, report.Error, colorReset)
	}

	a.renderViolations(w, report.Violations)
	a.renderWarnings(w, report.Warnings)
	a.renderResult(w, report)

	return nil
}

func (a *ANSIRenderer) renderRequest(w io.Writer, report *models.ComplianceReport) {
	fmt.Fprintf(w, "[ REQUEST ]\n")
	fmt.Fprintf(w, "  Domain: %s\n", report.Domain)
	fmt.Fprintf(w, "  Key: %s-%d\n", report.KeyType, report.KeySize)
	fmt.Fprintf(w, "  Validity: %d days\n\n", report.ValidityDays)
}

func (a *ANSIRenderer) renderViolations(w io.Writer, violations []models.Violation) {
	if len(violations) == 0 {
		return
	}

	fmt.Fprintf(w, "[ VIOLATIONS ]\n")
	for _, v := range violations {
		fmt.Fprintf(w, "  • %s[%s]%s %s (%s)\n", severityColor(v.Severity), v.Severity, colorReset, v.Description, v.Rule)
		fmt.Fprintf(w, "    Action: %s\n", v.Action)
	}
	fmt.Fprintf(w, "\n")
}

func (a *ANSIRenderer) renderWarnings(w io.Writer, warnings []models.Warning) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintf(w, "[ WARNINGS ]\n")
	for _, warning := range warnings {
		fmt.Fprintf(w, "  • %s%s%s\n", colorYellow, warning.Description, colorReset)
		fmt.Fprintf(w, "    Suggestion: %s\n", warning.Suggestion)
	}
	fmt.Fprintf(w, "\n")
}

func (a *ANSIRenderer) renderResult(w io.Writer, report *models.ComplianceReport) {
	fmt.Fprintf(w, "[ RESULT ]\n")

	if report.Compliant {
		fmt.Fprintf(w, "  Status: %s%sCOMPLIANT%s\n", colorBold, colorGreen, colorReset)
	} else {
		fmt.Fprintf(w, "  Status: %s%sNON-COMPLIANT%s\n", colorBold, colorRed, colorReset)
	}

	fmt.Fprintf(w, "  Violations: %d\n", report.ViolationsFound)
	fmt.Fprintf(w, "  Warnings: %d\n", report.WarningsFound)
	fmt.Fprintf(w, "  Score: %d/100\n", report.Score)
}

func severityColor(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical:
		return colorBold + colorRed
	case models.SeverityHigh:
		return colorRed
	default:
		return colorYellow
	}
}
