package models

// Severity grades how serious a violation is.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
)

// Violation is a finding that makes the certificate non-compliant with a
// stated policy rule.
type Violation struct {
	ID          string   `json:"id"`
	Rule        string   `json:"rule"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Action      string   `json:"action"`
}

// Warning is an advisory finding. It lowers the score but never affects
// compliance status.
type Warning struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}
