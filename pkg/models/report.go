package models

import "time"

// ComplianceReport is the result of one evaluation. It is immutable once
// produced; persistence is a separate, independently retryable step.
type ComplianceReport struct {
	ID              string      `json:"id"`
	Timestamp       time.Time   `json:"timestamp"`
	Domain          string      `json:"domain"`
	KeyType         KeyType     `json:"key_type"`
	KeySize         int         `json:"key_size"`
	ValidityDays    int         `json:"validity_days"`
	ViolationsFound int         `json:"violations_found"`
	WarningsFound   int         `json:"warnings_found"`
	Violations      []Violation `json:"violations"`
	Warnings        []Warning   `json:"warnings"`
	Compliant       bool        `json:"compliant"`
	Score           int         `json:"score"`
	Error           string      `json:"error,omitempty"`
}
