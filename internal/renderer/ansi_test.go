package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"certcomply/pkg/models"
)

func TestANSIRenderer_NonCompliant(t *testing.T) {
	var buf bytes.Buffer

	if err := NewANSIRenderer().Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	output := buf.String()

	wantFragments := []string{
		"certcomply",
		"Report: abcd1234",
		"[ REQUEST ]",
		"Domain: test.example.com",
		"Key: RSA-1024",
		"Validity: 900 days",
		"[ VIOLATIONS ]",
		"CRITICAL",
		"HIGH",
		"[ RESULT ]",
		"NON-COMPLIANT",
		"Score: 40/100",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(output, fragment) {
			t.Errorf("Expected output to contain %q", fragment)
		}
	}

	if strings.Contains(output, "[ WARNINGS ]") {
		t.Error("Warnings section must be omitted when there are no warnings")
	}
}

func TestANSIRenderer_Compliant(t *testing.T) {
	report := &models.ComplianceReport{
		ID:           "ffff0000",
		Timestamp:    time.Now(),
		Domain:       "example.com",
		KeyType:      models.KeyTypeRSA,
		KeySize:      2048,
		ValidityDays: 365,
		Violations:   []models.Violation{},
		Warnings: []models.Warning{
			{ID: "W002", Description: "RSA-2048 is acceptable but at the policy floor", Suggestion: "upgrade to RSA-3072 or switch to ECC"},
		},
		WarningsFound: 1,
		Compliant:     true,
		Score:         95,
	}

	var buf bytes.Buffer
	if err := NewANSIRenderer().Render(&buf, report); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "COMPLIANT") {
		t.Error("Expected COMPLIANT status")
	}
	if !strings.Contains(output, "[ WARNINGS ]") {
		t.Error("Expected warnings section")
	}
	if strings.Contains(output, "[ VIOLATIONS ]") {
		t.Error("Violations section must be omitted when there are no violations")
	}
}

func TestANSIRenderer_DegradedReport(t *testing.T) {
	report := &models.ComplianceReport{
		ID:        "dead0000",
		Timestamp: time.Now(),
		Domain:    "example.com",
		Compliant: false,
		Score:     0,
		Error:     "evaluation fault: boom",
	}

	var buf bytes.Buffer
	if err := NewANSIRenderer().Render(&buf, report); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "evaluation fault: boom") {
		t.Error("Expected error section in degraded report output")
	}
}

func TestANSIRenderer_NilReport(t *testing.T) {
	var buf bytes.Buffer

	if err := NewANSIRenderer().Render(&buf, nil); err == nil {
		t.Error("Expected error for nil report")
	}
}
