package reports

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"certcomply/pkg/models"
)

func testReport(domain string) *models.ComplianceReport {
	return &models.ComplianceReport{
		ID:           "abcd1234",
		Timestamp:    time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Domain:       domain,
		KeyType:      models.KeyTypeRSA,
		KeySize:      2048,
		ValidityDays: 365,
		Violations:   []models.Violation{},
		Warnings:     []models.Warning{},
		Compliant:    true,
		Score:        95,
	}
}

func TestWriter_Save(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	report := testReport("example.com")
	path, err := writer.Save(report)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	wantName := "compliance_example_com_20260824_103000.json"
	if filepath.Base(path) != wantName {
		t.Errorf("Expected file name %s, got %s", wantName, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved report: %v", err)
	}

	if !strings.Contains(string(data), "\n  ") {
		t.Error("Expected indented JSON output")
	}

	var loaded models.ComplianceReport
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Saved report is not valid JSON: %v", err)
	}

	if loaded.Domain != report.Domain || loaded.Score != report.Score || loaded.Compliant != report.Compliant {
		t.Errorf("Round-tripped report differs: %+v", loaded)
	}
}

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	writer := NewWriter(dir)

	if _, err := writer.Save(testReport("example.com")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected reports directory to be created: %v", err)
	}
}

func TestWriter_NilReport(t *testing.T) {
	writer := NewWriter(t.TempDir())

	if _, err := writer.Save(nil); err == nil {
		t.Error("Expected error for nil report")
	}
}

func TestWriter_FailureDoesNotTouchReport(t *testing.T) {
	// A regular file in place of the directory forces MkdirAll to fail
	base := t.TempDir()
	blocked := filepath.Join(base, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	writer := NewWriter(blocked)
	report := testReport("example.com")

	if _, err := writer.Save(report); err == nil {
		t.Fatal("Expected save to fail")
	}

	if !report.Compliant || report.Score != 95 {
		t.Error("A failed save must leave the report untouched")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"plain domain", "example.com", "compliance_example_com_20260824_103000.json"},
		{"wildcard", "*.example.com", "compliance_wildcard_example_com_20260824_103000.json"},
		{"empty domain", "", "compliance_unknown_20260824_103000.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(testReport(tt.domain)); got != tt.want {
				t.Errorf("Filename() = %s, want %s", got, tt.want)
			}
		})
	}
}
