package reports

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"certcomply/internal/logger"
	"certcomply/pkg/models"
)

// Writer persists compliance reports as indented JSON files, one file per
// evaluation. A failed write never invalidates the report itself; the error
// is reported to the save caller only.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save writes the report to <dir>/compliance_<domain>_<timestamp>.json,
// creating the directory if needed, and returns the path written.
func (w *Writer) Save(report *models.ComplianceReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report cannot be nil")
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	path := filepath.Join(w.dir, Filename(report))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	logger.Get().Info("report saved",
		slog.String("path", path),
		slog.String("report_id", report.ID))

	return path, nil
}

// Filename derives the on-disk name for a report.
func Filename(report *models.ComplianceReport) string {
	domain := report.Domain
	if domain == "" {
		domain = "unknown"
	}

	safe := strings.ReplaceAll(domain, "*", "wildcard")
	safe = strings.ReplaceAll(safe, ".", "_")

	return fmt.Sprintf("compliance_%s_%s.json", safe, report.Timestamp.Format("20060102_150405"))
}
