package policy

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"certcomply/internal/logger"
	"certcomply/pkg/models"
)

// Evaluator runs the fixed rule table against certificate requests. It holds
// no mutable state, so concurrent evaluations need no coordination.
type Evaluator struct {
	rules RuleSet
}

func NewEvaluator(rules RuleSet) *Evaluator {
	return &Evaluator{rules: rules}
}

// Rules returns the rule table the evaluator was built with.
func (e *Evaluator) Rules() RuleSet {
	return e.rules
}

// Evaluate checks one request against the rule table. Every rule runs; rules
// never short-circuit each other. The caller always gets a structured report:
// an internal fault is recovered into a degraded report (score 0,
// non-compliant, Error set) returned together with a non-nil error.
func (e *Evaluator) Evaluate(req models.CertificateRequest) (report *models.ComplianceReport, err error) {
	now := time.Now()
	report = &models.ComplianceReport{
		ID:           reportID(req.Domain, now),
		Timestamp:    now,
		Domain:       req.Domain,
		KeyType:      req.KeyType,
		KeySize:      req.KeySize,
		ValidityDays: req.ValidityDays,
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("evaluation fault",
				slog.String("domain", req.Domain),
				slog.Any("fault", r))
			report.Violations = nil
			report.Warnings = nil
			report.ViolationsFound = 0
			report.WarningsFound = 0
			report.Compliant = false
			report.Score = 0
			report.Error = fmt.Sprintf("evaluation fault: %v", r)
			err = fmt.Errorf("evaluation fault: %v", r)
		}
	}()

	violations := []models.Violation{}
	warnings := []models.Warning{}

	// Validity period
	if req.ValidityDays > e.rules.MaxValidityDays {
		violations = append(violations, models.Violation{
			ID:   "R001",
			Rule: "CAB Forum BR 7.1",
			Description: fmt.Sprintf("validity %d days exceeds maximum %d days",
				req.ValidityDays, e.rules.MaxValidityDays),
			Severity: models.SeverityHigh,
			Action:   "reduce the validity period",
		})
	} else if req.ValidityDays > e.rules.RecommendedValidityDays {
		warnings = append(warnings, models.Warning{
			ID: "W001",
			Description: fmt.Sprintf("validity %d days is longer than the recommended %d days",
				req.ValidityDays, e.rules.RecommendedValidityDays),
			Suggestion: "consider a shorter validity period",
		})
	}

	// Key size per algorithm. A key type that is neither RSA nor ECC is a
	// violation of its own rather than a silent skip.
	switch req.KeyType {
	case models.KeyTypeRSA:
		if req.KeySize < e.rules.MinRSAKeySize {
			violations = append(violations, models.Violation{
				ID:   "R002",
				Rule: "NIST SP 800-57",
				Description: fmt.Sprintf("RSA key size %d bits is below minimum %d bits",
					req.KeySize, e.rules.MinRSAKeySize),
				Severity: models.SeverityCritical,
				Action:   fmt.Sprintf("increase the key size to at least %d bits", e.rules.MinRSAKeySize),
			})
		} else if req.KeySize == 2048 {
			warnings = append(warnings, models.Warning{
				ID:          "W002",
				Description: "RSA-2048 is acceptable but at the policy floor",
				Suggestion:  "upgrade to RSA-3072 or switch to ECC",
			})
		}
	case models.KeyTypeECC:
		if req.KeySize < e.rules.MinECCKeySize {
			violations = append(violations, models.Violation{
				ID:   "R003",
				Rule: "NIST SP 800-57",
				Description: fmt.Sprintf("ECC key size %d bits is below minimum %d bits",
					req.KeySize, e.rules.MinECCKeySize),
				Severity: models.SeverityCritical,
				Action:   fmt.Sprintf("increase the key size to at least %d bits", e.rules.MinECCKeySize),
			})
		}
	default:
		violations = append(violations, models.Violation{
			ID:          "R005",
			Rule:        "key policy",
			Description: fmt.Sprintf("unsupported key type %q", req.KeyType),
			Severity:    models.SeverityHigh,
			Action:      "use an RSA or ECC key",
		})
	}

	// Domain syntax. The wildcard prefix is assessed separately below, so it
	// is stripped before the label check.
	if !IsValidDomain(strings.TrimPrefix(req.Domain, "*.")) {
		violations = append(violations, models.Violation{
			ID:          "R004",
			Rule:        "RFC 5280",
			Description: fmt.Sprintf("invalid domain format: %s", req.Domain),
			Severity:    models.SeverityHigh,
			Action:      "use a valid domain name",
		})
	}

	// Wildcard certificates are allowed but flagged.
	if strings.HasPrefix(req.Domain, "*.") {
		warnings = append(warnings, models.Warning{
			ID:          "W003",
			Description: "wildcard certificate requested",
			Suggestion:  "ensure access controls cover every name the wildcard matches",
		})
	}

	report.Violations = violations
	report.Warnings = warnings
	report.ViolationsFound = len(violations)
	report.WarningsFound = len(warnings)
	report.Compliant = len(violations) == 0
	report.Score = Score(violations, warnings)

	return report, nil
}

// Score derives the 0-100 compliance score from findings: 100 minus 40 per
// critical violation, 20 per high, 10 per any other severity, and 5 per
// warning, clamped at 0.
func Score(violations []models.Violation, warnings []models.Warning) int {
	score := 100

	for _, v := range violations {
		switch v.Severity {
		case models.SeverityCritical:
			score -= 40
		case models.SeverityHigh:
			score -= 20
		default:
			score -= 10
		}
	}

	score -= 5 * len(warnings)

	if score < 0 {
		score = 0
	}
	return score
}

// reportID fingerprints an evaluation for file names and log correlation.
func reportID(domain string, ts time.Time) string {
	sum := sha3.Sum256([]byte(domain + "|" + ts.UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:8])
}
