package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"certcomply/internal/registry"
	"certcomply/internal/renderer"
	"certcomply/internal/reports"
	"certcomply/pkg/models"
)

// Session is a menu-driven interactive front end for the compliance
// evaluator: blocking prompts, no state beyond the current read.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	registry *registry.Registry
	writer   *reports.Writer
	renderer renderer.Renderer
}

func NewSession(in io.Reader, out io.Writer, reg *registry.Registry, writer *reports.Writer) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		registry: reg,
		writer:   writer,
		renderer: renderer.NewANSIRenderer(),
	}
}

// Run loops over the menu until the user quits or input ends.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "certcomply interactive session\n")

	for {
		fmt.Fprintf(s.out, "\n[1] Compliance check\n")
		fmt.Fprintf(s.out, "[2] Demo suite\n")
		fmt.Fprintf(s.out, "[3] List evaluators\n")
		fmt.Fprintf(s.out, "[4] Quit\n")

		choice, err := s.prompt("Select option (1-4)", "4")
		if err != nil {
			return nil // input closed
		}

		switch choice {
		case "1":
			if err := s.runCheck(); err != nil {
				fmt.Fprintf(s.out, "Check failed: %v\n", err)
			}
		case "2":
			if err := s.runDemo(); err != nil {
				fmt.Fprintf(s.out, "Demo failed: %v\n", err)
			}
		case "3":
			s.listEvaluators()
		case "4", "q", "quit", "exit":
			fmt.Fprintf(s.out, "Goodbye\n")
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown option %q\n", choice)
		}
	}
}

func (s *Session) runCheck() error {
	domain, err := s.prompt("Domain", models.DefaultDomain)
	if err != nil {
		return err
	}

	days, err := s.promptInt("Validity days", models.DefaultValidityDays)
	if err != nil {
		return err
	}

	keyType, err := s.prompt("Key type (RSA/ECC)", string(models.DefaultKeyType))
	if err != nil {
		return err
	}

	keySize, err := s.promptInt("Key size (bits)", models.DefaultKeySize)
	if err != nil {
		return err
	}

	req := models.NewCertificateRequest(domain, days, keyType, keySize)
	report, err := s.evaluate(req)
	if err != nil {
		return err
	}

	save, promptErr := s.prompt("Save report? (y/n)", "n")
	if promptErr == nil && strings.EqualFold(save, "y") {
		path, saveErr := s.writer.Save(report)
		if saveErr != nil {
			// A failed save never invalidates the report
			fmt.Fprintf(s.out, "Could not save report: %v\n", saveErr)
		} else {
			fmt.Fprintf(s.out, "Report saved: %s\n", path)
		}
	}

	return nil
}

func (s *Session) runDemo() error {
	cases := []models.CertificateRequest{
		models.NewCertificateRequest("example.com", 365, "RSA", 2048),
		models.NewCertificateRequest("test.example.com", 900, "RSA", 1024),
		models.NewCertificateRequest("api.company.com", 30, "ECC", 256),
		models.NewCertificateRequest("*.wildcard.com", 365, "RSA", 2048),
		models.NewCertificateRequest("invalid", 365, "RSA", 2048),
	}

	for i, req := range cases {
		fmt.Fprintf(s.out, "\n--- demo %d/%d: %s ---\n", i+1, len(cases), req.Domain)
		if _, err := s.evaluate(req); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) evaluate(req models.CertificateRequest) (*models.ComplianceReport, error) {
	evaluator, err := s.registry.Get(registry.DefaultName)
	if err != nil {
		return nil, err
	}

	report, err := evaluator.Evaluate(req)
	if report != nil {
		if renderErr := s.renderer.Render(s.out, report); renderErr != nil {
			return report, renderErr
		}
	}
	return report, err
}

func (s *Session) listEvaluators() {
	fmt.Fprintf(s.out, "Registered evaluators (%d loaded):\n", s.registry.Size())
	for _, name := range s.registry.Names() {
		fmt.Fprintf(s.out, "  • %s\n", name)
	}
}

func (s *Session) prompt(label, fallback string) (string, error) {
	fmt.Fprintf(s.out, "%s [%s]: ", label, fallback)

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func (s *Session) promptInt(label string, fallback int) (int, error) {
	raw, err := s.prompt(label, strconv.Itoa(fallback))
	if err != nil {
		return 0, err
	}

	value, convErr := strconv.Atoi(raw)
	if convErr != nil || value <= 0 {
		fmt.Fprintf(s.out, "Not a positive number, using %d\n", fallback)
		return fallback, nil
	}
	return value, nil
}
