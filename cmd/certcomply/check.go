package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"certcomply/internal/registry"
	"certcomply/internal/renderer"
	"certcomply/internal/reports"
	"certcomply/pkg/models"
)

func newCheckCmd() *cobra.Command {
	var (
		days       int
		keyType    string
		keySize    int
		format     string
		save       bool
		reportsDir string
		policy     string
	)

	cmd := &cobra.Command{
		Use:   "check [domain]",
		Short: "Evaluate certificate parameters against the compliance policy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			domain := ""
			if len(args) > 0 {
				domain = args[0]
			}

			req := models.NewCertificateRequest(domain, days, keyType, keySize)

			reg := registry.NewDefault(policy)
			evaluator, err := reg.Get(registry.DefaultName)
			if err != nil {
				return err
			}

			report, err := evaluator.Evaluate(req)
			if report == nil {
				return err
			}

			var rend renderer.Renderer
			switch format {
			case "json":
				rend = renderer.NewJSONRenderer()
			case "ansi", "text":
				rend = renderer.NewANSIRenderer()
			default:
				return fmt.Errorf("invalid --format value '%s': must be ansi, text or json", format)
			}

			if renderErr := rend.Render(os.Stdout, report); renderErr != nil {
				return renderErr
			}

			if save {
				path, saveErr := reports.NewWriter(reportsDir).Save(report)
				if saveErr != nil {
					// The report above is still valid; only the save failed
					fmt.Fprintf(os.Stderr, "Warning: could not save report: %v\n", saveErr)
				} else {
					fmt.Fprintf(os.Stderr, "Report saved to %s\n", path)
				}
			}

			if err != nil {
				return err
			}
			if !report.Compliant {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", models.DefaultValidityDays, "validity period in days")
	cmd.Flags().StringVar(&keyType, "key-type", string(models.DefaultKeyType), "key type: RSA or ECC")
	cmd.Flags().IntVar(&keySize, "key-size", models.DefaultKeySize, "key size in bits")
	cmd.Flags().StringVarP(&format, "format", "f", "ansi", "output format: ansi, text or json")
	cmd.Flags().BoolVar(&save, "save", false, "persist the report as JSON")
	cmd.Flags().StringVarP(&reportsDir, "reports-dir", "o", "reports", "directory for saved reports")
	cmd.Flags().StringVar(&policy, "policy", "", "YAML policy file overriding built-in rules")

	return cmd
}
