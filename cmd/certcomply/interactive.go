package main

import (
	"os"

	"github.com/spf13/cobra"

	"certcomply/internal/registry"
	"certcomply/internal/reports"
	"certcomply/internal/shell"
)

func newInteractiveCmd() *cobra.Command {
	var (
		reportsDir string
		policy     string
	)

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start the menu-driven interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.NewDefault(policy)
			writer := reports.NewWriter(reportsDir)

			session := shell.NewSession(os.Stdin, os.Stdout, reg, writer)
			return session.Run()
		},
	}

	cmd.Flags().StringVarP(&reportsDir, "reports-dir", "o", "reports", "directory for saved reports")
	cmd.Flags().StringVar(&policy, "policy", "", "YAML policy file overriding built-in rules")

	return cmd
}
