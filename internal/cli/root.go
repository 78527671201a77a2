// Package cli implements the payslipctl command-line interface.
//
// payslipctl renders payslip records to PDF without running the HTTP
// service. Records use the same JSON shape as POST /api/v1/payslips/pdf.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the payslipctl command tree. Logs go to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "payslipctl",
		Short:        "payslipctl renders payslip records to PDF",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRenderCmd())
	return root
}

func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
