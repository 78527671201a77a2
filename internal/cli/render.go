package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"idms/internal/domain/payslip"
)

type renderOpts struct {
	output       string // output file; defaults to the record's download name
	layoutFile   string // optional YAML layout overrides
	strictTotals bool   // reject records whose totals disagree with their lines
	uncompressed bool   // write plain content streams
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [record.json|-]",
		Short: "Render a payslip record to a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path")
	cmd.Flags().StringVar(&opts.layoutFile, "layout", "", "YAML file overriding the default layout")
	cmd.Flags().BoolVar(&opts.strictTotals, "strict-totals", false, "fail when totals do not match line items")
	cmd.Flags().BoolVar(&opts.uncompressed, "uncompressed", false, "disable stream compression")
	return cmd
}

func runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	start := time.Now()

	rec, err := readRecord(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	layout := payslip.DefaultLayout()
	if opts.layoutFile != "" {
		if layout, err = payslip.LoadLayout(opts.layoutFile, layout); err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
		logger.Debug("layout loaded", "path", opts.layoutFile)
	}
	if opts.uncompressed {
		layout.Compress = false
	}

	renderer := payslip.NewRenderer(layout, payslip.WithStrictTotals(opts.strictTotals))
	content, err := renderer.Render(rec)
	if err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}

	output := opts.output
	if output == "" {
		output = payslip.Filename(rec)
	}
	if err := os.WriteFile(output, content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("payslip written", "path", output, "bytes", len(content), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func readRecord(stdin io.Reader, input string) (payslip.Record, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return payslip.Record{}, err
		}
		defer f.Close()
		r = f
	}

	var rec payslip.Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return payslip.Record{}, fmt.Errorf("decode %s: %w", input, err)
	}
	return rec, nil
}
