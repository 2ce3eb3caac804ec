package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/netproof-dev/netproof/internal/config"
	"github.com/netproof-dev/netproof/internal/recon"
	"github.com/netproof-dev/netproof/internal/statement"
)

func newReconcileCommand() *cobra.Command {
	var output string
	var configPath string
	var sheet string

	cmd := &cobra.Command{
		Use:   "reconcile <statement.{csv,xlsx}>",
		Short: "Split a statement into matched and unmatched entries",
		Long: `Reconcile pairs statement entries that represent a transaction and its
reversal (or otherwise net to zero under a derived grouping key) and writes
a workbook with the residual statement on one sheet and the explained
entries on another.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.OutOrStdout(), args[0], output, configPath, sheet)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "report file path (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "netproof.yaml", "config file path")
	cmd.Flags().StringVar(&sheet, "sheet", "", "input worksheet name (default first sheet)")

	return cmd
}

func runReconcile(out io.Writer, statementPath, output, configPath, sheet string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if sheet == "" {
		sheet = cfg.Input.Sheet
	}
	if output == "" {
		output = cfg.Output.File
	}

	st, err := statement.ReadFile(statementPath, statement.Options{
		DateLayouts: cfg.Input.DateLayouts,
		Sheet:       sheet,
	})
	if err != nil {
		return err
	}

	res, err := recon.Reconcile(st)
	if err != nil {
		return err
	}

	opts := statement.WriterOptions{
		UnmatchedSheet: cfg.Output.UnmatchedSheet,
		MatchedSheet:   cfg.Output.MatchedSheet,
	}
	if err := statement.WriteReportFile(output, res, opts); err != nil {
		return err
	}

	fmt.Fprintf(out, "Transactions: %d\n", res.Summary.Transactions)
	fmt.Fprintf(out, "Matched (netted): %d\n", res.Summary.Matched)
	fmt.Fprintf(out, "Unmatched: %d\n", res.Summary.Unmatched)
	fmt.Fprintf(out, "Net unmatched value: %s\n", res.Summary.UnmatchedNet.StringFixed(2))
	fmt.Fprintf(out, "Report written to %s\n", output)
	return nil
}
