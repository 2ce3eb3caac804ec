package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/netproof-dev/netproof/internal/config"
	"github.com/netproof-dev/netproof/internal/recon"
	"github.com/netproof-dev/netproof/internal/statement"
)

func newKeysCommand() *cobra.Command {
	var configPath string
	var sheet string

	cmd := &cobra.Command{
		Use:   "keys <statement.{csv,xlsx}>",
		Short: "Show the derived match keys for each transaction row",
		Long: `Keys prints the grouping key derived for every transaction row without
writing a report. Useful for auditing how rows will be grouped, in
particular the rule that an 8+ digit reference in the description overrides
both the amount and the rest of the text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd.OutOrStdout(), args[0], configPath, sheet)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "netproof.yaml", "config file path")
	cmd.Flags().StringVar(&sheet, "sheet", "", "input worksheet name (default first sheet)")

	return cmd
}

func runKeys(out io.Writer, statementPath, configPath, sheet string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if sheet == "" {
		sheet = cfg.Input.Sheet
	}

	st, err := statement.ReadFile(statementPath, statement.Options{
		DateLayouts: cfg.Input.DateLayouts,
		Sheet:       sheet,
	})
	if err != nil {
		return err
	}

	keys, err := recon.DeriveKeys(st)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DESCRIPTION\tREF KEY\tTEXT KEY\tNET\tMATCH KEY")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			k.Row.Description, orDash(k.NumericKey), orDash(k.TextKey), k.Net.StringFixed(2), k.MatchKey)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
