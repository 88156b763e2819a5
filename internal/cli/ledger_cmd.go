package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newIncomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "income <amount>",
		Short: "Set the monthly income used for the freedom estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := execSetIncome(ctxOrBackground(cmd), app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newStatusCmd(a *App) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show totals, the freedom estimate and every platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tree {
				return printStatus(cmd, a)
			}

			ctx := ctxOrBackground(cmd)
			now := a.now()
			d, err := a.Ledger.Dashboard(ctx, now)
			if err != nil {
				return err
			}
			lists := make(map[string]app.LoanList, len(d.Cards))
			for _, c := range d.Cards {
				l, err := a.Platforms.LoanList(ctx, c.PlatformID, now)
				if err != nil {
					return err
				}
				lists[c.PlatformID] = l
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatter.FormatStats(d.Stats))
			fmt.Fprintln(w)
			fmt.Fprintln(w, formatter.FormatFreedom(d.Freedom, 24))
			fmt.Fprintln(w)
			if d.IsEmpty() {
				fmt.Fprintln(w, formatter.Dim("No platforms yet."))
				return nil
			}
			fmt.Fprint(w, formatter.RenderTree(formatter.LedgerTree(d, lists)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "List every loan under its platform instead of cards")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ledger as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Snapshot.Export(ctxOrBackground(cmd))
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), okLine("Exported ledger to "+out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the ledger with a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
				yes = true
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			if !confirmed(cmd, yes, "Replace the current ledger? [y/N]: ") {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}

			l, err := app.Snapshot.Import(ctxOrBackground(cmd), data)
			if err != nil {
				return err
			}
			loans := 0
			for _, p := range l.Platforms {
				loans += len(p.Loans)
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				okLine(fmt.Sprintf("Imported %d platform(s) and %d loan(s)", len(l.Platforms), loans)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
