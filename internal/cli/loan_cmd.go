package cli

import (
	"fmt"

	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newLoanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loan",
		Aliases: []string{"l"},
		Short:   "Record and edit loans",
	}

	cmd.AddCommand(
		newLoanAddCmd(app),
		newLoanListCmd(app),
		newLoanEditCmd(app),
		newLoanRemoveCmd(app),
	)

	return cmd
}

// loanFlags registers the loan form fields as string flags so values are
// coerced the same way the TUI form coerces them.
func loanFlags(fs *pflag.FlagSet, f *service.LoanForm) {
	fs.StringVar(&f.Amount, "amount", "", "Borrowed amount")
	fs.StringVar(&f.Rate, "rate", "", "Yearly interest rate in percent")
	fs.StringVar(&f.Date, "date", "", "Borrow date (YYYY-MM-DD, default today)")
	fs.StringVar(&f.Term, "term", "", "Repayment term in months")
	fs.StringVar(&f.Penalty, "penalty", "", "Late fee")
	fs.StringVar(&f.PaidAmount, "paid", "", "Amount already repaid")
}

func newLoanAddCmd(app *App) *cobra.Command {
	var (
		platform string
		form     service.LoanForm
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a loan on a platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			p, err := app.Platforms.Resolve(ctx, platform)
			if err != nil {
				return err
			}
			out, err := execCreateLoan(ctx, app, p.ID, form.Input(app.now()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Platform ID, name or ID prefix")
	loanFlags(cmd.Flags(), &form)
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newLoanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list <platform>",
		Aliases: []string{"ls"},
		Short:   "List the loans of a platform",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			p, err := app.Platforms.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			list, err := app.Platforms.LoanList(ctx, p.ID, app.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLoanList(list))
			return nil
		},
	}
}

func newLoanEditCmd(app *App) *cobra.Command {
	var flags service.LoanForm

	cmd := &cobra.Command{
		Use:   "edit <loan>",
		Short: "Change fields of a loan",
		Long:  "Change fields of a loan. Only the flags given are changed; the rest keep their stored values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			l, err := app.Loans.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			form := service.FormFromLoan(l)
			changed := cmd.Flags().Changed
			if changed("amount") {
				form.Amount = flags.Amount
			}
			if changed("rate") {
				form.Rate = flags.Rate
			}
			if changed("date") {
				form.Date = flags.Date
			}
			if changed("term") {
				form.Term = flags.Term
			}
			if changed("penalty") {
				form.Penalty = flags.Penalty
			}
			if changed("paid") {
				form.PaidAmount = flags.PaidAmount
			}

			out, err := execUpdateLoan(ctx, app, l.ID, form.Input(app.now()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	loanFlags(cmd.Flags(), &flags)
	return cmd
}

func newLoanRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <loan>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a loan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			l, err := app.Loans.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("Delete the %s loan from %s? [y/N]: ",
				formatter.Money(l.Amount), domain.FormatDay(l.Date))
			if !confirmed(cmd, yes, msg) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			out, err := execDeleteLoan(ctx, app, l.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
