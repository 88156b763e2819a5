package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlatformCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "platform",
		Aliases: []string{"p"},
		Short:   "Manage lending platforms",
	}

	cmd.AddCommand(
		newPlatformAddCmd(app),
		newPlatformListCmd(app),
		newPlatformRenameCmd(app),
		newPlatformRemoveCmd(app),
	)

	return cmd
}

func newPlatformAddCmd(app *App) *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := execCreatePlatform(ctxOrBackground(cmd), app, args[0], icon)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Icon glyph (default 🏦)")
	return cmd
}

func newPlatformListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List platforms with their outstanding totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Ledger.Dashboard(ctxOrBackground(cmd), app.now())
			if err != nil {
				return err
			}
			if d.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No platforms yet."))
				return nil
			}

			rows := make([][]string, 0, len(d.Cards))
			for _, c := range d.Cards {
				rows = append(rows, []string{
					formatter.TruncID(c.PlatformID),
					c.Icon + " " + c.Name,
					strconv.Itoa(c.LoanCount),
					formatter.Money(c.Remaining),
					formatter.Money(c.Paid),
					formatter.OverdueBadge(c.Overdue),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]formatter.Column{
					formatter.Col("ID"), formatter.Col("PLATFORM"), formatter.NumCol("LOANS"),
					formatter.NumCol("REMAINING"), formatter.NumCol("PAID"), formatter.Col(""),
				},
				rows,
			))
			return nil
		},
	}
}

func newPlatformRenameCmd(app *App) *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "rename <platform> <new-name>",
		Short: "Rename a platform or change its icon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			p, err := app.Platforms.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			out, err := execUpdatePlatform(ctx, app, p.ID, args[1], icon)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "New icon glyph (unchanged when empty)")
	return cmd
}

func newPlatformRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <platform>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a platform and all of its loans",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			p, err := app.Platforms.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("Delete %s %s and its %d loan(s)? [y/N]: ", p.Icon, p.Name, len(p.Loans))
			if !confirmed(cmd, yes, msg) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			out, err := execDeletePlatform(ctx, app, p.ID)
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
