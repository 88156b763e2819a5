package cli

import (
	"fmt"

	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		t, err := app.Theme.Current(ctxOrBackground(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.ThemeBadge(t))
		return nil
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
		RunE:  show,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Flip between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := app.Theme.Toggle(ctxOrBackground(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okLine("Theme is now "+formatter.ThemeBadge(t)))
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Pick a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				if args[0] != string(domain.ThemeLight) && args[0] != string(domain.ThemeDark) {
					return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
				}
				t := domain.ParseTheme(args[0])
				if err := app.Theme.Set(ctxOrBackground(cmd), t); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okLine("Theme is now "+formatter.ThemeBadge(t)))
				return nil
			},
		},
	)

	return cmd
}
