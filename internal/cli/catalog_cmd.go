package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:       "catalog [tools|games]",
		Short:     "Browse the tools and games link lists",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(catalog.SectionTools), string(catalog.SectionGames)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errors.New("catalog is not loaded")
			}
			section := catalog.SectionTools
			if len(args) == 1 {
				s, err := catalog.ParseSection(args[0])
				if err != nil {
					return err
				}
				section = s
			}

			p := catalog.Paginate(app.Catalog.Items(section), page, catalog.PerPage)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogPage(section.Title(), p, -1))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number, clamped to the available pages")
	return cmd
}
