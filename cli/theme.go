package cli

import (
	"fmt"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/spf13/cobra"
)

func newThemeCmd(opts *options) *cobra.Command {
	var toggle bool

	cmd := &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the persisted theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(models.ThemeDark), string(models.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			switch {
			case len(args) == 1:
				if err := a.theme.Set(models.Theme(args[0])); err != nil {
					return err
				}
			case toggle:
				if _, err := a.theme.Toggle(); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.theme.Current())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&toggle, "toggle", "t", false, "switch between dark and light")
	return cmd
}
