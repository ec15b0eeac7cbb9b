package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/spf13/cobra"
)

func newSkillsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Inspect skill categories",
	}

	var includeInactive bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List skill categories with their items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(includeInactive)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.skills.Ensure(cmd.Context())
			if st.Error != "" {
				return fmt.Errorf("%s", st.Error)
			}

			out := cmd.OutOrStdout()
			for _, c := range st.Categories {
				status := ""
				if !c.IsActive {
					status = " [inactive]"
				}
				fmt.Fprintf(out, "%s%s\n", c.Category, status)
				for _, item := range strongestFirst(c.Skills) {
					fmt.Fprintf(out, "  - %s (%s)\n", item.Name, item.Proficiency)
				}
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&includeInactive, "inactive", false, "include inactive categories")

	cmd.AddCommand(listCmd)
	return cmd
}

// strongestFirst orders items by proficiency, highest first, then by name.
func strongestFirst(items []models.SkillItem) []models.SkillItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.SkillItem) int {
		switch {
		case b.Proficiency.Less(a.Proficiency):
			return -1
		case a.Proficiency.Less(b.Proficiency):
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
