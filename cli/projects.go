package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProjectsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List, show and delete projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.projects.Ensure(cmd.Context())
			if st.Error != "" {
				return fmt.Errorf("%s", st.Error)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tCOMPLETED")
			for _, p := range st.Projects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, p.CompletedDate)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			result := a.projects.Fetch(cmd.Context(), args[0])
			if !result.OK() {
				return result.Error()
			}

			p := result.Value
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", p.Title, p.Description)
			fmt.Fprintf(out, "id:           %s\n", p.ID)
			fmt.Fprintf(out, "category:     %s\n", p.Category)
			fmt.Fprintf(out, "completed:    %s\n", p.CompletedDate)
			fmt.Fprintf(out, "technologies: %s\n", strings.Join(p.Technologies, ", "))
			if p.DemoURL != "" {
				fmt.Fprintf(out, "demo:         %s\n", p.DemoURL)
			}
			if p.GithubURL != "" {
				fmt.Fprintf(out, "github:       %s\n", p.GithubURL)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if result := a.projects.Delete(cmd.Context(), args[0]); !result.OK() {
				return result.Error()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	})

	return cmd
}
