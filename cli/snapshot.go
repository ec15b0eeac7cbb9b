package cli

import (
	"fmt"
	"io"

	"github.com/rpupo63/portfolio-sync/hooks"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Load projects, skills and settings concurrently and summarize them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := hooks.Preload(cmd.Context(), a.auth, a.projects, a.skills, a.settings); err != nil {
				log.Warn().Err(err).Msg("snapshot is partial")
			}

			out := cmd.OutOrStdout()
			writeSection(out, "projects", len(a.projects.State().Projects), a.projects.State().Error)
			writeSection(out, "skills", len(a.skills.State().Categories), a.skills.State().Error)

			settings := a.settings.State()
			fmt.Fprintf(out, "%-9s %s, %s", "site:", settings.Settings.Name, settings.Settings.Title)
			if settings.Error != "" {
				fmt.Fprintf(out, " (error: %s)", settings.Error)
			}
			fmt.Fprintln(out)

			session := "signed out"
			if st := a.auth.State(); st.IsAuthenticated {
				session = "signed in as " + st.User.Email
			}
			fmt.Fprintf(out, "%-9s %s\n", "session:", session)
			fmt.Fprintf(out, "%-9s %s\n", "theme:", a.theme.Current())
			return nil
		},
	}
}

func writeSection(out io.Writer, name string, count int, errMessage string) {
	fmt.Fprintf(out, "%-9s %d", name+":", count)
	if errMessage != "" {
		fmt.Fprintf(out, " (error: %s)", errMessage)
	}
	fmt.Fprintln(out)
}
