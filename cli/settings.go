package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSettingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect site settings",
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the site settings (defaults when none are saved)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.settings.Ensure(cmd.Context())
			if st.Error != "" {
				return fmt.Errorf("%s", st.Error)
			}

			out, err := json.MarshalIndent(st.Settings, "", "  ")
			if err != nil {
				return err
			}
			if format == "yaml" {
				if out, err = jsonToYAML(out); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	showCmd.Flags().StringVarP(&format, "output", "o", "json", "output format: json or yaml")

	cmd.AddCommand(showCmd)
	return cmd
}

// jsonToYAML re-encodes a JSON document as YAML, keeping the wire key names.
func jsonToYAML(doc []byte) ([]byte, error) {
	var generic map[string]any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}
