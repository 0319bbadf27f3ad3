package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// settingsCmd focused on shared application settings.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and write shared settings in the remote store",
	Long: `Settings are free-form JSON values stored by key, for example the
survey gates (parentSurveyEnabled, studentSurveyEnabled, teacherSurveyEnabled).

Examples:
  schoolscore settings get parentSurveyEnabled
  schoolscore settings set reviewYear 2026
  schoolscore settings set reviewers '["LT1","LT2"]'`,
}

// settingsGetCmd prints one setting as JSON.
var settingsGetCmd = &cobra.Command{
	Use:     "get <key>",
	Short:   "Print a setting as JSON",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		remote, err := remoteStore()
		if err != nil {
			return err
		}
		value, ok, err := remote.GetSetting(rootCtx, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("setting %q is not set", args[0])
		}
		out, err := json.Marshal(value)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

// settingsSetCmd stores one setting. Values that are not valid JSON are stored as strings.
var settingsSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Store a setting (JSON value, or a plain string)",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		remote, err := remoteStore()
		if err != nil {
			return err
		}
		var value any
		if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
			value = args[1]
		}
		if err := remote.SetSetting(rootCtx, args[0], value); err != nil {
			return err
		}
		fmt.Printf("Setting %s saved.\n", args[0])
		return nil
	},
}
