package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/pkg/config"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the assetra configuration file",
	Long: `Open the configuration file in your editor.

The file is created with defaults on first run. Required keys:
  credentials_file  path to the service-account JSON
  spreadsheet_id    id of the register spreadsheet
  sheet_name        worksheet holding the register
  drive_folder_id   Drive folder that receives asset documents`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		// First run: write the defaults so the user has keys to fill in
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Println(ui.FormatSuccess("Created config: " + path))
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
