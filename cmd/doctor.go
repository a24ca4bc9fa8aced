package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/ports"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your assetra setup",
	Long: `Diagnose issues with register access.

Checks for:
  - Configuration file and required keys
  - Service-account credentials
  - Spreadsheet and worksheet reachability
  - Register header layout
  - Drive document folder`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("Assetra Doctor"))
	fmt.Println()

	ctx := getContext()

	checkStep("Configuration File", func() error {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (run 'assetra config')", configPath)
		}
		return nil
	})

	checkStep("Required Settings", func() error {
		return appConfig.ValidateRemote()
	})

	checkStep("Credentials File", func() error {
		data, err := os.ReadFile(appConfig.CredentialsFile)
		if err != nil {
			return fmt.Errorf("not readable at %s", appConfig.CredentialsFile)
		}
		if _, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope); err != nil {
			return fmt.Errorf("not a valid service-account key: %v", err)
		}
		return nil
	})

	checkStep("Spreadsheet Access", func() error {
		return registerGateway.Verify(ctx)
	})

	checkStep("Register Layout", func() error {
		snap, err := ports.ReadSnapshot(ctx, registerGateway)
		if err != nil {
			return err
		}
		if len(snap.Headers) < domain.RecordWidth {
			return fmt.Errorf("header row has %d columns, expected %d",
				len(snap.Headers), domain.RecordWidth)
		}
		return nil
	})

	checkStep("Document Folder", func() error {
		return documentStore.Verify(ctx)
	})

	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
