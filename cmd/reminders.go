package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var remindersWindow string

// remindersCmd represents the reminders command
var remindersCmd = &cobra.Command{
	Use:     "reminders",
	Short:   "Show upcoming lease expiries",
	Aliases: []string{"rem"},
	Long: `Show leases sorted by days remaining. The window picks which leases
appear: a day count, "all" for every active lease, or "expired" for
leases already past their end date.

Rows colour by urgency: red within 15 days, yellow within 31, green
beyond that.

Examples:
  assetra reminders
  assetra reminders --window 90
  assetra reminders --window expired`,
	RunE: runReminders,
}

func init() {
	remindersCmd.Flags().StringVarP(&remindersWindow, "window", "w", "", "Day count, \"all\" or \"expired\" (defaults from config)")
}

func runReminders(cmd *cobra.Command, args []string) error {
	if remindersWindow == "" {
		remindersWindow = appConfig.DefaultWindow
	}
	window, err := services.ParseWindow(remindersWindow)
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		return err
	}

	ctx := getContext()
	resp, err := remindersService.Execute(ctx, window)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read the register"))
		return err
	}

	if resp.Total == 0 {
		if window.Expired() {
			fmt.Println(ui.FormatSuccess("No expired leases"))
		} else {
			fmt.Println(ui.FormatSuccess("No leases expiring in this window"))
		}
		return nil
	}

	if window.Expired() {
		fmt.Println(ui.FormatTitle("Expired Leases"))
	} else {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Lease Expiries (window: %s)", window)))
	}
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 8},
		{Header: "Name", Width: 24},
		{Header: "Tenant", Width: 18},
		{Header: "Manager", Width: 14},
		{Header: "Expiry", Width: 12},
		{Header: "Days Left", Width: 9, Align: "right"},
		{Header: "Urgency", Width: 9},
	})
	table.MaxWidth = 32

	for _, rem := range resp.Reminders {
		table.AddRow([]string{
			rem.Record.DisplayID(),
			rem.Record.Name(),
			rem.Record.Tenant(),
			rem.Record.Manager(),
			rem.Expiry.Format(domain.InputDateLayout),
			domain.FormatDays(rem.DaysLeft),
			// Styled text goes last so ANSI codes cannot skew padding
			ui.FormatBand(string(rem.Band), string(rem.Band)),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d leases", resp.Total)))

	return nil
}
