package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var (
	listSearch    string
	listAttention bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List assets in the register",
	Aliases: []string{"ls"},
	Long: `List all assets in a table, with a marker against assets whose document
checklist is incomplete.

Examples:
  assetra list
  assetra list --search skyline
  assetra list --attention`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by substring across all fields")
	listCmd.Flags().BoolVarP(&listAttention, "attention", "a", false, "Show only assets with missing documents")
}

func runList(cmd *cobra.Command, args []string) error {
	req := services.ListRequest{
		Search:        listSearch,
		AttentionOnly: listAttention,
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read the register"))
		return err
	}

	// Handle empty results
	if resp.Total == 0 {
		switch {
		case listSearch != "":
			fmt.Println(ui.FormatWarning("No assets match: " + listSearch))
		case listAttention:
			fmt.Println(ui.FormatSuccess("Every asset has a complete document set"))
		default:
			fmt.Println(ui.FormatWarning("The register is empty"))
			fmt.Println(ui.FormatInfo("Add your first asset with: assetra add"))
		}
		return nil
	}

	// Print header
	if listSearch != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Assets (matching: %s)", listSearch)))
	} else {
		fmt.Println(ui.FormatTitle("Assets"))
	}
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: " ", Width: 1},
		{Header: "ID", Width: 8},
		{Header: "Name", Width: 24},
		{Header: "Location", Width: 18},
		{Header: "Project", Width: 16},
		{Header: "Unit", Width: 10},
		{Header: "Tenant", Width: 18},
		{Header: "Manager", Width: 14},
	})
	table.MaxWidth = 32

	for _, item := range resp.Items {
		rec := item.Record
		unit := rec.Tower()
		if rec.Floor() != "" || rec.Unit() != "" {
			unit = fmt.Sprintf("%s-%s%s", rec.Tower(), rec.Floor(), rec.Unit())
		}
		table.AddRow([]string{
			ui.AttentionMark(item.NeedsAttention),
			rec.DisplayID(),
			rec.Name(),
			rec.Location(),
			rec.Project(),
			unit,
			rec.Tenant(),
			rec.Manager(),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()

	// Print summary
	attention := 0
	for _, item := range resp.Items {
		if item.NeedsAttention {
			attention++
		}
	}
	summary := fmt.Sprintf("Total: %d assets", resp.Total)
	if attention > 0 {
		summary += fmt.Sprintf(" (%d need attention)", attention)
	}
	fmt.Println(ui.FormatMuted(summary))

	return nil
}
