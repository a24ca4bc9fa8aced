package cmd

import (
	"errors"
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var statusSearch string

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <pending|received>",
	Short: "Update the brokerage status of an asset",
	Long: `Pick an asset with fuzzy search and set its brokerage status.

The asset is relocated in the live register by id and name at the moment
of the write, so the update lands on the right row even if the sheet was
reordered since the list was loaded.

Examples:
  assetra status received
  assetra status pending --search skyline`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusSearch, "search", "s", "", "Narrow the picker to matching assets")
}

func runStatus(cmd *cobra.Command, args []string) error {
	var status domain.BrokerageStatus
	switch strings.ToLower(args[0]) {
	case "pending":
		status = domain.StatusPending
	case "received":
		status = domain.StatusReceived
	default:
		err := fmt.Errorf("invalid status %q: want pending or received", args[0])
		fmt.Println(ui.FormatError(err.Error()))
		return err
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{Search: statusSearch})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read the register"))
		return err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No assets found"))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		resp.Items,
		func(i int) string {
			rec := resp.Items[i].Record
			return fmt.Sprintf("%s  %s", rec.DisplayID(), rec.Name())
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			rec := resp.Items[i].Record
			return fmt.Sprintf("%s\n\nTenant: %s\nManager: %s\nBrokerage: %s",
				rec.Name(), rec.Tenant(), rec.Manager(), rec.Brokerage())
		}),
	)
	if err != nil {
		// Picker dismissed
		return nil
	}
	selected := resp.Items[idx].Record

	if err := statusService.Update(ctx, selected.Key(), status); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			fmt.Println(ui.FormatWarning("Asset vanished from the register; nothing was written"))
			return nil
		}
		fmt.Println(ui.FormatError("Update failed: " + err.Error()))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s (%s) marked %s",
		selected.Name(), selected.DisplayID(), status)))
	return nil
}
