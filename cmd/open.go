package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var (
	openCopy     bool
	openRegister bool
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Open an asset's document folder in the browser",
	Long: `Pick an asset and open its Drive document folder. Assets without an
uploaded document have no folder and are not offered.

Examples:
  assetra open
  assetra open skyline
  assetra open --copy
  assetra open --register`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVarP(&openCopy, "copy", "c", false, "Copy the link to the clipboard instead of opening it")
	openCmd.Flags().BoolVarP(&openRegister, "register", "r", false, "Open the register spreadsheet itself")
}

func runOpen(cmd *cobra.Command, args []string) error {
	if openRegister {
		return deliverLink(registerGateway.RegisterURL(), "Register")
	}

	search := ""
	if len(args) > 0 {
		search = args[0]
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{Search: search})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read the register"))
		return err
	}

	// Only assets with a folder link are openable
	type linked struct {
		name string
		id   string
		link string
	}
	var items []linked
	for _, item := range resp.Items {
		if link := item.Record.FolderLink(); link != "" {
			items = append(items, linked{
				name: item.Record.Name(),
				id:   item.Record.DisplayID(),
				link: link,
			})
		}
	}
	if len(items) == 0 {
		fmt.Println(ui.FormatWarning("No assets with document folders found"))
		return nil
	}

	idx := 0
	if len(items) > 1 {
		idx, err = fuzzyfinder.Find(
			items,
			func(i int) string {
				return fmt.Sprintf("%s  %s", items[i].id, items[i].name)
			},
		)
		if err != nil {
			return nil
		}
	}

	return deliverLink(items[idx].link, items[idx].name)
}

// deliverLink copies or opens a URL, per the --copy flag.
func deliverLink(url, label string) error {
	if openCopy {
		if err := clipboard.WriteAll(url); err != nil {
			fmt.Println(ui.FormatError("Failed to copy link: " + err.Error()))
			return err
		}
		fmt.Println(ui.FormatSuccess("Link copied: " + label))
		return nil
	}

	fmt.Println(ui.FormatInfo("Opening: " + label))
	if err := openBrowser(url); err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		fmt.Println(ui.FormatInfo("Link: " + url))
		return err
	}
	return nil
}
