package cmd

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

var (
	brokerageStatus string
	brokerageChart  string
)

// brokerageCmd represents the brokerage command
var brokerageCmd = &cobra.Command{
	Use:     "brokerage",
	Short:   "Track brokerage collection across the register",
	Aliases: []string{"brok"},
	Long: `Summarize brokerage status over every asset and list the matching rows.
Assets with a blank or unrecognized status count as pending.

Examples:
  assetra brokerage
  assetra brokerage --status pending
  assetra brokerage --chart brokerage.html`,
	RunE: runBrokerage,
}

func init() {
	brokerageCmd.Flags().StringVar(&brokerageStatus, "status", "all", "Filter rows: all, pending or received")
	brokerageCmd.Flags().StringVar(&brokerageChart, "chart", "", "Write an HTML pie chart to this path")
}

func runBrokerage(cmd *cobra.Command, args []string) error {
	filter, err := services.ParseStatusFilter(brokerageStatus)
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		return err
	}

	ctx := getContext()
	resp, err := brokerageService.Execute(ctx, filter)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read the register"))
		return err
	}

	fmt.Println(ui.FormatTitle("Brokerage"))
	fmt.Println()

	fmt.Println(ui.RenderStatCards([]ui.StatCard{
		{Label: "Total", Value: fmt.Sprintf("%d", resp.Stats.Total), Style: ui.StyleBold},
		{Label: "Received", Value: fmt.Sprintf("%d", resp.Stats.Received), Style: ui.StyleSuccess},
		{Label: "Pending", Value: fmt.Sprintf("%d", resp.Stats.Pending), Style: ui.StyleWarning},
		{Label: "Collected", Value: fmt.Sprintf("%.1f%%", resp.Stats.ReceivedPercentage), Style: ui.StyleAccent},
	}))
	fmt.Println()

	if len(resp.Rows) == 0 {
		fmt.Println(ui.FormatWarning("No assets match this filter"))
	} else {
		table := ui.NewTable([]ui.TableColumn{
			{Header: "ID", Width: 8},
			{Header: "Name", Width: 24},
			{Header: "Tenant", Width: 18},
			{Header: "Manager", Width: 14},
			{Header: "Status", Width: 9},
		})
		table.MaxWidth = 32

		for _, row := range resp.Rows {
			table.AddRow([]string{
				row.Record.DisplayID(),
				row.Record.Name(),
				row.Record.Tenant(),
				row.Record.Manager(),
				string(row.Status),
			})
		}
		fmt.Print(table.Render())
		fmt.Println()
	}

	if brokerageChart != "" {
		if err := writeBrokerageChart(brokerageChart, resp.Stats); err != nil {
			fmt.Println(ui.FormatError("Failed to write chart: " + err.Error()))
			return err
		}
		fmt.Println(ui.FormatSuccess("Chart written to " + brokerageChart))
	}

	return nil
}

// writeBrokerageChart renders the received/pending split as an HTML pie chart.
func writeBrokerageChart(path string, stats services.BrokerageStats) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Brokerage Collection",
			Subtitle: fmt.Sprintf("%d assets", stats.Total),
		}),
	)
	pie.AddSeries("brokerage", []opts.PieData{
		{Name: "Received", Value: stats.Received},
		{Name: "Pending", Value: stats.Pending},
	}).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c} ({d}%)",
		}),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pie.Render(f)
}
