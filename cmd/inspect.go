package cmd

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [query]",
	Short: "Step through raw register rows cell by cell",
	Long: `A low-level viewer showing every cell of each register row against its
header, for chasing down data-entry mistakes the normal views hide.

Keys: ↑↓/jk scroll cells, ←→/hl previous/next row, g/G first/last row,
q/Esc quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	search := ""
	if len(args) > 0 {
		search = args[0]
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{Search: search})
	if err != nil {
		return err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No assets to inspect"))
		return nil
	}

	v, err := newRecordInspector(resp.Headers, resp.Items)
	if err != nil {
		return err
	}
	return v.Run()
}

// recordInspector is a full-screen cell-by-cell row viewer.
type recordInspector struct {
	headers []string
	items   []services.ListItem

	screen       tcell.Screen
	width        int
	height       int
	current      int // selected row
	scrollOffset int
}

func newRecordInspector(headers []string, items []services.ListItem) (*recordInspector, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()
	return &recordInspector{
		headers: headers,
		items:   items,
		screen:  screen,
		width:   width,
		height:  height,
	}, nil
}

// Run starts the interactive viewer
func (v *recordInspector) Run() error {
	defer v.screen.Fini()

	v.screen.Clear()
	v.render()

	for {
		ev := v.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
			v.render()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			v.handleKeyPress(ev)
			v.render()
		}
	}
}

func (v *recordInspector) handleKeyPress(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		v.scroll(-1)
	case tcell.KeyDown:
		v.scroll(1)
	case tcell.KeyPgUp:
		v.scroll(-(v.height - 8))
	case tcell.KeyPgDn:
		v.scroll(v.height - 8)
	case tcell.KeyLeft:
		v.move(-1)
	case tcell.KeyRight:
		v.move(1)
	case tcell.KeyHome:
		v.current = 0
		v.scrollOffset = 0
	case tcell.KeyEnd:
		v.current = len(v.items) - 1
		v.scrollOffset = 0
	}

	// Vim-style navigation
	switch ev.Rune() {
	case 'j':
		v.scroll(1)
	case 'k':
		v.scroll(-1)
	case 'h':
		v.move(-1)
	case 'l':
		v.move(1)
	case 'g':
		v.current = 0
		v.scrollOffset = 0
	case 'G':
		v.current = len(v.items) - 1
		v.scrollOffset = 0
	}
}

// move switches to an adjacent register row
func (v *recordInspector) move(delta int) {
	v.current += delta
	if v.current < 0 {
		v.current = 0
	}
	if v.current >= len(v.items) {
		v.current = len(v.items) - 1
	}
	v.scrollOffset = 0
}

// scroll moves the cell list within the current row
func (v *recordInspector) scroll(delta int) {
	v.scrollOffset += delta
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
	max := domain.RecordWidth - (v.height - 8)
	if max < 0 {
		max = 0
	}
	if v.scrollOffset > max {
		v.scrollOffset = max
	}
}

// render draws the interface
func (v *recordInspector) render() {
	v.screen.Clear()

	item := v.items[v.current]
	rec := item.Record

	y := 0

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorPurple)
	v.drawText(0, y, "┌─ "+rec.DisplayID()+"  "+rec.Name(), titleStyle)
	y++
	meta := fmt.Sprintf("│  sheet row %d │ record %d of %d", rec.SheetRow, v.current+1, len(v.items))
	if item.NeedsAttention {
		meta += " │ documents incomplete"
	}
	v.drawText(0, y, meta, tcell.StyleDefault.Foreground(tcell.ColorGray))
	y++
	v.drawText(0, y, "└"+strings.Repeat("─", 60), tcell.StyleDefault.Foreground(tcell.ColorGray))
	y += 2

	visible := v.height - y - 3
	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for i := 0; i < visible; i++ {
		col := v.scrollOffset + i
		if col >= domain.RecordWidth {
			break
		}

		label := fmt.Sprintf("%2d %-24s", col+1, ui.Truncate(col1Header(v.headers, col), 24))
		v.drawText(0, y, label, headerStyle)

		value := rec.Cell(col)
		style := tcell.StyleDefault
		if value == "" {
			value = "(empty)"
			style = emptyStyle
		}
		v.drawText(30, y, ui.Truncate(value, v.width-31), style)
		y++
	}

	// Footer
	footerY := v.height - 2
	v.drawText(0, footerY, strings.Repeat("─", v.width), tcell.StyleDefault.Foreground(tcell.ColorGray))
	footerY++
	helpText := "↑↓/jk: Cells │ ←→/hl: Rows │ g/G: First/Last │ q/Esc: Quit"
	v.drawText(0, footerY, helpText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	v.screen.Show()
}

// drawText draws text at the specified position
func (v *recordInspector) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= v.width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
