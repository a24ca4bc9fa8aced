package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/assetra/assetra-cli/internal/core/domain"
	"github.com/assetra/assetra-cli/internal/core/services"
	"github.com/assetra/assetra-cli/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Launch the interactive register browser (alias: b)",
	Long: `Launch a full-screen browser over the asset register.

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Actions:
    Enter       Asset detail view
    o           Open document folder
    r           Mark brokerage received
    p           Mark brokerage pending
    R           Refresh from the register

  Views:
    /           Search mode
    Esc         Clear search / back
    ?           Show help

  General:
    q           Quit
    Ctrl+C      Force quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := listService.Execute(ctx, services.ListRequest{})
	if err != nil {
		return fmt.Errorf("failed to load the register: %w", err)
	}

	m := newBrowseModel(ctx, resp.Items, resp.Headers)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// Browse view modes
type browseMode int

const (
	browseList browseMode = iota
	browseSearch
	browseDetail
	browseHelp
)

type browseModel struct {
	ctx      context.Context
	items    []services.ListItem
	filtered []services.ListItem
	headers  []string
	cursor   int
	offset   int
	mode     browseMode

	searchInput textinput.Model
	detail      viewport.Model
	help        help.Model
	keys        browseKeyMap

	width  int
	height int
	ready  bool

	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
}

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Detail   key.Binding
	Open     key.Binding
	Received key.Binding
	Pending  key.Binding
	Refresh  key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.Received, k.Search, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Detail, k.Open, k.Received, k.Pending, k.Refresh},
		{k.Search, k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Detail: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "detail"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open folder"),
	),
	Received: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "mark received"),
	),
	Pending: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "mark pending"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// Messages
type browseStatusMsg struct {
	message string
	style   lipgloss.Style
}

type browseClearMsg struct{}

type browseReloadMsg struct{}

func newBrowseModel(ctx context.Context, items []services.ListItem, headers []string) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search assets..."
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Foreground(ui.ColorDefault)

	return browseModel{
		ctx:         ctx,
		items:       items,
		filtered:    items,
		headers:     headers,
		mode:        browseList,
		searchInput: ti,
		detail:      vp,
		help:        help.New(),
		keys:        browseKeys,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 8
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case browseSearch:
			return m.updateSearch(msg)
		case browseDetail:
			return m.updateDetail(msg)
		case browseHelp:
			return m.updateHelp(msg)
		default:
			return m.updateList(msg)
		}

	case browseStatusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return browseClearMsg{}
		})

	case browseClearMsg:
		if time.Now().After(m.messageExpiry) {
			m.message = ""
		}
		return m, nil

	case browseReloadMsg:
		resp, err := listService.Execute(m.ctx, services.ListRequest{})
		if err == nil {
			m.items = resp.Items
			m.headers = resp.Headers
			m.applySearch()
			if m.cursor >= len(m.filtered) && len(m.filtered) > 0 {
				m.cursor = len(m.filtered) - 1
			}
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Detail):
		if len(m.filtered) > 0 {
			m.detail.SetContent(m.renderDetail(m.filtered[m.cursor]))
			m.detail.GotoTop()
			m.mode = browseDetail
		}

	case key.Matches(msg, m.keys.Open):
		if len(m.filtered) > 0 {
			return m, m.openFolder(m.filtered[m.cursor].Record)
		}

	case key.Matches(msg, m.keys.Received):
		if len(m.filtered) > 0 {
			return m, m.setBrokerage(m.filtered[m.cursor].Record, domain.StatusReceived)
		}

	case key.Matches(msg, m.keys.Pending):
		if len(m.filtered) > 0 {
			return m, m.setBrokerage(m.filtered[m.cursor].Record, domain.StatusPending)
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, func() tea.Msg { return browseReloadMsg{} }

	case key.Matches(msg, m.keys.Search):
		m.mode = browseSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = browseHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = browseList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filtered = m.items
		m.cursor = 0
		m.offset = 0
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = browseList
		m.searchInput.Blur()
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.adjustViewport()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applySearch()
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Detail):
		m.mode = browseList
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Open):
		if len(m.filtered) > 0 {
			return m, m.openFolder(m.filtered[m.cursor].Record)
		}
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = browseList
	}
	return m, nil
}

// applySearch re-filters against the live search input.
func (m *browseModel) applySearch() {
	query := m.searchInput.Value()
	if query == "" {
		m.filtered = m.items
	} else {
		var out []services.ListItem
		for _, item := range m.items {
			if item.Record.MatchesSearch(query) {
				out = append(out, item)
			}
		}
		m.filtered = out
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.offset = 0
	}
}

func (m *browseModel) adjustViewport() {
	visible := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m browseModel) listHeight() int {
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}

// Commands

func (m browseModel) setBrokerage(rec domain.Record, status domain.BrokerageStatus) tea.Cmd {
	return func() tea.Msg {
		if err := statusService.Update(m.ctx, rec.Key(), status); err != nil {
			return browseStatusMsg{
				message: "Update failed: " + err.Error(),
				style:   ui.StyleError,
			}
		}
		return tea.Batch(
			func() tea.Msg { return browseReloadMsg{} },
			func() tea.Msg {
				return browseStatusMsg{
					message: fmt.Sprintf("%s marked %s", rec.Name(), status),
					style:   ui.StyleSuccess,
				}
			},
		)()
	}
}

func (m browseModel) openFolder(rec domain.Record) tea.Cmd {
	return func() tea.Msg {
		link := rec.FolderLink()
		if link == "" {
			return browseStatusMsg{
				message: "No document folder for " + rec.Name(),
				style:   ui.StyleWarning,
			}
		}
		if err := openBrowser(link); err != nil {
			return browseStatusMsg{message: err.Error(), style: ui.StyleError}
		}
		return browseStatusMsg{
			message: "Opened folder for " + rec.Name(),
			style:   ui.StyleInfo,
		}
	}
}

// Rendering

func (m browseModel) View() string {
	if !m.ready {
		return "Loading register..."
	}

	switch m.mode {
	case browseHelp:
		return m.renderHelp()
	case browseDetail:
		return m.renderDetailView()
	default:
		return m.renderList()
	}
}

func (m browseModel) renderList() string {
	var b strings.Builder

	b.WriteString(ui.StyleTitle.Render("Asset Register"))
	b.WriteString("  ")
	b.WriteString(ui.StyleMuted.Render(fmt.Sprintf("%d assets", len(m.filtered))))
	b.WriteString("\n\n")

	if m.mode == browseSearch || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(ui.StyleMuted.Render("No assets match"))
		b.WriteString("\n")
	}

	visible := m.listHeight()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		item := m.filtered[i]
		rec := item.Record

		line := fmt.Sprintf("%s %-8s %-28s %-20s %s",
			ui.AttentionMark(item.NeedsAttention),
			rec.DisplayID(),
			ui.Truncate(rec.Name(), 28),
			ui.Truncate(rec.Tenant(), 20),
			ui.Truncate(rec.Project(), 16),
		)

		if i == m.cursor {
			b.WriteString(ui.StylePrimary.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.messageStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m browseModel) renderDetailView() string {
	var b strings.Builder
	rec := m.filtered[m.cursor].Record
	b.WriteString(ui.StyleTitle.Render(rec.DisplayID() + "  " + rec.Name()))
	b.WriteString("\n\n")
	b.WriteString(m.detail.View())
	b.WriteString("\n\n")
	b.WriteString(ui.StyleMuted.Render("esc: back │ o: open folder │ ↑↓: scroll │ q: quit"))
	return b.String()
}

// renderDetail lays out one record's cells grouped by concern, with the raw
// header names from the register alongside.
func (m browseModel) renderDetail(item services.ListItem) string {
	rec := item.Record
	var b strings.Builder

	section := func(title string, cols []int) {
		b.WriteString(ui.StyleHeader.Render(title))
		b.WriteString("\n")
		for _, col := range cols {
			name := col1Header(m.headers, col)
			b.WriteString(fmt.Sprintf("  %-24s %s\n",
				ui.StyleMuted.Render(name), blankIfEmpty(rec.Cell(col))))
		}
		b.WriteString("\n")
	}

	section("Identity", []int{domain.ColSerial, domain.ColRecordDate, domain.ColName})
	section("Location", []int{domain.ColLocation, domain.ColProject,
		domain.ColTower, domain.ColFloor, domain.ColUnit})
	section("Lease", []int{domain.ColCommencement, domain.ColLeaseExpiry, domain.ColLockInExpiry})
	section("Parties", []int{domain.ColOwner, domain.ColTenant,
		domain.ColTenantType, domain.ColManager})
	section("Workflow", []int{domain.ColBrokerage, domain.ColFolderLink})

	b.WriteString(ui.StyleHeader.Render("Documents"))
	b.WriteString("\n")
	for i, cell := range rec.DocumentCells() {
		slot := domain.DocumentSlots[i]
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			ui.StyleMuted.Render(slot), renderDocCell(cell)))
	}
	if item.NeedsAttention {
		b.WriteString("\n")
		b.WriteString(ui.FormatWarning("Document checklist incomplete"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m browseModel) renderHelp() string {
	var b strings.Builder
	b.WriteString(ui.StyleTitle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(ui.StyleMuted.Render("Press esc to go back"))
	return b.String()
}

// col1Header returns the register's own header label for a column, with a
// positional fallback.
func col1Header(headers []string, col int) string {
	if col < len(headers) && strings.TrimSpace(headers[col]) != "" {
		return headers[col]
	}
	return fmt.Sprintf("Column %d", col+1)
}

// renderDocCell styles one document status cell.
func renderDocCell(cell string) string {
	switch strings.ToUpper(strings.TrimSpace(cell)) {
	case "UPLOADED":
		return ui.StyleSuccess.Render("uploaded")
	case domain.AttachmentNA:
		return ui.StyleMuted.Render("n/a")
	case "":
		return ui.StyleWarning.Render("missing")
	default:
		return ui.StyleWarning.Render(cell)
	}
}
