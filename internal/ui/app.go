package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifelinkhq/lifelink/internal/prefs"
	"github.com/lifelinkhq/lifelink/internal/store"
)

const (
	snapshotInterval = 750 * time.Millisecond
	toastDuration    = 4 * time.Second
	toastBuffer      = 16
)

// Options configures the console.
type Options struct {
	Context   context.Context
	Resources []Resource
	Notify    Attacher
	ThemeName string
	PrefsPath string
}

// Run starts the console and blocks until the user quits or the context is
// canceled.
func Run(opts Options) error {
	if len(opts.Resources) == 0 {
		return fmt.Errorf("ui: no resources configured")
	}
	m := newModel(opts)
	if opts.Notify != nil {
		opts.Notify.Attach(m.toasts)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}

// toastNotifier delivers store notifications into the bubbletea event loop.
// Sends never block; if the buffer is full the toast is dropped.
type toastNotifier struct {
	ch chan toastMsg
}

func (n toastNotifier) Success(message string) { n.send(toastMsg{text: message}) }

func (n toastNotifier) Error(message string) { n.send(toastMsg{text: message, isError: true}) }

func (n toastNotifier) send(msg toastMsg) {
	select {
	case n.ch <- msg:
	default:
	}
}

var _ store.Notifier = toastNotifier{}

// Messages

type tickMsg time.Time

type toastMsg struct {
	text    string
	isError bool
}

type toastExpiredMsg struct{}

type refreshDoneMsg struct{}

// Model is the root bubbletea model: one tab per resource, a table for the
// active tab, and a search input.
type Model struct {
	ctx       context.Context
	resources []Resource
	active    int

	table  table.Model
	search textinput.Model
	spin   spinner.Model

	theme     Theme
	prefsPath string

	toasts  toastNotifier
	toast   *toastMsg
	confirm string // row ID awaiting delete confirmation
	acting  string // row ID awaiting a transition choice
	viewing bool   // detail view open for the current selection

	searching bool
	width     int
	height    int
}

func newModel(opts Options) Model {
	theme := themeByName(opts.ThemeName)

	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		ctx:       opts.Context,
		resources: opts.Resources,
		search:    search,
		spin:      spin,
		theme:     theme,
		prefsPath: opts.PrefsPath,
		toasts:    toastNotifier{ch: make(chan toastMsg, toastBuffer)},
	}
	m.rebuildTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenToasts(), tickCmd(), m.spin.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.syncRows()
		return m, tickCmd()

	case toastMsg:
		toast := msg
		m.toast = &toast
		return m, tea.Batch(m.listenToasts(), expireToastCmd())

	case toastExpiredMsg:
		m.toast = nil
		return m, nil

	case refreshDoneMsg:
		m.syncRows()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input captures everything except escape and enter.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.current().SetSearch("")
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.current().SetSearch(m.search.Value())
			return m, cmd
		}
	}

	// Detail view: esc or enter closes it and clears the selection.
	if m.viewing {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.viewing = false
			m.current().ClearSelected()
		}
		return m, nil
	}

	// Action mode: a digit picks a transition, anything else cancels.
	if m.acting != "" {
		id := m.acting
		m.acting = ""
		actions := m.current().Actions()
		if s := msg.String(); len(s) == 1 {
			if i := int(s[0] - '1'); i >= 0 && i < len(actions) {
				return m, m.transitionCmd(id, actions[i])
			}
		}
		return m, nil
	}

	// Delete confirmation intercepts the next key.
	if m.confirm != "" {
		id := m.confirm
		m.confirm = ""
		if msg.String() == "y" {
			return m, m.deleteCmd(id)
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "l", "right":
		m.switchTab((m.active + 1) % len(m.resources))
		return m, m.refreshCmd()

	case "shift+tab", "h", "left":
		m.switchTab((m.active - 1 + len(m.resources)) % len(m.resources))
		return m, m.refreshCmd()

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "n":
		m.current().NextPage()
		return m, nil

	case "p":
		m.current().PrevPage()
		return m, nil

	case "s":
		m.current().CycleStatusFilter()
		return m, nil

	case "r":
		return m, m.refreshCmd()

	case "t":
		m.theme = nextTheme(m.theme.Name)
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil

	case "enter":
		if id := m.selectedID(); id != "" {
			m.viewing = true
			return m, m.selectCmd(id)
		}
		return m, nil

	case "a":
		if len(m.current().Actions()) == 0 {
			return m, nil
		}
		if id := m.selectedID(); id != "" {
			m.acting = id
		}
		return m, nil

	case "d":
		if m.current().ReadOnly() {
			return m, nil
		}
		if id := m.selectedID(); id != "" {
			m.confirm = id
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) current() Resource {
	return m.resources[m.active]
}

// selectedID resolves the cursor row to an entity ID, empty when the table
// is empty.
func (m Model) selectedID() string {
	if m.table.SelectedRow() == nil {
		return ""
	}
	return m.current().RowID(m.table.Cursor())
}

func (m *Model) switchTab(index int) {
	m.active = index
	m.confirm = ""
	m.acting = ""
	m.viewing = false
	m.searching = false
	m.search.SetValue("")
	m.search.Blur()
	m.rebuildTable()
}

// rebuildTable constructs the table for the active resource.
func (m *Model) rebuildTable() {
	r := m.current()
	cols := make([]table.Column, len(r.Columns()))
	for i, c := range r.Columns() {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Bold(false)
	t.SetStyles(st)
	m.table = t
	m.resizeTable()
	m.syncRows()
}

func (m *Model) resizeTable() {
	if m.height == 0 {
		return
	}
	// Header, stats, search and footer rows surround the table.
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
	m.table.SetWidth(m.width)
}

// syncRows pulls the latest snapshot into the table, preserving the cursor.
func (m *Model) syncRows() {
	cursor := m.table.Cursor()
	raw := m.current().Rows()
	rows := make([]table.Row, len(raw))
	for i, r := range raw {
		rows[i] = table.Row(r)
	}
	m.table.SetRows(rows)
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor >= 0 {
		m.table.SetCursor(cursor)
	}
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(snapshotInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func expireToastCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (m Model) listenToasts() tea.Cmd {
	ch := m.toasts.ch
	return func() tea.Msg {
		return <-ch
	}
}

func (m Model) refreshCmd() tea.Cmd {
	r := m.current()
	ctx := m.ctx
	return func() tea.Msg {
		_ = r.Refresh(ctx)
		return refreshDoneMsg{}
	}
}

func (m Model) selectCmd(id string) tea.Cmd {
	r := m.current()
	ctx := m.ctx
	return func() tea.Msg {
		_ = r.Select(ctx, id)
		return refreshDoneMsg{}
	}
}

func (m Model) transitionCmd(id, action string) tea.Cmd {
	r := m.current()
	ctx := m.ctx
	return func() tea.Msg {
		_ = r.Transition(ctx, id, action)
		return refreshDoneMsg{}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	r := m.current()
	ctx := m.ctx
	return func() tea.Msg {
		_ = r.Delete(ctx, id)
		return refreshDoneMsg{}
	}
}

func (m *Model) savePrefs() {
	p := prefs.Load(m.prefsPath)
	p.Theme = m.theme.Name
	_ = prefs.Save(m.prefsPath, p)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	if stats := m.renderStats(); stats != "" {
		b.WriteString(stats)
		b.WriteString("\n")
	}
	if m.viewing {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderDetail() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	pairs := m.current().Detail()
	if pairs == nil {
		// The fetch failed or is still in flight; the footer toast carries
		// any error.
		return muted.Render("  loading record...")
	}

	labelWidth := 0
	for _, kv := range pairs {
		if len(kv[0]) > labelWidth {
			labelWidth = len(kv[0])
		}
	}

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Width(labelWidth + 2)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	var b strings.Builder
	for _, kv := range pairs {
		b.WriteString("  ")
		b.WriteString(label.Render(kv[0]))
		if v := kv[1]; v == "" {
			b.WriteString(muted.Render("–"))
		} else {
			b.WriteString(value.Render(v))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTabs() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Background(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Padding(0, 1)

	parts := make([]string, 0, len(m.resources))
	for i, r := range m.resources {
		if i == m.active {
			parts = append(parts, activeStyle.Render(r.Title()))
		} else {
			parts = append(parts, inactiveStyle.Render(r.Title()))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(row) > m.width {
		// Too many tabs for the terminal; show only the active one with its
		// position.
		pos := fmt.Sprintf(" %d/%d", m.active+1, len(m.resources))
		row = activeStyle.Render(m.current().Title()) + inactiveStyle.Render(pos)
	}
	return row
}

func (m Model) renderStats() string {
	stats := m.current().Stats()
	if len(stats) == 0 {
		return ""
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = style.Render(name+" ") + valueStyle.Render(fmt.Sprintf("%d", stats[name]))
	}
	return "  " + strings.Join(parts, style.Render("  ·  "))
}

func (m Model) renderFooter() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	danger := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Danger))
	success := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Success))

	var left string
	switch {
	case m.viewing:
		left = muted.Render("esc back")
	case m.acting != "":
		parts := make([]string, 0, len(m.current().Actions()))
		for i, action := range m.current().Actions() {
			parts = append(parts, fmt.Sprintf("%d %s", i+1, action))
		}
		left = muted.Render(fmt.Sprintf("#%s: %s", m.acting, strings.Join(parts, "  ")))
	case m.confirm != "":
		left = danger.Render(fmt.Sprintf("delete #%s? press y to confirm", m.confirm))
	case m.searching:
		left = m.search.View()
	case m.toast != nil && m.toast.isError:
		left = danger.Render(m.toast.text)
	case m.toast != nil:
		left = success.Render(m.toast.text)
	default:
		left = muted.Render(helpLine(m.current()))
	}

	right := m.renderPagePosition()
	if m.current().ListStatus() == store.ListLoading {
		right = m.spin.View() + " " + right
	}
	if status := m.current().StatusFilter(); status != "" {
		tag := lipgloss.NewStyle().
			Foreground(m.theme.StatusColor(status)).
			Render("[" + status + "]")
		right = tag + " " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderPagePosition() string {
	meta := m.current().Meta()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	if meta.PageCount <= 0 {
		return style.Render("–")
	}
	return style.Render(fmt.Sprintf("page %d/%d · %d total", meta.Page, meta.PageCount, meta.Total))
}
