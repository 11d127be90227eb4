// Package tui provides the interactive terminal browser for a loaded
// conversation export.
package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/export"
	"github.com/jmorrow/chatvault/internal/model"
)

// Options configures the TUI.
type Options struct {
	SourcePath string
	Version    string
	PageSize   int
	SortField  engine.SortField
	SortDir    engine.SortDirection
	ExportDir  string
}

// Model is the main TUI model following the Elm architecture.
//
// The model owns the mutable query specification (filters, sort, page);
// the engine only ever sees one immutable spec per call. On any change
// the model re-runs filter, then sort, then pagination, and resets to
// page zero — the engine never clamps for us.
type Model struct {
	index      *engine.Index
	sourcePath string
	version    string
	exportDir  string

	level viewLevel
	modal modalType

	// Query state
	spec      engine.FilterSpec
	sortField engine.SortField
	sortDir   engine.SortDirection

	// Derived data (recomputed on every query change)
	filtered []*model.Conversation
	page     engine.Page

	// Navigation
	pageIndex int
	cursor    int // index within the current page's items
	pageSize  int

	// Stats, computed once per load
	stats engine.Stats

	// Detail view
	detail       *model.Conversation
	detailLines  []string
	detailScroll int

	// Stats view scroll
	statsScroll int

	// Inline search
	searchActive bool
	searchInput  textinput.Model

	// Inline date-range entry; dateRange holds the last committed raw
	// text so esc can restore it.
	dateActive bool
	dateInput  textinput.Model
	dateRange  string

	// Flash message (temporary notification)
	flashMessage   string
	flashExpiresAt time.Time

	// Terminal dimensions
	width  int
	height int

	quitting bool
}

// New creates a TUI model over an already-loaded index.
func New(ix *engine.Index, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 200
	ti.Width = 40

	di := textinput.New()
	di.Placeholder = "2024-01-01..2024-06-30"
	di.CharLimit = 50
	di.Width = 40

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	m := Model{
		index:       ix,
		sourcePath:  opts.SourcePath,
		version:     opts.Version,
		exportDir:   opts.ExportDir,
		sortField:   opts.SortField,
		sortDir:     opts.SortDir,
		pageSize:    pageSize,
		searchInput: ti,
		dateInput:   di,
		stats:       engine.Aggregate(ix.Records()),
	}
	m.refresh(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// flashClearMsg expires the current flash message.
type flashClearMsg struct{}

// refresh re-runs the filter → sort → paginate pipeline. When reset is
// true the page and cursor return to the top (every filter or sort
// change does this; pure page flips do not).
func (m *Model) refresh(reset bool) {
	m.filtered = engine.SortConversations(
		engine.ApplyFilter(m.index.Records(), m.spec),
		m.sortField, m.sortDir,
	)
	if reset {
		m.pageIndex = 0
		m.cursor = 0
	}
	m.loadPage()
}

// loadPage clamps the page index and slices the current page.
func (m *Model) loadPage() {
	probe := engine.Paginate(m.filtered, m.pageSize, 0)
	m.pageIndex = clampPage(m.pageIndex, probe.PageCount)
	m.page = engine.Paginate(m.filtered, m.pageSize, m.pageIndex)
	m.cursor = clampCursor(m.cursor, len(m.page.Items))
}

// selected returns the conversation under the cursor, or nil when the
// current page is empty.
func (m *Model) selected() *model.Conversation {
	if m.cursor < 0 || m.cursor >= len(m.page.Items) {
		return nil
	}
	return m.page.Items[m.cursor]
}

// showFlash displays a temporary notification on the footer line.
func (m Model) showFlash(msg string) (tea.Model, tea.Cmd) {
	m.flashMessage = msg
	m.flashExpiresAt = time.Now().Add(3 * time.Second)
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return flashClearMsg{} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pageSize = listRows(msg.Height)
		m.refresh(false)
		if m.detail != nil {
			m.rebuildDetail()
		}
		return m, nil

	case flashClearMsg:
		if time.Now().After(m.flashExpiresAt) {
			m.flashMessage = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// listRows derives how many table rows fit in the terminal, leaving
// room for the title bar, column header, separator, and footer.
func listRows(height int) int {
	rows := height - 5
	if rows < 1 {
		return 1
	}
	return rows
}

// openDetail enters the message detail view for the selected record.
func (m *Model) openDetail(c *model.Conversation) {
	m.detail = c
	m.detailScroll = 0
	m.level = levelDetail
	m.rebuildDetail()
}

// rebuildDetail re-renders the detail body lines at the current width.
func (m *Model) rebuildDetail() {
	if m.detail == nil {
		m.detailLines = nil
		return
	}
	m.detailLines = detailLines(m.detail, contentWidth(m.width))
}

// exportSelected writes the given conversation to its default filename
// in the configured export directory.
func (m Model) exportSelected(c *model.Conversation) (tea.Model, tea.Cmd) {
	if c == nil {
		return m.showFlash("Nothing to export")
	}
	path := export.DefaultFilename(c)
	if m.exportDir != "" {
		path = filepath.Join(m.exportDir, path)
	}
	if err := export.WriteFile(c, path); err != nil {
		return m.showFlash("Export failed: " + err.Error())
	}
	return m.showFlash("Exported to " + path)
}
