package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmorrow/chatvault/internal/engine"
)

// handleKey dispatches a key press based on modal, search, and view
// state, in that order of precedence.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}
	if m.searchActive {
		return m.handleSearchKey(msg)
	}
	if m.dateActive {
		return m.handleDateKey(msg)
	}

	switch m.level {
	case levelDetail:
		return m.handleDetailKey(msg)
	case levelStats:
		return m.handleStatsKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleModalKey(tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help modal.
	m.modal = modalNone
	return m, nil
}

// handleSearchKey feeds keys into the inline search input. The search
// term is committed on Enter only: deep search over a large export is
// too costly to run per keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.spec.SearchTerm = m.searchInput.Value()
		m.refresh(true)
		return m, nil
	case "esc":
		m.searchActive = false
		m.searchInput.SetValue(m.spec.SearchTerm)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleDateKey feeds keys into the inline date-range input. The range
// is committed on Enter; an empty value clears both bounds.
func (m Model) handleDateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.dateActive = false
		after, before, err := parseDateRange(m.dateInput.Value())
		if err != nil {
			m.dateInput.SetValue(m.dateRange)
			return m.showFlash("Bad range (want 2024-01-01..2024-06-30)")
		}
		m.dateRange = strings.TrimSpace(m.dateInput.Value())
		m.spec.After = after
		m.spec.Before = before
		m.refresh(true)
		return m, nil
	case "esc":
		m.dateActive = false
		m.dateInput.SetValue(m.dateRange)
		return m, nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// parseDateRange parses "after..before" where either side may be blank
// for an open end. A single date means that day only. A bare date on
// the upper bound is inclusive through the end of its day.
func parseDateRange(s string) (after, before *time.Time, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, nil
	}

	from, to := s, s
	if i := strings.Index(s, ".."); i >= 0 {
		from, to = strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+2:])
	}

	if from != "" {
		t, ok := engine.ParseTimestamp(from)
		if !ok {
			return nil, nil, fmt.Errorf("bad date %q", from)
		}
		after = &t
	}
	if to != "" {
		t, ok := engine.ParseTimestamp(to)
		if !ok {
			return nil, nil, fmt.Errorf("bad date %q", to)
		}
		if len(to) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		before = &t
	}
	return after, before, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if m.pageIndex > 0 {
			// Crossing the top of a page flips to the previous one.
			m.pageIndex--
			m.loadPage()
			m.cursor = len(m.page.Items) - 1
		}

	case "down", "j":
		if m.cursor < len(m.page.Items)-1 {
			m.cursor++
		} else if m.pageIndex < m.page.PageCount-1 {
			m.pageIndex++
			m.loadPage()
			m.cursor = 0
		}

	case "left", "h", "pgup":
		if m.pageIndex > 0 {
			m.pageIndex--
			m.cursor = 0
			m.loadPage()
		}

	case "right", "l", "pgdown":
		if m.pageIndex < m.page.PageCount-1 {
			m.pageIndex++
			m.cursor = 0
			m.loadPage()
		}

	case "home", "g":
		m.pageIndex = 0
		m.cursor = 0
		m.loadPage()

	case "end", "G":
		m.pageIndex = m.page.PageCount - 1
		m.loadPage()
		m.cursor = len(m.page.Items) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}

	case "enter":
		if c := m.selected(); c != nil {
			m.openDetail(c)
		}

	case "/":
		m.searchActive = true
		m.searchInput.SetValue(m.spec.SearchTerm)
		m.searchInput.Focus()
		return m, nil

	case "d":
		m.dateActive = true
		m.dateInput.SetValue(m.dateRange)
		m.dateInput.Focus()
		return m, nil

	case "m":
		m.spec.HasMessages = !m.spec.HasMessages
		m.refresh(true)

	case "E":
		m.spec.HasEmptyMessages = !m.spec.HasEmptyMessages
		m.refresh(true)

	case "x":
		if !m.spec.IsZero() {
			m.spec = engine.FilterSpec{}
			m.searchInput.SetValue("")
			m.dateRange = ""
			m.dateInput.SetValue("")
			m.refresh(true)
			return m.showFlash("Filters cleared")
		}

	case "s":
		m.sortField = (m.sortField + 1) % 3
		m.refresh(true)

	case "r":
		if m.sortDir == engine.SortAsc {
			m.sortDir = engine.SortDesc
		} else {
			m.sortDir = engine.SortAsc
		}
		m.refresh(true)

	case "S":
		m.level = levelStats
		m.statsScroll = 0

	case "e":
		return m.exportSelected(m.selected())

	case "?":
		m.modal = modalHelp
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := detailViewRows(m.height)
	maxScroll := len(m.detailLines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}

	switch msg.String() {
	case "esc", "q":
		m.level = levelList
		m.detail = nil
		m.detailLines = nil

	case "up", "k":
		if m.detailScroll > 0 {
			m.detailScroll--
		}

	case "down", "j":
		if m.detailScroll < maxScroll {
			m.detailScroll++
		}

	case "pgup", "ctrl+u":
		m.detailScroll -= visible
		if m.detailScroll < 0 {
			m.detailScroll = 0
		}

	case "pgdown", "ctrl+d", " ":
		m.detailScroll += visible
		if m.detailScroll > maxScroll {
			m.detailScroll = maxScroll
		}

	case "home", "g":
		m.detailScroll = 0

	case "end", "G":
		m.detailScroll = maxScroll

	case "e":
		return m.exportSelected(m.detail)

	case "?":
		m.modal = modalHelp
	}

	return m, nil
}

func (m Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := detailViewRows(m.height)
	maxScroll := len(m.statsLines()) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}

	switch msg.String() {
	case "esc", "q", "S":
		m.level = levelList

	case "up", "k":
		if m.statsScroll > 0 {
			m.statsScroll--
		}

	case "down", "j":
		if m.statsScroll < maxScroll {
			m.statsScroll++
		}

	case "home", "g":
		m.statsScroll = 0

	case "end", "G":
		m.statsScroll = maxScroll

	case "?":
		m.modal = modalHelp
	}

	return m, nil
}
