package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/model"
)

// Monochrome theme, adaptive for light and dark terminals.
var (
	bgBase   = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}
	bgCursor = lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#282828"}

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#333333"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Background(bgBase)

	separatorStyle = lipgloss.NewStyle().
			Faint(true).
			Background(bgBase)

	cursorRowStyle = lipgloss.NewStyle().
			Background(bgCursor)

	normalRowStyle = lipgloss.NewStyle().
			Background(bgBase)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#999999"}).
			Background(bgBase).
			Padding(0, 1)

	senderStyle = lipgloss.NewStyle().
			Bold(true)

	flashStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#996600", Dark: "#ffcc00"}).
			Background(bgBase)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true)
)

// countPrinter renders grouped integers ("12,345") for stats output.
var countPrinter = message.NewPrinter(language.English)

// contentWidth is the usable width inside the padded frame.
func contentWidth(width int) int {
	if width <= 4 {
		return 76
	}
	return width - 2
}

// detailViewRows is how many body lines fit under the detail header.
func detailViewRows(height int) int {
	rows := height - 4
	if rows < 1 {
		return 1
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.modal == modalHelp {
		return m.renderHelp()
	}

	switch m.level {
	case levelDetail:
		return m.renderDetail()
	case levelStats:
		return m.renderStats()
	default:
		return m.renderList()
	}
}

func (m Model) titleBar(context string) string {
	title := "chatvault"
	if m.version != "" && m.version != "dev" {
		title = fmt.Sprintf("chatvault [%s]", m.version)
	}
	line := fmt.Sprintf("%s - %s", title, context)
	return titleBarStyle.Render(padRight(line, contentWidth(m.width)))
}

func (m Model) renderList() string {
	width := contentWidth(m.width)
	var b strings.Builder

	b.WriteString(m.titleBar(truncateRunes(m.sourcePath, width-20)))
	b.WriteString("\n")

	// Column layout: date(16) msgs(6) size(9) name(rest).
	nameWidth := width - 16 - 6 - 9 - 3
	if nameWidth < 10 {
		nameWidth = 10
	}
	header := fmt.Sprintf("%-16s %5s %8s %s", "Created", "Msgs", "Size", "Name")
	b.WriteString(tableHeaderStyle.Render(padRight(header, width)))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if len(m.page.Items) == 0 {
		b.WriteString(normalRowStyle.Render(padRight("  (no conversations match)", width)))
		b.WriteString("\n")
	}

	for i, c := range m.page.Items {
		row := fmt.Sprintf("%-16s %5d %8s %s",
			displayDate(c.CreatedAt),
			len(c.ChatMessages),
			formatBytes(engine.EstimatedSize(c)),
			truncateRunes(c.Title(), nameWidth),
		)
		style := normalRowStyle
		if i == m.cursor {
			style = cursorRowStyle
		}
		b.WriteString(style.Render(padRight(row, width)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(width))
	return b.String()
}

// displayDate shows the date portion of a record timestamp, or a dash
// when it does not parse.
func displayDate(ts string) string {
	t, ok := engine.ParseTimestamp(ts)
	if !ok {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func (m Model) renderFooter(width int) string {
	if m.searchActive {
		return footerStyle.Render(padRight("/"+m.searchInput.View(), width))
	}
	if m.dateActive {
		return footerStyle.Render(padRight("range: "+m.dateInput.View(), width))
	}
	if m.flashMessage != "" {
		return flashStyle.Render(padRight(" "+m.flashMessage, width))
	}

	pageCount := m.page.PageCount
	pageNo := 0
	if pageCount > 0 {
		pageNo = m.pageIndex + 1
	}
	left := fmt.Sprintf("%d of %d conversations · page %d/%d",
		len(m.filtered), m.index.Len(), pageNo, pageCount)

	var filters []string
	if m.spec.SearchTerm != "" {
		filters = append(filters, fmt.Sprintf("search:%q", m.spec.SearchTerm))
	}
	if m.spec.HasMessages {
		filters = append(filters, "has-messages")
	}
	if m.spec.HasEmptyMessages {
		filters = append(filters, "has-empty")
	}
	if m.spec.After != nil || m.spec.Before != nil {
		filters = append(filters, "date-range")
	}
	if len(filters) > 0 {
		left += " · " + strings.Join(filters, " ")
	}

	right := fmt.Sprintf("sort: %s %s · ? help", m.sortField, m.sortDir)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return footerStyle.Render(padRight(left+strings.Repeat(" ", gap)+right, width))
}

// detailLines renders the message sections of a conversation, wrapped
// to the given width. Uses the search/statistics join policy for text
// since this is a display surface, with each message clearly delimited.
func detailLines(c *model.Conversation, width int) []string {
	var lines []string

	for i := range c.ChatMessages {
		msg := &c.ChatMessages[i]
		if i > 0 {
			lines = append(lines, "")
		}

		sender := msg.Sender
		if sender == "" {
			sender = "unknown"
		}
		header := fmt.Sprintf("[%d] %s", i+1, sender)
		if msg.CreatedAt != "" {
			header += "  " + displayDate(msg.CreatedAt)
		}
		lines = append(lines, senderStyle.Render(header))

		text := engine.ExtractText(msg)
		if strings.TrimSpace(text) == "" {
			lines = append(lines, "  (no text)")
		} else {
			for _, l := range wrapText(text, width-2) {
				lines = append(lines, "  "+l)
			}
		}

		lines = appendFileLines(lines, msg.Attachments)
		lines = appendFileLines(lines, msg.Files)
	}

	if len(lines) == 0 {
		lines = append(lines, "(no messages)")
	}
	return lines
}

func appendFileLines(lines []string, files []model.Attachment) []string {
	for _, att := range files {
		entry := fmt.Sprintf("  + %s", att.FileName)
		if att.FileType != "" {
			entry += " (" + att.FileType + ")"
		}
		if att.FileSize > 0 {
			entry += " " + formatBytes(att.FileSize)
		}
		lines = append(lines, entry)
	}
	return lines
}

func (m Model) renderDetail() string {
	width := contentWidth(m.width)
	var b strings.Builder

	title := "(no conversation)"
	if m.detail != nil {
		title = m.detail.Title()
	}
	b.WriteString(m.titleBar(truncateRunes(title, width-16)))
	b.WriteString("\n")

	visible := detailViewRows(m.height)
	end := m.detailScroll + visible
	if end > len(m.detailLines) {
		end = len(m.detailLines)
	}
	for _, line := range m.detailLines[m.detailScroll:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("lines %d-%d of %d · e export · esc back",
		m.detailScroll+1, end, len(m.detailLines))
	if m.flashMessage != "" {
		b.WriteString(flashStyle.Render(padRight(" "+m.flashMessage, width)))
	} else {
		b.WriteString(footerStyle.Render(padRight(footer, width)))
	}
	return b.String()
}

// statsLines renders the aggregate statistics report.
func (m Model) statsLines() []string {
	s := m.stats
	var lines []string

	add := func(format string, args ...any) {
		lines = append(lines, countPrinter.Sprintf(format, args...))
	}

	add("Conversations:   %d", s.Conversations)
	add("Messages:        %d", s.Messages)
	add("Empty messages:  %d", s.EmptyMessages)
	lines = append(lines, "")

	lines = append(lines, senderStyle.Render("Message lengths"))
	add("  empty (0):       %d", s.Lengths.Empty)
	add("  short (1-50):    %d", s.Lengths.Short)
	add("  medium (51-500): %d", s.Lengths.Medium)
	add("  long (>500):     %d", s.Lengths.Long)
	lines = append(lines, "")

	lines = append(lines, senderStyle.Render("By sender"))
	for _, k := range sortedKeys(s.BySender) {
		add("  %-16s %d", k, s.BySender[k])
	}
	lines = append(lines, "")

	lines = append(lines, senderStyle.Render("By month (conversations / messages)"))
	for _, k := range sortedKeys(s.ConversationsByMonth) {
		add("  %-13s %6d / %d", k, s.ConversationsByMonth[k], s.MessagesByMonth[k])
	}

	return lines
}

// sortedKeys returns map keys in lexicographic order so the report is
// stable between renders.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m Model) renderStats() string {
	width := contentWidth(m.width)
	var b strings.Builder

	b.WriteString(m.titleBar("Statistics"))
	b.WriteString("\n")

	lines := m.statsLines()
	visible := detailViewRows(m.height)
	end := m.statsScroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[m.statsScroll:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(padRight("esc back", width)))
	return b.String()
}

func (m Model) renderHelp() string {
	help := strings.Join([]string{
		modalTitleStyle.Render("chatvault keys"),
		"",
		"  ↑/k ↓/j      move cursor",
		"  ←/h →/l      previous / next page",
		"  g / G        first / last page",
		"  enter        open conversation",
		"  /            search (enter commits, esc cancels)",
		"  d            date range (2024-01-01..2024-06-30)",
		"  m            toggle has-messages filter",
		"  E            toggle has-empty-messages filter",
		"  x            clear all filters",
		"  s            cycle sort field (date, size, messages)",
		"  r            reverse sort direction",
		"  S            statistics",
		"  e            export conversation to Markdown",
		"  q            quit",
		"",
		"press any key to close",
	}, "\n")

	box := modalStyle.Render(help)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
