package tui

import (
	"fmt"
	"os"
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/model"
	"github.com/jmorrow/chatvault/internal/testutil"
)

// TestMain pins lipgloss to plain ASCII output so rendered views are
// deterministic regardless of the terminal running the tests.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// newTestModel builds a model over the given records with a fixed page
// size and terminal geometry.
func newTestModel(records []model.Conversation, pageSize int) Model {
	ix := engine.NewIndex()
	ix.Load(records)
	m := New(ix, Options{
		SourcePath: "test.json",
		PageSize:   pageSize,
		SortField:  engine.SortByDate,
		SortDir:    engine.SortAsc,
	})
	m.width = 100
	m.height = pageSize + 5
	return m
}

// monthlyRecords builds n conversations with sequential creation dates
// so date-ordering is predictable.
func monthlyRecords(n int) []model.Conversation {
	records := make([]model.Conversation, n)
	for i := range records {
		records[i] = testutil.NewConversation(fmt.Sprintf("conv-%02d", i)).
			WithName(fmt.Sprintf("Conversation %02d", i)).
			WithCreatedAt(fmt.Sprintf("2024-01-%02dT00:00:00Z", i+1)).
			WithTextMessages("hello").
			Build()
	}
	return records
}

// sendKey sends a key message to the model and returns the updated
// concrete Model.
func sendKey(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	newM, cmd := m.Update(k)
	return newM.(Model), cmd
}

// key returns a KeyMsg for a single rune (e.g., key('s')).
func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg       { return tea.KeyMsg{Type: tea.KeyEscape} }
func keyBackspace() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyBackspace} }
func keyDown() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyDown} }
func keyUp() tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyUp} }
func keyRight() tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyRight} }
func keyLeft() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyLeft} }

// assertLevel checks that the model is at the expected view level.
func assertLevel(t *testing.T, m Model, expected viewLevel) {
	t.Helper()
	if m.level != expected {
		t.Errorf("expected level %v, got %v", expected, m.level)
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// typeString feeds each rune of s into the model as a key press.
func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = sendKey(t, m, key(r))
	}
	return m
}
