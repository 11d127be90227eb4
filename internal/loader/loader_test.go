package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmorrow/chatvault/internal/testutil"
)

const sampleExport = `[
  {
    "uuid": "conv-1",
    "name": "First",
    "created_at": "2024-01-01T10:00:00Z",
    "account": {"uuid": "acct-1"},
    "chat_messages": [
      {"uuid": "m1", "sender": "human", "text": "hello"},
      {"uuid": "m2", "sender": "assistant", "content": [{"type": "text", "text": "hi"}]}
    ]
  },
  {"uuid": "conv-2", "name": "Second"}
]`

func TestParseArrayRoot(t *testing.T) {
	records, err := Parse([]byte(sampleExport))
	testutil.MustNoErr(t, err, "parse sample export")

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	c := records[0]
	if c.UUID != "conv-1" || c.Name != "First" {
		t.Errorf("record 0 = %q/%q, want conv-1/First", c.UUID, c.Name)
	}
	if len(c.ChatMessages) != 2 {
		t.Fatalf("got %d messages, want 2", len(c.ChatMessages))
	}
	if c.ChatMessages[1].Content[0].Text != "hi" {
		t.Errorf("content part text = %q, want %q", c.ChatMessages[1].Content[0].Text, "hi")
	}
	if c.Account == nil || c.Account.UUID != "acct-1" {
		t.Errorf("account = %v, want acct-1", c.Account)
	}
}

func TestParseObjectRootWrapped(t *testing.T) {
	records, err := Parse([]byte(`{"uuid": "solo", "name": "Only one"}`))
	testutil.MustNoErr(t, err, "parse object root")

	if len(records) != 1 || records[0].UUID != "solo" {
		t.Fatalf("object root should wrap to one record, got %v", records)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "  \n\t "},
		{"scalar root", `"just a string"`},
		{"invalid json", `[{"uuid": }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseSynthesizesMissingIDs(t *testing.T) {
	records, err := Parse([]byte(`[{"name": "no id", "chat_messages": [{"text": "hi"}]}]`))
	testutil.MustNoErr(t, err, "parse")

	if records[0].UUID == "" {
		t.Error("conversation without uuid should get one synthesized")
	}
	if records[0].ChatMessages[0].UUID == "" {
		t.Error("message without uuid should get one synthesized")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	testutil.MustNoErr(t, os.WriteFile(path, []byte(sampleExport), 0o644), "write fixture")

	records, err := Load(path)
	testutil.MustNoErr(t, err, "load fixture")
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
