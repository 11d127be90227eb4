package engine

import (
	"testing"

	"github.com/jmorrow/chatvault/internal/model"
	"github.com/jmorrow/chatvault/internal/testutil"
)

func toPtrs(records []model.Conversation) []*model.Conversation {
	out := make([]*model.Conversation, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	return out
}

func TestSortByDateAscending(t *testing.T) {
	records := toPtrs([]model.Conversation{
		testutil.NewConversation("jan").WithCreatedAt("2024-01-01").Build(),
		testutil.NewConversation("mar").WithCreatedAt("2024-03-15").Build(),
		testutil.NewConversation("feb").WithCreatedAt("2024-02-10").Build(),
	})

	got := SortConversations(records, SortByDate, SortAsc)
	testutil.AssertStrings(t, ids(got), "jan", "feb", "mar")
}

func TestSortDescReversesAsc(t *testing.T) {
	records := toPtrs([]model.Conversation{
		testutil.NewConversation("a").WithCreatedAt("2024-01-01").WithTextMessages("x").Build(),
		testutil.NewConversation("b").WithCreatedAt("2024-03-01").Build(),
		testutil.NewConversation("c").WithCreatedAt("2024-02-01").WithTextMessages("x", "y").Build(),
	})

	for _, field := range []SortField{SortByDate, SortBySize, SortByMessages} {
		asc := SortConversations(records, field, SortAsc)
		desc := SortConversations(records, field, SortDesc)
		for i := range asc {
			if asc[i].UUID != desc[len(desc)-1-i].UUID {
				t.Errorf("field %v: asc reversed != desc at index %d", field, i)
			}
		}
	}
}

func TestSortByMessagesAndSize(t *testing.T) {
	records := toPtrs([]model.Conversation{
		testutil.NewConversation("two").WithTextMessages("a", "b").Build(),
		testutil.NewConversation("zero").Build(),
		testutil.NewConversation("one").WithTextMessages("a").Build(),
	})

	got := SortConversations(records, SortByMessages, SortAsc)
	testutil.AssertStrings(t, ids(got), "zero", "one", "two")

	// Size is a linear function of message count, so the order agrees.
	got = SortConversations(records, SortBySize, SortDesc)
	testutil.AssertStrings(t, ids(got), "two", "one", "zero")
}

func TestSortIsStableOnTies(t *testing.T) {
	same := "2024-06-01T12:00:00Z"
	records := toPtrs([]model.Conversation{
		testutil.NewConversation("first").WithCreatedAt(same).Build(),
		testutil.NewConversation("second").WithCreatedAt(same).Build(),
		testutil.NewConversation("third").WithCreatedAt(same).Build(),
	})

	got := SortConversations(records, SortByDate, SortAsc)
	testutil.AssertStrings(t, ids(got), "first", "second", "third")

	got = SortConversations(records, SortByDate, SortDesc)
	testutil.AssertStrings(t, ids(got), "first", "second", "third")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := toPtrs([]model.Conversation{
		testutil.NewConversation("b").WithCreatedAt("2024-02-01").Build(),
		testutil.NewConversation("a").WithCreatedAt("2024-01-01").Build(),
	})

	_ = SortConversations(records, SortByDate, SortAsc)
	testutil.AssertStrings(t, ids(records), "b", "a")
}

func TestSortUnparsableDatesCompareAsEpoch(t *testing.T) {
	records := toPtrs([]model.Conversation{
		testutil.NewConversation("dated").WithCreatedAt("2024-01-01").Build(),
		testutil.NewConversation("undated").WithCreatedAt("not a date").Build(),
	})

	got := SortConversations(records, SortByDate, SortAsc)
	testutil.AssertStrings(t, ids(got), "undated", "dated")
}

func TestEstimatedSize(t *testing.T) {
	zero := testutil.NewConversation("z").Build()
	three := testutil.NewConversation("t").WithTextMessages("a", "b", "c").Build()

	base := EstimatedSize(&zero)
	if base <= 0 {
		t.Fatalf("base estimate = %d, want > 0", base)
	}
	if got := EstimatedSize(&three); got <= base {
		t.Errorf("estimate with messages = %d, want > base %d", got, base)
	}
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		input string
		want  SortField
		ok    bool
	}{
		{"date", SortByDate, true},
		{"Size", SortBySize, true},
		{"MESSAGES", SortByMessages, true},
		{"bogus", SortByDate, false},
		{"", SortByDate, false},
	}
	for _, tt := range tests {
		got, ok := ParseSortField(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSortField(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSortFieldStrings(t *testing.T) {
	if SortByDate.String() != "Date" || SortBySize.String() != "Size" || SortByMessages.String() != "Messages" {
		t.Error("unexpected SortField names")
	}
	if SortAsc.String() != "asc" || SortDesc.String() != "desc" {
		t.Error("unexpected SortDirection names")
	}
}
