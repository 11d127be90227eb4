package engine

import (
	"testing"
	"time"

	"github.com/jmorrow/chatvault/internal/model"
	"github.com/jmorrow/chatvault/internal/testutil"
)

func timePtr(t time.Time) *time.Time { return &t }

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ids extracts the UUIDs of filtered results for compact assertions.
func ids(records []*model.Conversation) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.UUID
	}
	return out
}

func testRecords() []model.Conversation {
	return []model.Conversation{
		testutil.NewConversation("jan").WithCreatedAt("2024-01-01T10:00:00Z").
			WithTextMessages("hello there").Build(),
		testutil.NewConversation("feb").WithCreatedAt("2024-02-10T10:00:00Z").Build(),
		testutil.NewConversation("mar").WithCreatedAt("2024-03-15T10:00:00Z").
			WithMessages(testutil.TextMessage("m1", "human", "   ")).Build(),
		testutil.NewConversation("undated").WithCreatedAt("").
			WithTextMessages("no date here").Build(),
	}
}

func TestApplyFilterNoPredicatesIsIdentity(t *testing.T) {
	records := testRecords()
	got := ApplyFilter(records, FilterSpec{})
	testutil.AssertStrings(t, ids(got), "jan", "feb", "mar", "undated")
}

func TestApplyFilterDateRange(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{
			name: "inclusive bounds",
			spec: FilterSpec{
				After:  timePtr(utcDate(2024, time.January, 1)),
				Before: timePtr(utcDate(2024, time.February, 28)),
			},
			want: []string{"jan", "feb"},
		},
		{
			name: "only lower bound excludes epoch-dated records",
			spec: FilterSpec{After: timePtr(utcDate(2024, time.March, 1))},
			want: []string{"mar"},
		},
		{
			// A record with no parsable date compares as the epoch, so it
			// survives any filter that only sets an upper bound.
			name: "only upper bound keeps undated records",
			spec: FilterSpec{Before: timePtr(utcDate(2024, time.January, 31))},
			want: []string{"jan", "undated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(records, tt.spec)
			testutil.AssertStrings(t, ids(got), tt.want...)
		})
	}
}

func TestApplyFilterHasMessages(t *testing.T) {
	got := ApplyFilter(testRecords(), FilterSpec{HasMessages: true})
	testutil.AssertStrings(t, ids(got), "jan", "mar", "undated")
}

func TestApplyFilterHasEmptyMessages(t *testing.T) {
	// "mar" has a single whitespace-only message: trim-then-check means
	// it counts as empty.
	got := ApplyFilter(testRecords(), FilterSpec{HasEmptyMessages: true})
	testutil.AssertStrings(t, ids(got), "mar")
}

func TestApplyFilterSearchTerm(t *testing.T) {
	records := testRecords()

	got := ApplyFilter(records, FilterSpec{SearchTerm: "HELLO"})
	testutil.AssertStrings(t, ids(got), "jan")

	// Empty term is no predicate, not "match nothing".
	got = ApplyFilter(records, FilterSpec{SearchTerm: ""})
	if len(got) != len(records) {
		t.Errorf("empty search term filtered to %d records, want %d", len(got), len(records))
	}
}

func TestApplyFilterPredicatesAreConjunctive(t *testing.T) {
	records := testRecords()
	spec := FilterSpec{
		After:       timePtr(utcDate(2024, time.January, 1)),
		Before:      timePtr(utcDate(2024, time.December, 31)),
		HasMessages: true,
		SearchTerm:  "hello",
	}
	got := ApplyFilter(records, spec)
	testutil.AssertStrings(t, ids(got), "jan")
}

func TestApplyFilterPreservesInputOrder(t *testing.T) {
	records := []model.Conversation{
		testutil.NewConversation("c").WithTextMessages("x").Build(),
		testutil.NewConversation("a").WithTextMessages("x").Build(),
		testutil.NewConversation("b").WithTextMessages("x").Build(),
	}
	got := ApplyFilter(records, FilterSpec{HasMessages: true})
	testutil.AssertStrings(t, ids(got), "c", "a", "b")
}

func TestFilterSpecIsZero(t *testing.T) {
	if !(FilterSpec{}).IsZero() {
		t.Error("zero spec should report IsZero")
	}
	if (FilterSpec{SearchTerm: "x"}).IsZero() {
		t.Error("spec with a search term should not report IsZero")
	}
	if (FilterSpec{HasMessages: true}).IsZero() {
		t.Error("spec with a flag should not report IsZero")
	}
}
