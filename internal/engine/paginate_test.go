package engine

import (
	"fmt"
	"testing"

	"github.com/jmorrow/chatvault/internal/model"
	"github.com/jmorrow/chatvault/internal/testutil"
)

func makeItems(n int) []*model.Conversation {
	items := make([]*model.Conversation, n)
	for i := range items {
		c := testutil.NewConversation(fmt.Sprintf("r%d", i)).Build()
		items[i] = &c
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		pageIndex int
		wantLen   int
		wantCount int
		wantStart int
		wantEnd   int
	}{
		{"first full page", 250, 100, 0, 100, 3, 0, 100},
		{"middle page", 250, 100, 1, 100, 3, 100, 200},
		{"short last page", 250, 100, 2, 50, 3, 200, 250},
		{"exact fit", 200, 100, 1, 100, 2, 100, 200},
		{"single page", 5, 100, 0, 5, 1, 0, 5},
		{"empty input", 0, 100, 0, 0, 0, 0, 0},
		{"out of range high", 250, 100, 3, 0, 3, 0, 0},
		{"negative index", 250, 100, -1, 0, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makeItems(tt.total), tt.pageSize, tt.pageIndex)
			if len(page.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(page.Items), tt.wantLen)
			}
			if page.PageCount != tt.wantCount {
				t.Errorf("PageCount = %d, want %d", page.PageCount, tt.wantCount)
			}
			if page.Start != tt.wantStart || page.End != tt.wantEnd {
				t.Errorf("range = [%d, %d), want [%d, %d)", page.Start, page.End, tt.wantStart, tt.wantEnd)
			}
			if page.Index != tt.pageIndex {
				t.Errorf("Index = %d, want %d", page.Index, tt.pageIndex)
			}
		})
	}
}

func TestPaginateLastPageContents(t *testing.T) {
	items := makeItems(250)
	page := Paginate(items, 100, 2)
	if got := page.Items[0].UUID; got != "r200" {
		t.Errorf("first item of page 2 = %s, want r200", got)
	}
	if got := page.Items[len(page.Items)-1].UUID; got != "r249" {
		t.Errorf("last item of page 2 = %s, want r249", got)
	}
}

// Concatenating every page must reconstruct the sequence exactly once
// per element.
func TestPaginateCoversSequenceExactly(t *testing.T) {
	items := makeItems(47)
	pageSize := 10

	var rebuilt []*model.Conversation
	first := Paginate(items, pageSize, 0)
	for i := 0; i < first.PageCount; i++ {
		rebuilt = append(rebuilt, Paginate(items, pageSize, i).Items...)
	}

	if len(rebuilt) != len(items) {
		t.Fatalf("rebuilt %d items, want %d", len(rebuilt), len(items))
	}
	for i := range items {
		if rebuilt[i] != items[i] {
			t.Errorf("element %d differs after page concatenation", i)
		}
	}
}

func TestPaginateZeroPageSize(t *testing.T) {
	page := Paginate(makeItems(10), 0, 0)
	if len(page.Items) != 0 || page.PageCount != 0 {
		t.Errorf("pageSize 0: got %d items, %d pages, want 0 and 0", len(page.Items), page.PageCount)
	}
}
