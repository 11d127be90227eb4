package engine

import (
	"sort"
	"strings"

	"github.com/jmorrow/chatvault/internal/model"
)

// SortField selects the comparison key for ordering conversations.
type SortField int

const (
	SortByDate SortField = iota
	SortBySize
	SortByMessages
)

func (f SortField) String() string {
	switch f {
	case SortByDate:
		return "Date"
	case SortBySize:
		return "Size"
	case SortByMessages:
		return "Messages"
	default:
		return "Unknown"
	}
}

// ParseSortField maps a user-supplied name ("date", "size", "messages")
// to a SortField. Matching is case-insensitive.
func ParseSortField(s string) (SortField, bool) {
	switch strings.ToLower(s) {
	case "date":
		return SortByDate, true
	case "size":
		return SortBySize, true
	case "messages":
		return SortByMessages, true
	}
	return SortByDate, false
}

// SortDirection is ascending or descending order.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

func (d SortDirection) String() string {
	if d == SortDesc {
		return "desc"
	}
	return "asc"
}

// Size-estimate constants. The estimate is a cheap proxy for display
// and ordering, not an exact serialized size.
const (
	sizeBaseBytes  = 512
	sizePerMessage = 1024
)

// EstimatedSize returns the estimated byte size of a conversation:
// a fixed base plus a per-message constant.
func EstimatedSize(c *model.Conversation) int64 {
	return sizeBaseBytes + sizePerMessage*int64(len(c.ChatMessages))
}

// SortConversations returns a new slice ordered by the given field and
// direction. The input is never mutated. The sort is stable, so ties
// preserve relative input order. Absent or unparsable creation dates
// compare as the epoch, consistent with the filter engine.
func SortConversations(records []*model.Conversation, field SortField, dir SortDirection) []*model.Conversation {
	out := make([]*model.Conversation, len(records))
	copy(out, records)

	var less func(a, b *model.Conversation) bool
	switch field {
	case SortBySize:
		less = func(a, b *model.Conversation) bool {
			return EstimatedSize(a) < EstimatedSize(b)
		}
	case SortByMessages:
		less = func(a, b *model.Conversation) bool {
			return len(a.ChatMessages) < len(b.ChatMessages)
		}
	default:
		less = func(a, b *model.Conversation) bool {
			return timestampOrEpoch(a.CreatedAt).Before(timestampOrEpoch(b.CreatedAt))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
