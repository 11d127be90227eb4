package engine

import (
	"time"

	"github.com/jmorrow/chatvault/internal/model"
)

// FilterSpec is the set of active predicates applied to a conversation
// population. All predicates are optional and conjunctive. The UI layer
// owns the mutable spec; the engine only ever reads one per call.
type FilterSpec struct {
	// After and Before bound the creation timestamp, inclusive on both
	// ends. Nil means unbounded on that side.
	After  *time.Time
	Before *time.Time

	// SearchTerm is matched by deep search over the whole record.
	// An empty term is "no predicate", not "match nothing".
	SearchTerm string

	// HasMessages keeps only conversations with a non-empty message
	// sequence.
	HasMessages bool

	// HasEmptyMessages keeps only conversations containing at least one
	// message whose derived text is empty after trimming.
	HasEmptyMessages bool
}

// IsZero reports whether no predicate is active.
func (s FilterSpec) IsZero() bool {
	return s.After == nil && s.Before == nil && s.SearchTerm == "" &&
		!s.HasMessages && !s.HasEmptyMessages
}

// ApplyFilter returns the subsequence of records satisfying every
// active predicate, preserving input order. The result aliases the
// input records (no copies).
//
// A record whose creation timestamp is absent or unparsable is compared
// as the epoch for the date-range predicate. That keeps undated records
// visible when only an upper bound is set, matching long-standing
// behavior; aggregation buckets the same records separately.
func ApplyFilter(records []model.Conversation, spec FilterSpec) []*model.Conversation {
	out := make([]*model.Conversation, 0, len(records))
	for i := range records {
		if matchesSpec(&records[i], spec) {
			out = append(out, &records[i])
		}
	}
	return out
}

func matchesSpec(c *model.Conversation, spec FilterSpec) bool {
	if spec.After != nil || spec.Before != nil {
		created := timestampOrEpoch(c.CreatedAt)
		if spec.After != nil && created.Before(*spec.After) {
			return false
		}
		if spec.Before != nil && created.After(*spec.Before) {
			return false
		}
	}

	if spec.HasMessages && len(c.ChatMessages) == 0 {
		return false
	}

	if spec.HasEmptyMessages && !hasEmptyMessage(c) {
		return false
	}

	if spec.SearchTerm != "" && !Matches(c, spec.SearchTerm) {
		return false
	}

	return true
}

func hasEmptyMessage(c *model.Conversation) bool {
	for i := range c.ChatMessages {
		if IsEmptyMessage(&c.ChatMessages[i]) {
			return true
		}
	}
	return false
}
