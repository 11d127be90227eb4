package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/jmorrow/chatvault/internal/model"
)

// senderUnknown is substituted only when the sender field is absent.
// A present-but-unrecognized sender value is kept verbatim.
const senderUnknown = "unknown"

// Message-length bucket boundaries, in characters of trimmed derived text.
const (
	shortMaxChars  = 50
	mediumMaxChars = 500
)

// LengthBuckets counts messages by derived-text length after trimming.
type LengthBuckets struct {
	Empty  int
	Short  int // 1-50 chars
	Medium int // 51-500 chars
	Long   int // >500 chars
}

// Stats is the rolled-up view of one full pass over the record array.
// Re-running Aggregate on unchanged records yields identical results.
type Stats struct {
	Conversations int
	Messages      int

	// BySender counts messages per sender label.
	BySender map[string]int

	// ConversationsByMonth and MessagesByMonth group by the YYYY-MM
	// calendar month of the conversation creation date. Conversations
	// with unparsable dates land in the "invalid-date" bucket; unlike
	// filtering and sorting, aggregation does not substitute the epoch.
	ConversationsByMonth map[string]int
	MessagesByMonth      map[string]int

	Lengths LengthBuckets

	// EmptyMessages duplicates Lengths.Empty. Two call sites computed
	// it independently before the counters were unified here; both are
	// kept in the public shape for compatibility.
	EmptyMessages int
}

// Aggregate computes statistics in exactly one pass over the records
// and, within each, one pass over its messages.
func Aggregate(records []model.Conversation) Stats {
	s := Stats{
		BySender:             make(map[string]int),
		ConversationsByMonth: make(map[string]int),
		MessagesByMonth:      make(map[string]int),
	}

	for i := range records {
		c := &records[i]
		s.Conversations++

		month := monthKey(c.CreatedAt)
		s.ConversationsByMonth[month]++

		for j := range c.ChatMessages {
			msg := &c.ChatMessages[j]
			s.Messages++
			s.MessagesByMonth[month]++

			sender := msg.Sender
			if sender == "" {
				sender = senderUnknown
			}
			s.BySender[sender]++

			switch n := utf8.RuneCountInString(strings.TrimSpace(ExtractText(msg))); {
			case n == 0:
				s.Lengths.Empty++
				s.EmptyMessages++
			case n <= shortMaxChars:
				s.Lengths.Short++
			case n <= mediumMaxChars:
				s.Lengths.Medium++
			default:
				s.Lengths.Long++
			}
		}
	}

	return s
}
