package engine

import "github.com/jmorrow/chatvault/internal/model"

// Presence tallies which optional fields are present across a loaded
// record population. Used by the fields report and as a sanity check
// when a new export's shape drifts from what the browser expects.
type Presence struct {
	Conversations int
	Messages      int
	ContentParts  int

	// Counts maps a dotted field path (e.g. "message.text") to the
	// number of entities where that field is present and non-empty.
	Counts map[string]int
}

// FieldPresence performs one pass over the records and counts optional
// field occupancy at each level of the shape.
func FieldPresence(records []model.Conversation) Presence {
	p := Presence{Counts: make(map[string]int)}

	for i := range records {
		c := &records[i]
		p.Conversations++
		countIf(p.Counts, "conversation.name", c.Name != "")
		countIf(p.Counts, "conversation.created_at", c.CreatedAt != "")
		countIf(p.Counts, "conversation.updated_at", c.UpdatedAt != "")
		countIf(p.Counts, "conversation.account", c.Account != nil && c.Account.UUID != "")
		countIf(p.Counts, "conversation.chat_messages", len(c.ChatMessages) > 0)

		for j := range c.ChatMessages {
			msg := &c.ChatMessages[j]
			p.Messages++
			countIf(p.Counts, "message.sender", msg.Sender != "")
			countIf(p.Counts, "message.created_at", msg.CreatedAt != "")
			countIf(p.Counts, "message.text", msg.Text != "")
			countIf(p.Counts, "message.content", len(msg.Content) > 0)
			countIf(p.Counts, "message.attachments", len(msg.Attachments) > 0)
			countIf(p.Counts, "message.files", len(msg.Files) > 0)

			for k := range msg.Content {
				part := &msg.Content[k]
				p.ContentParts++
				countIf(p.Counts, "part.type", part.Type != "")
				countIf(p.Counts, "part.text", part.Text != "")
				countIf(p.Counts, "part.start_timestamp", part.StartTimestamp != "")
				countIf(p.Counts, "part.citations", len(part.Citations) > 0)
			}
		}
	}

	return p
}

func countIf(counts map[string]int, key string, present bool) {
	if present {
		counts[key]++
	}
}
