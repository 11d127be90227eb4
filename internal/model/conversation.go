// Package model defines the conversation-export record shapes.
// Fields mirror the JSON produced by chat data exports; almost everything
// is optional and the rest of the code degrades gracefully when a field
// is absent rather than treating the record as malformed.
package model

import "encoding/json"

// Conversation is one top-level record in the export file.
type Conversation struct {
	UUID         string    `json:"uuid"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    string    `json:"created_at,omitempty"`
	UpdatedAt    string    `json:"updated_at,omitempty"`
	Account      *Account  `json:"account,omitempty"`
	ChatMessages []Message `json:"chat_messages,omitempty"`
}

// Account is an owning-account reference. Only the identifier is used.
type Account struct {
	UUID string `json:"uuid"`
}

// Message is one turn in a conversation. The sender label is a free-form
// string, not a closed enum: "unknown" is a valid observed value.
type Message struct {
	UUID        string        `json:"uuid"`
	Sender      string        `json:"sender,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
	Text        string        `json:"text,omitempty"`
	Content     []ContentPart `json:"content,omitempty"`
	Attachments []Attachment  `json:"attachments,omitempty"`
	Files       []Attachment  `json:"files,omitempty"`
}

// ContentPart is one typed fragment of a message's content.
// Citations are kept as raw JSON; their shape varies between export
// versions and they are only counted and searched as text.
type ContentPart struct {
	Type           string            `json:"type,omitempty"`
	Text           string            `json:"text,omitempty"`
	StartTimestamp string            `json:"start_timestamp,omitempty"`
	StopTimestamp  string            `json:"stop_timestamp,omitempty"`
	Citations      []json.RawMessage `json:"citations,omitempty"`
}

// Attachment describes an attached or uploaded file. Terminal entity:
// counted and displayed, never parsed.
type Attachment struct {
	FileName         string `json:"file_name,omitempty"`
	FileSize         int64  `json:"file_size,omitempty"`
	FileType         string `json:"file_type,omitempty"`
	ExtractedContent string `json:"extracted_content,omitempty"`
}

// MessageCount returns the number of messages, treating a conversation
// with no message sequence as having zero messages.
func (c *Conversation) MessageCount() int {
	return len(c.ChatMessages)
}

// Title returns the display name, falling back to a placeholder so list
// views never render a blank row.
func (c *Conversation) Title() string {
	if c.Name != "" {
		return c.Name
	}
	return "(untitled)"
}
