package testutil

import "github.com/jmorrow/chatvault/internal/model"

// ConversationBuilder provides a fluent API for constructing
// model.Conversation records in tests.
type ConversationBuilder struct {
	c model.Conversation
}

// NewConversation creates a builder with sensible defaults.
func NewConversation(uuid string) *ConversationBuilder {
	return &ConversationBuilder{
		c: model.Conversation{
			UUID:      uuid,
			Name:      "Test Conversation",
			CreatedAt: "2024-01-01T00:00:00Z",
		},
	}
}

func (b *ConversationBuilder) WithName(name string) *ConversationBuilder {
	b.c.Name = name
	return b
}

func (b *ConversationBuilder) WithCreatedAt(ts string) *ConversationBuilder {
	b.c.CreatedAt = ts
	return b
}

func (b *ConversationBuilder) WithUpdatedAt(ts string) *ConversationBuilder {
	b.c.UpdatedAt = ts
	return b
}

func (b *ConversationBuilder) WithAccount(uuid string) *ConversationBuilder {
	b.c.Account = &model.Account{UUID: uuid}
	return b
}

func (b *ConversationBuilder) WithMessages(msgs ...model.Message) *ConversationBuilder {
	b.c.ChatMessages = msgs
	return b
}

// WithTextMessages appends one human/assistant message per given text,
// alternating senders starting with "human".
func (b *ConversationBuilder) WithTextMessages(texts ...string) *ConversationBuilder {
	senders := [2]string{"human", "assistant"}
	for i, text := range texts {
		b.c.ChatMessages = append(b.c.ChatMessages, model.Message{
			UUID:   b.c.UUID + "-msg-" + string(rune('a'+i)),
			Sender: senders[i%2],
			Text:   text,
		})
	}
	return b
}

// Build returns the constructed conversation.
func (b *ConversationBuilder) Build() model.Conversation {
	return b.c
}

// TextMessage builds a message with a direct text field.
func TextMessage(uuid, sender, text string) model.Message {
	return model.Message{UUID: uuid, Sender: sender, Text: text}
}

// PartsMessage builds a message whose text lives in content parts.
func PartsMessage(uuid, sender string, parts ...string) model.Message {
	msg := model.Message{UUID: uuid, Sender: sender}
	for _, p := range parts {
		msg.Content = append(msg.Content, model.ContentPart{Type: "text", Text: p})
	}
	return msg
}
