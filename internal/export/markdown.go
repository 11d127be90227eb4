// Package export renders a single conversation as a Markdown document.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/jmorrow/chatvault/internal/engine"
	"github.com/jmorrow/chatvault/internal/model"
)

// DefaultFilename derives an export filename from the first 8
// characters of the conversation identifier.
func DefaultFilename(c *model.Conversation) string {
	id := c.UUID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		id = "conversation"
	}
	return id + ".md"
}

// Conversation renders one conversation as a flat Markdown document:
// a header (title, date, identifier) followed by one section per
// message. Message text uses the export join policy (blank line between
// content parts).
func Conversation(c *model.Conversation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title())
	if c.CreatedAt != "" {
		fmt.Fprintf(&b, "- Created: %s\n", c.CreatedAt)
	}
	if c.UpdatedAt != "" {
		fmt.Fprintf(&b, "- Updated: %s\n", c.UpdatedAt)
	}
	fmt.Fprintf(&b, "- ID: %s\n", c.UUID)
	fmt.Fprintf(&b, "- Messages: %d\n", len(c.ChatMessages))

	for i := range c.ChatMessages {
		msg := &c.ChatMessages[i]
		b.WriteString("\n---\n\n")

		sender := msg.Sender
		if sender == "" {
			sender = "unknown"
		}
		fmt.Fprintf(&b, "## [%d] %s", i+1, sender)
		if msg.CreatedAt != "" {
			fmt.Fprintf(&b, " — %s", msg.CreatedAt)
		}
		b.WriteString("\n\n")

		if text := engine.ExportText(msg); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		} else {
			b.WriteString("*(no text)*\n")
		}

		writeFileList(&b, "Attachments", msg.Attachments)
		writeFileList(&b, "Files", msg.Files)
	}

	return b.String()
}

func writeFileList(b *strings.Builder, label string, files []model.Attachment) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s:**\n\n", label)
	for _, f := range files {
		name := f.FileName
		if name == "" {
			name = "(unnamed)"
		}
		if f.FileType != "" {
			fmt.Fprintf(b, "- %s (%s)\n", name, f.FileType)
		} else {
			fmt.Fprintf(b, "- %s\n", name)
		}
	}
}

// WriteFile renders the conversation and writes it to path. A write
// failure is reported to the caller and is never retried.
func WriteFile(c *model.Conversation, path string) error {
	doc := Conversation(c)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return eris.Wrapf(err, "write export file %s", path)
	}
	return nil
}
