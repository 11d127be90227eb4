// Package engine is the in-memory query core: it filters, sorts,
// searches, paginates, and aggregates conversation records loaded from a
// single export file. All operations are synchronous pure functions over
// the records they are handed; the only mutable state is the Index,
// which is replaced wholesale on reload.
package engine

import (
	"strings"

	"github.com/jmorrow/chatvault/internal/model"
)

// ExtractText derives the plain-text representation of a message for
// search and statistics. Precedence: a non-empty direct text field wins;
// otherwise non-empty content-part texts are joined by a single space;
// otherwise the result is empty. Never fails on absent fields.
func ExtractText(msg *model.Message) string {
	return deriveText(msg, " ")
}

// ExportText derives message text for document export. Same precedence
// as ExtractText but content parts are joined by a blank line so each
// part reads as its own paragraph. The two join policies are both
// intentional and must not be swapped within one code path.
func ExportText(msg *model.Message) string {
	return deriveText(msg, "\n\n")
}

func deriveText(msg *model.Message, sep string) string {
	if msg == nil {
		return ""
	}
	if msg.Text != "" {
		return msg.Text
	}
	if len(msg.Content) == 0 {
		return ""
	}
	var parts []string
	for i := range msg.Content {
		if t := msg.Content[i].Text; t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, sep)
}

// IsEmptyMessage reports whether a message's derived text, trimmed,
// has zero length.
func IsEmptyMessage(msg *model.Message) bool {
	return strings.TrimSpace(ExtractText(msg)) == ""
}
