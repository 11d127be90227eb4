// Package loader reads a conversation-export file into memory.
// The whole file is read and decoded in one shot; there is no streaming
// parse. A failed load returns an error without touching whatever the
// caller already has loaded, so a bad reload never corrupts the index.
package loader

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/jmorrow/chatvault/internal/model"
)

// Load reads and parses the export file at path.
func Load(path string) ([]model.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read export file %s", path)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "parse export file %s", path)
	}
	return records, nil
}

// Parse decodes export JSON. The expected root is an array of
// conversation records; a root that is a single object is accepted as a
// degraded input and wrapped into a one-element array.
func Parse(data []byte) ([]model.Conversation, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, eris.New("export is empty")
	}

	var records []model.Conversation
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, eris.Wrap(err, "decode conversation array")
		}
	case '{':
		var single model.Conversation
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, eris.Wrap(err, "decode conversation object")
		}
		records = []model.Conversation{single}
	default:
		return nil, eris.New("export root must be a JSON array or object")
	}

	fillMissingIDs(records)
	return records, nil
}

// fillMissingIDs synthesizes an identifier for records that lack one so
// that index lookup and export filenames always have something to key
// on. Synthesized ids are random; the export file is never rewritten.
func fillMissingIDs(records []model.Conversation) {
	for i := range records {
		if records[i].UUID == "" {
			records[i].UUID = uuid.NewString()
		}
		for j := range records[i].ChatMessages {
			if records[i].ChatMessages[j].UUID == "" {
				records[i].ChatMessages[j].UUID = uuid.NewString()
			}
		}
	}
}
