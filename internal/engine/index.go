package engine

import "github.com/jmorrow/chatvault/internal/model"

// Index owns the loaded record array for the lifetime of one export
// file and provides indexed, read-only access. Loading a new file
// replaces the whole array in one step; callers must discard filtered
// views and statistics derived from the previous load.
//
// The identifier mapping is a convenience lookup, not a uniqueness
// constraint: when the export contains duplicate identifiers the last
// occurrence wins in the map, but every record stays in the array.
type Index struct {
	records []model.Conversation
	byID    map[string]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byID: make(map[string]int)}
}

// Load replaces the held records and rebuilds the identifier mapping in
// a single pass. The new state is staged fully before the swap, so a
// caller never observes a partially loaded index.
func (ix *Index) Load(records []model.Conversation) {
	byID := make(map[string]int, len(records))
	for i := range records {
		if id := records[i].UUID; id != "" {
			byID[id] = i
		}
	}
	ix.records = records
	ix.byID = byID
}

// Len returns the number of loaded records.
func (ix *Index) Len() int { return len(ix.records) }

// Records returns the full record slice. Callers must treat it as
// read-only; no component copies or mutates records.
func (ix *Index) Records() []model.Conversation { return ix.records }

// Get returns the record at position i, or nil when out of bounds.
func (ix *Index) Get(i int) *model.Conversation {
	if i < 0 || i >= len(ix.records) {
		return nil
	}
	return &ix.records[i]
}

// FindByID returns the position of the record with the given
// identifier. The second result is false when the identifier is not in
// the mapping.
func (ix *Index) FindByID(id string) (int, bool) {
	i, ok := ix.byID[id]
	return i, ok
}
