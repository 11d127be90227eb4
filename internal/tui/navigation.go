package tui

// viewLevel represents the current navigation depth.
type viewLevel int

const (
	levelList viewLevel = iota
	levelDetail
	levelStats
)

// modalType represents the type of modal dialog.
type modalType int

const (
	modalNone modalType = iota
	modalHelp
)

// clampPage keeps a page index inside [0, pageCount). The pagination
// engine itself does not clamp; the UI is the caller responsible for it.
func clampPage(pageIndex, pageCount int) int {
	if pageCount <= 0 {
		return 0
	}
	if pageIndex < 0 {
		return 0
	}
	if pageIndex >= pageCount {
		return pageCount - 1
	}
	return pageIndex
}

// clampCursor keeps the cursor inside the current page's item range.
func clampCursor(cursor, itemCount int) int {
	if itemCount == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= itemCount {
		return itemCount - 1
	}
	return cursor
}
