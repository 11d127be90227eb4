package engine

import "github.com/jmorrow/chatvault/internal/model"

// Page is one fixed-size slice of a (filtered, sorted) sequence plus
// its metadata. Start and End are offsets into the full sequence;
// End is exclusive.
type Page struct {
	Items     []*model.Conversation
	Index     int
	PageCount int
	Start     int
	End       int
}

// Paginate slices items into fixed-size pages and returns the requested
// one. PageCount is ceil(len(items)/pageSize), minimum 0. An index
// outside [0, PageCount) yields an empty Items slice; clamping is the
// caller's job (the UI resets to page 0 on every filter change).
func Paginate(items []*model.Conversation, pageSize, pageIndex int) Page {
	if pageSize <= 0 {
		return Page{Index: pageIndex}
	}

	total := len(items)
	pageCount := (total + pageSize - 1) / pageSize

	p := Page{Index: pageIndex, PageCount: pageCount}
	if pageIndex < 0 || pageIndex >= pageCount {
		return p
	}

	p.Start = pageIndex * pageSize
	p.End = p.Start + pageSize
	if p.End > total {
		p.End = total
	}
	p.Items = items[p.Start:p.End]
	return p
}
