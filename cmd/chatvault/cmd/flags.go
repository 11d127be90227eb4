package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmorrow/chatvault/internal/engine"
)

// queryFlags are the filter/sort flags shared by list and search.
type queryFlags struct {
	after       string
	before      string
	search      string
	hasMessages bool
	hasEmpty    bool
	sortBy      string
	asc         bool
}

func registerQueryFlags(cmd *cobra.Command, qf *queryFlags) {
	cmd.Flags().StringVar(&qf.after, "after", "", "only conversations created on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&qf.before, "before", "", "only conversations created on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&qf.search, "search", "", "deep search term (matches any string field)")
	cmd.Flags().BoolVar(&qf.hasMessages, "has-messages", false, "only conversations with at least one message")
	cmd.Flags().BoolVar(&qf.hasEmpty, "has-empty", false, "only conversations containing an empty message")
	cmd.Flags().StringVar(&qf.sortBy, "sort", "", "sort field: date, size, or messages (default from config)")
	cmd.Flags().BoolVar(&qf.asc, "asc", false, "sort ascending (default is descending)")
}

// filterSpec converts the parsed flags into an engine filter.
func (qf *queryFlags) filterSpec() (engine.FilterSpec, error) {
	spec := engine.FilterSpec{
		SearchTerm:       qf.search,
		HasMessages:      qf.hasMessages,
		HasEmptyMessages: qf.hasEmpty,
	}

	if qf.after != "" {
		t, ok := engine.ParseTimestamp(qf.after)
		if !ok {
			return spec, fmt.Errorf("invalid --after date %q", qf.after)
		}
		spec.After = &t
	}
	if qf.before != "" {
		t, ok := engine.ParseTimestamp(qf.before)
		if !ok {
			return spec, fmt.Errorf("invalid --before date %q", qf.before)
		}
		// A bare date means "through the end of that day".
		if len(qf.before) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		spec.Before = &t
	}

	return spec, nil
}

// sortOrder resolves the sort field and direction, falling back to the
// configured defaults when no flag was given.
func (qf *queryFlags) sortOrder() (engine.SortField, engine.SortDirection, error) {
	name := qf.sortBy
	if name == "" {
		name = cfg.UI.DefaultSort
	}
	field, ok := engine.ParseSortField(name)
	if !ok {
		return 0, 0, fmt.Errorf("unknown sort field %q (want date, size, or messages)", name)
	}

	dir := engine.SortDesc
	if qf.asc {
		dir = engine.SortAsc
	} else if qf.sortBy == "" && !cfg.UI.Descending {
		dir = engine.SortAsc
	}
	return field, dir, nil
}
