package table

import (
	"io"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/entries"
)

// SheetOptions selects what an element sheet contains and how it looks.
type SheetOptions struct {
	element.EntryOptions
	// Category limits the sheet to one category; nil writes all of them.
	Category *element.Category
	// Styles enables terminal styling.
	Styles *entries.StreamStyles
}

// WriteSheet writes the entries of e to w as aligned text, padded to the
// widest label of the table.
func (r *Registry) WriteSheet(w io.Writer, e *element.Element, opts SheetOptions) error {
	streamOpts := []entries.StreamOption{
		entries.WithLabelWidth(r.MaxLabelLength()),
		entries.WithStreamLocalizer(r.loc),
	}
	if opts.Styles != nil {
		streamOpts = append(streamOpts, entries.WithStyles(*opts.Styles))
	}

	stream := entries.NewStream(w, streamOpts...)
	r.Collect(e, opts).Replay(stream)
	return stream.Flush()
}

// Collect gathers the entries of e, dropping empty sections.
func (r *Registry) Collect(e *element.Element, opts SheetOptions) *entries.Collector {
	collector := entries.NewCollector()
	r.emit(collector, e, opts)
	return collector.Trim()
}

func (r *Registry) emit(view entries.View, e *element.Element, opts SheetOptions) {
	if opts.Category != nil {
		e.MakeCategoryEntries(view, opts.Category, opts.EntryOptions)
		return
	}
	e.MakeEntries(view, opts.EntryOptions)
}
