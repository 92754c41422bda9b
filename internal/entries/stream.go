package entries

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// StreamStyles decorates headers and entry names written to a terminal.
type StreamStyles struct {
	Header lipgloss.Style
	Name   lipgloss.Style
	Tip    lipgloss.Style
}

// DefaultStreamStyles returns the styles used when color output is enabled.
func DefaultStreamStyles() StreamStyles {
	return StreamStyles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8F7448")),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tip:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithLabelWidth pads entry names to width runes.
func WithLabelWidth(width int) StreamOption {
	return func(s *Stream) {
		s.width = width
	}
}

// WithStreamLocalizer sets the language of the tip template.
func WithStreamLocalizer(loc *i18n.Localizer) StreamOption {
	return func(s *Stream) {
		s.loc = loc
	}
}

// WithStyles enables terminal styling.
func WithStyles(styles StreamStyles) StreamOption {
	return func(s *Stream) {
		s.styles = &styles
	}
}

// Stream writes entries as aligned plain text. A header is written only
// once an entry follows it.
type Stream struct {
	w      io.Writer
	width  int
	loc    *i18n.Localizer
	styles *StreamStyles

	pending    string
	hasPending bool
	err        error
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer, opts ...StreamOption) *Stream {
	s := &Stream{w: w}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Header implements View.
func (s *Stream) Header(category string) {
	s.pending = category
	s.hasPending = true
}

// Entry implements View.
func (s *Stream) Entry(name, value, tip string) {
	if s.hasPending {
		s.hasPending = false
		s.printf("\n%s\n", s.style(s.headerStyle(), s.pending))
	}

	var b strings.Builder
	b.WriteString("  ")
	if name != "" {
		padding := s.width - utf8.RuneCountInString(name)
		if padding < 0 {
			padding = 0
		}
		b.WriteString(s.style(s.nameStyle(), name))
		b.WriteString(strings.Repeat(" ", padding+1))
	}

	flat := Flatten(value)
	if tip == "" {
		b.WriteString(flat)
	} else {
		b.WriteString(s.loc.Tf("%1 (%2)", flat, s.style(s.tipStyle(), tip)))
	}

	s.printf("%s\n", b.String())
}

// Flush discards a header that no entry followed and reports the first
// write error.
func (s *Stream) Flush() error {
	s.hasPending = false
	s.pending = ""
	return s.err
}

func (s *Stream) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *Stream) style(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (s *Stream) headerStyle() *lipgloss.Style {
	if s.styles == nil {
		return nil
	}
	return &s.styles.Header
}

func (s *Stream) nameStyle() *lipgloss.Style {
	if s.styles == nil {
		return nil
	}
	return &s.styles.Name
}

func (s *Stream) tipStyle() *lipgloss.Style {
	if s.styles == nil {
		return nil
	}
	return &s.styles.Tip
}
