package value

import "github.com/alexisbeaulieu97/elemental/internal/i18n"

// Message is translatable text. The source text is the message identifier.
type Message struct {
	Base
	Text string

	// loc orders messages by the collation of their translations.
	loc *i18n.Localizer
}

// NewMessage returns a message that collates in the language of loc.
func NewMessage(loc *i18n.Localizer, text string, q Qualifier) Message {
	return Message{Base: Base{Q: q}, Text: text, loc: loc}
}

// UndefinedMessage returns a message that only carries a qualifier.
func UndefinedMessage(q Qualifier) Message {
	return Message{Base: Base{Q: q}}
}

// In returns a copy of the message that collates in the language of loc.
func (m Message) In(loc *i18n.Localizer) Message {
	m.loc = loc
	return m
}

// Source returns the untranslated text.
func (m Message) Source() string { return m.Text }

// Translated returns the text in the language of loc.
func (m Message) Translated(loc *i18n.Localizer) string {
	return loc.T(m.Text)
}

// Render implements QualifiedValue. Inexact messages carry a "(?)" prefix
// instead of the usual decorations.
func (m Message) Render(loc *i18n.Localizer, format string) string {
	raw := func() string {
		return i18n.Compose(formatOrDefault(format), m.Translated(loc))
	}
	switch m.Q {
	case Estimated, Approximate:
		return loc.Tf("(?) %1", raw())
	default:
		return Decorate(loc, m.Q, raw)
	}
}

// Compare implements QualifiedValue.
func (m Message) Compare(other QualifiedValue) int {
	if result, decided := CompareBase(m, other); decided {
		return result
	}
	if o, ok := other.(Message); ok {
		return sign(m.loc.Collate(m.Translated(m.loc), o.Translated(m.loc)))
	}
	return 0
}
