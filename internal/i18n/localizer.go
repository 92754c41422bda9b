package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer translates message identifiers and performs locale-aware
// comparison for a single display language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer

	mu       sync.Mutex
	collator *collate.Collator
}

var (
	catalogOnce  sync.Once
	translations *catalog.Builder

	defaultOnce      sync.Once
	defaultLocalizer *Localizer
)

func builder() *catalog.Builder {
	catalogOnce.Do(func() {
		translations = catalog.NewBuilder(catalog.Fallback(language.English))
		for tag, entries := range bundled {
			for key, msg := range entries {
				// Entries are stored escaped so that printer formatting
				// leaves positional %N references alone.
				_ = translations.SetString(tag, escape(key), escape(msg))
			}
		}
	})
	return translations
}

// New returns a Localizer for the given language.
func New(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder())),
	}
}

// Parse returns a Localizer for a BCP 47 language string. The empty string
// selects English.
func Parse(lang string) (*Localizer, error) {
	if strings.TrimSpace(lang) == "" {
		return Default(), nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	return New(tag), nil
}

// Default returns the shared English Localizer.
func Default() *Localizer {
	defaultOnce.Do(func() {
		defaultLocalizer = New(language.English)
	})
	return defaultLocalizer
}

// Language reports the display language.
func (l *Localizer) Language() language.Tag {
	if l == nil {
		return language.English
	}
	return l.tag
}

// T translates msgid, returning it unchanged when no translation exists.
func (l *Localizer) T(msgid string) string {
	if msgid == "" {
		return ""
	}
	if l == nil {
		return Default().T(msgid)
	}
	return l.printer.Sprintf(escape(msgid))
}

// Tf translates format and substitutes the positional arguments.
func (l *Localizer) Tf(format string, args ...any) string {
	return Compose(l.T(format), args...)
}

// Collate orders two strings by the collation rules of the display language.
func (l *Localizer) Collate(a, b string) int {
	if l == nil {
		return Default().Collate(a, b)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.collator == nil {
		l.collator = collate.New(l.tag)
	}
	return l.collator.CompareString(a, b)
}

// ListSeparator returns the separator placed between members of a list.
func (l *Localizer) ListSeparator() string {
	return l.T(", ")
}

// Year formats a calendar year.
func (l *Localizer) Year(year int) string {
	return strconv.Itoa(year)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
