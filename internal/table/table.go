// Package table owns the element table: the elements built from the data
// records, the numeric scales of every float property and the widest entry
// label.
package table

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/elemental/internal/data"
	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	"github.com/alexisbeaulieu97/elemental/internal/logger"
	"github.com/alexisbeaulieu97/elemental/internal/value"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLocalizer sets the localizer elements render with.
func WithLocalizer(loc *i18n.Localizer) Option {
	return func(r *Registry) { r.loc = loc }
}

// WithLogger sets the logger used during initialization.
func WithLogger(log *logger.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// Registry is the element table. Every accessor initializes it on first use;
// afterwards it is read-only.
type Registry struct {
	records []element.Record
	loc     *i18n.Localizer
	log     *logger.Logger

	once       sync.Once
	elements   []*element.Element
	bySymbol   map[string]*element.Element
	scales     map[element.PropertyID]*element.Scale
	labelWidth int
}

// New returns an uninitialized registry over records.
func New(records []element.Record, opts ...Option) *Registry {
	r := &Registry{records: records}
	for _, opt := range opts {
		opt(r)
	}
	if r.loc == nil {
		r.loc = i18n.Default()
	}
	if r.log == nil {
		r.log = logger.Nop()
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry over the embedded data table.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		records, err := data.Load()
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry = New(records)
		defaultRegistry.Initialize()
	})
	return defaultRegistry, defaultErr
}

// Initialize builds the elements, scales and label width. Calls after the
// first are no-ops.
func (r *Registry) Initialize() {
	r.once.Do(r.initialize)
}

func (r *Registry) initialize() {
	r.elements = make([]*element.Element, 0, len(r.records))
	r.bySymbol = make(map[string]*element.Element, len(r.records))

	for i := range r.records {
		rec := &r.records[i]
		if rec.Number != i+1 {
			r.log.WithFields(map[string]any{
				"symbol":   rec.Symbol,
				"number":   rec.Number,
				"position": i + 1,
			}).Warn("element out of position; table truncated")
			break
		}
		e := element.New(rec, r.loc)
		r.elements = append(r.elements, e)
		r.bySymbol[rec.Symbol] = e
	}

	r.scales = make(map[element.PropertyID]*element.Scale)
	for _, c := range element.Categories() {
		for _, p := range c.Descriptors() {
			r.accommodate(p.Label(r.loc))
			if !p.Scaled() {
				continue
			}
			scale := element.NewScale(p)
			for _, e := range r.elements {
				if v, err := element.PropertyAs[value.Float](e, p.ID); err == nil {
					scale.Record(v)
				}
			}
			r.scales[p.ID] = scale
		}
	}

	r.log.WithFields(map[string]any{
		"elements":    len(r.elements),
		"scales":      len(r.scales),
		"label_width": r.labelWidth,
	}).Debug("element table initialized")
}

func (r *Registry) accommodate(label string) {
	if width := utf8.RuneCountInString(label); width > r.labelWidth {
		r.labelWidth = width
	}
}

// Localizer returns the localizer elements render with.
func (r *Registry) Localizer() *i18n.Localizer {
	return r.loc
}

// Elements returns the elements in atomic number order.
func (r *Registry) Elements() []*element.Element {
	r.Initialize()
	return r.elements
}

// Len returns the number of elements.
func (r *Registry) Len() int {
	r.Initialize()
	return len(r.elements)
}

// Element returns the element with the given atomic number.
func (r *Registry) Element(number int) (*element.Element, error) {
	r.Initialize()
	if number < 1 || number > len(r.elements) {
		return nil, elerrors.NewRangeError(number, 1, len(r.elements))
	}
	return r.elements[number-1], nil
}

// Lookup resolves an element by atomic number or symbol. Input starting with
// a digit is read as a number; anything else is matched against symbols.
func (r *Registry) Lookup(which string) (*element.Element, error) {
	r.Initialize()

	which = strings.TrimSpace(which)
	if which == "" {
		return nil, elerrors.NewLookupError(elerrors.UnknownElement, which)
	}

	if which[0] >= '0' && which[0] <= '9' {
		number, err := strconv.Atoi(which)
		if err != nil {
			return nil, elerrors.NewLookupError(elerrors.UnknownElement, which)
		}
		e, err := r.Element(number)
		if err != nil {
			return nil, elerrors.NewLookupError(elerrors.UnknownElement, which)
		}
		return e, nil
	}

	if e, ok := r.bySymbol[which]; ok {
		return e, nil
	}
	return nil, elerrors.NewLookupError(elerrors.UnknownElement, which)
}

// Categories returns the property categories in display order.
func (r *Registry) Categories() []*element.Category {
	return element.Categories()
}

// Scale returns the scale of a float property.
func (r *Registry) Scale(id element.PropertyID) (*element.Scale, error) {
	r.Initialize()
	if !id.Valid() {
		return nil, elerrors.NewLookupError(elerrors.UnknownProperty, id.String())
	}
	scale, ok := r.scales[id]
	if !ok {
		return nil, elerrors.NewScaleError(id.Property().Name, "property has no scale")
	}
	return scale, nil
}

// MaxLabelLength returns the widest translated entry label in runes.
func (r *Registry) MaxLabelLength() int {
	r.Initialize()
	return r.labelWidth
}
