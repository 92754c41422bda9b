package element

import (
	"math"

	"github.com/alexisbeaulieu97/elemental/internal/value"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

// ScaleSource provides the scale of a numeric property.
type ScaleSource interface {
	Scale(id PropertyID) (*Scale, error)
}

// Scale is the observed range of a numeric property across all elements.
// Observations are recorded once while the table is built; the scale is
// read-only afterwards.
type Scale struct {
	property *Property
	observed bool
	min, max float64
}

// NewScale returns an empty scale for p.
func NewScale(p *Property) *Scale {
	return &Scale{property: p}
}

// Property returns the property the scale tracks.
func (s *Scale) Property() *Property { return s.property }

// Record widens the scale to include v. Undefined and non-finite values are
// ignored.
func (s *Scale) Record(v value.Float) {
	if !v.HasValue() || math.IsNaN(v.V) || math.IsInf(v.V, 0) {
		return
	}
	if !s.observed {
		s.min, s.max = v.V, v.V
		s.observed = true
		return
	}
	s.min = math.Min(s.min, v.V)
	s.max = math.Max(s.max, v.V)
}

// Observed reports whether at least one defined value was recorded.
func (s *Scale) Observed() bool { return s.observed }

// Valid reports whether the scale has distinct bounds.
func (s *Scale) Valid() bool {
	return s.observed && s.min < s.max
}

// Position returns the normalized position of v within the scale, on raw or
// log10-transformed bounds.
func (s *Scale) Position(v value.Float, logarithmic bool) (float64, error) {
	if !s.Valid() {
		return 0, s.invalid()
	}
	if !v.HasValue() {
		return 0, elerrors.NewLookupError(elerrors.UndefinedValue, s.name())
	}

	x, lo, hi := v.V, s.min, s.max
	if logarithmic {
		x, lo, hi = math.Log10(x), math.Log10(lo), math.Log10(hi)
	}
	position := (x - lo) / (hi - lo)
	if math.IsNaN(position) || math.IsInf(position, 0) {
		return 0, elerrors.NewScaleError(s.name(), "value outside logarithmic domain")
	}
	return position, nil
}

// Midpoint returns the arithmetic or geometric mean of the bounds.
func (s *Scale) Midpoint(logarithmic bool) (float64, error) {
	if !s.Valid() {
		return 0, s.invalid()
	}
	if logarithmic {
		if s.min <= 0 {
			return 0, elerrors.NewScaleError(s.name(), "bounds outside logarithmic domain")
		}
		return math.Pow(10, (math.Log10(s.max)+math.Log10(s.min))/2), nil
	}
	return (s.min + s.max) / 2, nil
}

// Minimum returns the lowest observed value. A single observation suffices.
func (s *Scale) Minimum() (float64, error) {
	if !s.observed {
		return 0, s.invalid()
	}
	return s.min, nil
}

// Maximum returns the highest observed value. A single observation suffices.
func (s *Scale) Maximum() (float64, error) {
	if !s.observed {
		return 0, s.invalid()
	}
	return s.max, nil
}

// Color returns the gradient color for v.
func (s *Scale) Color(v value.Float, logarithmic bool) (value.ColorValue, error) {
	position, err := s.Position(v, logarithmic)
	if err != nil {
		return value.UndefinedColorValue(value.Unknown), err
	}
	return value.ColorAtPosition(position, value.Neutral), nil
}

func (s *Scale) invalid() error {
	return elerrors.NewScaleError(s.name(), "invalid scale")
}

func (s *Scale) name() string {
	if s.property == nil {
		return ""
	}
	return s.property.Name
}
