package value

import (
	"cmp"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

// ColorValue is a qualified color, ordered by luminance.
type ColorValue struct {
	Base
	C Color
}

// NewColorValue returns a defined color value.
func NewColorValue(c Color, q Qualifier) ColorValue {
	return ColorValue{Base: Base{Q: q}, C: c}
}

// UndefinedColorValue returns a color value that only carries a qualifier.
func UndefinedColorValue(q Qualifier) ColorValue {
	return ColorValue{Base: Base{Q: q}}
}

// ColorAtPosition returns the scale gradient color at position p in [0, 1].
func ColorAtPosition(p float64, q Qualifier) ColorValue {
	return NewColorValue(ScaleStartColor.Composite(ScaleFinishColor, p), q)
}

// Render implements QualifiedValue.
func (c ColorValue) Render(loc *i18n.Localizer, format string) string {
	return Decorate(loc, c.Q, func() string {
		return i18n.Compose(formatOrDefault(format), c.C.Hex())
	})
}

// Compare implements QualifiedValue.
func (c ColorValue) Compare(other QualifiedValue) int {
	if result, decided := CompareBase(c, other); decided {
		return result
	}
	if o, ok := other.(ColorValue); ok {
		return cmp.Compare(c.C.Luminance(), o.C.Luminance())
	}
	return 0
}

// Color implements Colored.
func (c ColorValue) Color() Color {
	if !c.HasValue() {
		return UndefinedColor
	}
	return c.C
}
