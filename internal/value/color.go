package value

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with components clamped to [0, 1].
type Color struct {
	R, G, B float64
}

// RGB returns a color from floating point components, clamping each to [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// RGB16 returns a color from 16-bit components.
func RGB16(r, g, b uint16) Color {
	return Color{R: float64(r) / 65535.0, G: float64(g) / 65535.0, B: float64(b) / 65535.0}
}

// FromHex parses a "#rrggbb" or "#rgb" color specification.
func FromHex(spec string) (Color, error) {
	c, err := colorful.Hex(spec)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", spec, err)
	}
	return RGB(c.R, c.G, c.B), nil
}

// Tango palette colors used for representative value colors.
var (
	Butter           = RGB16(0xFEFE, 0xF5F5, 0xA9A9)
	Orange           = RGB16(0xF8F8, 0xCDCD, 0x8A8A)
	LightChocolate   = RGB16(0xF5F5, 0xDDDD, 0xB8B8)
	DarkChocolate    = RGB16(0x8F8F, 0x7474, 0x4848)
	Chameleon        = RGB16(0xC5C5, 0xF1F1, 0x9A9A)
	SkyBlue          = RGB16(0xB9B9, 0xD0D0, 0xE8E8)
	LightPlum        = RGB16(0xD7D7, 0xC0C0, 0xD4D4)
	DarkPlum         = RGB16(0xB8B8, 0x8B8B, 0xC3C3)
	LightScarletRed  = RGB16(0xF8F8, 0x9595, 0x9595)
	DarkScarletRed   = RGB16(0xFFFF, 0x6767, 0x6767)
	LightAluminium   = RGB16(0xF7F7, 0xF7F7, 0xF6F6)
	MediumAluminium  = RGB16(0xC5C5, 0xC6C6, 0xC3C3)
	Black            = Color{}
	White            = Color{R: 1, G: 1, B: 1}
	UndefinedColor   = LightAluminium
	ScaleStartColor  = Butter
	ScaleFinishColor = DarkScarletRed
)

// Luminance returns the relative luminance of the color.
func (c Color) Luminance() float64 {
	return clamp(c.R*0.2126 + c.G*0.7152 + c.B*0.0722)
}

// Complement returns black or white, whichever contrasts with the color.
func (c Color) Complement() Color {
	if c.Luminance() > 0.4 {
		return Black
	}
	return White
}

// Composite blends other over the color with the given opacity.
func (c Color) Composite(other Color, alpha float64) Color {
	alpha = clamp(alpha)
	blended := c.colorful().BlendRgb(other.colorful(), alpha)
	return RGB(blended.R, blended.G, blended.B)
}

// Hex returns the "#rrggbb" specification of the color.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// Lipgloss returns the color for use in terminal styles.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
