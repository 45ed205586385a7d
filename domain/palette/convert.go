package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL holds hue in degrees and saturation/lightness in percent, each
// rounded to one decimal place.
type HSL struct {
	H, S, L float64
}

// String formats as "(h, s%, l%)".
func (h HSL) String() string {
	return fmt.Sprintf("(%.1f, %.1f%%, %.1f%%)", h.H, h.S, h.L)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ToHex returns "#RRGGBB" in upper case.
func ToHex(c RGB) string {
	return strings.ToUpper(c.colorful().Hex())
}

// ToHSL converts sRGB to HSL.
func ToHSL(c RGB) HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: round1(h), S: round1(s * 100), L: round1(l * 100)}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Readout is what the rendering side shows when a swatch is selected.
type Readout struct {
	Hex string
	RGB string
	HSL string
}

// Describe formats all readouts for c.
func Describe(c RGB) Readout {
	return Readout{Hex: ToHex(c), RGB: c.String(), HSL: ToHSL(c).String()}
}

// Colors returns the colours of r in rank order.
func (r Ranked) Colors() []RGB {
	out := make([]RGB, len(r))
	for i, e := range r {
		out[i] = e.Color
	}
	return out
}
