package palette

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"
)

// DefaultTopK is the number of colours returned when no K is configured.
const DefaultTopK = 5

// ErrMalformedBuffer reports a pixel buffer whose length is not a multiple of 4.
var ErrMalformedBuffer = errors.New("palette: pixel buffer length is not a multiple of 4")

// RGB is an exact 8-bit colour, used directly as the histogram key.
type RGB struct {
	R, G, B uint8
}

// String formats the channels as "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// ColorEntry is a colour and its number of occurrences in the scanned region.
type ColorEntry struct {
	Color RGB
	Count int
}

// Ranked is ordered by descending Count; equal counts keep scan order.
type Ranked []ColorEntry

// FilterPolicy controls which pixels are counted.
type FilterPolicy int

const (
	// FilterNone counts every pixel.
	FilterNone FilterPolicy = iota
	// FilterDropNeutrals skips near-black, near-white and near-gray pixels.
	FilterDropNeutrals
)

func (p FilterPolicy) String() string {
	switch p {
	case FilterNone:
		return "none"
	case FilterDropNeutrals:
		return "drop-neutrals"
	default:
		return "unknown"
	}
}

// ParseFilterPolicy accepts the names produced by FilterPolicy.String.
func ParseFilterPolicy(s string) (FilterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FilterNone, nil
	case "drop-neutrals", "drop_neutrals", "neutrals":
		return FilterDropNeutrals, nil
	default:
		return FilterNone, fmt.Errorf("palette: unknown filter policy %q", s)
	}
}

// Thresholds are the bounds used by FilterDropNeutrals.
type Thresholds struct {
	NearBlack int // brightness below this is dropped
	NearWhite int // brightness above this is dropped
	GrayDelta int // |r-g| and |g-b| both below this is dropped
}

// DefaultThresholds returns the stock neutral-tone bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{NearBlack: 20, NearWhite: 240, GrayDelta: 15}
}

// Neutral reports whether c is dropped under FilterDropNeutrals.
func (t Thresholds) Neutral(c RGB) bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	brightness := float64(r+g+b) / 3
	if brightness > float64(t.NearWhite) || brightness < float64(t.NearBlack) {
		return true
	}
	return abs(r-g) < t.GrayDelta && abs(g-b) < t.GrayDelta
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Extractor ranks the most frequent colours of a pixel region.
// The zero value counts every pixel and returns DefaultTopK colours.
type Extractor struct {
	K          int
	Policy     FilterPolicy
	Thresholds Thresholds
}

// NewExtractor returns an extractor with default thresholds.
func NewExtractor(k int, policy FilterPolicy) *Extractor {
	return &Extractor{K: k, Policy: policy, Thresholds: DefaultThresholds()}
}

func (e *Extractor) k() int {
	if e == nil || e.K <= 0 {
		return DefaultTopK
	}
	return e.K
}

func (e *Extractor) keep(c RGB) bool {
	if e == nil || e.Policy != FilterDropNeutrals {
		return true
	}
	return !e.Thresholds.Neutral(c)
}

// histogram counts colours in first-seen order.
type histogram struct {
	index   map[RGB]int
	entries []ColorEntry
}

func newHistogram() *histogram {
	return &histogram{index: make(map[RGB]int)}
}

func (h *histogram) add(c RGB) {
	if i, ok := h.index[c]; ok {
		h.entries[i].Count++
		return
	}
	h.index[c] = len(h.entries)
	h.entries = append(h.entries, ColorEntry{Color: c, Count: 1})
}

func (h *histogram) top(k int) Ranked {
	slices.SortStableFunc(h.entries, func(a, b ColorEntry) int { return b.Count - a.Count })
	if len(h.entries) > k {
		h.entries = h.entries[:k]
	}
	return Ranked(h.entries)
}

// ExtractTopColors scans a row-major RGBA buffer (alpha ignored) and
// returns up to K colours by descending frequency.
func (e *Extractor) ExtractTopColors(pix []byte) (Ranked, error) {
	if len(pix)%4 != 0 {
		return nil, ErrMalformedBuffer
	}
	h := newHistogram()
	for i := 0; i < len(pix); i += 4 {
		c := RGB{pix[i], pix[i+1], pix[i+2]}
		if e.keep(c) {
			h.add(c)
		}
	}
	return h.top(e.k()), nil
}

// ExtractImage is ExtractTopColors over img's bounds, honouring Stride so
// sub-images are scanned without copying.
func (e *Extractor) ExtractImage(img *image.RGBA) (Ranked, error) {
	if img == nil {
		return Ranked{}, nil
	}
	return e.scan(img.Pix, img.Rect, img.PixOffset), nil
}

// ExtractNRGBA is ExtractImage for straight-alpha buffers: the stored RGB
// triple is counted whatever the pixel's alpha.
func (e *Extractor) ExtractNRGBA(img *image.NRGBA) (Ranked, error) {
	if img == nil {
		return Ranked{}, nil
	}
	return e.scan(img.Pix, img.Rect, img.PixOffset), nil
}

func (e *Extractor) scan(pix []byte, b image.Rectangle, offset func(x, y int) int) Ranked {
	h := newHistogram()
	rowLen := b.Dx() * 4
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := offset(b.Min.X, y)
		row := pix[off : off+rowLen]
		for i := 0; i < len(row); i += 4 {
			c := RGB{row[i], row[i+1], row[i+2]}
			if e.keep(c) {
				h.add(c)
			}
		}
	}
	return h.top(e.k())
}

// ExtractTopColors ranks pix with the given policy and default thresholds.
func ExtractTopColors(pix []byte, k int, policy FilterPolicy) (Ranked, error) {
	return NewExtractor(k, policy).ExtractTopColors(pix)
}
