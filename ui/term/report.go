// Package term renders extraction results for terminals.
package term

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soocke/swatch-go/domain/palette"
)

// Renderer formats ranked colours as coloured swatch rows. Colour output
// degrades to plain text when w is not a terminal.
type Renderer struct {
	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	lr    *lipgloss.Renderer
}

func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		lr:    lr,
		title: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		label: lr.NewStyle().PaddingLeft(1),
		muted: lr.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Report lists colors in rank order with a swatch, count and the
// HEX / RGB / HSL readouts of each entry.
func (r *Renderer) Report(region image.Rectangle, colors palette.Ranked, policy palette.FilterPolicy) string {
	var b strings.Builder
	b.WriteString(r.title.Render(fmt.Sprintf("Region %dx%d at (%d,%d)", region.Dx(), region.Dy(), region.Min.X, region.Min.Y)))
	b.WriteString(" ")
	b.WriteString(r.muted.Render("filter: " + policy.String()))
	b.WriteString("\n")
	if len(colors) == 0 {
		b.WriteString(r.muted.Render("no colours (selection empty or fully filtered)"))
		b.WriteString("\n")
		return b.String()
	}
	for i, e := range colors {
		rd := palette.Describe(e.Color)
		chip := r.lr.NewStyle().
			Background(lipgloss.Color(rd.Hex)).
			Foreground(lipgloss.Color(contrastText(e.Color))).
			Render(fmt.Sprintf(" %d ", i+1))
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			chip,
			r.label.Render(fmt.Sprintf("%s  rgb(%s)  hsl%s", rd.Hex, rd.RGB, rd.HSL)),
			r.muted.Render(fmt.Sprintf("  %d px", e.Count)),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// contrastText picks black or white text for legibility on c.
func contrastText(c palette.RGB) string {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 140 {
		return "#000000"
	}
	return "#FFFFFF"
}
