package view

import (
	"fmt"

	"github.com/soocke/swatch-go/domain/palette"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SwatchPanel shows ranked colours as clickable swatches and the readouts of
// the picked one.
type SwatchPanel interface {
	ShowColors(colors palette.Ranked)
	ShowReadout(r palette.Readout)
}

type swatchPanel struct {
	frame    *FrameWidget
	swatches []*LabelWidget
	emptyBg  string
	onPick   func(i int)

	hexLbl *LabelWidget
	rgbLbl *LabelWidget
	hslLbl *LabelWidget
}

// NewSwatchPanel grids the swatch row at row and the readouts on the row
// below. Swatch labels are created on demand; unused ones are blanked.
func NewSwatchPanel(row int, emptyBg string, onPick func(i int)) SwatchPanel {
	p := &swatchPanel{frame: Frame(), emptyBg: emptyBg, onPick: onPick}
	Grid(p.frame, Row(row), Column(0), Columnspan(4), Sticky("w"), Padx("0.4m"), Pady("0.3m"))

	readouts := Frame()
	Grid(readouts, Row(row+1), Column(0), Columnspan(4), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	p.hexLbl = Label(Width(12), Anchor("w"), Relief("ridge"))
	p.rgbLbl = Label(Width(18), Anchor("w"), Relief("ridge"))
	p.hslLbl = Label(Width(26), Anchor("w"), Relief("ridge"))
	Grid(p.hexLbl, In(readouts), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(p.rgbLbl, In(readouts), Row(0), Column(1), Sticky("w"), Padx("0.2m"))
	Grid(p.hslLbl, In(readouts), Row(0), Column(2), Sticky("w"), Padx("0.2m"))
	p.ShowReadout(palette.Readout{})
	return p
}

func (p *swatchPanel) swatch(i int) *LabelWidget {
	for len(p.swatches) <= i {
		idx := len(p.swatches)
		lbl := Label(Width(9), Height(2), Relief("raised"), Borderwidth(2), Background(p.emptyBg))
		Grid(lbl, In(p.frame), Row(0), Column(idx), Padx("0.2m"))
		Bind(lbl, "<Button-1>", Command(func() {
			if p.onPick != nil {
				p.onPick(idx)
			}
		}))
		p.swatches = append(p.swatches, lbl)
	}
	return p.swatches[i]
}

func (p *swatchPanel) ShowColors(colors palette.Ranked) {
	if p == nil {
		return
	}
	for i, e := range colors {
		hex := palette.ToHex(e.Color)
		p.swatch(i).Configure(Background(hex), Foreground(textOn(e.Color)), Txt(fmt.Sprintf("%s\n%d", hex, e.Count)))
	}
	for i := len(colors); i < len(p.swatches); i++ {
		p.swatches[i].Configure(Background(p.emptyBg), Txt(""))
	}
	p.ShowReadout(palette.Readout{})
}

func (p *swatchPanel) ShowReadout(r palette.Readout) {
	if p == nil || p.hexLbl == nil {
		return
	}
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	p.hexLbl.Configure(Txt("HEX " + dash(r.Hex)))
	p.rgbLbl.Configure(Txt("RGB " + dash(r.RGB)))
	p.hslLbl.Configure(Txt("HSL " + dash(r.HSL)))
}

// textOn picks black or white text for legibility on c.
func textOn(c palette.RGB) string {
	if 0.299*float64(c.R)+0.587*float64(c.G)+0.114*float64(c.B) > 140 {
		return "black"
	}
	return "white"
}
