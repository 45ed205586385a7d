package theme

// Light/dark palettes and ttk styles for the swatch picker window.

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	tk "modernc.org/tk9.0"
)

// Palette holds the resolved widget colours for one mode.
type Palette struct {
	AppBg   string
	Surface string // preview letterbox bars, empty swatches
	Primary string
	Danger  string
	Text    string
}

var (
	lightPalette = Palette{AppBg: "#f7f9fb", Surface: "#e2e8f0", Primary: "#2563eb", Danger: "#dc2626", Text: "#1e293b"}
	darkPalette  = Palette{AppBg: "#0f172a", Surface: "#1e293b", Primary: "#3b82f6", Danger: "#ef4444", Text: "#f1f5f9"}
)

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() Palette {
	if darkMode {
		return darkPalette
	}
	return lightPalette
}

// PreviewBackground is the fill for letterbox bars in the current mode.
func PreviewBackground() color.RGBA {
	c, err := colorful.Hex(CurrentPalette().Surface)
	if err != nil {
		return color.RGBA{0x20, 0x20, 0x20, 0xFF}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xFF}
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
)

// internal flag for current mode
var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(darkMode) }

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

func applyStyles(dark bool) {
	mode := "azure light"
	if dark {
		mode = "azure dark"
	}
	_ = tk.ActivateTheme(mode)
	p := CurrentPalette()
	tk.App.Configure(tk.Background(p.AppBg))

	tk.StyleConfigure(StylePrimaryButton,
		tk.Background(p.Primary),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleDangerButton,
		tk.Background(p.Danger),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleStatusLabel,
		tk.Foreground(p.Text),
		tk.Background(p.Surface),
		tk.Padding("4p 2p"),
		tk.Borderwidth(1),
		tk.Relief("groove"),
	)
}
