package capture

import (
	"fmt"
	"image"

	kscreen "github.com/kbinani/screenshot"
	vscreen "github.com/vova616/screenshot"
)

// ScreenSource grabs a whole display. Display < 0 uses the primary screen;
// otherwise the display with that index is captured.
type ScreenSource struct {
	Display int
}

// Grab returns a screen capture of the configured display.
func (s ScreenSource) Grab() (*image.RGBA, error) {
	if s.Display < 0 {
		img, err := vscreen.CaptureScreen()
		if err != nil {
			return nil, fmt.Errorf("capture: primary screen: %w", err)
		}
		return img, nil
	}
	displays := Displays()
	if s.Display >= len(displays) {
		return nil, fmt.Errorf("capture: display %d not available (%d active)", s.Display, len(displays))
	}
	img, err := kscreen.CaptureRect(displays[s.Display])
	if err != nil {
		return nil, fmt.Errorf("capture: display %d: %w", s.Display, err)
	}
	return img, nil
}

// Describe names the display for logs and the status line.
func (s ScreenSource) Describe() string {
	if s.Display < 0 {
		return "primary display"
	}
	return fmt.Sprintf("display %d", s.Display)
}

// Displays lists the bounds of every active display.
func Displays() []image.Rectangle {
	n := kscreen.NumActiveDisplays()
	out := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, kscreen.GetDisplayBounds(i))
	}
	return out
}
