package capture

import (
	"image"
	"time"
)

// Kind identifies where an image came from.
type Kind int

const (
	KindScreen Kind = iota + 1
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindScreen:
		return "screen"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Snapshot is a fully decoded image ready for display and sampling.
type Snapshot struct {
	Image      image.Image
	Kind       Kind
	Origin     string // file path or display description
	CapturedAt time.Time
	Sequence   uint64
}

// Ready reports whether the snapshot has a decoded image with a natural size.
func (s Snapshot) Ready() bool {
	if s.Image == nil {
		return false
	}
	b := s.Image.Bounds()
	return b.Dx() > 0 && b.Dy() > 0
}

// NaturalSize returns the intrinsic pixel dimensions, or 0,0 when not ready.
func (s Snapshot) NaturalSize() (int, int) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Result is delivered once per load request.
type Result struct {
	Snapshot Snapshot
	Err      error
}

// Grabber captures the screen.
type Grabber interface {
	Grab() (*image.RGBA, error)
}

// Decoder reads an image file.
type Decoder interface {
	Open(path string) (image.Image, error)
}
