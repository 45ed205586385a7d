package capture

import (
	"errors"
	"image"
	"testing"
	"time"
)

type stubGrabber struct {
	img   *image.RGBA
	err   error
	block chan struct{}
	calls int
}

func (g *stubGrabber) Grab() (*image.RGBA, error) {
	g.calls++
	if g.block != nil {
		<-g.block
	}
	return g.img, g.err
}

type stubDecoder struct {
	img image.Image
	err error
}

func (d stubDecoder) Open(string) (image.Image, error) { return d.img, d.err }

func waitResult(t *testing.T, l Loader) Result {
	t.Helper()
	select {
	case res := <-l.Results():
		return res
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for load result")
	}
	return Result{}
}

func waitIdle(t *testing.T, l Loader) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for l.Busy() {
		if time.Now().After(deadline) {
			t.Fatalf("loader still busy")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoader_ScreenSuccess(t *testing.T) {
	g := &stubGrabber{img: image.NewRGBA(image.Rect(0, 0, 8, 6))}
	l := NewLoader(nil, g, nil)
	if !l.RequestScreen() {
		t.Fatalf("request should start")
	}
	res := waitResult(t, l)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	w, h := res.Snapshot.NaturalSize()
	if w != 8 || h != 6 || res.Snapshot.Kind != KindScreen || res.Snapshot.Sequence != 1 {
		t.Fatalf("unexpected snapshot %+v", res.Snapshot)
	}
}

func TestLoader_FileFailureReported(t *testing.T) {
	l := NewLoader(nil, nil, stubDecoder{err: errors.New("boom")})
	l.RequestFile("missing.png")
	res := waitResult(t, l)
	if res.Err == nil || res.Snapshot.Ready() {
		t.Fatalf("expected failure without snapshot, got %+v", res)
	}
	waitIdle(t, l)
	if st := l.Stats(); st.Failures != 1 || st.Requests != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestLoader_EmptyImageIsFailure(t *testing.T) {
	l := NewLoader(nil, nil, stubDecoder{img: image.NewRGBA(image.Rectangle{})})
	l.RequestFile("empty.png")
	if res := waitResult(t, l); res.Err == nil {
		t.Fatalf("expected error for empty image")
	}
}

func TestLoader_DropsWhileBusy(t *testing.T) {
	g := &stubGrabber{img: image.NewRGBA(image.Rect(0, 0, 2, 2)), block: make(chan struct{})}
	l := NewLoader(nil, g, stubDecoder{img: image.NewRGBA(image.Rect(0, 0, 2, 2))})
	if !l.RequestScreen() {
		t.Fatalf("first request should start")
	}
	if l.RequestFile("x.png") {
		t.Fatalf("second request should be dropped while busy")
	}
	close(g.block)
	waitResult(t, l)
	waitIdle(t, l)
	if st := l.Stats(); st.Dropped != 1 || st.Requests != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
}
