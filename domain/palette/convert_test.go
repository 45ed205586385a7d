package palette

import (
	"math/rand"
	"testing"
)

func TestToHex(t *testing.T) {
	cases := map[RGB]string{
		{255, 0, 128}: "#FF0080",
		{0, 0, 0}:     "#000000",
		{1, 10, 171}:  "#010AAB",
	}
	for c, want := range cases {
		if got := ToHex(c); got != want {
			t.Fatalf("ToHex(%v) = %q, want %q", c, got, want)
		}
	}
}

func TestToHSL_Known(t *testing.T) {
	cases := []struct {
		c    RGB
		want HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{128, 128, 128}, HSL{0, 0, 50.2}},
		{RGB{255, 0, 128}, HSL{329.9, 100, 50}},
		{RGB{10, 20, 30}, HSL{210, 50, 7.8}},
	}
	for _, c := range cases {
		if got := ToHSL(c.c); got != c.want {
			t.Fatalf("ToHSL(%v) = %+v, want %+v", c.c, got, c.want)
		}
	}
}

func TestToHSL_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		c := RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		h := ToHSL(c)
		if h.H < 0 || h.H >= 360 || h.S < 0 || h.S > 100 || h.L < 0 || h.L > 100 {
			t.Fatalf("ToHSL(%v) out of range: %+v", c, h)
		}
	}
}

func TestDescribe(t *testing.T) {
	r := Describe(RGB{255, 0, 0})
	if r.Hex != "#FF0000" || r.RGB != "255, 0, 0" || r.HSL != "(0.0, 100.0%, 50.0%)" {
		t.Fatalf("unexpected readout %+v", r)
	}
}
