package model

import (
	"testing"

	"github.com/soocke/swatch-go/config"
)

func TestSettingsValues_CoverEveryField(t *testing.T) {
	values := SettingsValues(config.DefaultConfig())
	for _, f := range SettingsFields {
		if values[f.ID] == "" {
			t.Fatalf("no value for %s", f.ID)
		}
	}
	if values["nearWhite"] != "240" || values["minSelection"] != "5.0" || values["displayMode"] != "letterbox" {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestApplySettings_ParsesAndKeepsBadEntries(t *testing.T) {
	base := *config.DefaultConfig()
	values := SettingsValues(&base)
	values["topK"] = " 8 "
	values["grayDelta"] = "lots"
	values["minSelection"] = ""
	values["displayMode"] = "ELEMENT"
	got, err := ApplySettings(base, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TopK != 8 || got.GrayDelta != base.GrayDelta || got.MinSelection != base.MinSelection || got.DisplayMode != "element" {
		t.Fatalf("unexpected config %+v", got)
	}
	if base.TopK == 8 {
		t.Fatalf("input config must not be modified")
	}
}

func TestApplySettings_LeavesFilterAlone(t *testing.T) {
	base := *config.DefaultConfig()
	base.Filter = "drop-neutrals"
	got, _ := ApplySettings(base, map[string]string{"filter": "none"})
	if got.Filter != "drop-neutrals" {
		t.Fatalf("filter must only change through its toggle, got %q", got.Filter)
	}
}

func TestApplySettings_Validates(t *testing.T) {
	got, _ := ApplySettings(*config.DefaultConfig(), map[string]string{"nearBlack": "250", "nearWhite": "100", "topK": "99"})
	if got.NearBlack != 20 || got.NearWhite != 240 || got.TopK != 32 {
		t.Fatalf("expected clamped values, got %+v", got)
	}
}
