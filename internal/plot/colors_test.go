package plot_test

import (
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"rmsdplot/internal/plot"
)

func TestParseColor_Named(t *testing.T) {
	got, err := plot.ParseColor("red")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	want := drawing.Color{R: 0xff, A: 0xff}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseColor_CaseInsensitive(t *testing.T) {
	if _, err := plot.ParseColor("Blue"); err != nil {
		t.Errorf("ParseColor(Blue): %v", err)
	}
}

func TestParseColor_Hex(t *testing.T) {
	got, err := plot.ParseColor("#1f77b4")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	want := drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseColor_UnknownListsNames(t *testing.T) {
	_, err := plot.ParseColor("seagreen-ish")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "blue") || !strings.Contains(err.Error(), "red") {
		t.Errorf("error should list the available colors: %v", err)
	}
}

func TestParseColor_BadHex(t *testing.T) {
	for _, s := range []string{"#12345", "#1234567", "#12345g"} {
		if _, err := plot.ParseColor(s); err == nil {
			t.Errorf("ParseColor(%q): expected an error", s)
		}
	}
}

func TestColorNames_Sorted(t *testing.T) {
	names := plot.ColorNames()
	if len(names) == 0 {
		t.Fatal("no color names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}
