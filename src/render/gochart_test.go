package render

import (
	"math"
	"testing"

	"github.com/iafilius/QuantumResourcePlots/src/types"
)

func TestNiceAxisBoundsDegenerate(t *testing.T) {
	lo, hi := niceAxisBounds(10, 10)
	if lo >= hi {
		t.Fatalf("expected widened range; got [%v,%v]", lo, hi)
	}
	if lo > 10 || hi < 10 {
		t.Fatalf("range must contain the value: [%v,%v]", lo, hi)
	}
}

func TestNiceTicksCoverRange(t *testing.T) {
	ticks := niceTicks(0, 1000, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected ticks, got %d", len(ticks))
	}
	if ticks[0].Value > 0 || ticks[len(ticks)-1].Value < 1000 {
		t.Fatalf("ticks do not cover range: %v..%v", ticks[0].Value, ticks[len(ticks)-1].Value)
	}
	for i, tk := range ticks {
		if tk.Label == "" {
			t.Fatalf("empty label at index %d", i)
		}
	}
}

func TestLogAxisDecades(t *testing.T) {
	rng, ticks := axisRangeAndTicks(math.Log10(3), math.Log10(4500), types.ScaleLog)
	if rng.Min != 0 || rng.Max != 4 {
		t.Fatalf("expected decades [0,4], got [%v,%v]", rng.Min, rng.Max)
	}
	if len(ticks) != 5 || ticks[3].Label != "1000" {
		t.Fatalf("unexpected ticks %+v", ticks)
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{0: "0", 1500: "1500", 12.5: "12.5", 0.25: "0.25", 1e7: "1e+07", 0.0001: "1e-04"}
	for v, want := range cases {
		if got := formatTick(v); got != want {
			t.Fatalf("formatTick(%v) = %q want %q", v, got, want)
		}
	}
}

func TestPanelGrid(t *testing.T) {
	spec := types.ChartSpec{Panels: true}
	if c, r := panelGrid(spec, 3); c != 2 || r != 2 {
		t.Fatalf("3 panels: %dx%d", c, r)
	}
	spec.Columns = 3
	if c, r := panelGrid(spec, 0); c != 3 || r != 1 {
		t.Fatalf("0 panels: %dx%d", c, r)
	}
	w, h := figureSize(types.ChartSpec{Panels: true, Width: 15}, 5)
	if w != 15 || h != 15 {
		t.Fatalf("figure size %vx%v", w, h)
	}
}

func TestParseColor(t *testing.T) {
	if c, err := parseColor("#ff0080"); err != nil || c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Fatalf("hex color: %+v %v", c, err)
	}
	if _, err := parseColor("chartreuse-ish"); err == nil {
		t.Fatalf("expected unknown color error")
	}
	if c := mustColor("Blue"); c != namedColors["blue"] {
		t.Fatalf("case-insensitive names: %+v", c)
	}
}
