package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in, out []float64
		wantErr error
	}{
		{name: "length mismatch", in: []float64{0, 1}, out: []float64{0}, wantErr: ErrTableLength},
		{name: "single checkpoint", in: []float64{0}, out: []float64{1}, wantErr: ErrTableTooShort},
		{name: "descending", in: []float64{0, 0.5, 0.4}, out: []float64{0, 1, 0}, wantErr: ErrTableOrder},
		{name: "valid", in: []float64{0, 0.2, 0.8, 1}, out: []float64{0, 1, 1, 0}},
		{name: "repeated checkpoint", in: []float64{0, 0.5, 0.5, 1}, out: []float64{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.in, tt.out)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTable_At(t *testing.T) {
	tbl := MustTable([]float64{0, 0.2, 0.8, 1}, []float64{0, 1, 1, 0})

	tests := []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.1, 0.5},
		{0.2, 1},
		{0.5, 1},
		{0.8, 1},
		{0.9, 0.5},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tbl.At(tt.x), 1e-9, "At(%v)", tt.x)
	}
}

func TestTable_NewTableCopiesInput(t *testing.T) {
	in := []float64{0, 1}
	out := []float64{0, 10}
	tbl, err := NewTable(in, out)
	require.NoError(t, err)

	in[1] = 100
	out[1] = -1
	assert.InDelta(t, 5, tbl.At(0.5), 1e-9)
}

func TestProgress(t *testing.T) {
	const viewport = 800.0
	const height = 1200.0

	assert.Equal(t, 0.0, Progress(viewport, height, viewport), "top edge on viewport bottom")
	assert.Equal(t, 1.0, Progress(-height, height, viewport), "bottom edge on viewport top")
	assert.InDelta(t, 0.5, Progress((viewport-height)/2, height, viewport), 1e-9)
	assert.Equal(t, 0.0, Progress(5000, height, viewport), "below the fold clamps")
	assert.Equal(t, 1.0, Progress(-5000, height, viewport), "scrolled past clamps")
	assert.Equal(t, 0.5, Progress(0, 0, 0), "degenerate distance")
}

// Sweeps the page through every scroll offset and checks the section
// opacity curve: bounded, continuous, rising, flat, then falling.
func TestSectionOpacity_ShapeOverScroll(t *testing.T) {
	const (
		viewport   = 800.0
		sectionTop = 2000.0 // document offset
		height     = 900.0
		step       = 1.0
	)

	for name, preset := range Presets() {
		t.Run(name, func(t *testing.T) {
			var prev float64
			phase := 0 // 0 rising, 1 plateau, 2 falling
			for s := 0.0; s <= sectionTop+height+viewport; s += step {
				p := Progress(sectionTop-s, height, viewport)
				o := preset.At(p).Opacity

				require.GreaterOrEqual(t, o, 0.0)
				require.LessOrEqual(t, o, 1.0)

				if s > 0 {
					maxJump := step / (viewport + height) / 0.1
					require.LessOrEqual(t, math.Abs(o-prev), maxJump+1e-9, "discontinuity at scroll %v", s)
					switch {
					case o > prev+1e-12:
						require.Equal(t, 0, phase, "opacity rose again at scroll %v", s)
					case o < prev-1e-12:
						phase = 2
					default:
						if phase == 0 && o == 1 {
							phase = 1
						}
					}
				}
				prev = o
			}
			assert.Equal(t, 2, phase, "section never faded out")
		})
	}
}

func TestPreset_At(t *testing.T) {
	f := About.At(0.1)
	assert.InDelta(t, 0.5, f.Opacity, 1e-9)
	assert.InDelta(t, 15, f.Y, 1e-9)
	assert.InDelta(t, -24, f.X, 1e-9)

	f = Reveal.At(0.95)
	assert.InDelta(t, 0.5, f.Opacity, 1e-9)
	assert.InDelta(t, 50, f.Y, 1e-9)
	assert.Equal(t, 0.0, f.X)

	assert.Equal(t, Frame{Opacity: 1}, Preset{}.At(0.3))
}

func TestLookup(t *testing.T) {
	_, ok := Lookup("about")
	assert.True(t, ok)
	_, ok = Lookup("projects")
	assert.True(t, ok)
	_, ok = Lookup("experience")
	assert.False(t, ok)
}

func TestHero(t *testing.T) {
	desktop := Hero(450, 1280)
	assert.InDelta(t, 0.5, desktop.Opacity, 1e-9)
	assert.InDelta(t, 180, desktop.Y, 1e-9)

	mobile := Hero(250, 375)
	assert.InDelta(t, 0.5, mobile.Opacity, 1e-9)
	assert.InDelta(t, 50, mobile.Y, 1e-9)

	assert.Equal(t, 0.0, Hero(2000, 1280).Opacity)
	assert.Equal(t, 1.0, Hero(0, 1280).Opacity)
}
