// Package motion maps scroll progress to animated values.
//
// Everything here is a pure function of its inputs. The same tables are
// shipped to the browser so the client and the tests agree on the curves.
package motion

import (
	"errors"
	"fmt"
)

var (
	ErrTableTooShort = errors.New("motion: table needs at least two checkpoints")
	ErrTableLength   = errors.New("motion: input and output lengths differ")
	ErrTableOrder    = errors.New("motion: input checkpoints must be non-decreasing")
)

// Table is a piecewise-linear mapping from input checkpoints to outputs.
type Table struct {
	In  []float64 `json:"in,omitempty"`
	Out []float64 `json:"out,omitempty"`
}

// NewTable validates the checkpoints and returns the table.
func NewTable(in, out []float64) (Table, error) {
	if len(in) != len(out) {
		return Table{}, fmt.Errorf("%w: %d inputs, %d outputs", ErrTableLength, len(in), len(out))
	}
	if len(in) < 2 {
		return Table{}, ErrTableTooShort
	}
	for i := 1; i < len(in); i++ {
		if in[i] < in[i-1] {
			return Table{}, fmt.Errorf("%w: %v before %v", ErrTableOrder, in[i-1], in[i])
		}
	}
	return Table{
		In:  append([]float64(nil), in...),
		Out: append([]float64(nil), out...),
	}, nil
}

// MustTable is NewTable for package-level presets.
func MustTable(in, out []float64) Table {
	t, err := NewTable(in, out)
	if err != nil {
		panic(err)
	}
	return t
}

// IsZero reports whether the table was never set.
func (t Table) IsZero() bool { return len(t.In) == 0 }

// At evaluates the table at x. Values outside the checkpoint range clamp
// to the first or last output.
func (t Table) At(x float64) float64 {
	n := len(t.In)
	if n == 0 {
		return 0
	}
	if x <= t.In[0] {
		return t.Out[0]
	}
	if x >= t.In[n-1] {
		return t.Out[n-1]
	}
	for i := 1; i < n; i++ {
		if x > t.In[i] {
			continue
		}
		x0, x1 := t.In[i-1], t.In[i]
		y0, y1 := t.Out[i-1], t.Out[i]
		if x1 == x0 {
			return y1
		}
		return Lerp(y0, y1, (x-x0)/(x1-x0))
	}
	return t.Out[n-1]
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
