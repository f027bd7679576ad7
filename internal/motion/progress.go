package motion

// Progress is the normalized position of an element against the viewport
// for the offset pair "start end" to "end start".
//
// top is the element's top edge relative to the viewport top. Progress is
// 0 when that edge sits on the viewport's bottom edge and 1 when the
// element's bottom edge has left through the viewport's top edge.
func Progress(top, height, viewport float64) float64 {
	distance := viewport + height
	if distance <= 0 {
		return 0.5
	}
	return Clamp01((viewport - top) / distance)
}

// Frame is the set of animated values applied to a section.
type Frame struct {
	Opacity float64 `json:"opacity"`
	Y       float64 `json:"y"`
	X       float64 `json:"x"`
}

// Preset binds the tables that drive one section.
type Preset struct {
	Opacity Table `json:"opacity"`
	Y       Table `json:"y"`
	X       Table `json:"x,omitempty"`
}

// At evaluates every table of the preset at progress p. Missing tables
// leave the value at its rest position (opacity 1, no offset).
func (p Preset) At(progress float64) Frame {
	f := Frame{Opacity: 1}
	if !p.Opacity.IsZero() {
		f.Opacity = Clamp01(p.Opacity.At(progress))
	}
	if !p.Y.IsZero() {
		f.Y = p.Y.At(progress)
	}
	if !p.X.IsZero() {
		f.X = p.X.At(progress)
	}
	return f
}
