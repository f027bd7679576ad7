package motion

var (
	// About fades over a fifth of its travel and drifts 30px.
	About = Preset{
		Opacity: MustTable([]float64{0, 0.2, 0.8, 1}, []float64{0, 1, 1, 0}),
		Y:       MustTable([]float64{0, 0.2, 0.8, 1}, []float64{30, 0, 0, -30}),
		X:       MustTable([]float64{0, 0.5}, []float64{-30, 0}),
	}

	// Projects shares the about curve but sinks back down on exit.
	Projects = Preset{
		Opacity: MustTable([]float64{0, 0.2, 0.8, 1}, []float64{0, 1, 1, 0}),
		Y:       MustTable([]float64{0, 0.2, 0.8, 1}, []float64{80, 0, 0, 80}),
	}

	// Reveal is the faster, deeper fade used by skills and contact.
	Reveal = Preset{
		Opacity: MustTable([]float64{0, 0.1, 0.9, 1}, []float64{0, 1, 1, 0}),
		Y:       MustTable([]float64{0, 0.1, 0.9, 1}, []float64{100, 0, 0, 100}),
	}
)

var presets = map[string]Preset{
	"about":    About,
	"projects": Projects,
	"skills":   Reveal,
	"contact":  Reveal,
}

// Lookup returns the preset driving a section, if it is scroll-animated.
func Lookup(section string) (Preset, bool) {
	p, ok := presets[section]
	return p, ok
}

// Presets returns a copy of every section preset keyed by section id.
func Presets() map[string]Preset {
	out := make(map[string]Preset, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}

const (
	// MobileBreakpoint is the viewport width below which the hero uses
	// its gentler parallax.
	MobileBreakpoint = 768

	// HeroFadeMobile and HeroFadeDesktop are the scroll distances, in
	// pixels, over which the hero glow fades out.
	HeroFadeMobile  = 500
	HeroFadeDesktop = 900
	// HeroRateMobile and HeroRateDesktop scale scrollY into the glow's
	// vertical offset.
	HeroRateMobile  = 0.2
	HeroRateDesktop = 0.4
)

// Hero is the parallax applied to the hero glow: it fades out over the
// first 500px (mobile) or 900px (desktop) of scroll and trails the page.
func Hero(scrollY, viewportWidth float64) Frame {
	fade, rate := float64(HeroFadeDesktop), HeroRateDesktop
	if viewportWidth < MobileBreakpoint {
		fade, rate = HeroFadeMobile, HeroRateMobile
	}
	return Frame{
		Opacity: Clamp01(1 - scrollY/fade),
		Y:       scrollY * rate,
	}
}
