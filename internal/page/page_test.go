package page

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahiltalaviya99/portfolio/internal/content"
	"github.com/sahiltalaviya99/portfolio/internal/nav"
	"github.com/sahiltalaviya99/portfolio/internal/theme"
)

func TestSections_MatchNavigation(t *testing.T) {
	ids := make([]string, 0, len(sections))
	for _, s := range Sections() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, nav.SectionIDs, ids)
}

func TestSections_Animated(t *testing.T) {
	animated := map[string]bool{}
	for _, s := range Sections() {
		animated[s.ID] = s.Animated
	}
	assert.Equal(t, map[string]bool{
		"home":       false,
		"about":      true,
		"experience": false,
		"projects":   true,
		"skills":     true,
		"contact":    true,
	}, animated)
}

func TestBuild(t *testing.T) {
	v, err := Build(Options{Theme: theme.Light, ResumePath: "/resume.pdf", ProfileImage: "/my.png", Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, "Sahil Talaviya | Frontend Developer", v.Title)
	assert.Equal(t, theme.Light, v.Theme)
	assert.Equal(t, "home", v.Active)
	require.Len(t, v.Links, len(nav.SectionIDs))
	assert.Equal(t, "#about", v.Links[1].Href)

	require.Len(t, v.AboutHTML, 3)
	assert.Contains(t, string(v.AboutHTML[0]), "<strong>Web Developer &amp; Automation Expert</strong>")

	require.Len(t, v.Projects, 4)
	for _, p := range v.Projects {
		assert.LessOrEqual(t, len(p.CardTags), 3)
		assert.Equal(t, len(p.Tags), len(p.CardTags)+p.MoreDesktop)
		assert.NotEmpty(t, p.DetailsHTML)
	}

	for _, s := range v.Skills {
		assert.Equal(t, s.Skill.Percent(), s.Percent)
	}

	assert.Equal(t, 0, v.Quote.Index)
	assert.NotEmpty(t, v.Quote.Text)
	assert.Equal(t, 2026, v.Year)

	var resume bool
	for _, l := range v.Social {
		if l.Href == "/resume.pdf" {
			resume = true
		}
	}
	assert.True(t, resume, "resume link in footer")
}

func TestBuild_InvalidThemeFallsBack(t *testing.T) {
	v, err := Build(Options{Theme: "sepia"})
	require.NoError(t, err)
	assert.Equal(t, theme.Default, v.Theme)
}

func TestNewProjectCard_MobileLimit(t *testing.T) {
	pr := content.Project{ID: 4, Tags: []string{"Manual Testing", "QA", "UI Testing", "Documentation"}}

	c := newProjectCard(pr, "")
	assert.Equal(t, []CardTag{
		{Name: "Manual Testing"},
		{Name: "QA"},
		{Name: "UI Testing", DesktopOnly: true},
	}, c.CardTags)
	assert.Equal(t, 1, c.MoreDesktop)
	assert.Equal(t, 2, c.MoreMobile)

	c = newProjectCard(content.Project{Tags: []string{"React", "Vite"}}, "")
	assert.Equal(t, []CardTag{{Name: "React"}, {Name: "Vite"}}, c.CardTags)
	assert.Zero(t, c.MoreDesktop)
	assert.Zero(t, c.MoreMobile)

	c = newProjectCard(content.Project{Tags: []string{"React", "Vite", "Go"}}, "")
	assert.True(t, c.CardTags[2].DesktopOnly)
	assert.Zero(t, c.MoreDesktop)
	assert.Equal(t, 1, c.MoreMobile)
}

func TestBootstrap_JSON(t *testing.T) {
	b, err := json.Marshal(NewBootstrap())
	require.NoError(t, err)

	var got struct {
		Sections        []string `json:"sections"`
		ActivationLine  int      `json:"activationLine"`
		HeaderOffset    int      `json:"headerOffset"`
		NavigateDelayMS int      `json:"navigateDelayMs"`
		QuoteIntervalMS int      `json:"quoteIntervalMs"`
		Hero            struct {
			FadeMobile  float64 `json:"fadeMobile"`
			FadeDesktop float64 `json:"fadeDesktop"`
			RateMobile  float64 `json:"rateMobile"`
			RateDesktop float64 `json:"rateDesktop"`
		} `json:"hero"`
		Presets         map[string]struct {
			Opacity struct {
				In  []float64 `json:"in"`
				Out []float64 `json:"out"`
			} `json:"opacity"`
		} `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, nav.SectionIDs, got.Sections)
	assert.Equal(t, 150, got.ActivationLine)
	assert.Equal(t, 80, got.HeaderOffset)
	assert.Equal(t, 150, got.NavigateDelayMS)
	assert.Equal(t, 5000, got.QuoteIntervalMS)
	assert.Equal(t, 500.0, got.Hero.FadeMobile)
	assert.Equal(t, 900.0, got.Hero.FadeDesktop)
	assert.Equal(t, 0.2, got.Hero.RateMobile)
	assert.Equal(t, 0.4, got.Hero.RateDesktop)
	assert.Equal(t, []float64{0, 0.1, 0.9, 1}, got.Presets["skills"].Opacity.In)
	assert.Equal(t, []float64{0, 1, 1, 0}, got.Presets["about"].Opacity.Out)
}
