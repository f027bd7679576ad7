// Package page composes the sections of the portfolio into the view model
// the index template renders.
package page

import (
	"fmt"
	"html/template"

	"github.com/sahiltalaviya99/portfolio/internal/content"
	"github.com/sahiltalaviya99/portfolio/internal/motion"
	"github.com/sahiltalaviya99/portfolio/internal/nav"
	"github.com/sahiltalaviya99/portfolio/internal/overlay"
	"github.com/sahiltalaviya99/portfolio/internal/quotes"
	"github.com/sahiltalaviya99/portfolio/internal/theme"
)

// Section is one stacked block of the page.
type Section struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	// Animated sections have a scroll-driven motion preset.
	Animated bool `json:"animated"`
}

var sections = []Section{
	{ID: "home"},
	{ID: "about", Heading: "ABOUT ME"},
	{ID: "experience", Heading: "Experience and Education"},
	{ID: "projects", Heading: "My Projects"},
	{ID: "skills", Heading: "SKILLS & TECHNOLOGIES"},
	{ID: "contact", Heading: "CONTACT ME"},
}

// Sections lists the page sections in document order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		_, s.Animated = motion.Lookup(s.ID)
		out[i] = s
	}
	return out
}

// HeroParallax mirrors motion.Hero for the client.
type HeroParallax struct {
	FadeMobile  float64 `json:"fadeMobile"`
	FadeDesktop float64 `json:"fadeDesktop"`
	RateMobile  float64 `json:"rateMobile"`
	RateDesktop float64 `json:"rateDesktop"`
}

// Bootstrap is the configuration the client script reads on load. It
// carries the same tables and thresholds the Go packages use.
type Bootstrap struct {
	Sections          []string                 `json:"sections"`
	Presets           map[string]motion.Preset `json:"presets"`
	Hero              HeroParallax             `json:"hero"`
	ActivationLine    int                      `json:"activationLine"`
	HeaderOffset      int                      `json:"headerOffset"`
	ScrolledThreshold int                      `json:"scrolledThreshold"`
	MobileBreakpoint  int                      `json:"mobileBreakpoint"`
	NavigateDelayMS   int64                    `json:"navigateDelayMs"`
	QuoteIntervalMS   int64                    `json:"quoteIntervalMs"`
}

func NewBootstrap() Bootstrap {
	return Bootstrap{
		Sections:          append([]string(nil), nav.SectionIDs...),
		Presets:           motion.Presets(),
		Hero: HeroParallax{
			FadeMobile:  motion.HeroFadeMobile,
			FadeDesktop: motion.HeroFadeDesktop,
			RateMobile:  motion.HeroRateMobile,
			RateDesktop: motion.HeroRateDesktop,
		},
		ActivationLine:    nav.ActivationLine,
		HeaderOffset:      nav.HeaderOffset,
		ScrolledThreshold: nav.ScrolledThreshold,
		MobileBreakpoint:  motion.MobileBreakpoint,
		NavigateDelayMS:   overlay.NavigateDelay.Milliseconds(),
		QuoteIntervalMS:   quotes.Interval.Milliseconds(),
	}
}

// CardTag is one chip on a project card. DesktopOnly chips are hidden
// below the mobile breakpoint.
type CardTag struct {
	Name        string
	DesktopOnly bool
}

// ProjectCard is a project prepared for the grid and its dialog.
type ProjectCard struct {
	content.Project
	CardTags    []CardTag
	MoreDesktop int
	MoreMobile  int
	DetailsHTML template.HTML
}

func newProjectCard(pr content.Project, details template.HTML) ProjectCard {
	desktop, moreDesktop := content.CardTags(pr.Tags, false)
	mobile, moreMobile := content.CardTags(pr.Tags, true)
	tags := make([]CardTag, len(desktop))
	for i, name := range desktop {
		tags[i] = CardTag{Name: name, DesktopOnly: i >= len(mobile)}
	}
	return ProjectCard{
		Project:     pr,
		CardTags:    tags,
		MoreDesktop: moreDesktop,
		MoreMobile:  moreMobile,
		DetailsHTML: details,
	}
}

// SkillView is a skill with its bar width resolved.
type SkillView struct {
	content.Skill
	Percent int
}

// View is everything the index template renders.
type View struct {
	Title     string
	Theme     theme.Theme
	Profile   content.Profile
	AboutHTML []template.HTML

	Sections []Section
	Links    []nav.Link
	Active   string

	Experiences    []content.Experience
	ExperienceTabs []content.Category

	Projects []ProjectCard

	Skills          []SkillView
	SkillCategories []content.Category

	Quote   quotes.Quote
	Contact []content.ContactItem
	Social  []content.SocialLink

	ResumePath   string
	ProfileImage string
	Year         int

	Bootstrap Bootstrap
}

// Options are the per-request inputs to Build.
type Options struct {
	Theme        theme.Theme
	ResumePath   string
	ProfileImage string
	Year         int
}

// Build assembles the view for one render of the page.
func Build(opts Options) (View, error) {
	p := content.GetProfile()

	about := make([]template.HTML, 0, len(p.About))
	for i, para := range p.About {
		html, err := content.Markdown(para)
		if err != nil {
			return View{}, fmt.Errorf("about paragraph %d: %w", i, err)
		}
		about = append(about, html)
	}

	projects := content.Projects()
	cards := make([]ProjectCard, 0, len(projects))
	for _, pr := range projects {
		details, err := content.Markdown(pr.Details)
		if err != nil {
			return View{}, fmt.Errorf("project %d details: %w", pr.ID, err)
		}
		cards = append(cards, newProjectCard(pr, details))
	}

	skills := content.Skills()
	skillViews := make([]SkillView, 0, len(skills))
	for _, s := range skills {
		skillViews = append(skillViews, SkillView{Skill: s, Percent: s.Percent()})
	}

	rot, err := quotes.NewRotator(content.Quotes())
	if err != nil {
		return View{}, err
	}

	t := opts.Theme
	if _, err := theme.Parse(string(t)); err != nil {
		t = theme.Default
	}

	return View{
		Title:           p.PageName,
		Theme:           t,
		Profile:         p,
		AboutHTML:       about,
		Sections:        Sections(),
		Links:           nav.Links(nav.SectionIDs),
		Active:          nav.NewTracker(nav.SectionIDs).Active(),
		Experiences:     content.Experiences(),
		ExperienceTabs:  content.ExperienceTabs(),
		Projects:        cards,
		Skills:          skillViews,
		SkillCategories: content.SkillCategories(),
		Quote:           rot.Current(),
		Contact:         content.ContactItems(),
		Social:          content.SocialLinks(opts.ResumePath),
		ResumePath:      opts.ResumePath,
		ProfileImage:    opts.ProfileImage,
		Year:            opts.Year,
		Bootstrap:       NewBootstrap(),
	}, nil
}
