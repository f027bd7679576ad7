// Package content holds the portfolio's hard-coded copy and the category
// filters the page offers over it. All values are fixed for the life of
// the process; accessors hand out copies.
package content

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrProjectNotFound = errors.New("project not found")
)

// All selects every entry in a filter.
const All = "all"

// Project is one portfolio project.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details"` // markdown
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	GitHub      string   `json:"github"`
	Demo        string   `json:"demo"`
	Featured    bool     `json:"featured"`
}

// Experience is one timeline entry.
type Experience struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
	Category     string   `json:"category"`
	Highlight    bool     `json:"highlight"`
}

// Skill is one entry of the skills grid.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// Percent is the bar width shown for the skill's level.
func (s Skill) Percent() int {
	return LevelPercent(s.Level)
}

// Category is a filter button.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SocialLink is a footer or contact link.
type SocialLink struct {
	Name      string `json:"name"`
	Href      string `json:"href"`
	AriaLabel string `json:"aria_label"`
}

// ContactItem is a row of the contact card.
type ContactItem struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}
