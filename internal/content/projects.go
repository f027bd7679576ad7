package content

import (
	"fmt"
	"slices"
)

var projects = []Project{
	{
		ID:          1,
		Title:       "Portfolio Website",
		Description: "A fully responsive personal portfolio to highlight skills, experience, and projects.",
		Details: `Designed and developed a fully responsive personal portfolio to highlight
skills, experience, and projects, featuring smooth transitions and a modern
user interface with **React** and **Tailwind CSS**.`,
		Image:    "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=1170&q=80",
		Tags:     []string{"React", "Tailwind CSS", "Framer Motion"},
		GitHub:   "https://github.com/sahiltalaviya99/portfolio",
		Demo:     "https://sahiltalaviya.netlify.app",
		Featured: true,
	},
	{
		ID:          2,
		Title:       "ForkFleet - Food Delivery App",
		Description: "A user-friendly web application for browsing restaurant menus and placing food orders.",
		Details: `Built a user-friendly web application for browsing restaurant menus and
placing food orders, ensuring responsiveness and performance across devices
using **React**, **Vite**, and **Tailwind CSS**.`,
		Image:  "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?ixlib=rb-1.2.1&auto=format&fit=crop&w=1229&q=80",
		Tags:   []string{"React", "Vite", "Tailwind CSS"},
		GitHub: "https://github.com/sahiltalaviya99/forkfleet",
		Demo:   "https://forkfleet.netlify.app",
	},
	{
		ID:          3,
		Title:       "Tic Tac Toe Game",
		Description: "A classic Tic Tac Toe game implemented with HTML, CSS, and JavaScript.",
		Details: `Developed an interactive Tic Tac Toe game with a clean, modern interface
using HTML, CSS, and JavaScript. Features include:

- player vs player gameplay
- score tracking
- game reset
- responsive design`,
		Image:  "https://images.unsplash.com/photo-1611996575749-79a3a250f948?ixlib=rb-1.2.1&auto=format&fit=crop&w=1170&q=80",
		Tags:   []string{"HTML", "CSS", "JavaScript"},
		GitHub: "https://github.com/sahiltalaviya99/tictactoe",
		Demo:   "https://sahil-tictactoe.netlify.app",
	},
	{
		ID:          4,
		Title:       "vDoctor - QA Testing",
		Description: "Conducted comprehensive manual testing of the vDoctor telemedicine platform.",
		Details: `Conducted comprehensive manual testing of the vDoctor telemedicine platform
on both web and mobile versions. Identified UI inconsistencies, bugs, and
usability issues across user workflows and documented findings to support
product improvement.`,
		Image:  "https://images.unsplash.com/photo-1594904351111-a072f80b1a71?ixlib=rb-1.2.1&auto=format&fit=crop&w=1170&q=80",
		Tags:   []string{"Manual Testing", "QA", "UI Testing", "Documentation"},
		GitHub: "https://github.com/sahiltalaviya99/qa-testing-samples",
		Demo:   "https://vdoctor.com",
	},
}

// Projects returns every project in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}

// ProjectByID looks a project up by id.
func ProjectByID(id int) (Project, error) {
	for _, p := range projects {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Project{}, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

func (p Project) clone() Project {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// Card tag limits: narrow screens show fewer tags before the overflow
// counter.
const (
	CardTagsDesktop = 3
	CardTagsMobile  = 2
)

// CardTags returns the tags shown on a project card and how many were
// folded into the "+N" counter. The returned slice never aliases tags.
func CardTags(tags []string, mobile bool) ([]string, int) {
	limit := CardTagsDesktop
	if mobile {
		limit = CardTagsMobile
	}
	if len(tags) <= limit {
		return slices.Clone(tags), 0
	}
	return slices.Clone(tags[:limit]), len(tags) - limit
}
