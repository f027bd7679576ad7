package content

// Experience categories.
const (
	Work      = "work"
	Education = "education"
)

var experiences = []Experience{
	{
		Title:        "Web Developer & Automation Expert",
		Organization: "iTechNotion Pvt Ltd",
		Period:       "2025–Present",
		Description:  "Developing and maintaining live, production-level web applications using React.js and Next.js, integrating APIs, and building automation workflows with n8n to streamline HR, sales, and marketing processes.",
		Skills:       []string{"React.js", "Next.js", "JavaScript", "Tailwind CSS", "Automation (n8n)", "Git", "GitHub"},
		Category:     Work,
		Highlight:    true,
	},
	{
		Title:        "AI/ML Intern (15-day Bootcamp)",
		Organization: "IBM SkillBuild",
		Period:       "May 2024",
		Description:  "Completed a 15-day intensive internship focused on AI and machine learning. Created a chatbot using IBM Watson AI and gained hands-on experience with AI tools and technologies.",
		Skills:       []string{"IBM Watson AI", "Chatbot Development", "Machine Learning", "Python"},
		Category:     Education,
	},
	{
		Title:        "B.Tech in Information Technology",
		Organization: "GIT",
		Period:       "2021–2025",
		Description:  "Bachelor’s degree in Information Technology, with a focus on web technologies and software development.",
		Skills:       []string{"Algorithms", "Data Structures", "OOP", "Database Systems"},
		Category:     Education,
	},
}

var experienceTabs = []Category{
	{ID: All, Name: "All"},
	{ID: Work, Name: "Work"},
	{ID: Education, Name: "Education"},
}

// Experiences returns the timeline in display order.
func Experiences() []Experience {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		e.Skills = append([]string(nil), e.Skills...)
		out[i] = e
	}
	return out
}

// ExperienceTabs are the filter tabs above the timeline.
func ExperienceTabs() []Category {
	return append([]Category(nil), experienceTabs...)
}

// FilterExperiences returns the entries of a category in original order.
func FilterExperiences(category string) ([]Experience, error) {
	if !hasCategory(experienceTabs, category) {
		return nil, unknownCategory(category)
	}
	return filter(Experiences(), category, func(e Experience) string { return e.Category }), nil
}
