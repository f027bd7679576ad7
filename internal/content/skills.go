package content

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var levelPercent = map[string]int{
	"Expert":       90,
	"Advanced":     80,
	"Intermediate": 65,
}

// LevelPercent maps a proficiency label to its bar width. Unknown labels
// map to 0.
func LevelPercent(level string) int {
	return levelPercent[level]
}

var skillCategories = []Category{
	{ID: All, Name: "All Skills"},
	{ID: "frontend", Name: "Frontend"},
	{ID: "programming", Name: "Programming"},
	{ID: "tools", Name: "Tools"},
	{ID: "professional", Name: "Professional"},
	{ID: "aiTools", Name: "AI Tools"},
}

var skills = []Skill{
	{Name: "HTML5", Level: "Expert", Icon: devicon + "html5/html5-original.svg", Category: "frontend"},
	{Name: "CSS3", Level: "Expert", Icon: devicon + "css3/css3-original.svg", Category: "frontend"},
	{Name: "JavaScript (ES6+)", Level: "Advanced", Icon: devicon + "javascript/javascript-original.svg", Category: "frontend"},
	{Name: "React.js", Level: "Advanced", Icon: devicon + "react/react-original.svg", Category: "frontend"},
	{Name: "Bootstrap", Level: "Advanced", Icon: devicon + "bootstrap/bootstrap-original.svg", Category: "frontend"},
	{Name: "Material UI", Level: "Intermediate", Icon: devicon + "materialui/materialui-original.svg", Category: "frontend"},

	{Name: "C", Level: "Advanced", Icon: devicon + "c/c-original.svg", Category: "programming"},
	{Name: "C++", Level: "Advanced", Icon: devicon + "cplusplus/cplusplus-original.svg", Category: "programming"},

	{Name: "Git", Level: "Advanced", Icon: devicon + "git/git-original.svg", Category: "tools"},
	{Name: "GitHub", Level: "Advanced", Icon: devicon + "github/github-original.svg", Category: "tools"},
	{Name: "VS Code", Level: "Expert", Icon: devicon + "vscode/vscode-original.svg", Category: "tools"},
	{Name: "Figma", Level: "Intermediate", Icon: devicon + "figma/figma-original.svg", Category: "tools"},

	{Name: "Web Testing", Level: "Intermediate", Icon: devicon + "chrome/chrome-original.svg", Category: "professional"},
	{Name: "Problem Solving", Level: "Advanced", Icon: "https://cdn-icons-png.flaticon.com/512/1015/1015676.png", Category: "professional"},
	{Name: "Team Collaboration", Level: "Advanced", Icon: "https://cdn-icons-png.flaticon.com/512/2921/2921222.png", Category: "professional"},

	{Name: "GitHub Copilot", Level: "Intermediate", Icon: devicon + "github/github-original.svg", Category: "aiTools"},
	{Name: "Replit Ghostwriter", Level: "Advanced", Icon: devicon + "replit/replit-original.svg", Category: "aiTools"},
	{Name: "CodeSandbox AI", Level: "Advanced", Icon: "https://codesandbox.io/static/img/play-codesandbox.svg", Category: "aiTools"},
	{Name: "ChatGPT", Level: "Advanced", Icon: "https://upload.wikimedia.org/wikipedia/commons/0/04/ChatGPT_logo.svg", Category: "aiTools"},
}

// Skills returns every skill, grouped by category in display order.
func Skills() []Skill {
	return append([]Skill(nil), skills...)
}

// SkillCategories are the filter buttons above the skills grid.
func SkillCategories() []Category {
	return append([]Category(nil), skillCategories...)
}

// FilterSkills returns the skills of a category in original order.
func FilterSkills(category string) ([]Skill, error) {
	if !hasCategory(skillCategories, category) {
		return nil, unknownCategory(category)
	}
	return filter(Skills(), category, func(s Skill) string { return s.Category }), nil
}
