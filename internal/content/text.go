package content

// Profile is the copy for the hero, about and footer areas.
type Profile struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Role     string   `json:"role"`
	Tagline  string   `json:"tagline"`
	About    []string `json:"about"` // markdown paragraphs
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	PageName string   `json:"page_name"`
}

var profile = Profile{
	Name:  "Sahil Talaviya",
	Brand: "SAHIL",
	Role:  "Web Developer & Automation Expert",
	Tagline: `I build responsive, performant web applications using React.js, Next.js,
	JavaScript, and modern frontend technologies, along with workflow automation using n8n.`,
	About: []string{
		`Hello! I'm a **Web Developer & Automation Expert** with hands-on experience in building
	production-level web applications using React.js and Next.js. I specialize in developing
	responsive, API-integrated frontend solutions using Tailwind CSS and Bootstrap, along with
	scalable automation workflows using n8n.`,

		`I hold a Bachelor’s degree in Information Technology and currently work on real-world
	projects, applying strong fundamentals in frontend development, programming concepts, and
	software engineering principles to solve practical business problems.`,

		`Alongside frontend development, I build and manage automation workflows using n8n to
	streamline HR, sales, and marketing processes. I enjoy leveraging modern tools and AI-driven
	workflows to deliver efficient, scalable, and high-quality digital solutions.`,
	},
	Email:    "sahiltalaviya9922@gmail.com",
	Phone:    "+919999999999",
	PageName: "Sahil Talaviya | Frontend Developer",
}

// GetProfile returns the site owner's copy.
func GetProfile() Profile {
	p := profile
	p.About = append([]string(nil), profile.About...)
	return p
}

var quotes = []string{
	"Empowering web development with the intelligence of AI.",
	"Building smarter, faster, and more efficient applications with AI tools.",
	"Leveraging AI to accelerate innovation and code with confidence.",
	"Combining creativity with artificial intelligence for next-gen web experiences.",
	"Supercharging development workflows with cutting-edge AI technology.",
	"Where human logic meets machine intelligence in modern development.",
	"Shaping the future of code with AI-assisted solutions.",
	"Harnessing the power of AI to write, debug, and optimize code smarter.",
	"From idea to deployment—AI accelerates every step of the dev journey.",
	"Transforming traditional development with the future of AI assistance.",
}

// Quotes are the lines the contact section rotates through.
func Quotes() []string {
	return append([]string(nil), quotes...)
}

// SocialLinks are shown in the footer. resumePath is where the resume is
// served from.
func SocialLinks(resumePath string) []SocialLink {
	return []SocialLink{
		{Name: "GitHub", Href: "https://github.com/sahiltalaviya99", AriaLabel: "Explore my GitHub projects"},
		{Name: "LinkedIn", Href: "https://linkedin.com/in/sahil-talaviya-99o9657o18", AriaLabel: "Connect with me on LinkedIn"},
		{Name: "Email", Href: "mailto:" + profile.Email, AriaLabel: "Send me an email"},
		{Name: "Resume", Href: resumePath, AriaLabel: "Download my resume"},
	}
}

// ContactItems are the rows of the "Get In Touch" card.
func ContactItems() []ContactItem {
	return []ContactItem{
		{Title: "Email", Value: profile.Email, Href: "mailto:" + profile.Email},
		{Title: "LinkedIn", Value: "linkedin.com/in/sahil-talaviya-99o9657o18", Href: "https://linkedin.com/in/sahil-talaviya-99o9657o18"},
		{Title: "GitHub", Value: "github.com/sahiltalaviya99", Href: "https://github.com/sahiltalaviya99"},
	}
}
