package model

import "time"

// DefaultPortfolioID is the id of the seeded document when no prior data
// exists
const DefaultPortfolioID = "1"

// DefaultPortfolioName is the display name of the seeded document
const DefaultPortfolioName = "Default Portfolio"

// DefaultPortfolioSlug is the slug of the seeded document
const DefaultPortfolioSlug = "default"

// defaultPortfolioData is the content template every new portfolio starts
// from. Never hand this out directly; callers get a Clone.
var defaultPortfolioData = PortfolioData{
	Personal: Personal{
		Name:         "John Doe",
		Title:        "Full-Stack Developer",
		Bio:          "Passionate about creating beautiful, functional web experiences.",
		Email:        "john.doe@example.com",
		Phone:        "+1 (555) 123-4567",
		Location:     "San Francisco, CA",
		ProfileImage: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=300",
	},
	About: About{
		Description: "With over 5 years of experience in web development, I specialize in creating modern, responsive applications.",
		Education: []Education{
			{
				Degree:      "Bachelor of Computer Science",
				Institution: "University of Technology",
				Year:        "2016-2020",
				Description: "Focused on software engineering and web technologies.",
			},
		},
		Experience: []Experience{
			{
				Title:       "Senior Frontend Developer",
				Company:     "Tech Solutions Inc.",
				Period:      "2022 - Present",
				Description: "Leading frontend development for enterprise applications.",
			},
		},
	},
	Skills: []Skill{
		{Name: "JavaScript", Level: 90, Category: "Frontend"},
		{Name: "React", Level: 85, Category: "Frontend"},
		{Name: "TypeScript", Level: 80, Category: "Frontend"},
		{Name: "Node.js", Level: 75, Category: "Backend"},
	},
	Projects: []Project{
		{
			ID:           "1",
			Title:        "E-Commerce Platform",
			Description:  "A full-stack e-commerce solution with React and Node.js.",
			Image:        "https://images.pexels.com/photos/230544/pexels-photo-230544.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			LiveURL:      "#",
			GithubURL:    "#",
			Featured:     true,
		},
	},
	Social: Social{
		Github:   "https://github.com/johndoe",
		Linkedin: "https://linkedin.com/in/johndoe",
		Twitter:  "https://twitter.com/johndoe",
		Email:    "john.doe@example.com",
	},
	Theme: Theme{
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#8B5CF6",
		DarkMode:       false,
		Layout:         LayoutModern,
	},
}

// DefaultData returns an independent copy of the default content template
func DefaultData() PortfolioData {
	return defaultPortfolioData.Clone()
}

// DefaultPortfolio builds the single document seeded when the store finds
// no usable prior state
func DefaultPortfolio(now time.Time) Portfolio {
	return Portfolio{
		ID:        DefaultPortfolioID,
		Name:      DefaultPortfolioName,
		Slug:      DefaultPortfolioSlug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		Data:      DefaultData(),
	}
}
