package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Layout is the rendering layout of a portfolio's public page
type Layout string

const (
	LayoutModern  Layout = "modern"
	LayoutClassic Layout = "classic"
	LayoutMinimal Layout = "minimal"
)

// Layouts returns all valid layouts in display order
func Layouts() []Layout {
	return []Layout{LayoutModern, LayoutClassic, LayoutMinimal}
}

// Portfolio is one editable portfolio document
type Portfolio struct {
	ID        string        `json:"id" validate:"required"`
	Name      string        `json:"name" validate:"required"`
	Slug      string        `json:"slug" validate:"required"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt" validate:"required"`
	UpdatedAt time.Time     `json:"updatedAt" validate:"required"`
	Data      PortfolioData `json:"data" validate:"required"`
}

// PortfolioData is the editable content, six named sections
type PortfolioData struct {
	Personal Personal  `json:"personal"`
	About    About     `json:"about"`
	Skills   []Skill   `json:"skills" validate:"dive"`
	Projects []Project `json:"projects" validate:"dive"`
	Social   Social    `json:"social"`
	Theme    Theme     `json:"theme" validate:"required"`
}

// Personal holds the scalar identity fields
type Personal struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ProfileImage string `json:"profileImage"`
}

// About holds the free-text description plus ordered education and
// experience entries. Entries have no ids; position is identity.
type About struct {
	Description string       `json:"description"`
	Education   []Education  `json:"education"`
	Experience  []Experience `json:"experience"`
}

// Education is one education entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// Experience is one work experience entry
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Skill is one skill with a 0-100 proficiency level
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
	Category string `json:"category"`
}

// Project is one showcased project. Its ID is locally unique within the
// portfolio, distinct from the portfolio's own id.
type Project struct {
	ID           string   `json:"id" validate:"required"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

// Social holds the four profile links/handles
type Social struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
}

// Theme holds the portfolio's own presentation settings (distinct from the
// admin UI theme)
type Theme struct {
	PrimaryColor   string `json:"primaryColor" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondaryColor" validate:"required,hexcolor"`
	DarkMode       bool   `json:"darkMode"`
	Layout         Layout `json:"layout" validate:"required,oneof=modern classic minimal"`
}

// DataPatch is a partial PortfolioData update. A non-nil section replaces
// that section wholesale; nil sections are left untouched. There is no
// field-level merge within a section.
type DataPatch struct {
	Personal *Personal
	About    *About
	Skills   *[]Skill
	Projects *[]Project
	Social   *Social
	Theme    *Theme
}

// IsZero reports whether the patch carries no sections
func (p DataPatch) IsZero() bool {
	return p.Personal == nil && p.About == nil && p.Skills == nil &&
		p.Projects == nil && p.Social == nil && p.Theme == nil
}

// Apply returns a copy of data with each non-nil patch section replaced.
// Replaced slice sections are copied so the patch owner cannot mutate the
// stored document afterwards.
func (p DataPatch) Apply(data PortfolioData) PortfolioData {
	if p.Personal != nil {
		data.Personal = *p.Personal
	}
	if p.About != nil {
		data.About = p.About.clone()
	}
	if p.Skills != nil {
		data.Skills = append([]Skill(nil), *p.Skills...)
	}
	if p.Projects != nil {
		data.Projects = cloneProjects(*p.Projects)
	}
	if p.Social != nil {
		data.Social = *p.Social
	}
	if p.Theme != nil {
		data.Theme = *p.Theme
	}
	return data
}

// Clone returns a deep copy of the data, sharing no slices with the original
func (d PortfolioData) Clone() PortfolioData {
	out := d
	out.About = d.About.clone()
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Projects = cloneProjects(d.Projects)
	return out
}

func (a About) clone() About {
	out := a
	out.Education = append([]Education(nil), a.Education...)
	out.Experience = append([]Experience(nil), a.Experience...)
	return out
}

func cloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p
		out[i].Technologies = append([]string(nil), p.Technologies...)
	}
	return out
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)
var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify derives a URL-safe slug from a portfolio name: trim, lowercase,
// whitespace runs to hyphens, everything else outside [a-z0-9-] stripped.
// The slug is computed once at creation and never recomputed on rename.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}

var validate = validator.New()

// ValidatePortfolios checks a decoded collection against the expected shape.
// Used on load so that a parseable-but-mismatched blob is rejected instead
// of trusted.
func ValidatePortfolios(portfolios []Portfolio) error {
	for i := range portfolios {
		if err := validate.Struct(&portfolios[i]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks a single theme section (used by the theme editor
// before submitting a patch)
func ValidateTheme(t Theme) error {
	return validate.Struct(&t)
}
