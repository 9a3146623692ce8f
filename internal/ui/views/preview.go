package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/folio/internal/model"
)

// PreviewView renders a read-only view of the full portfolio document using
// the portfolio's own theme colors rather than the admin UI theme.
type PreviewView struct {
	portfolio model.Portfolio
	width     int
	height    int
	scroll    int
	rendered  []string
}

// NewPreviewView creates a preview panel
func NewPreviewView() PreviewView {
	return PreviewView{}
}

func (v PreviewView) Init() tea.Cmd { return nil }

func (v PreviewView) IsInputMode() bool { return false }

func (v PreviewView) SetSize(width, height int) PreviewView {
	v.width = width
	v.height = height
	v.rendered = nil
	return v
}

func (v PreviewView) SetPortfolio(p model.Portfolio) PreviewView {
	v.portfolio = p
	v.scroll = 0
	v.rendered = nil
	return v
}

func (v PreviewView) Update(msg tea.Msg) (PreviewView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	pageSize := max(1, v.height-4)

	switch key.String() {
	case "up", "k":
		if v.scroll > 0 {
			v.scroll--
		}
	case "down", "j":
		v.scroll++
	case "pgup", "ctrl+u":
		v.scroll -= pageSize
	case "pgdown", "ctrl+d":
		v.scroll += pageSize
	case "g":
		v.scroll = 0
	case "G":
		v.scroll = len(v.lines())
	}

	maxScroll := max(0, len(v.lines())-pageSize)
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	if v.scroll < 0 {
		v.scroll = 0
	}

	return v, nil
}

func (v *PreviewView) lines() []string {
	if v.rendered == nil {
		v.rendered = strings.Split(v.render(), "\n")
	}
	return v.rendered
}

func (v PreviewView) View() string {
	lines := v.lines()
	pageSize := max(1, v.height-2)

	start := min(v.scroll, max(0, len(lines)-1))
	end := min(len(lines), start+pageSize)

	out := strings.Join(lines[start:end], "\n")
	if end < len(lines) {
		out += "\n" + lipgloss.NewStyle().Faint(true).Render("· · ·")
	}
	return out
}

// previewStyles are derived from the portfolio's own theme section
type previewStyles struct {
	heading lipgloss.Style
	accent  lipgloss.Style
	body    lipgloss.Style
	meta    lipgloss.Style
	rule    lipgloss.Style
}

func newPreviewStyles(t model.Theme) previewStyles {
	primary := lipgloss.Color(t.PrimaryColor)
	secondary := lipgloss.Color(t.SecondaryColor)

	body := lipgloss.NewStyle()
	if !t.DarkMode {
		// Light pages render on a light block so the colors read correctly
		body = body.Foreground(lipgloss.Color("#1F2937"))
	}

	return previewStyles{
		heading: lipgloss.NewStyle().Foreground(primary).Bold(true),
		accent:  lipgloss.NewStyle().Foreground(secondary),
		body:    body,
		meta:    lipgloss.NewStyle().Faint(true),
		rule:    lipgloss.NewStyle().Foreground(primary).Faint(true),
	}
}

func (v PreviewView) render() string {
	p := v.portfolio
	st := newPreviewStyles(p.Data.Theme)
	width := max(40, v.width-2)

	var b strings.Builder

	b.WriteString(v.renderHeader(st, width))
	b.WriteString("\n")

	if p.Data.About.Description != "" {
		b.WriteString(st.heading.Render("About"))
		b.WriteString("\n")
		b.WriteString(st.body.Width(width).Render(p.Data.About.Description))
		b.WriteString("\n\n")
	}

	if len(p.Data.Skills) > 0 {
		b.WriteString(st.heading.Render("Skills"))
		b.WriteString("\n")
		b.WriteString(v.renderSkills(st, width))
		b.WriteString("\n")
	}

	if len(p.Data.Projects) > 0 {
		b.WriteString(st.heading.Render("Projects"))
		b.WriteString("\n")
		b.WriteString(v.renderProjects(st, width))
	}

	if len(p.Data.About.Experience) > 0 {
		b.WriteString(st.heading.Render("Experience"))
		b.WriteString("\n")
		for _, e := range p.Data.About.Experience {
			b.WriteString(st.accent.Render(e.Title))
			if e.Company != "" {
				b.WriteString(st.body.Render(" at " + e.Company))
			}
			if e.Period != "" {
				b.WriteString(st.meta.Render("  " + e.Period))
			}
			b.WriteString("\n")
			if e.Description != "" {
				b.WriteString(st.body.Width(width).Render(e.Description))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(p.Data.About.Education) > 0 {
		b.WriteString(st.heading.Render("Education"))
		b.WriteString("\n")
		for _, e := range p.Data.About.Education {
			b.WriteString(st.accent.Render(e.Degree))
			if e.Institution != "" {
				b.WriteString(st.body.Render(", " + e.Institution))
			}
			if e.Year != "" {
				b.WriteString(st.meta.Render("  " + e.Year))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(v.renderSocial(st))
	return b.String()
}

func (v PreviewView) renderHeader(st previewStyles, width int) string {
	p := v.portfolio.Data.Personal
	rule := st.rule.Render(strings.Repeat("─", width))

	var b strings.Builder

	switch v.portfolio.Data.Theme.Layout {
	case model.LayoutClassic:
		// Classic centers the identity block
		center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
		b.WriteString(center.Render(st.heading.Render(p.Name)))
		b.WriteString("\n")
		if p.Title != "" {
			b.WriteString(center.Render(st.accent.Render(p.Title)))
			b.WriteString("\n")
		}
		if p.Location != "" || p.Email != "" {
			b.WriteString(center.Render(st.meta.Render(joinNonEmpty(" · ", p.Location, p.Email))))
			b.WriteString("\n")
		}
		b.WriteString(rule)
		b.WriteString("\n")

	case model.LayoutMinimal:
		// Minimal drops the rule and contact line
		b.WriteString(st.heading.Render(p.Name))
		if p.Title != "" {
			b.WriteString(st.meta.Render("  " + p.Title))
		}
		b.WriteString("\n")

	default: // modern
		b.WriteString(st.heading.Render(p.Name))
		b.WriteString("\n")
		if p.Title != "" {
			b.WriteString(st.accent.Render(p.Title))
			b.WriteString("\n")
		}
		if contact := joinNonEmpty(" · ", p.Email, p.Phone, p.Location); contact != "" {
			b.WriteString(st.meta.Render(contact))
			b.WriteString("\n")
		}
		b.WriteString(rule)
		b.WriteString("\n")
	}

	if p.Bio != "" {
		b.WriteString(st.body.Width(width).Render(p.Bio))
		b.WriteString("\n")
	}

	return b.String()
}

func (v PreviewView) renderSkills(st previewStyles, width int) string {
	var b strings.Builder

	// Group by category, preserving first-seen order
	var order []string
	grouped := make(map[string][]model.Skill)
	for _, s := range v.portfolio.Data.Skills {
		cat := s.Category
		if cat == "" {
			cat = "Other"
		}
		if _, seen := grouped[cat]; !seen {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], s)
	}

	barWidth := 16
	for _, cat := range order {
		b.WriteString(st.accent.Render(cat))
		b.WriteString("\n")
		for _, s := range grouped[cat] {
			level := min(100, max(0, s.Level))
			filled := level * barWidth / 100
			bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
			b.WriteString(fmt.Sprintf("  %s %s\n",
				st.body.Width(max(10, width/3)).Render(truncate(s.Name, width/3)),
				st.accent.Render(bar)))
		}
	}
	return b.String()
}

func (v PreviewView) renderProjects(st previewStyles, width int) string {
	var b strings.Builder
	for _, p := range v.portfolio.Data.Projects {
		title := p.Title
		if p.Featured {
			title = "★ " + title
		}
		b.WriteString(st.accent.Bold(true).Render(title))
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(st.body.Width(width).Render(p.Description))
			b.WriteString("\n")
		}
		if len(p.Technologies) > 0 {
			b.WriteString(st.meta.Render(strings.Join(p.Technologies, " · ")))
			b.WriteString("\n")
		}
		if links := joinNonEmpty("  ", p.LiveURL, p.GithubURL); links != "" {
			b.WriteString(st.meta.Render(links))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v PreviewView) renderSocial(st previewStyles) string {
	s := v.portfolio.Data.Social
	links := joinNonEmpty("  ", s.Github, s.Linkedin, s.Twitter, s.Email)
	if links == "" {
		return ""
	}
	return st.meta.Render(links) + "\n"
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
