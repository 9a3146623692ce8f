package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

type socialBindings struct {
	github   string
	linkedin string
	twitter  string
	email    string
}

// SocialView edits the social links section
type SocialView struct {
	store     *store.Store
	portfolio model.Portfolio
	width     int
	height    int

	form *huh.Form
	fb   *socialBindings
}

// NewSocialView creates a social section panel
func NewSocialView(st *store.Store) SocialView {
	return SocialView{
		store: st,
		fb:    &socialBindings{},
	}
}

func (v SocialView) Init() tea.Cmd { return nil }

func (v SocialView) IsInputMode() bool { return v.form != nil }

func (v SocialView) SetSize(width, height int) SectionView {
	v.width = width
	v.height = height
	return v
}

func (v SocialView) SetPortfolio(p model.Portfolio) SectionView {
	v.portfolio = p
	return v
}

func (v SocialView) Update(msg tea.Msg) (SectionView, tea.Cmd) {
	if v.form == nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "e" {
			return v.startEdit()
		}
		return v, nil
	}

	mdl, cmd := v.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		patch := model.DataPatch{Social: &model.Social{
			Github:   strings.TrimSpace(v.fb.github),
			Linkedin: strings.TrimSpace(v.fb.linkedin),
			Twitter:  strings.TrimSpace(v.fb.twitter),
			Email:    strings.TrimSpace(v.fb.email),
		}}
		v.form = nil
		return v, saveSection(v.store, v.portfolio.ID, "social", patch)
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		return v, nil
	}

	return v, cmd
}

func (v SocialView) startEdit() (SectionView, tea.Cmd) {
	s := v.portfolio.Data.Social
	v.fb.github = s.Github
	v.fb.linkedin = s.Linkedin
	v.fb.twitter = s.Twitter
	v.fb.email = s.Email

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub").
				Placeholder("https://github.com/username").
				Value(&v.fb.github),
			huh.NewInput().
				Title("LinkedIn").
				Placeholder("https://linkedin.com/in/username").
				Value(&v.fb.linkedin),
			huh.NewInput().
				Title("Twitter").
				Placeholder("https://twitter.com/username").
				Value(&v.fb.twitter),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&v.fb.email).
				Validate(validateOptionalEmail),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func (v SocialView) View() string {
	if v.form != nil {
		return v.form.View()
	}

	styles := theme.Current.Styles
	s := v.portfolio.Data.Social

	var b strings.Builder
	b.WriteString(styles.Title.Render("Social"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"GitHub", s.Github},
		{"LinkedIn", s.Linkedin},
		{"Twitter", s.Twitter},
		{"Email", s.Email},
	}
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = styles.Placeholder.Render("(not set)")
		} else {
			value = styles.Value.Render(truncate(value, v.width-14))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Width(10).Render(r.label), value))
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("press e to edit"))
	return b.String()
}
