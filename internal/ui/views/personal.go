package views

import (
	"fmt"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

// personalBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type personalBindings struct {
	name         string
	title        string
	bio          string
	email        string
	phone        string
	location     string
	profileImage string
}

// PersonalView edits the personal identity section
type PersonalView struct {
	store     *store.Store
	portfolio model.Portfolio
	width     int
	height    int

	form *huh.Form
	fb   *personalBindings
}

// NewPersonalView creates a personal section panel
func NewPersonalView(st *store.Store) PersonalView {
	return PersonalView{
		store: st,
		fb:    &personalBindings{},
	}
}

func (v PersonalView) Init() tea.Cmd { return nil }

func (v PersonalView) IsInputMode() bool { return v.form != nil }

func (v PersonalView) SetSize(width, height int) SectionView {
	v.width = width
	v.height = height
	return v
}

func (v PersonalView) SetPortfolio(p model.Portfolio) SectionView {
	v.portfolio = p
	return v
}

func (v PersonalView) Update(msg tea.Msg) (SectionView, tea.Cmd) {
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
		patch := model.DataPatch{Personal: &model.Personal{
			Name:         strings.TrimSpace(v.fb.name),
			Title:        strings.TrimSpace(v.fb.title),
			Bio:          strings.TrimSpace(v.fb.bio),
			Email:        strings.TrimSpace(v.fb.email),
			Phone:        strings.TrimSpace(v.fb.phone),
			Location:     strings.TrimSpace(v.fb.location),
			ProfileImage: strings.TrimSpace(v.fb.profileImage),
		}}
		v.form = nil
		return v, saveSection(v.store, v.portfolio.ID, "personal", patch)
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		return v, nil
	}

	return v, cmd
}

func (v PersonalView) startEdit() (SectionView, tea.Cmd) {
	p := v.portfolio.Data.Personal
	v.fb.name = p.Name
	v.fb.title = p.Title
	v.fb.bio = p.Bio
	v.fb.email = p.Email
	v.fb.phone = p.Phone
	v.fb.location = p.Location
	v.fb.profileImage = p.ProfileImage

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Full name").
				Value(&v.fb.name),
			huh.NewInput().
				Title("Title").
				Placeholder("Professional title").
				Value(&v.fb.title),
			huh.NewText().
				Title("Bio").
				Placeholder("A short introduction...").
				Value(&v.fb.bio),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&v.fb.email).
				Validate(validateOptionalEmail),
			huh.NewInput().
				Title("Phone").
				Value(&v.fb.phone),
			huh.NewInput().
				Title("Location").
				Placeholder("City, Country").
				Value(&v.fb.location),
			huh.NewInput().
				Title("Profile image").
				Placeholder("URL or path").
				Value(&v.fb.profileImage),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func (v PersonalView) View() string {
	if v.form != nil {
		return v.form.View()
	}

	styles := theme.Current.Styles
	p := v.portfolio.Data.Personal

	var b strings.Builder
	b.WriteString(styles.Title.Render("Personal"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Name", p.Name},
		{"Title", p.Title},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Location", p.Location},
		{"Image", p.ProfileImage},
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

	if p.Bio != "" {
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("Bio"))
		b.WriteString("\n")
		b.WriteString(styles.Value.Width(max(20, v.width-4)).Render(p.Bio))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("press e to edit"))
	return b.String()
}

func validateOptionalEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func formWidth(width int) int {
	w := width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func formHeight(height int) int {
	h := height - 4
	if h < 10 {
		h = 10
	}
	return h
}
