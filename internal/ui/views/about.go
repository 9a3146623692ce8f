package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

// aboutArea is which part of the about section has focus
type aboutArea int

const (
	areaDescription aboutArea = iota
	areaEducation
	areaExperience
)

func (a aboutArea) String() string {
	switch a {
	case areaDescription:
		return "Description"
	case areaEducation:
		return "Education"
	case areaExperience:
		return "Experience"
	default:
		return "Unknown"
	}
}

type aboutBindings struct {
	description string

	// shared by education and experience entry forms
	titleOrDegree string
	orgOrCompany  string
	yearOrPeriod  string
	entryDesc     string
}

// AboutView edits the about section: a free-text description plus ordered
// education and experience entries. Tab cycles the focused area.
type AboutView struct {
	store     *store.Store
	portfolio model.Portfolio
	width     int
	height    int

	area   aboutArea
	cursor int

	form      *huh.Form
	formArea  aboutArea
	fb        *aboutBindings
	editIndex int
}

// NewAboutView creates an about section panel
func NewAboutView(st *store.Store) AboutView {
	return AboutView{
		store:     st,
		fb:        &aboutBindings{},
		editIndex: -1,
	}
}

func (v AboutView) Init() tea.Cmd { return nil }

func (v AboutView) IsInputMode() bool { return v.form != nil }

func (v AboutView) SetSize(width, height int) SectionView {
	v.width = width
	v.height = height
	return v
}

func (v AboutView) SetPortfolio(p model.Portfolio) SectionView {
	v.portfolio = p
	v.clampCursor()
	return v
}

func (v *AboutView) clampCursor() {
	n := v.entryCount()
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v AboutView) entryCount() int {
	switch v.area {
	case areaEducation:
		return len(v.portfolio.Data.About.Education)
	case areaExperience:
		return len(v.portfolio.Data.About.Experience)
	}
	return 0
}

func (v AboutView) Update(msg tea.Msg) (SectionView, tea.Cmd) {
	if v.form != nil {
		return v.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "tab":
		v.area = (v.area + 1) % 3
		v.cursor = 0
		return v, nil
	case "shift+tab":
		v.area = (v.area + 2) % 3
		v.cursor = 0
		return v, nil
	}

	if v.area == areaDescription {
		if key.String() == "e" {
			return v.startDescriptionEdit()
		}
		return v, nil
	}

	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.entryCount()-1 {
			v.cursor++
		}

	case "a":
		return v.startEntryEdit(-1)

	case "e", "enter":
		if v.entryCount() > 0 {
			return v.startEntryEdit(v.cursor)
		}

	case "d":
		if v.entryCount() > 0 {
			return v.deleteEntry()
		}

	case "K", "shift+up":
		if v.cursor > 0 {
			return v.moveEntry(-1)
		}

	case "J", "shift+down":
		if v.cursor < v.entryCount()-1 {
			return v.moveEntry(1)
		}
	}

	return v, nil
}

func (v AboutView) deleteEntry() (SectionView, tea.Cmd) {
	about := v.portfolio.Data.About
	if v.area == areaEducation {
		next := append([]model.Education(nil), about.Education...)
		about.Education = append(next[:v.cursor], next[v.cursor+1:]...)
	} else {
		next := append([]model.Experience(nil), about.Experience...)
		about.Experience = append(next[:v.cursor], next[v.cursor+1:]...)
	}
	return v, saveSection(v.store, v.portfolio.ID, "about", model.DataPatch{About: &about})
}

func (v AboutView) moveEntry(delta int) (SectionView, tea.Cmd) {
	about := v.portfolio.Data.About
	i, j := v.cursor, v.cursor+delta
	if v.area == areaEducation {
		next := append([]model.Education(nil), about.Education...)
		next[i], next[j] = next[j], next[i]
		about.Education = next
	} else {
		next := append([]model.Experience(nil), about.Experience...)
		next[i], next[j] = next[j], next[i]
		about.Experience = next
	}
	v.cursor = j
	return v, saveSection(v.store, v.portfolio.ID, "about", model.DataPatch{About: &about})
}

func (v AboutView) startDescriptionEdit() (SectionView, tea.Cmd) {
	v.fb.description = v.portfolio.Data.About.Description
	v.formArea = areaDescription

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Description").
				Placeholder("Tell your story...").
				Value(&v.fb.description),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func (v AboutView) startEntryEdit(index int) (SectionView, tea.Cmd) {
	v.editIndex = index
	v.formArea = v.area

	var titleLabel, orgLabel, whenLabel, whenPlaceholder string
	if v.area == areaEducation {
		titleLabel, orgLabel = "Degree", "Institution"
		whenLabel, whenPlaceholder = "Year", "2020"
		if index >= 0 {
			e := v.portfolio.Data.About.Education[index]
			v.fb.titleOrDegree = e.Degree
			v.fb.orgOrCompany = e.Institution
			v.fb.yearOrPeriod = e.Year
			v.fb.entryDesc = e.Description
		}
	} else {
		titleLabel, orgLabel = "Title", "Company"
		whenLabel, whenPlaceholder = "Period", "2020 - Present"
		if index >= 0 {
			e := v.portfolio.Data.About.Experience[index]
			v.fb.titleOrDegree = e.Title
			v.fb.orgOrCompany = e.Company
			v.fb.yearOrPeriod = e.Period
			v.fb.entryDesc = e.Description
		}
	}
	if index < 0 {
		v.fb.titleOrDegree = ""
		v.fb.orgOrCompany = ""
		v.fb.yearOrPeriod = ""
		v.fb.entryDesc = ""
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(titleLabel).
				Value(&v.fb.titleOrDegree).
				Validate(validateRequired(titleLabel)),
			huh.NewInput().
				Title(orgLabel).
				Value(&v.fb.orgOrCompany),
			huh.NewInput().
				Title(whenLabel).
				Placeholder(whenPlaceholder).
				Value(&v.fb.yearOrPeriod),
			huh.NewText().
				Title("Description").
				Value(&v.fb.entryDesc),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func (v AboutView) updateForm(msg tea.Msg) (SectionView, tea.Cmd) {
	mdl, cmd := v.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		about := v.portfolio.Data.About

		switch v.formArea {
		case areaDescription:
			about.Description = strings.TrimSpace(v.fb.description)

		case areaEducation:
			entry := model.Education{
				Degree:      strings.TrimSpace(v.fb.titleOrDegree),
				Institution: strings.TrimSpace(v.fb.orgOrCompany),
				Year:        strings.TrimSpace(v.fb.yearOrPeriod),
				Description: strings.TrimSpace(v.fb.entryDesc),
			}
			next := append([]model.Education(nil), about.Education...)
			if v.editIndex >= 0 && v.editIndex < len(next) {
				next[v.editIndex] = entry
			} else {
				next = append(next, entry)
				v.cursor = len(next) - 1
			}
			about.Education = next

		case areaExperience:
			entry := model.Experience{
				Title:       strings.TrimSpace(v.fb.titleOrDegree),
				Company:     strings.TrimSpace(v.fb.orgOrCompany),
				Period:      strings.TrimSpace(v.fb.yearOrPeriod),
				Description: strings.TrimSpace(v.fb.entryDesc),
			}
			next := append([]model.Experience(nil), about.Experience...)
			if v.editIndex >= 0 && v.editIndex < len(next) {
				next[v.editIndex] = entry
			} else {
				next = append(next, entry)
				v.cursor = len(next) - 1
			}
			about.Experience = next
		}

		v.form = nil
		v.editIndex = -1
		return v, saveSection(v.store, v.portfolio.ID, "about", model.DataPatch{About: &about})
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		v.editIndex = -1
		return v, nil
	}

	return v, cmd
}

func (v AboutView) View() string {
	if v.form != nil {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := theme.Current.Theme
	about := v.portfolio.Data.About

	var b strings.Builder
	b.WriteString(styles.Title.Render("About"))
	b.WriteString("  ")

	var tabs []string
	for _, a := range []aboutArea{areaDescription, areaEducation, areaExperience} {
		label := a.String()
		if a == v.area {
			tabs = append(tabs, styles.SectionActive.Render(label))
		} else {
			tabs = append(tabs, styles.SectionNormal.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch v.area {
	case areaDescription:
		if about.Description == "" {
			b.WriteString(styles.Placeholder.Render("No description yet. Press 'e' to write one."))
		} else {
			b.WriteString(styles.Value.Width(max(20, v.width-4)).Render(about.Description))
		}
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render("e edit · tab switch area"))

	case areaEducation:
		if len(about.Education) == 0 {
			b.WriteString(styles.Placeholder.Render("No education entries. Press 'a' to add one."))
		}
		for i, e := range about.Education {
			marker := "  "
			if i == v.cursor {
				marker = lipgloss.NewStyle().Foreground(t.SectionMark).Render("> ")
			}
			line := fmt.Sprintf("%s — %s", e.Degree, e.Institution)
			if i == v.cursor {
				b.WriteString(marker + styles.CardTitle.Render(truncate(line, max(10, v.width-16))))
			} else {
				b.WriteString(marker + styles.Value.Render(truncate(line, max(10, v.width-16))))
			}
			if e.Year != "" {
				b.WriteString(styles.CardMeta.Render("  " + e.Year))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("a add · e edit · d delete · J/K reorder · tab switch area"))

	case areaExperience:
		if len(about.Experience) == 0 {
			b.WriteString(styles.Placeholder.Render("No experience entries. Press 'a' to add one."))
		}
		for i, e := range about.Experience {
			marker := "  "
			if i == v.cursor {
				marker = lipgloss.NewStyle().Foreground(t.SectionMark).Render("> ")
			}
			line := fmt.Sprintf("%s — %s", e.Title, e.Company)
			if i == v.cursor {
				b.WriteString(marker + styles.CardTitle.Render(truncate(line, max(10, v.width-20))))
			} else {
				b.WriteString(marker + styles.Value.Render(truncate(line, max(10, v.width-20))))
			}
			if e.Period != "" {
				b.WriteString(styles.CardMeta.Render("  " + e.Period))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("a add · e edit · d delete · J/K reorder · tab switch area"))
	}

	return b.String()
}
