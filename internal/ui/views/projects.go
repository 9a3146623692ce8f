package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

type projectBindings struct {
	title        string
	description  string
	image        string
	technologies string
	liveURL      string
	githubURL    string
	featured     bool
}

// ProjectsView manages the ordered project list
type ProjectsView struct {
	store     *store.Store
	portfolio model.Portfolio
	width     int
	height    int
	cursor    int

	form      *huh.Form
	fb        *projectBindings
	editIndex int
}

// NewProjectsView creates a projects section panel
func NewProjectsView(st *store.Store) ProjectsView {
	return ProjectsView{
		store:     st,
		fb:        &projectBindings{},
		editIndex: -1,
	}
}

func (v ProjectsView) Init() tea.Cmd { return nil }

func (v ProjectsView) IsInputMode() bool { return v.form != nil }

func (v ProjectsView) SetSize(width, height int) SectionView {
	v.width = width
	v.height = height
	return v
}

func (v ProjectsView) SetPortfolio(p model.Portfolio) SectionView {
	v.portfolio = p
	if v.cursor >= len(p.Data.Projects) {
		v.cursor = max(0, len(p.Data.Projects)-1)
	}
	return v
}

func (v ProjectsView) Update(msg tea.Msg) (SectionView, tea.Cmd) {
	if v.form != nil {
		return v.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	projects := v.portfolio.Data.Projects

	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(projects)-1 {
			v.cursor++
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, len(projects)-1)

	case "a":
		return v.startEdit(-1)

	case "e", "enter":
		if len(projects) > 0 {
			return v.startEdit(v.cursor)
		}

	case "d":
		if len(projects) > 0 {
			next := append([]model.Project(nil), projects...)
			next = append(next[:v.cursor], next[v.cursor+1:]...)
			return v, saveSection(v.store, v.portfolio.ID, "projects", model.DataPatch{Projects: &next})
		}

	case "f":
		if len(projects) > 0 {
			next := append([]model.Project(nil), projects...)
			next[v.cursor].Featured = !next[v.cursor].Featured
			return v, saveSection(v.store, v.portfolio.ID, "projects", model.DataPatch{Projects: &next})
		}

	case "K", "shift+up":
		if v.cursor > 0 {
			next := append([]model.Project(nil), projects...)
			next[v.cursor-1], next[v.cursor] = next[v.cursor], next[v.cursor-1]
			v.cursor--
			return v, saveSection(v.store, v.portfolio.ID, "projects", model.DataPatch{Projects: &next})
		}

	case "J", "shift+down":
		if v.cursor < len(projects)-1 {
			next := append([]model.Project(nil), projects...)
			next[v.cursor], next[v.cursor+1] = next[v.cursor+1], next[v.cursor]
			v.cursor++
			return v, saveSection(v.store, v.portfolio.ID, "projects", model.DataPatch{Projects: &next})
		}
	}

	return v, nil
}

func (v ProjectsView) updateForm(msg tea.Msg) (SectionView, tea.Cmd) {
	mdl, cmd := v.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		project := model.Project{
			Title:        strings.TrimSpace(v.fb.title),
			Description:  strings.TrimSpace(v.fb.description),
			Image:        strings.TrimSpace(v.fb.image),
			Technologies: splitTechnologies(v.fb.technologies),
			LiveURL:      strings.TrimSpace(v.fb.liveURL),
			GithubURL:    strings.TrimSpace(v.fb.githubURL),
			Featured:     v.fb.featured,
		}

		next := append([]model.Project(nil), v.portfolio.Data.Projects...)
		if v.editIndex >= 0 && v.editIndex < len(next) {
			project.ID = next[v.editIndex].ID
			next[v.editIndex] = project
		} else {
			project.ID = uuid.New().String()
			next = append(next, project)
			v.cursor = len(next) - 1
		}

		v.form = nil
		v.editIndex = -1
		return v, saveSection(v.store, v.portfolio.ID, "projects", model.DataPatch{Projects: &next})
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		v.editIndex = -1
		return v, nil
	}

	return v, cmd
}

func (v ProjectsView) startEdit(index int) (SectionView, tea.Cmd) {
	v.editIndex = index
	if index >= 0 && index < len(v.portfolio.Data.Projects) {
		p := v.portfolio.Data.Projects[index]
		v.fb.title = p.Title
		v.fb.description = p.Description
		v.fb.image = p.Image
		v.fb.technologies = strings.Join(p.Technologies, ", ")
		v.fb.liveURL = p.LiveURL
		v.fb.githubURL = p.GithubURL
		v.fb.featured = p.Featured
	} else {
		*v.fb = projectBindings{}
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Project name").
				Value(&v.fb.title).
				Validate(validateRequired("Title")),
			huh.NewText().
				Title("Description").
				Placeholder("What does it do?").
				Value(&v.fb.description),
			huh.NewInput().
				Title("Technologies").
				Placeholder("Go, SQLite, Bubble Tea").
				Value(&v.fb.technologies),
			huh.NewInput().
				Title("Live URL").
				Placeholder("https://...").
				Value(&v.fb.liveURL),
			huh.NewInput().
				Title("GitHub URL").
				Placeholder("https://github.com/...").
				Value(&v.fb.githubURL),
			huh.NewInput().
				Title("Image").
				Placeholder("URL or path").
				Value(&v.fb.image),
			huh.NewConfirm().
				Title("Featured").
				Affirmative("Yes").
				Negative("No").
				Value(&v.fb.featured),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func splitTechnologies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (v ProjectsView) View() string {
	if v.form != nil {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := theme.Current.Theme
	projects := v.portfolio.Data.Projects

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Projects (%d)", len(projects))))
	b.WriteString("\n\n")

	if len(projects) == 0 {
		b.WriteString(styles.Placeholder.Render("No projects yet. Press 'a' to add one."))
		return b.String()
	}

	for i, p := range projects {
		marker := "  "
		if i == v.cursor {
			marker = lipgloss.NewStyle().Foreground(t.SectionMark).Render("> ")
		}

		star := " "
		if p.Featured {
			star = lipgloss.NewStyle().Foreground(t.Featured).Render("★")
		}

		title := truncate(p.Title, max(10, v.width-8))
		if i == v.cursor {
			title = styles.CardTitle.Render(title)
		} else {
			title = styles.Value.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, star, title))

		if i == v.cursor {
			if p.Description != "" {
				b.WriteString("     " + styles.CardMeta.Render(truncate(p.Description, max(10, v.width-10))) + "\n")
			}
			if len(p.Technologies) > 0 {
				b.WriteString("     " + styles.CardMeta.Render(truncate(strings.Join(p.Technologies, " · "), max(10, v.width-10))) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("a add · e edit · d delete · f feature · J/K reorder"))
	return b.String()
}
