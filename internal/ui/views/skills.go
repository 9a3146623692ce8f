package views

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

type skillBindings struct {
	name     string
	level    string
	category string
}

// SkillsView manages the ordered skill list
type SkillsView struct {
	store     *store.Store
	portfolio model.Portfolio
	width     int
	height    int
	cursor    int

	form      *huh.Form
	fb        *skillBindings
	editIndex int
}

// NewSkillsView creates a skills section panel
func NewSkillsView(st *store.Store) SkillsView {
	return SkillsView{
		store:     st,
		fb:        &skillBindings{},
		editIndex: -1,
	}
}

func (v SkillsView) Init() tea.Cmd { return nil }

func (v SkillsView) IsInputMode() bool { return v.form != nil }

func (v SkillsView) SetSize(width, height int) SectionView {
	v.width = width
	v.height = height
	return v
}

func (v SkillsView) SetPortfolio(p model.Portfolio) SectionView {
	v.portfolio = p
	if v.cursor >= len(p.Data.Skills) {
		v.cursor = max(0, len(p.Data.Skills)-1)
	}
	return v
}

func (v SkillsView) Update(msg tea.Msg) (SectionView, tea.Cmd) {
	if v.form != nil {
		return v.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	skills := v.portfolio.Data.Skills

	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(skills)-1 {
			v.cursor++
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, len(skills)-1)

	case "a":
		return v.startEdit(-1)

	case "e", "enter":
		if len(skills) > 0 {
			return v.startEdit(v.cursor)
		}

	case "d":
		if len(skills) > 0 {
			next := append([]model.Skill(nil), skills...)
			next = append(next[:v.cursor], next[v.cursor+1:]...)
			return v, saveSection(v.store, v.portfolio.ID, "skills", model.DataPatch{Skills: &next})
		}

	case "K", "shift+up":
		if v.cursor > 0 {
			next := append([]model.Skill(nil), skills...)
			next[v.cursor-1], next[v.cursor] = next[v.cursor], next[v.cursor-1]
			v.cursor--
			return v, saveSection(v.store, v.portfolio.ID, "skills", model.DataPatch{Skills: &next})
		}

	case "J", "shift+down":
		if v.cursor < len(skills)-1 {
			next := append([]model.Skill(nil), skills...)
			next[v.cursor], next[v.cursor+1] = next[v.cursor+1], next[v.cursor]
			v.cursor++
			return v, saveSection(v.store, v.portfolio.ID, "skills", model.DataPatch{Skills: &next})
		}
	}

	return v, nil
}

func (v SkillsView) updateForm(msg tea.Msg) (SectionView, tea.Cmd) {
	mdl, cmd := v.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		level, _ := strconv.Atoi(strings.TrimSpace(v.fb.level))
		skill := model.Skill{
			Name:     strings.TrimSpace(v.fb.name),
			Level:    level,
			Category: strings.TrimSpace(v.fb.category),
		}

		next := append([]model.Skill(nil), v.portfolio.Data.Skills...)
		if v.editIndex >= 0 && v.editIndex < len(next) {
			next[v.editIndex] = skill
		} else {
			next = append(next, skill)
			v.cursor = len(next) - 1
		}

		v.form = nil
		v.editIndex = -1
		return v, saveSection(v.store, v.portfolio.ID, "skills", model.DataPatch{Skills: &next})
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		v.editIndex = -1
		return v, nil
	}

	return v, cmd
}

func (v SkillsView) startEdit(index int) (SectionView, tea.Cmd) {
	v.editIndex = index
	if index >= 0 && index < len(v.portfolio.Data.Skills) {
		s := v.portfolio.Data.Skills[index]
		v.fb.name = s.Name
		v.fb.level = strconv.Itoa(s.Level)
		v.fb.category = s.Category
	} else {
		v.fb.name = ""
		v.fb.level = "50"
		v.fb.category = ""
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Skill").
				Placeholder("e.g. Go").
				Value(&v.fb.name).
				Validate(validateRequired("Skill")),
			huh.NewInput().
				Title("Level").
				Placeholder("0-100").
				Value(&v.fb.level).
				Validate(validateLevel),
			huh.NewInput().
				Title("Category").
				Placeholder("e.g. Backend").
				Value(&v.fb.category),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func (v SkillsView) View() string {
	if v.form != nil {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := theme.Current.Theme
	skills := v.portfolio.Data.Skills

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Skills (%d)", len(skills))))
	b.WriteString("\n\n")

	if len(skills) == 0 {
		b.WriteString(styles.Placeholder.Render("No skills yet. Press 'a' to add one."))
		return b.String()
	}

	barWidth := 20
	nameWidth := max(10, v.width-barWidth-24)

	for i, s := range skills {
		marker := "  "
		if i == v.cursor {
			marker = lipgloss.NewStyle().Foreground(t.SectionMark).Render("> ")
		}

		name := truncate(s.Name, nameWidth)
		if i == v.cursor {
			name = styles.CardTitle.Render(name)
		} else {
			name = styles.Value.Render(name)
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s",
			marker, name, renderSkillBar(s.Level, barWidth),
			styles.CardMeta.Render(fmt.Sprintf("%3d", s.Level))))
		if s.Category != "" {
			b.WriteString(styles.CardMeta.Render("  " + s.Category))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("a add · e edit · d delete · J/K reorder"))
	return b.String()
}

func renderSkillBar(level, width int) string {
	t := theme.Current.Theme
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := level * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(t.SkillBar).Render(bar)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateLevel(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("level must be a number from 0 to 100")
	}
	return nil
}
