package views

import (
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type themeBindings struct {
	primaryColor   string
	secondaryColor string
	darkMode       bool
	layout         model.Layout
}

// ThemeEditorView edits the portfolio's own presentation theme. This is the
// published page's theme, not the admin UI's.
type ThemeEditorView struct {
	store     *store.Store
	portfolio model.Portfolio
	width     int
	height    int

	form *huh.Form
	fb   *themeBindings
}

// NewThemeEditorView creates a theme section panel
func NewThemeEditorView(st *store.Store) ThemeEditorView {
	return ThemeEditorView{
		store: st,
		fb:    &themeBindings{},
	}
}

func (v ThemeEditorView) Init() tea.Cmd { return nil }

func (v ThemeEditorView) IsInputMode() bool { return v.form != nil }

func (v ThemeEditorView) SetSize(width, height int) SectionView {
	v.width = width
	v.height = height
	return v
}

func (v ThemeEditorView) SetPortfolio(p model.Portfolio) SectionView {
	v.portfolio = p
	return v
}

func (v ThemeEditorView) Update(msg tea.Msg) (SectionView, tea.Cmd) {
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
		next := model.Theme{
			PrimaryColor:   strings.TrimSpace(v.fb.primaryColor),
			SecondaryColor: strings.TrimSpace(v.fb.secondaryColor),
			DarkMode:       v.fb.darkMode,
			Layout:         v.fb.layout,
		}
		v.form = nil
		if err := model.ValidateTheme(next); err != nil {
			return v, func() tea.Msg {
				return SavedMsg{ID: v.portfolio.ID, Section: "theme", Err: err}
			}
		}
		return v, saveSection(v.store, v.portfolio.ID, "theme", model.DataPatch{Theme: &next})
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		return v, nil
	}

	return v, cmd
}

func (v ThemeEditorView) startEdit() (SectionView, tea.Cmd) {
	t := v.portfolio.Data.Theme
	v.fb.primaryColor = t.PrimaryColor
	v.fb.secondaryColor = t.SecondaryColor
	v.fb.darkMode = t.DarkMode
	v.fb.layout = t.Layout

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Primary color").
				Placeholder("#3B82F6").
				Value(&v.fb.primaryColor).
				Validate(validateHexColor),
			huh.NewInput().
				Title("Secondary color").
				Placeholder("#10B981").
				Value(&v.fb.secondaryColor).
				Validate(validateHexColor),
			huh.NewConfirm().
				Title("Dark mode").
				Affirmative("On").
				Negative("Off").
				Value(&v.fb.darkMode),
			huh.NewSelect[model.Layout]().
				Title("Layout").
				Options(
					huh.NewOption("Modern", model.LayoutModern),
					huh.NewOption("Classic", model.LayoutClassic),
					huh.NewOption("Minimal", model.LayoutMinimal),
				).
				Value(&v.fb.layout),
		),
	).WithWidth(formWidth(v.width)).WithHeight(formHeight(v.height))

	return v, v.form.Init()
}

func (v ThemeEditorView) View() string {
	if v.form != nil {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := v.portfolio.Data.Theme

	swatch := func(hex string) string {
		if !hexColorRe.MatchString(hex) {
			return styles.Placeholder.Render(hex)
		}
		block := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		return fmt.Sprintf("%s %s", block, styles.Value.Render(hex))
	}

	dark := "off"
	if t.DarkMode {
		dark = "on"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Theme"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Width(10).Render("Primary"), swatch(t.PrimaryColor)))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Width(10).Render("Secondary"), swatch(t.SecondaryColor)))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Width(10).Render("Dark mode"), styles.Value.Render(dark)))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Width(10).Render("Layout"), styles.Value.Render(string(t.Layout))))

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("press e to edit"))
	return b.String()
}

func validateHexColor(s string) error {
	if !hexColorRe.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("use a hex color like #3B82F6")
	}
	return nil
}
