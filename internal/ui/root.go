package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/folio/internal/app"
	"github.com/dori/folio/internal/ui/theme"
	"github.com/dori/folio/internal/ui/views"
)

// Debug logging (enable by setting FOLIO_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("FOLIO_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/folio-root-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

// RootModel is the main application model that manages screens
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	screen         Screen
	previousScreen Screen
	section        Section
	portfolioID    string

	listView     views.ListView
	sectionViews map[Section]views.SectionView
	previewView  views.PreviewView
	helpVisible  bool

	// Status message
	statusMsg string
	errorMsg  string
}

// Options configures the initial state of the admin shell
type Options struct {
	// PortfolioID opens the editor on this document instead of the list
	PortfolioID string
	// Section is the initial editor section
	Section Section
	// ConfirmDelete asks before deleting a portfolio
	ConfirmDelete bool
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, opts Options) RootModel {
	h := help.New()
	h.ShowAll = false

	m := RootModel{
		app:      application,
		keys:     DefaultKeyMap(),
		help:     h,
		screen:   ScreenList,
		section:  opts.Section,
		listView: views.NewListView(application.Store, opts.ConfirmDelete),
		sectionViews: map[Section]views.SectionView{
			SectionPersonal: views.NewPersonalView(application.Store),
			SectionAbout:    views.NewAboutView(application.Store),
			SectionSkills:   views.NewSkillsView(application.Store),
			SectionProjects: views.NewProjectsView(application.Store),
			SectionSocial:   views.NewSocialView(application.Store),
			SectionTheme:    views.NewThemeEditorView(application.Store),
		},
		previewView: views.NewPreviewView(),
	}

	if opts.PortfolioID != "" {
		p := application.Store.Get(opts.PortfolioID)
		if p == nil {
			// Fall back to the first document, like the dashboard does when a
			// stale id is requested
			if all := application.Store.Portfolios(); len(all) > 0 {
				p = &all[0]
				m.statusMsg = fmt.Sprintf("No portfolio %q, opened %s", opts.PortfolioID, p.Name)
			}
		}
		if p != nil {
			m.openPortfolio(p.ID)
		}
	}

	return m
}

// openPortfolio switches to the editor for the given document
func (m *RootModel) openPortfolio(id string) {
	p := m.app.Store.Get(id)
	if p == nil {
		m.errorMsg = fmt.Sprintf("no portfolio with id %q", id)
		return
	}
	m.app.Store.SetCurrent(p)
	m.portfolioID = p.ID
	for s, v := range m.sectionViews {
		m.sectionViews[s] = v.SetPortfolio(*p)
	}
	m.screen = ScreenEditor
}

// refreshPortfolio pushes the latest stored document into the editor views
func (m *RootModel) refreshPortfolio() {
	p := m.app.Store.Get(m.portfolioID)
	if p == nil {
		return
	}
	m.app.Store.SetCurrent(p)
	for s, v := range m.sectionViews {
		m.sectionViews[s] = v.SetPortfolio(*p)
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	cmd := m.listView.Init()
	rootDebugf("RootModel.Init() returning cmd: %v", cmd != nil)
	return cmd
}

func (m RootModel) isInputMode() bool {
	switch m.screen {
	case ScreenList:
		return m.listView.IsInputMode()
	case ScreenEditor:
		return m.sectionViews[m.section].IsInputMode()
	}
	return false
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	rootDebugf("RootModel.Update received msg type: %T", msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header and footer
		contentHeight := m.height - 4
		m.listView = m.listView.SetSize(m.width, contentHeight)
		panelWidth := m.width - sidebarWidth - 2
		for s, v := range m.sectionViews {
			m.sectionViews[s] = v.SetSize(panelWidth, contentHeight)
		}
		m.previewView = m.previewView.SetSize(m.width, contentHeight)

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.isInputMode()

		// Global keybindings
		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			// ctrl+t always works (unlikely to type)
			m.cycleTheme()
			return m, nil
		}

		// Skip other global keys when in input mode
		if isInputMode {
			break // Fall through to view delegation
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.helpVisible {
				m.helpVisible = false
				return m, nil
			}
			switch m.screen {
			case ScreenEditor:
				m.screen = ScreenList
				return m, m.listView.Init()
			case ScreenPreview:
				m.screen = m.previousScreen
				return m, nil
			}
		}

		if m.screen == ScreenEditor {
			switch {
			case key.Matches(msg, m.keys.PersonalSection):
				m.section = SectionPersonal
				return m, nil
			case key.Matches(msg, m.keys.AboutSection):
				m.section = SectionAbout
				return m, nil
			case key.Matches(msg, m.keys.SkillsSection):
				m.section = SectionSkills
				return m, nil
			case key.Matches(msg, m.keys.ProjectsSection):
				m.section = SectionProjects
				return m, nil
			case key.Matches(msg, m.keys.SocialSection):
				m.section = SectionSocial
				return m, nil
			case key.Matches(msg, m.keys.ThemeSection):
				m.section = SectionTheme
				return m, nil
			case key.Matches(msg, m.keys.NextSection):
				m.section = Section((int(m.section) + 1) % len(Sections()))
				return m, nil
			case key.Matches(msg, m.keys.PrevSection):
				m.section = Section((int(m.section) + len(Sections()) - 1) % len(Sections()))
				return m, nil
			case key.Matches(msg, m.keys.Preview):
				m.previousScreen = ScreenEditor
				m.screen = ScreenPreview
				if p := m.app.Store.Get(m.portfolioID); p != nil {
					m.previewView = m.previewView.SetPortfolio(*p)
				}
				return m, nil
			}
		}

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case views.OpenPortfolioRequest:
		m.openPortfolio(msg.ID)
		return m, nil

	case views.PreviewRequest:
		if p := m.app.Store.Get(msg.ID); p != nil {
			m.previousScreen = m.screen
			m.screen = ScreenPreview
			m.previewView = m.previewView.SetPortfolio(*p)
		}
		return m, nil

	case views.SavedMsg:
		if msg.Err != nil {
			m.errorMsg = fmt.Sprintf("save failed: %v", msg.Err)
		} else {
			m.statusMsg = fmt.Sprintf("Saved %s", msg.Section)
		}
		m.refreshPortfolio()
		return m, nil
	}

	// Delegate to current screen
	rootDebugf("Delegating to screen: %v", m.screen)
	switch m.screen {
	case ScreenList:
		newListView, cmd := m.listView.Update(msg)
		m.listView = newListView
		cmds = append(cmds, cmd)
	case ScreenEditor:
		newView, cmd := m.sectionViews[m.section].Update(msg)
		m.sectionViews[m.section] = newView
		cmds = append(cmds, cmd)
	case ScreenPreview:
		newPreview, cmd := m.previewView.Update(msg)
		m.previewView = newPreview
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

const sidebarWidth = 16

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	styles := theme.Current.Styles
	var sections []string

	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}
	var content string

	if m.helpVisible {
		content = m.renderHelp()
	} else {
		switch m.screen {
		case ScreenList:
			content = m.listView.View()
		case ScreenEditor:
			content = m.renderEditor()
		case ScreenPreview:
			content = m.previewView.View()
		default:
			content = styles.Panel.Render("Screen not implemented")
		}
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderEditor renders the section sidebar next to the active panel
func (m RootModel) renderEditor() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	p := m.app.Store.Get(m.portfolioID)
	counts := func(s Section) string {
		if p == nil {
			return ""
		}
		switch s {
		case SectionSkills:
			return fmt.Sprintf(" %d", len(p.Data.Skills))
		case SectionProjects:
			return fmt.Sprintf(" %d", len(p.Data.Projects))
		}
		return ""
	}

	var items []string
	for i, s := range Sections() {
		label := fmt.Sprintf("%d %s%s", i+1, s.String(), counts(s))
		if s == m.section {
			items = append(items, styles.SectionActive.Width(sidebarWidth).Render(label))
		} else {
			items = append(items, styles.SectionNormal.Width(sidebarWidth).Render(label))
		}
	}
	sidebar := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(t.Border).
		Render(strings.Join(items, "\n"))

	panel := m.sectionViews[m.section].View()

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " "+panel)
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("folio")

	metaStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)

	screenIndicator := metaStyle.Render(fmt.Sprintf("[%s]", m.screen.String()))
	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, screenIndicator)

	if m.screen != ScreenList {
		if p := m.app.Store.Get(m.portfolioID); p != nil {
			doc := metaStyle.Render(fmt.Sprintf("%s (/%s)", p.Name, p.Slug))
			leftSide = lipgloss.JoinHorizontal(lipgloss.Center, leftSide, doc)
		}
	}

	rightSide := metaStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + rightSide
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string

	switch m.screen {
	case ScreenList:
		if m.listView.IsInputMode() {
			line1 = key("enter", "confirm") + sep + key("esc", "cancel")
		} else {
			line1 = key("a", "add") + sep +
				key("enter", "open") + sep +
				key("v", "preview") + sep +
				key("d", "delete")
			line2 = key("j/k", "navigate") + sep +
				key("ctrl+t", "theme") + sep +
				key("?", "help") + sep +
				key("q", "quit")
		}

	case ScreenEditor:
		if m.isInputMode() {
			line1 = key("enter/tab", "next field") + sep + key("esc", "cancel")
		} else {
			line1 = key("1-6", "sections") + sep +
				key("[/]", "prev/next") + sep +
				key("v", "preview") + sep +
				key("esc", "back")
			line2 = key("e", "edit") + sep +
				key("a", "add entry") + sep +
				key("d", "delete entry") + sep +
				key("?", "help")
		}

	case ScreenPreview:
		line1 = key("j/k", "scroll") + sep +
			key("g/G", "top/bottom") + sep +
			key("esc", "back")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Folio Help"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Portfolios"))
	b.WriteString("\n")
	listKeys := [][]string{
		{"a", "Create a portfolio"},
		{"enter", "Open in the editor"},
		{"v", "Preview the public page"},
		{"d", "Delete (asks to confirm)"},
		{"j/k, g/G", "Navigate the list"},
	}
	for _, kv := range listKeys {
		b.WriteString(keyStyle.Render(kv[0]))
		b.WriteString(descStyle.Render(kv[1]))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Editor"))
	b.WriteString("\n")
	editKeys := [][]string{
		{"1-6", "Jump to a section"},
		{"[ / ]", "Previous/next section"},
		{"e", "Edit the focused section"},
		{"a", "Add a list entry"},
		{"d", "Delete a list entry"},
		{"J / K", "Reorder list entries"},
		{"f", "Toggle featured (projects)"},
		{"tab", "Switch area (about)"},
		{"esc", "Back to the list"},
	}
	for _, kv := range editKeys {
		b.WriteString(keyStyle.Render(kv[0]))
		b.WriteString(descStyle.Render(kv[1]))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("System"))
	b.WriteString("\n")
	sysKeys := [][]string{
		{"ctrl+t", "Cycle admin theme"},
		{"q / ctrl+c", "Quit"},
	}
	for _, kv := range sysKeys {
		b.WriteString(keyStyle.Render(kv[0]))
		b.WriteString(descStyle.Render(kv[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press ? or esc to close"))

	return b.String()
}

// cycleTheme cycles through available admin themes
func (m *RootModel) cycleTheme() {
	themes := theme.Available()
	current := theme.Current.Theme.Name

	for i, t := range themes {
		if t.Name == current {
			next := themes[(i+1)%len(themes)]
			theme.SetTheme(next)
			m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
			return
		}
	}
}
