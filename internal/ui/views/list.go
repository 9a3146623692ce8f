package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
	"github.com/dori/folio/internal/ui/theme"
)

// ListMode represents the current input mode of the portfolio list
type ListMode int

const (
	ListModeNormal ListMode = iota
	ListModeAdd
	ListModeConfirmDelete
)

// ListView shows all portfolio documents as cards
type ListView struct {
	store  *store.Store
	width  int
	height int

	portfolios   []model.Portfolio
	cursor       int
	scrollOffset int

	mode          ListMode
	input         textinput.Model
	deleteID      string
	deleteName    string
	confirmDelete bool
	statusMsg     string
}

type portfoliosLoadedMsg struct {
	portfolios []model.Portfolio
}

type portfolioCreatedMsg struct {
	id  string
	err error
}

type portfolioDeletedMsg struct {
	id  string
	err error
}

// NewListView creates a new portfolio list view
func NewListView(st *store.Store, confirmDelete bool) ListView {
	ti := textinput.New()
	ti.Placeholder = "Portfolio name..."
	ti.CharLimit = 120

	return ListView{
		store:         st,
		input:         ti,
		confirmDelete: confirmDelete,
	}
}

// Init loads the portfolio collection
func (v ListView) Init() tea.Cmd {
	return v.loadPortfolios
}

// IsInputMode returns true when the view is capturing text input
func (v ListView) IsInputMode() bool {
	return v.mode != ListModeNormal
}

// SetSize updates the view dimensions
func (v ListView) SetSize(width, height int) ListView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// Selected returns the portfolio under the cursor, or nil when the list is
// empty
func (v ListView) Selected() *model.Portfolio {
	if len(v.portfolios) == 0 || v.cursor >= len(v.portfolios) {
		return nil
	}
	p := v.portfolios[v.cursor]
	return &p
}

// Update handles messages for the list view
func (v ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	switch msg := msg.(type) {
	case portfoliosLoadedMsg:
		v.portfolios = msg.portfolios
		if v.cursor >= len(v.portfolios) {
			v.cursor = max(0, len(v.portfolios)-1)
		}
		return v, nil

	case portfolioCreatedMsg:
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("Create failed: %v", msg.err)
			return v, v.loadPortfolios
		}
		v.statusMsg = "Portfolio created"
		// Move the cursor to the new document after reload
		v.cursor = len(v.portfolios)
		return v, v.loadPortfolios

	case portfolioDeletedMsg:
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return v, v.loadPortfolios
		}
		v.statusMsg = "Portfolio deleted"
		return v, v.loadPortfolios

	case tea.KeyMsg:
		switch v.mode {
		case ListModeAdd:
			return v.handleAddKey(msg)
		case ListModeConfirmDelete:
			return v.handleConfirmKey(msg)
		default:
			return v.handleNormalKey(msg)
		}
	}

	return v, nil
}

func (v ListView) handleNormalKey(msg tea.KeyMsg) (ListView, tea.Cmd) {
	v.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.portfolios)-1 {
			v.cursor++
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, len(v.portfolios)-1)

	case "a":
		v.mode = ListModeAdd
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "d":
		if p := v.Selected(); p != nil {
			if v.confirmDelete {
				v.mode = ListModeConfirmDelete
				v.deleteID = p.ID
				v.deleteName = p.Name
				return v, nil
			}
			return v, v.deletePortfolio(p.ID)
		}

	case "enter":
		if p := v.Selected(); p != nil {
			id := p.ID
			return v, func() tea.Msg { return OpenPortfolioRequest{ID: id} }
		}

	case "v":
		if p := v.Selected(); p != nil {
			id := p.ID
			return v, func() tea.Msg { return PreviewRequest{ID: id} }
		}
	}

	v.ensureCursorVisible()
	return v, nil
}

func (v ListView) handleAddKey(msg tea.KeyMsg) (ListView, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(v.input.Value())
		v.mode = ListModeNormal
		v.input.Blur()
		if name == "" {
			return v, nil
		}
		return v, v.createPortfolio(name)

	case "esc":
		v.mode = ListModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v ListView) handleConfirmKey(msg tea.KeyMsg) (ListView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := v.deleteID
		v.mode = ListModeNormal
		v.deleteID = ""
		v.deleteName = ""
		return v, v.deletePortfolio(id)

	case "n", "N", "esc":
		v.mode = ListModeNormal
		v.deleteID = ""
		v.deleteName = ""
	}
	return v, nil
}

func (v ListView) loadPortfolios() tea.Msg {
	return portfoliosLoadedMsg{portfolios: v.store.Portfolios()}
}

func (v ListView) createPortfolio(name string) tea.Cmd {
	return func() tea.Msg {
		id, err := v.store.Create(name)
		return portfolioCreatedMsg{id: id, err: err}
	}
}

func (v ListView) deletePortfolio(id string) tea.Cmd {
	return func() tea.Msg {
		return portfolioDeletedMsg{id: id, err: v.store.Delete(id)}
	}
}

// cardHeight is the rendered height of one portfolio card including border
const cardHeight = 5

func (v ListView) visibleCardCount() int {
	available := (v.height - 2) / cardHeight
	if available < 1 {
		available = 1
	}
	return available
}

func (v *ListView) ensureCursorVisible() {
	visible := v.visibleCardCount()

	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// View renders the portfolio list
func (v ListView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder

	switch v.mode {
	case ListModeAdd:
		b.WriteString(styles.Title.Render("New portfolio"))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n")
		return b.String()

	case ListModeConfirmDelete:
		confirm := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		b.WriteString(confirm.Render(fmt.Sprintf("Delete %q? This cannot be undone. (y/n)", v.deleteName)))
		b.WriteString("\n")
		return b.String()
	}

	if len(v.portfolios) == 0 {
		b.WriteString(styles.Label.Render("No portfolios yet. Press 'a' to create one."))
		return b.String()
	}

	visible := v.visibleCardCount()
	end := min(len(v.portfolios), v.scrollOffset+visible)
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.renderCard(v.portfolios[i], i == v.cursor))
		b.WriteString("\n")
	}

	if v.statusMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Info).Render(v.statusMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (v ListView) renderCard(p model.Portfolio, selected bool) string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	cardWidth := max(30, v.width-4)
	innerWidth := cardWidth - 2

	active := " "
	if p.IsActive {
		active = lipgloss.NewStyle().Foreground(t.ActiveFlag).Render("●")
	}

	title := fmt.Sprintf("%s %s %s", active,
		styles.CardTitle.Render(truncate(p.Name, innerWidth-20)),
		styles.CardMeta.Render("/"+p.Slug))

	person := styles.Value.Render(truncate(p.Data.Personal.Name, innerWidth/2))
	if p.Data.Personal.Title != "" {
		person += styles.CardMeta.Render(" — " + truncate(p.Data.Personal.Title, innerWidth/2))
	}

	stats := styles.CardMeta.Render(fmt.Sprintf(
		"%d projects · %d skills · %d experience · updated %s",
		len(p.Data.Projects),
		len(p.Data.Skills),
		len(p.Data.About.Experience),
		p.UpdatedAt.Format("Jan 02, 2006"),
	))

	content := strings.Join([]string{title, person, stats}, "\n")

	card := styles.CardNormal
	if selected {
		card = styles.CardSelected
	}
	return card.Width(cardWidth).Render(content)
}
