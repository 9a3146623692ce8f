package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
)

// SectionView is implemented by every editor panel. Panels follow the
// browse/edit split: browsing renders a read-only summary and leaves global
// keys to the root model; editing captures input until submit or cancel.
type SectionView interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (SectionView, tea.Cmd)
	View() string
	SetSize(width, height int) SectionView
	SetPortfolio(p model.Portfolio) SectionView
	IsInputMode() bool
}

// Requests sent from views to the root model
// (Defined here to avoid a circular import with the ui package)

// OpenPortfolioRequest asks the root model to open a portfolio in the editor
type OpenPortfolioRequest struct {
	ID string
}

// PreviewRequest asks the root model to show the full-document preview
type PreviewRequest struct {
	ID string
}

// SavedMsg reports the outcome of a section save
type SavedMsg struct {
	ID      string
	Section string
	Err     error
}

// saveSection persists a single-section patch through the store
func saveSection(st *store.Store, id, section string, patch model.DataPatch) tea.Cmd {
	return func() tea.Msg {
		err := st.Update(id, patch)
		return SavedMsg{ID: id, Section: section, Err: err}
	}
}

// truncate shortens s to width runes, appending an ellipsis when cut
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
