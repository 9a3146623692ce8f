package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/folio/internal/store"
)

type memBackend struct {
	values map[string]string
}

func newMemBackend() *memBackend {
	return &memBackend{values: make(map[string]string)}
}

func (b *memBackend) Get(key string) (string, bool, error) {
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *memBackend) Set(key, value string) error {
	b.values[key] = value
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(newMemBackend())
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

// drive feeds a command's message back into the view, like the Bubble Tea
// runtime would
func drive(t *testing.T, v ListView, cmd tea.Cmd) ListView {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return v
		}
		v, cmd = v.Update(msg)
	}
	return v
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestListViewShowsSeededPortfolio(t *testing.T) {
	s := newTestStore(t)
	v := NewListView(s, true).SetSize(80, 24)
	v = drive(t, v, v.Init())

	if len(v.portfolios) != 1 {
		t.Fatalf("expected 1 seeded portfolio, got %d", len(v.portfolios))
	}
	if v.portfolios[0].Name != "Default Portfolio" {
		t.Errorf("unexpected name %q", v.portfolios[0].Name)
	}
}

func TestListViewAddFlow(t *testing.T) {
	s := newTestStore(t)
	v := NewListView(s, true).SetSize(80, 24)
	v = drive(t, v, v.Init())

	v, _ = v.Update(keyMsg("a"))
	if !v.IsInputMode() {
		t.Fatal("expected input mode after 'a'")
	}

	for _, r := range "My Site" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	var cmd tea.Cmd
	v, cmd = v.Update(keyMsg("enter"))
	v = drive(t, v, cmd)

	if v.IsInputMode() {
		t.Error("expected normal mode after submit")
	}
	if len(v.portfolios) != 2 {
		t.Fatalf("expected 2 portfolios, got %d", len(v.portfolios))
	}
	if got := v.portfolios[1].Slug; got != "my-site" {
		t.Errorf("slug = %q, want %q", got, "my-site")
	}
}

func TestListViewAddCancel(t *testing.T) {
	s := newTestStore(t)
	v := NewListView(s, true).SetSize(80, 24)
	v = drive(t, v, v.Init())

	v, _ = v.Update(keyMsg("a"))
	v, _ = v.Update(keyMsg("esc"))

	if v.IsInputMode() {
		t.Error("expected normal mode after cancel")
	}
	if len(s.Portfolios()) != 1 {
		t.Errorf("cancel should not create a portfolio")
	}
}

func TestListViewDeleteAsksForConfirmation(t *testing.T) {
	s := newTestStore(t)
	v := NewListView(s, true).SetSize(80, 24)
	v = drive(t, v, v.Init())

	v, _ = v.Update(keyMsg("d"))
	if v.mode != ListModeConfirmDelete {
		t.Fatal("expected confirm-delete mode")
	}

	// 'n' keeps the document
	v, _ = v.Update(keyMsg("n"))
	if len(s.Portfolios()) != 1 {
		t.Fatal("declined delete should keep the portfolio")
	}

	// 'y' removes it
	v, _ = v.Update(keyMsg("d"))
	var cmd tea.Cmd
	v, cmd = v.Update(keyMsg("y"))
	v = drive(t, v, cmd)

	if len(s.Portfolios()) != 0 {
		t.Errorf("expected empty collection after confirmed delete, got %d", len(s.Portfolios()))
	}
}

func TestListViewDeleteWithoutConfirmation(t *testing.T) {
	s := newTestStore(t)
	v := NewListView(s, false).SetSize(80, 24)
	v = drive(t, v, v.Init())

	var cmd tea.Cmd
	v, cmd = v.Update(keyMsg("d"))
	v = drive(t, v, cmd)

	if len(s.Portfolios()) != 0 {
		t.Errorf("expected immediate delete with confirmation disabled")
	}
}

func TestListViewOpenRequest(t *testing.T) {
	s := newTestStore(t)
	v := NewListView(s, true).SetSize(80, 24)
	v = drive(t, v, v.Init())

	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	req, ok := cmd().(OpenPortfolioRequest)
	if !ok {
		t.Fatalf("expected OpenPortfolioRequest, got %T", cmd())
	}
	if req.ID != "1" {
		t.Errorf("request id = %q, want %q", req.ID, "1")
	}
}

func TestListViewCursorNavigation(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create("Second"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("Third"); err != nil {
		t.Fatal(err)
	}

	v := NewListView(s, true).SetSize(80, 40)
	v = drive(t, v, v.Init())

	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))
	if v.cursor != 2 {
		t.Errorf("cursor = %d, want 2", v.cursor)
	}
	// Stays at the end
	v, _ = v.Update(keyMsg("j"))
	if v.cursor != 2 {
		t.Errorf("cursor = %d, want 2", v.cursor)
	}
	v, _ = v.Update(keyMsg("g"))
	if v.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", v.cursor)
	}
	v, _ = v.Update(keyMsg("G"))
	if v.cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", v.cursor)
	}
}
