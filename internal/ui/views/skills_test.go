package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/store"
)

// sectionKey presses one key and applies any resulting save, refreshing the
// view from the store the way the root model does
func sectionKey(t *testing.T, s *store.Store, v SectionView, id, key string) SectionView {
	t.Helper()
	v, cmd := v.Update(keyMsg(key))
	if cmd != nil {
		if saved, ok := cmd().(SavedMsg); ok {
			if saved.Err != nil {
				t.Fatalf("save failed: %v", saved.Err)
			}
			v = v.SetPortfolio(*s.Get(id))
		}
	}
	return v
}

func skillsFixture(t *testing.T) (*store.Store, SectionView) {
	t.Helper()
	s := newTestStore(t)
	p := s.Get(model.DefaultPortfolioID)

	var v SectionView = NewSkillsView(s)
	v = v.SetSize(80, 24).SetPortfolio(*p)
	return s, v
}

func TestSkillsReorder(t *testing.T) {
	s, v := skillsFixture(t)

	before := s.Get(model.DefaultPortfolioID).Data.Skills
	first, second := before[0].Name, before[1].Name

	sectionKey(t, s, v, model.DefaultPortfolioID, "J")

	after := s.Get(model.DefaultPortfolioID).Data.Skills
	if after[0].Name != second || after[1].Name != first {
		t.Errorf("reorder failed: got %q, %q", after[0].Name, after[1].Name)
	}
}

func TestSkillsDelete(t *testing.T) {
	s, v := skillsFixture(t)

	before := s.Get(model.DefaultPortfolioID).Data.Skills
	removed := before[0].Name

	sectionKey(t, s, v, model.DefaultPortfolioID, "d")

	after := s.Get(model.DefaultPortfolioID).Data.Skills
	if len(after) != len(before)-1 {
		t.Fatalf("len = %d, want %d", len(after), len(before)-1)
	}
	if after[0].Name == removed {
		t.Errorf("first skill %q was not removed", removed)
	}
}

func TestSkillsDeleteLeavesOtherSections(t *testing.T) {
	s, v := skillsFixture(t)

	sectionKey(t, s, v, model.DefaultPortfolioID, "d")

	p := s.Get(model.DefaultPortfolioID)
	if p.Data.Personal.Name != "John Doe" {
		t.Error("personal section changed by a skills save")
	}
	if len(p.Data.Projects) == 0 {
		t.Error("projects section changed by a skills save")
	}
}

func TestSkillsAddOpensForm(t *testing.T) {
	_, v := skillsFixture(t)

	v, _ = v.Update(keyMsg("a"))
	if !v.IsInputMode() {
		t.Fatal("expected input mode after 'a'")
	}

	// esc aborts the form without saving
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if v.IsInputMode() {
		t.Error("expected browse mode after esc")
	}
}

func TestProjectsToggleFeatured(t *testing.T) {
	s := newTestStore(t)
	p := s.Get(model.DefaultPortfolioID)

	var v SectionView = NewProjectsView(s)
	v = v.SetSize(80, 24).SetPortfolio(*p)

	wasFeatured := p.Data.Projects[0].Featured
	sectionKey(t, s, v, model.DefaultPortfolioID, "f")

	got := s.Get(model.DefaultPortfolioID).Data.Projects[0].Featured
	if got == wasFeatured {
		t.Errorf("featured flag did not toggle")
	}
}
