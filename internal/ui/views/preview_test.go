package views

import (
	"strings"
	"testing"
	"time"

	"github.com/dori/folio/internal/model"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func previewFixture() model.Portfolio {
	p := model.DefaultPortfolio(testTime())
	p.Data.Projects = []model.Project{
		{ID: "p1", Title: "Orbit Tracker", Description: "Tracks satellites", Technologies: []string{"Go", "SQLite"}, Featured: true},
	}
	p.Data.Skills = []model.Skill{
		{Name: "Go", Level: 90, Category: "Backend"},
		{Name: "CSS", Level: 60, Category: "Frontend"},
	}
	return p
}

func TestPreviewRendersAllSections(t *testing.T) {
	v := NewPreviewView().SetSize(100, 40).SetPortfolio(previewFixture())
	out := v.View()

	for _, want := range []string{
		"John Doe",
		"About",
		"Skills",
		"Backend",
		"Projects",
		"Orbit Tracker",
		"★",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestPreviewLayoutVariants(t *testing.T) {
	for _, layout := range model.Layouts() {
		p := previewFixture()
		p.Data.Theme.Layout = layout

		v := NewPreviewView().SetSize(100, 40).SetPortfolio(p)
		out := v.View()
		if !strings.Contains(out, p.Data.Personal.Name) {
			t.Errorf("layout %s: missing personal name", layout)
		}
	}
}

func TestPreviewScrollClamps(t *testing.T) {
	v := NewPreviewView().SetSize(80, 10).SetPortfolio(previewFixture())

	v, _ = v.Update(keyMsg("k"))
	if v.scroll != 0 {
		t.Errorf("scroll above top: %d", v.scroll)
	}

	v, _ = v.Update(keyMsg("G"))
	bottom := v.scroll
	v, _ = v.Update(keyMsg("j"))
	if v.scroll != bottom {
		t.Errorf("scroll past bottom: %d > %d", v.scroll, bottom)
	}

	v, _ = v.Update(keyMsg("g"))
	if v.scroll != 0 {
		t.Errorf("scroll after g = %d, want 0", v.scroll)
	}
}
