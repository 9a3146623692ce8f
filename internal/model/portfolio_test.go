package model

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"My Site", "my-site"},
		{"  A/B Test!! ", "ab-test"},
		{"Default Portfolio", "default-portfolio"},
		{"already-slugged", "already-slugged"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"ÜmlÄut", "mlut"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		if got := Slugify(c.name); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDefaultDataIsIndependent(t *testing.T) {
	a := DefaultData()
	b := DefaultData()

	a.Skills[0].Name = "COBOL"
	a.Projects[0].Technologies[0] = "Fortran"
	a.About.Education[0].Degree = "None"

	if b.Skills[0].Name != "JavaScript" {
		t.Errorf("skills shared between DefaultData copies")
	}
	if b.Projects[0].Technologies[0] != "React" {
		t.Errorf("project technologies shared between DefaultData copies")
	}
	if b.About.Education[0].Degree != "Bachelor of Computer Science" {
		t.Errorf("education entries shared between DefaultData copies")
	}
}

func TestDataPatchApplyReplacesWholeSections(t *testing.T) {
	data := DefaultData()
	before := data.Clone()

	patch := DataPatch{
		Personal: &Personal{Name: "Jane Roe"},
	}
	after := patch.Apply(data)

	// The personal section is replaced wholesale, not field-merged
	if after.Personal.Name != "Jane Roe" {
		t.Errorf("personal.name = %q, want %q", after.Personal.Name, "Jane Roe")
	}
	if after.Personal.Email != "" {
		t.Errorf("personal.email = %q, want empty (section replace, not merge)", after.Personal.Email)
	}

	// Untouched sections survive byte-for-byte
	if len(after.Skills) != len(before.Skills) || after.Skills[0] != before.Skills[0] {
		t.Errorf("skills changed by a personal-only patch")
	}
	if after.About.Description != before.About.Description {
		t.Errorf("about changed by a personal-only patch")
	}
	if after.Theme != before.Theme {
		t.Errorf("theme changed by a personal-only patch")
	}
}

func TestDataPatchApplyCopiesSlices(t *testing.T) {
	skills := []Skill{{Name: "Go", Level: 70, Category: "Backend"}}
	patch := DataPatch{Skills: &skills}

	after := patch.Apply(DefaultData())
	skills[0].Level = 5

	if after.Skills[0].Level != 70 {
		t.Errorf("patched skills alias the caller's slice")
	}
}

func TestDataPatchIsZero(t *testing.T) {
	if !(DataPatch{}).IsZero() {
		t.Errorf("empty patch should be zero")
	}
	if (DataPatch{Social: &Social{}}).IsZero() {
		t.Errorf("patch with a section should not be zero")
	}
}

func TestValidatePortfolios(t *testing.T) {
	good := DefaultPortfolio(time.Now().UTC())
	if err := ValidatePortfolios([]Portfolio{good}); err != nil {
		t.Fatalf("default portfolio should validate: %v", err)
	}

	missingID := good
	missingID.ID = ""
	if err := ValidatePortfolios([]Portfolio{missingID}); err == nil {
		t.Errorf("portfolio without id should fail validation")
	}

	badLayout := DefaultPortfolio(time.Now().UTC())
	badLayout.Data.Theme.Layout = "brutalist"
	if err := ValidatePortfolios([]Portfolio{badLayout}); err == nil {
		t.Errorf("unknown layout should fail validation")
	}

	badLevel := DefaultPortfolio(time.Now().UTC())
	badLevel.Data.Skills = []Skill{{Name: "Go", Level: 150, Category: "Backend"}}
	if err := ValidatePortfolios([]Portfolio{badLevel}); err == nil {
		t.Errorf("skill level above 100 should fail validation")
	}

	badColor := DefaultPortfolio(time.Now().UTC())
	badColor.Data.Theme.PrimaryColor = "blue"
	if err := ValidatePortfolios([]Portfolio{badColor}); err == nil {
		t.Errorf("non-hex theme color should fail validation")
	}
}

func TestValidateTheme(t *testing.T) {
	ok := Theme{PrimaryColor: "#112233", SecondaryColor: "#abcdef", Layout: LayoutMinimal}
	if err := ValidateTheme(ok); err != nil {
		t.Fatalf("valid theme rejected: %v", err)
	}
	bad := Theme{PrimaryColor: "112233", SecondaryColor: "#abcdef", Layout: LayoutMinimal}
	if err := ValidateTheme(bad); err == nil {
		t.Errorf("color without # should fail validation")
	}
}
