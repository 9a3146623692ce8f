package ui

// Screen represents which top-level screen the admin shell is showing
type Screen int

const (
	ScreenList Screen = iota
	ScreenEditor
	ScreenPreview
)

// String returns the display name for a screen
func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "Portfolios"
	case ScreenEditor:
		return "Editor"
	case ScreenPreview:
		return "Preview"
	default:
		return "Unknown"
	}
}

// Section represents the active editor panel, mirroring the six named
// top-level groupings of a portfolio document
type Section int

const (
	SectionPersonal Section = iota
	SectionAbout
	SectionSkills
	SectionProjects
	SectionSocial
	SectionTheme
)

// Sections returns all sections in sidebar order
func Sections() []Section {
	return []Section{
		SectionPersonal,
		SectionAbout,
		SectionSkills,
		SectionProjects,
		SectionSocial,
		SectionTheme,
	}
}

// String returns the display name for a section
func (s Section) String() string {
	switch s {
	case SectionPersonal:
		return "Personal"
	case SectionAbout:
		return "About"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionSocial:
		return "Social"
	case SectionTheme:
		return "Theme"
	default:
		return "Unknown"
	}
}

// ParseSection resolves a section by its lowercase name (used by the
// --section flag)
func ParseSection(name string) (Section, bool) {
	switch name {
	case "personal":
		return SectionPersonal, true
	case "about":
		return SectionAbout, true
	case "skills":
		return SectionSkills, true
	case "projects":
		return SectionProjects, true
	case "social":
		return SectionSocial, true
	case "theme":
		return SectionTheme, true
	}
	return 0, false
}

// Messages for inter-component communication

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ThemeChangedMsg indicates the admin UI theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}
