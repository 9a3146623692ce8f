package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/folio/internal/app"
	"github.com/dori/folio/internal/config"
	"github.com/dori/folio/internal/ui"
	"github.com/dori/folio/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "new":
			handleNew(os.Args[2:])
			return
		case "list":
			handleList(os.Args[2:])
			return
		case "export":
			handleExport(os.Args[2:])
			return
		case "version":
			fmt.Printf("folio v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	portfolioFlag := flag.String("portfolio", "", "Open this portfolio id in the editor")
	sectionFlag := flag.String("section", "", "Starting editor section (personal, about, skills, projects, social, theme)")
	themeFlag := flag.String("theme", "", "Admin theme (nord, dracula, gruvbox, catppuccin)")
	dataDirFlag := flag.String("data-dir", "", "Override the data directory")
	configFlag := flag.String("config", config.DefaultPath(), "Path to the config file")
	flag.Parse()

	if err := runTUI(*portfolioFlag, *sectionFlag, *themeFlag, *dataDirFlag, *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `folio - a terminal portfolio CMS

Usage:
  folio                     Start the admin TUI
  folio new <name>          Create a portfolio
  folio list                List portfolios
  folio export [id]         Print portfolio JSON (all documents when no id)
  folio version             Show version
  folio help                Show this help

TUI Options:
  --portfolio <id>   Open this portfolio in the editor
  --section <name>   Starting section (personal, about, skills, projects, social, theme)
  --theme <name>     Admin theme (nord, dracula, gruvbox, catppuccin)
  --data-dir <path>  Override the data directory
  --config <path>    Config file (default ~/.config/folio/config.yaml)

Keybindings:
  Portfolios:   a             Create a portfolio
                enter         Open in the editor
                v             Preview the public page
                d             Delete (with confirm)

  Editor:       1-6           Jump to a section
                [ / ]         Previous/next section
                e             Edit the focused section
                a / d         Add/delete a list entry
                J / K         Reorder list entries

  System:       ctrl+t        Cycle admin theme
                ?             Help
                q             Quit

For more info: https://github.com/dori/folio`

	fmt.Println(help)
}

// openApp builds an App from config plus CLI overrides. Used by the TUI and
// the mutating subcommands so both take the single-instance lock.
func openApp(dataDir, configPath string) (*app.App, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	appCfg := app.DefaultConfig()
	if cfg.DataDir != "" {
		appCfg.DataDir = cfg.DataDir
		appCfg.StoragePath = filepath.Join(cfg.DataDir, "folio.db")
	}

	application, err := app.New(appCfg)
	if err != nil {
		return nil, nil, err
	}
	return application, cfg, nil
}

func handleNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "Override the data directory")
	configPath := fs.String("config", config.DefaultPath(), "Path to the config file")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: folio new <name>")
		os.Exit(1)
	}
	name := strings.Join(fs.Args(), " ")

	application, _, err := openApp(*dataDir, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	id, err := application.Store.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio: %v\n", err)
		os.Exit(1)
	}

	p := application.Store.Get(id)
	fmt.Printf("Created: %s (id %s, slug /%s)\n", p.Name, p.ID, p.Slug)
}

func handleList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "Override the data directory")
	configPath := fs.String("config", config.DefaultPath(), "Path to the config file")
	fs.Parse(args)

	application, _, err := openApp(*dataDir, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG\tPROJECTS\tSKILLS\tUPDATED")
	for _, p := range application.Store.Portfolios() {
		active := ""
		if p.IsActive {
			active = " *"
		}
		fmt.Fprintf(w, "%s\t%s%s\t/%s\t%d\t%d\t%s\n",
			p.ID, p.Name, active, p.Slug,
			len(p.Data.Projects), len(p.Data.Skills),
			p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func handleExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "Override the data directory")
	configPath := fs.String("config", config.DefaultPath(), "Path to the config file")
	fs.Parse(args)

	application, _, err := openApp(*dataDir, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	var out interface{}
	if fs.NArg() > 0 {
		p := application.Store.Get(fs.Arg(0))
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: no portfolio with id %q\n", fs.Arg(0))
			os.Exit(1)
		}
		out = p
	} else {
		out = application.Store.Portfolios()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(portfolioID, sectionName, themeName, dataDir, configPath string) error {
	application, cfg, err := openApp(dataDir, configPath)
	if err != nil {
		return err
	}
	defer application.Close()

	// Flag wins over config file
	name := cfg.Theme
	if themeName != "" {
		name = themeName
	}
	if name != "" {
		if t, ok := theme.ByName(name); ok {
			theme.SetTheme(t)
		} else {
			return fmt.Errorf("unknown theme %q", name)
		}
	}

	opts := ui.Options{
		PortfolioID:   portfolioID,
		ConfirmDelete: cfg.ConfirmDelete,
	}
	if sectionName != "" {
		s, ok := ui.ParseSection(sectionName)
		if !ok {
			return fmt.Errorf("unknown section %q", sectionName)
		}
		opts.Section = s
	}

	m := ui.NewRootModel(application, opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
