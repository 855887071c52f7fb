package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nota/internal/cli"
	"nota/internal/config"
	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui"
)

func main() {
	// Parse CLI flags
	dataFlag := flag.String("data", "", "Notes dataset file (notes-data.json)")
	dirFlag := flag.String("dir", "", "Notes directory with a notes.json registry")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{
		DataFile: *dataFlag,
		NotesDir: *dirFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if err := cfg.EnsureNotesDir(); err != nil {
		log.Fatalf("Failed to create notes directory: %v", err)
	}

	if err := logs.Initialize(cfg.LogDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// A dataset file takes precedence over a notes directory.
	var src notes.DataSource
	if cfg.DataFile != "" {
		src = notes.NewFileSource(cfg.DataFile)
	} else {
		dirSrc := notes.NewDirSource(cfg.NotesDir)
		dirSrc.PreviewLength = cfg.PreviewLength
		src = dirSrc
	}

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		os.Exit(cli.Run(args, src, cfg.MinScore))
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(src, cfg.MinScore)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
