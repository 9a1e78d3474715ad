// cmd/consolidate/main.go
//
// Entry point for the consolidate CLI. Running `consolidate` inside an SFMC
// devtools project prompts for a retrieve subfolder and an output name, then
// flattens every metadata JSON file under that folder into one CSV.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/config"
	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running consolidate: %v\n", err)
		os.Exit(1)
	}
}
