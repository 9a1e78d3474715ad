// internal/tui/app.go
//
// The interactive driver, built on bubbletea's Elm-style loop:
//
// 1. Model: the App struct below holds all state
// 2. Update: advances through the two prompts and the run
// 3. View: renders the current prompt or the run outcome
//
// The flow is: folder prompt -> output prompt -> pipeline run -> result.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/config"
	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/logbook"
	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/pipeline"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateFolderPrompt appState = iota // asking for the source folder name
	stateOutputPrompt                 // asking for the output CSV name
	stateRunning                      // pipeline in flight
	stateDone                         // showing the terminal outcome
)

const logTailLines = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B"))
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#98C379"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// runFinishedMsg carries the pipeline result back into the Update loop.
type runFinishedMsg struct {
	summary pipeline.Summary
	err     error
}

// App is the main application model.
type App struct {
	state   appState
	config  *config.Config
	logbook *logbook.Logbook
	runner  *pipeline.Runner

	folderInput textinput.Model
	outputInput textinput.Model
	folder      string
	output      string

	summary pipeline.Summary
	runErr  error

	width  int
	height int
}

// NewApp builds the driver model for the given configuration.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: nil config")
	}
	book, err := logbook.New(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	folder := textinput.New()
	folder.Prompt = "> "
	folder.Placeholder = "folder name"
	folder.CharLimit = 256
	folder.Focus()

	output := textinput.New()
	output.Prompt = "> "
	output.Placeholder = "consolidated"
	output.CharLimit = 256

	return &App{
		state:       stateFolderPrompt,
		config:      cfg,
		logbook:     book,
		runner:      pipeline.New(book),
		folderInput: folder,
		outputInput: output,
	}, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case runFinishedMsg:
		a.summary = msg.summary
		a.runErr = msg.err
		a.state = stateDone
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a.handleEnter()
		}
		if a.state == stateDone {
			// Any other key closes the result screen.
			return a, tea.Quit
		}
	}

	return a, a.updateInputs(msg)
}

// handleEnter advances the prompt sequence.
func (a *App) handleEnter() (tea.Model, tea.Cmd) {
	switch a.state {
	case stateFolderPrompt:
		value := strings.TrimSpace(a.folderInput.Value())
		if value == "" {
			return a, nil
		}
		a.folder = value
		a.folderInput.Blur()
		a.state = stateOutputPrompt
		return a, a.outputInput.Focus()

	case stateOutputPrompt:
		value := strings.TrimSpace(a.outputInput.Value())
		if value == "" {
			value = a.outputInput.Placeholder
		}
		a.output = value
		a.outputInput.Blur()
		a.state = stateRunning
		return a, a.startRun()

	case stateDone:
		return a, tea.Quit
	}
	return a, nil
}

// updateInputs forwards messages to whichever prompt is active.
func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case stateFolderPrompt:
		a.folderInput, cmd = a.folderInput.Update(msg)
	case stateOutputPrompt:
		a.outputInput, cmd = a.outputInput.Update(msg)
	}
	return cmd
}

// startRun launches the pipeline as a command so the UI stays responsive.
func (a *App) startRun() tea.Cmd {
	source := a.config.SourcePath(a.folder)
	output := a.output
	return func() tea.Msg {
		summary, err := a.runner.Run(source, output)
		return runFinishedMsg{summary: summary, err: err}
	}
}

// View renders the current screen.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SFMC metadata consolidation"))
	b.WriteString("\n\n")

	switch a.state {
	case stateFolderPrompt:
		b.WriteString(promptStyle.Render("Enter the name of the starting folder:"))
		b.WriteString("\n")
		b.WriteString(a.folderInput.View())

	case stateOutputPrompt:
		b.WriteString(promptStyle.Render("Enter the name for the output CSV file:"))
		b.WriteString("\n")
		b.WriteString(a.outputInput.View())

	case stateRunning:
		b.WriteString(promptStyle.Render(fmt.Sprintf("Consolidating %s ...", a.folder)))

	case stateDone:
		b.WriteString(a.resultView())
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("esc to quit"))
	return boxStyle.Render(b.String())
}

// resultView renders one of the three terminal outcomes plus any per-file
// warnings.
func (a *App) resultView() string {
	var b strings.Builder
	switch {
	case errors.Is(a.runErr, pipeline.ErrFolderNotFound):
		b.WriteString(errorStyle.Render(fmt.Sprintf("Folder not found: %s", a.summary.SourceDir)))

	case errors.Is(a.runErr, pipeline.ErrNoRows):
		b.WriteString(warnStyle.Render(fmt.Sprintf("No JSON files found in %s", a.summary.SourceDir)))

	case a.runErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Run failed: %v", a.runErr)))

	default:
		b.WriteString(okStyle.Render("Done"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"Processed %d of %d files · %d rows · %s",
			a.summary.FilesRead, a.summary.FilesFound, a.summary.Rows, a.summary.OutputPath)))
	}

	if len(a.summary.Warnings) > 0 {
		b.WriteString("\n\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Skipped %d file(s):", len(a.summary.Warnings))))
		for _, warn := range a.summary.Warnings {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render("  " + warn.String()))
		}
	}

	if tail := a.logbook.Tail(logTailLines); len(tail) > 0 {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Recent log:"))
		for _, line := range tail {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("  " + line))
		}
	}
	return b.String()
}
