// Package tui is the terminal fallback used when no display server is
// available. It browses the mounted share with the same classification
// as the GUI; anything that needs pixels goes to an external program.
package tui

import (
	"shareview/internal/config"
	"shareview/internal/launch"
	"shareview/internal/listing"
	"shareview/internal/nav"
	"shareview/internal/tui/components"
	"shareview/internal/tui/styles"
	"shareview/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// launchedMsg reports the outcome of an external program launch.
type launchedMsg struct {
	program string
	err     error
}

type Model struct {
	lister   *listing.Lister
	launcher *launch.Launcher
	navState *nav.State

	fileList  *components.FileList
	summary   string
	statusMsg string
	showHelp  bool
}

// New creates a model browsing the share mounted at root.
func New(cfg *config.Config, lister *listing.Lister, root string) *Model {
	m := &Model{
		lister:   lister,
		launcher: launch.New(launch.DefaultCandidates(cfg)),
		navState: nav.New(root),
		fileList: components.NewFileList(),
	}
	m.reload()
	return m
}

// Run drives the model to completion in the terminal.
func Run(cfg *config.Config, lister *listing.Lister, root string) error {
	_, err := tea.NewProgram(New(cfg, lister, root), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		// Title, path, summary, status and help lines frame the list
		m.fileList.SetHeight(msg.Height - 6)
	case launchedMsg:
		if msg.err != nil {
			m.statusMsg = styles.Error.Render(msg.err.Error())
		} else {
			m.statusMsg = "Playing with " + msg.program
		}
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Down):
		m.fileList.MoveCursor(1)
	case key.Matches(msg, keys.Up):
		m.fileList.MoveCursor(-1)
	case key.Matches(msg, keys.Top):
		m.fileList.Home()
	case key.Matches(msg, keys.Bottom):
		m.fileList.End()
	case key.Matches(msg, keys.Back):
		if !m.navState.AtRoot() {
			m.navState.Up()
			m.reload()
		}
	case key.Matches(msg, keys.Root):
		m.navState.Home()
		m.reload()
	case key.Matches(msg, keys.Refresh):
		m.reload()
	case key.Matches(msg, keys.Open):
		return m, m.openCurrent()
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// openCurrent enters folders and hands every file kind to the external
// launcher; the terminal has no embedded viewers.
func (m *Model) openCurrent() tea.Cmd {
	entry := m.fileList.Current()
	if entry == nil {
		return nil
	}

	if entry.Kind == types.Folder {
		m.navState.Enter(entry.Name)
		m.reload()
		return nil
	}

	path := entry.Path
	return func() tea.Msg {
		program, err := m.launcher.Open(path)
		return launchedMsg{program: program, err: err}
	}
}

func (m *Model) reload() {
	l, err := m.lister.List(m.navState.Current())
	if err != nil {
		m.statusMsg = styles.Error.Render(err.Error())
		// Retreat so the browser never strands itself in a dead directory
		if !m.navState.AtRoot() {
			m.navState.Home()
			m.reload()
		}
		return
	}

	m.fileList.SetEntries(l.Entries)
	m.summary = l.Summary()
}

// View implements tea.Model
func (m *Model) View() string {
	s := styles.Title.Render("Share Viewer") + "\n"
	s += styles.Path.Render(m.navState.DisplayPath()) + "\n\n"
	s += m.fileList.View()
	s += "\n" + styles.Status.Render(m.summary)
	if m.statusMsg != "" {
		s += "  " + m.statusMsg
	}
	s += "\n"

	if m.showHelp {
		s += styles.Help.Render(keys.helpLine()) + "\n"
	} else {
		s += styles.Help.Render("? help") + "\n"
	}

	return styles.App.Render(s)
}

// CurrentDir returns the directory the browser is showing.
func (m *Model) CurrentDir() string {
	return m.navState.Current()
}
