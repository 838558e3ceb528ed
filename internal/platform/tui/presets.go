package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
)

// Difficulty picker layout constants
const (
	minWidthForDetails = 70 // Minimum width to show the details panel
	detailsWidth       = 28
)

// PresetKeyMap defines the key bindings for the difficulty picker.
type PresetKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k PresetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k PresetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultPresetKeyMap returns the default key bindings for the picker.
func DefaultPresetKeyMap() PresetKeyMap {
	return PresetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PresetModel lets the player choose a difficulty preset before playing.
type PresetModel struct {
	presets  []config.PresetInfo
	table    table.Model
	help     help.Model
	keys     PresetKeyMap
	width    int
	height   int
	selected *config.DifficultyPreset
	quitting bool
}

// NewPresetModel creates a new difficulty picker.
// The cursor starts on the preset named by initial, if any.
func NewPresetModel(initial config.DifficultyPreset, width, height int) PresetModel {
	h := help.New()
	h.ShowAll = false

	m := PresetModel{
		presets: config.Presets(),
		keys:    DefaultPresetKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()

	for i, p := range m.presets {
		if p.Preset == initial {
			m.table.SetCursor(i)
		}
	}
	return m
}

// createTable creates the preset table with one row per preset.
func (m *PresetModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Board", Width: 8},
		{Title: "Lives", Width: 6},
		{Title: "Hazards", Width: 8},
	}

	rows := make([]table.Row, len(m.presets))
	for i, p := range m.presets {
		rows[i] = table.Row{
			p.Title,
			fmt.Sprintf("%dx%d", p.Size, p.Size),
			fmt.Sprintf("%d", p.Lives),
			fmt.Sprintf("%d", p.Hazards),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.presets) {
				p := m.presets[c].Preset
				m.selected = &p
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PresetModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("M I N E F I E L D", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	body := tableStyle.Render(m.table.View())

	if m.width >= minWidthForDetails {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.renderDetails())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderDetails describes the preset under the cursor.
func (m PresetModel) renderDetails() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(detailsWidth).
		Padding(0, 1)

	c := m.table.Cursor()
	if c < 0 || c >= len(m.presets) {
		return style.Render("")
	}
	p := m.presets[c]

	free := p.Size*p.Size - 2
	density := 0
	if free > 0 {
		density = p.Hazards * 100 / free
	}

	var d strings.Builder
	d.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Title))
	d.WriteString("\n")
	fmt.Fprintf(&d, "Walk from A1 to %s\n", goalLabel(p.Size))
	fmt.Fprintf(&d, "%d%% of cells hide a hazard\n", density)
	fmt.Fprintf(&d, "Each hit costs 1 of %d lives", p.Lives)
	return style.Render(d.String())
}

func goalLabel(size int) string {
	return fmt.Sprintf("%c%d", rune('A'+size-1), size)
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m PresetModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// RunPresetSelector runs the difficulty picker and returns the chosen preset.
// ok is false when the player left without choosing.
func RunPresetSelector(initial config.DifficultyPreset, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewPresetModel(initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(PresetModel)
	if !isModel || m.Selected() == nil {
		return "", false, nil
	}
	return *m.Selected(), true, nil
}
