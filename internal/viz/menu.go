package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/growlab/internal/config"
)

// MenuModel is the preset picker shown when growlab starts with no
// subcommand. Selecting a preset hands control to a grow view; escape
// returns to the menu.
type MenuModel struct {
	names         []string
	cursor        int
	width, height int

	active bool
	grow   GrowModel
}

func NewMenu() MenuModel {
	return MenuModel{names: config.ListPresets()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}

	if m.active {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			if m.grow.sched != nil {
				m.grow.sched.Cancel()
			}
			m.active = false
			return m, nil
		}
		next, cmd := m.grow.Update(msg)
		m.grow = next.(GrowModel)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter", " ":
			name := m.names[m.cursor]
			cfg := config.GetPreset(name)
			if cfg == nil {
				return m, nil
			}
			m.grow = NewGrow(cfg, name, m.width, m.height)
			m.active = true
			return m, m.grow.Init()
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.active {
		return m.grow.View()
	}

	theme := CurrentTheme
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	selected := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	var s strings.Builder
	s.WriteString(title.Render("GROWLAB") + "\n")
	s.WriteString(muted.Render("L-system turtle graphics") + "\n\n")

	for i, name := range m.names {
		desc := ""
		if p := config.GetPreset(name); p != nil {
			desc = p.Desc
		}
		line := name + "  " + muted.Render(desc)
		if i == m.cursor {
			s.WriteString(selected.Render("> "+name) + "  " + muted.Render(desc) + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	s.WriteString(muted.Render("\n↑↓:Select  Enter:Grow  Esc:Back  Q:Quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}

// RunInteractive starts the preset menu TUI.
func RunInteractive() error {
	_, err := tea.NewProgram(NewMenu(), tea.WithAltScreen()).Run()
	return err
}
