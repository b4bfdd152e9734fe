package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// program adapts Model to tea.Model.
type program struct {
	m Model
}

func (p program) Init() tea.Cmd { return p.m.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.m, cmd = p.m.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.m.View() }

// Run starts a full-screen editor and returns the final text when the user quits.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) (string, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(program{m: New(cfg)}, opts...).Run()
	if err != nil {
		return "", err
	}
	return final.(program).m.Text(), nil
}
