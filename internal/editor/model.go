package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ExportStatus is shown after the Export action runs.
const ExportStatus = "export not implemented"

// chromeHeight is the status line plus the help line.
const chromeHeight = 2

// Config configures a Model.
type Config struct {
	Text         string
	ShowLineNums bool
	TabSize      int
	Width        int
	Height       int
	Style        Style
	KeyMap       KeyMap
	Highlighter  Highlighter

	// OnChange is called with the full text after an update that changed it.
	OnChange func(text string)
	// OnExport is called with the current text when Export is triggered.
	OnExport func(text string)
}

// DefaultConfig returns the editor settings used by the CLI.
func DefaultConfig() Config {
	return Config{
		Text:         DefaultScript,
		ShowLineNums: true,
		TabSize:      4,
		Style:        DefaultStyle(),
		KeyMap:       DefaultKeyMap(),
		Highlighter:  ShellHighlighter{},
	}
}

// Model is a single-buffer script editor with an edit mode and a
// highlighted read-only preview mode.
type Model struct {
	cfg     Config
	area    textarea.Model
	help    help.Model
	text    string
	preview bool
	status  string
	width   int
	height  int
}

// New builds a focused editor seeded with cfg.Text.
func New(cfg Config) Model {
	if cfg.TabSize <= 0 {
		cfg.TabSize = 4
	}
	if cfg.Highlighter == nil {
		cfg.Highlighter = ShellHighlighter{}
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	area := textarea.New()
	area.Prompt = ""
	area.CharLimit = 0
	area.MaxHeight = 0
	area.ShowLineNumbers = cfg.ShowLineNums
	area.SetValue(cfg.Text)
	area.Focus()

	m := Model{
		cfg:  cfg,
		area: area,
		help: help.New(),
		text: area.Value(),
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		m = m.SetSize(cfg.Width, cfg.Height)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Text returns the current buffer.
func (m Model) Text() string { return m.text }

// Previewing reports whether the highlighted preview is shown.
func (m Model) Previewing() bool { return m.preview }

// Status returns the transient status message.
func (m Model) Status() string { return m.status }

// SetSize resizes the editor including its status and help lines.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.area.SetWidth(width)
	m.area.SetHeight(max(height-chromeHeight, 1))
	m.help.Width = width
	return m
}

// Export runs the export hook. Nothing is written anywhere.
func (m Model) Export() Model {
	if m.cfg.OnExport != nil {
		m.cfg.OnExport(m.text)
	}
	m.status = ExportStatus
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.cfg.KeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.cfg.KeyMap.Export):
			return m.Export(), nil
		case key.Matches(msg, m.cfg.KeyMap.Preview):
			m.preview = !m.preview
			return m, nil
		case m.preview:
			return m, nil
		case key.Matches(msg, m.cfg.KeyMap.Indent):
			m.area.InsertString(strings.Repeat(" ", m.cfg.TabSize))
			return m.notify(), nil
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m.notify(), cmd
}

func (m Model) notify() Model {
	v := m.area.Value()
	if v == m.text {
		return m
	}
	m.text = v
	m.status = ""
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(v)
	}
	return m
}

func (m Model) View() string {
	body := m.area.View()
	if m.preview {
		body = m.previewView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine(), m.help.View(m.cfg.KeyMap))
}

func (m Model) previewView() string {
	lines := strings.Split(m.text, "\n")
	digits := len(strconv.Itoa(len(lines)))
	indent := strings.Repeat(" ", m.cfg.TabSize)

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		line = strings.ReplaceAll(line, "\t", indent)
		if m.cfg.ShowLineNums {
			b.WriteString(m.cfg.Style.LineNum.Render(fmt.Sprintf("%*d ", digits, i+1)))
		}
		b.WriteString(m.cfg.Style.RenderLine(line, m.cfg.Highlighter.HighlightLine(line)))
	}

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(max(m.height-chromeHeight, 1)).
		Render(b.String())
}

func (m Model) statusLine() string {
	mode := "EDIT"
	if m.preview {
		mode = "PREVIEW"
	}
	line := fmt.Sprintf(" %s  %d lines", mode, strings.Count(m.text, "\n")+1)
	if m.status != "" {
		line += "  " + m.status
	}
	return m.cfg.Style.Status.Render(line)
}
