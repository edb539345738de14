package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veloxlabs/dexmodel/classset"
	"github.com/veloxlabs/dexmodel/descriptor"
	"github.com/veloxlabs/dexmodel/dex"
	"github.com/veloxlabs/dexmodel/footprint"
	"github.com/veloxlabs/dexmodel/hierarchy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	ifaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	externStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err      error
	pool     *descriptor.Pool
	idx      *hierarchy.Index
	filename string
	rows     []row
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

// row is one pre-order line of the hierarchy tree.
type row struct {
	typ   *descriptor.Type
	cls   *dex.Class // nil for external types
	depth int
}

type modelState int

const (
	stateBrowse modelState = iota
	stateCastInput
	stateShowCast
)

func newBrowserModel(filename string) *browserModel {
	return &browserModel{
		filename: filename,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err  error
	pool *descriptor.Pool
	idx  *hierarchy.Index
	rows []row
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadClassSet
}

func (m *browserModel) loadClassSet() tea.Msg {
	pool := descriptor.NewPool()

	classes, err := classset.LoadFile(m.filename, pool)
	if err != nil {
		return loadedMsg{err: err}
	}

	idx := hierarchy.New(pool)
	if err := classset.Populate(idx, classes); err != nil {
		return loadedMsg{err: err}
	}

	var rows []row
	for _, root := range hierarchyRoots(idx, classes) {
		rows = appendRows(rows, idx, root, 0)
	}
	return loadedMsg{pool: pool, idx: idx, rows: rows}
}

func appendRows(rows []row, idx *hierarchy.Index, t *descriptor.Type, depth int) []row {
	cls, _ := idx.Lookup(t)
	rows = append(rows, row{typ: t, cls: cls, depth: depth})
	for _, child := range idx.ChildrenOf(t) {
		rows = appendRows(rows, idx, child, depth+1)
	}
	return rows
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateCastInput {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.rows)-1 {
				m.selected++
			}

		case "c":
			if m.state == stateBrowse && len(m.rows) > 0 {
				m.input = textinput.New()
				m.input.Placeholder = "Ltarget/Type;"
				m.input.Prompt = "target: "
				m.input.Width = 40
				m.input.Focus()
				m.state = stateCastInput
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateCastInput:
				m.runCast()
				m.state = stateShowCast
			case stateShowCast:
				m.state = stateBrowse
				m.result = ""
			}

		case "esc":
			if m.state == stateCastInput || m.state == stateShowCast {
				m.state = stateBrowse
				m.result = ""
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.pool = msg.pool
		m.idx = msg.idx
		m.rows = msg.rows
	}

	if m.state == stateCastInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *browserModel) runCast() {
	src := m.rows[m.selected].typ
	dst, err := m.pool.Intern(strings.TrimSpace(m.input.Value()))
	if err != nil {
		m.result = errorStyle.Render(err.Error())
		return
	}
	verdict := m.idx.IsAssignable(src, dst)
	m.result = resultStyle.Render(fmt.Sprintf("%s -> %s: %v", src, dst, verdict))
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.rows) == 0 {
		return "Loading class set..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Dex Hierarchy"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		for i, r := range m.rows {
			line := strings.Repeat("  ", r.depth) + m.formatRow(r)
			if i == m.selected {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.formatDetail(m.rows[m.selected]))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • c cast check • q quit"))

	case stateCastInput:
		r := m.rows[m.selected]
		b.WriteString(fmt.Sprintf("Cast from %s\n\n", classStyle.Render(r.typ.Name())))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter check • esc back"))

	case stateShowCast:
		b.WriteString(m.result)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *browserModel) formatRow(r row) string {
	switch {
	case r.cls == nil:
		return externStyle.Render(r.typ.Name() + " (external)")
	case r.cls.IsInterface():
		return ifaceStyle.Render(r.typ.Name())
	default:
		return classStyle.Render(r.typ.Name())
	}
}

func (m *browserModel) formatDetail(r row) string {
	if r.cls == nil {
		return externStyle.Render("not in the indexed set")
	}
	cls := r.cls
	kind := "class"
	if cls.IsInterface() {
		kind = "interface"
	}
	return fmt.Sprintf("%s %s • %d virtual / %d direct methods • %d fields • cost %d",
		visibilityName(cls.Visibility()), kind,
		len(cls.VirtualMethods), len(cls.DirectMethods),
		len(cls.InstanceFields),
		footprint.Estimate(cls))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
