// Package tui renders the interactive debug stepper: a terminal view over
// the debug walker that advances one edge per keypress and shows each gate
// decision for the session being simulated.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vk/blueprintgo/internal/access"
	"github.com/vk/blueprintgo/internal/debug"
	"github.com/vk/blueprintgo/internal/schema"
	"github.com/vk/blueprintgo/internal/session"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	nodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	haltStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

type model struct {
	doc    *schema.Document
	ev     *access.Evaluator
	snap   debug.Snapshot
	halted bool
}

func newModel(doc *schema.Document, sess session.Context, ev *access.Evaluator) model {
	return model{
		doc:  doc,
		ev:   ev,
		snap: debug.NewSnapshot(sess),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter", "n":
			if m.halted {
				return m, nil
			}
			next := debug.Step(m.doc, m.snap, m.ev)
			if len(next.Trail) == len(m.snap.Trail) {
				m.halted = true
				return m, nil
			}
			m.snap = next
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	roles := strings.Join(m.snap.Session.Roles, ", ")
	if roles == "" {
		roles = "(none)"
	}
	sb.WriteString(headerStyle.Render(fmt.Sprintf("blueprint debug | roles: %s", roles)))
	sb.WriteString("\n\n")

	if entry := m.doc.EntryNode(); entry != nil {
		sb.WriteString(subtleStyle.Render("entry: "))
		sb.WriteString(nodeStyle.Render(nodeCaption(*entry)))
		sb.WriteString("\n")
	} else {
		sb.WriteString(subtleStyle.Render("empty document; nothing to step through") + "\n")
	}

	for i, t := range m.snap.Trail {
		var verdict string
		switch {
		case t.GateID == "":
			verdict = passStyle.Render("pass")
		case t.Passed:
			verdict = passStyle.Render(fmt.Sprintf("pass gate=%s", t.GateID))
		default:
			verdict = failStyle.Render(fmt.Sprintf("FAIL gate=%s", t.GateID))
		}
		caption := t.NodeID
		if n := m.doc.NodeByID(t.NodeID); n != nil {
			caption = nodeCaption(*n)
		}
		sb.WriteString(fmt.Sprintf("%2d. %s  %s\n", i+1, nodeStyle.Render(caption), verdict))
	}

	if m.halted {
		sb.WriteString("\n" + haltStyle.Render("halted: no outgoing edges") + "\n")
	}
	sb.WriteString(subtleStyle.Render("\nspace/enter: step • q: quit\n"))

	return sb.String()
}

func nodeCaption(n schema.Node) string {
	if n.Label != "" {
		return fmt.Sprintf("%s (%s)", n.Label, n.Type)
	}
	return fmt.Sprintf("%s (%s)", n.ID, n.Type)
}

// Run starts the stepper over the given document and session and blocks
// until the user quits.
func Run(doc *schema.Document, sess session.Context, ev *access.Evaluator) error {
	p := tea.NewProgram(newModel(doc, sess, ev))
	_, err := p.Run()
	return err
}
