// Package console is the interactive terminal front end. One screen: a
// command line at the bottom, the customer table above it, and the engine's
// reply in between.
package console

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leadvane/internal/engine"
	"github.com/abhisek/leadvane/internal/registry"
	"github.com/abhisek/leadvane/internal/scoring"
)

type resultMsg struct {
	res engine.Result
}

// Model is the root Bubble Tea model.
type Model struct {
	eng     *engine.Engine
	input   textinput.Model
	records []registry.Record
	lastMsg string
	lastBad bool
	busy    bool
	width   int
	height  int
}

func newModel(eng *engine.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Add CTO Sarah sarah@acme.com ready to buy $50K Q2"
	ti.Focus()

	return Model{eng: eng, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.busy = false
		m.lastMsg = msg.res.Message
		m.lastBad = msg.res.Status == engine.StatusRejected ||
			msg.res.Status == engine.StatusUninterpretable ||
			msg.res.Status == engine.StatusNotFound
		m.records = m.eng.Registry().Records()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.busy = true
			m.lastMsg = ""
			return m, processCmd(m.eng, text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// processCmd runs the engine off the update loop so typing stays responsive
// while the interpreter call is in flight.
func processCmd(eng *engine.Engine, text string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{res: eng.Process(context.Background(), text)}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Leadvane") + "\n")
	b.WriteString(styleHint.Render("Describe a customer to add, or say who to delete.") + "\n\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(styleHint.Render("Thinking...") + "\n")
	case m.lastMsg != "":
		style := styleOK
		if m.lastBad {
			style = styleErr
		}
		b.WriteString(style.Render(m.lastMsg) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleInput.Width(min(m.width-2, 80)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(styleHint.Render("Enter send · Esc quit"))

	v.SetContent(b.String())
	return v
}

func (m Model) renderTable() string {
	if len(m.records) == 0 {
		return styleHint.Render("No customers yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("  %-20s %-28s %5s  %-8s  %s",
		"NAME", "EMAIL", "SCORE", "TIER", "KEY INFO")))
	b.WriteString("\n")

	for _, rec := range m.records {
		line := fmt.Sprintf("  %-20s %-28s %5d  %-8s  %s",
			truncate(rec.Name, 20), truncate(rec.Email, 28),
			rec.Score, rec.Category, truncate(rec.KeyInfo, 40))
		b.WriteString(styleRow.Foreground(tierColor(rec.Category)).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func tierColor(t scoring.Tier) color.Color {
	switch t {
	case scoring.TierPlatinum:
		return colPlat
	case scoring.TierGold:
		return colGold
	default:
		return colText
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(newModel(eng))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
