// Package tui is the interactive terminal front end
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/parser"
	"github.com/KirkDiggler/rpg-wilds/internal/session"
)

// viewRadius is how many tiles around the player the map panel shows
const viewRadius = 5

var (
	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6F6F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87D7FF"))
)

// Model is the bubbletea model around one session
type Model struct {
	ctx       context.Context
	session   *session.Session
	textInput textinput.Model
	viewport  viewport.Model
	log       []string
	width     int
	height    int
	err       error
}

type commandDoneMsg struct {
	result *session.Result
	err    error
}

// New creates the model; the caller runs it with tea.NewProgram.
// Intro lines follow the journal in the log.
func New(ctx context.Context, sess *session.Session, intro ...string) Model {
	ti := textinput.New()
	ti.Placeholder = "Where to? (type 'help')"
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	m := Model{
		ctx:       ctx,
		session:   sess,
		textInput: ti,
		viewport:  viewport.New(60, 20),
	}
	for _, e := range sess.Sim.Journal {
		m.log = append(m.log, e.Text)
	}
	m.log = append(m.log, intro...)
	m.viewport.SetContent(m.renderLog())
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.textInput.Value())
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()
			m.log = append(m.log, inputStyle.Render("> "+line))

			parsed, err := parser.Parse(line)
			if err != nil {
				m.log = append(m.log, errorStyle.Render(err.Error()))
				m.refresh()
				return m, nil
			}
			if parsed.Corrected {
				m.log = append(m.log, helpStyle.Render(fmt.Sprintf("(taking that as %q)", parsed.Verb)))
			}
			m.refresh()
			return m, m.execute(parsed)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width * 3 / 5
		m.viewport.Height = msg.Height - 6
		m.refresh()

	case commandDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.log = append(m.log, errorStyle.Render("error: "+msg.err.Error()))
			m.refresh()
			return m, nil
		}
		m.log = append(m.log, msg.result.Lines...)
		m.refresh()
		if msg.result.Quit {
			return m, tea.Quit
		}
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) execute(cmd *parser.Command) tea.Cmd {
	sess := m.session
	ctx := m.ctx
	return func() tea.Msg {
		res, err := sess.Execute(ctx, cmd)
		return commandDoneMsg{result: res, err: err}
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m Model) renderLog() string {
	width := m.viewport.Width
	if width <= 0 {
		return strings.Join(m.log, "\n")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(m.log, "\n"))
}

// View implements tea.Model
func (m Model) View() string {
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), panelStyle.Render(m.renderPanel()))
	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		"\n"+m.textInput.View(),
		helpStyle.Render(modeHint(m.session.Sim.Mode)),
	)
}

func modeHint(mode wilds.Mode) string {
	switch mode {
	case wilds.ModeEvent:
		return "Type a number to choose, or 'dismiss'."
	case wilds.ModeCombat:
		return "attack [n], defend, flee, use <item>"
	case wilds.ModeGameOver, wilds.ModeJourneyComplete:
		return "The journey is over. 'load <id>' or 'quit'."
	}
	return "n/s/e/w to travel, 'help' for more, Esc to quit."
}

func (m Model) renderPanel() string {
	sim := m.session.Sim
	p := sim.Player

	var b strings.Builder
	b.WriteString(titleStyle.Render("MAP") + "\n")
	b.WriteString(RenderMap(sim, viewRadius) + "\n\n")

	b.WriteString(titleStyle.Render(strings.ToUpper(p.Name)) + "\n")
	fmt.Fprintf(&b, "HP %d/%d  AC %d  Lvl %d (%d XP)\n", p.HP, p.MaxHP, p.AC, p.Level, p.XP)
	fmt.Fprintf(&b, "%s  %s\n", sim.Time, sim.Weather.Type)
	fmt.Fprintf(&b, "%s, %d steps\n", sim.CurrentBiome, sim.Steps)
	if len(sim.Trophies) > 0 {
		fmt.Fprintf(&b, "Trophies: %s\n", strings.Join(sim.Trophies.Sorted(), ", "))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("PACK") + "\n")
	b.WriteString(session.DescribeInventory(p) + "\n")

	if active := activeQuests(p); len(active) > 0 {
		b.WriteString("\n" + titleStyle.Render("QUESTS") + "\n")
		b.WriteString(strings.Join(active, "\n") + "\n")
	}
	return b.String()
}

func activeQuests(p *wilds.Player) []string {
	var out []string
	for id, q := range p.Quests {
		if q.Status == wilds.QuestActive {
			out = append(out, "- "+strings.ReplaceAll(id, "_", " "))
		}
	}
	sort.Strings(out)
	return out
}

// RenderMap draws the tiles within radius of the player, with @ for the
// player and & for wandering agents
func RenderMap(sim *wilds.SimulationContext, radius int) string {
	agents := make(map[wilds.Position]bool, len(sim.Agents))
	for _, a := range sim.Agents {
		agents[a.Position] = true
	}

	var rows []string
	for y := sim.Position.Y - radius; y <= sim.Position.Y+radius; y++ {
		var row strings.Builder
		for x := sim.Position.X - radius; x <= sim.Position.X+radius; x++ {
			pos := wilds.Position{X: x, Y: y}
			tile, ok := sim.Map.TileAt(pos)
			switch {
			case !ok:
				continue
			case pos == sim.Position:
				row.WriteString(playerStyle.Render("@"))
			case agents[pos]:
				row.WriteString(agentStyle.Render("&"))
			default:
				row.WriteRune(rune(tile))
			}
		}
		if row.Len() > 0 {
			rows = append(rows, row.String())
		}
	}
	return strings.Join(rows, "\n")
}
