package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grindlog/internal/models"
	"grindlog/internal/stats"
	"grindlog/internal/store"
)

// SessionPanelModel is the live view of the running session: a clock
// that recomputes the elapsed duration once per second, the starting
// figures, and an inline form to close the session out.
type SessionPanelModel struct {
	width  int
	height int

	st      *store.Store
	session models.Session

	elapsed time.Duration

	// Closing form state
	closing       bool
	inputs        []textinput.Model // 0: ending hands, 1: ending account
	focused       int
	validationErr string

	// Result
	stopped bool
	exiting bool
	result  models.Session
}

// clockTickMsg fires once per second while a session is running.
type clockTickMsg struct{}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// NewSessionPanel creates the live panel for the current session.
func NewSessionPanel(st *store.Store, session models.Session) SessionPanelModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 24
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	inputs[0].Placeholder = "Ending hand counter (required)"
	inputs[0].CharLimit = 12
	inputs[1].Placeholder = "Ending account balance (required)"
	inputs[1].CharLimit = 12

	return SessionPanelModel{
		st:      st,
		session: session,
		elapsed: time.Since(session.StartTime),
		inputs:  inputs,
	}
}

// Init starts the clock.
func (m SessionPanelModel) Init() tea.Cmd {
	return clockTick()
}

// Update handles messages
func (m SessionPanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.elapsed = time.Since(m.session.StartTime)
		// The tick chain dies with the session
		if m.stopped || m.exiting {
			return m, nil
		}
		return m, clockTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.closing {
			return m.updateClosingForm(msg)
		}
		switch msg.String() {
		case "s", "S":
			m.closing = true
			m.validationErr = ""
			return m, m.inputs[0].Focus()
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SessionPanelModel) updateClosingForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back to watching, session keeps running
		m.closing = false
		m.validationErr = ""
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focused].Blur()
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
		} else {
			m.focused = (m.focused + 1) % len(m.inputs)
		}
		return m, m.inputs[m.focused].Focus()

	case "enter":
		if m.focused < len(m.inputs)-1 {
			m.inputs[m.focused].Blur()
			m.focused++
			return m, m.inputs[m.focused].Focus()
		}
		return m.finishSession()

	case "ctrl+c":
		m.exiting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// finishSession validates the closing figures and dispatches the end
// of the session. Missing figures block with a validation message and
// never reach the store.
func (m SessionPanelModel) finishSession() (tea.Model, tea.Cmd) {
	hands, err := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil {
		m.validationErr = "Ending hand counter is required"
		return m, nil
	}
	account, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
	if err != nil {
		m.validationErr = "Ending account balance is required"
		return m, nil
	}

	now := time.Now()
	session := m.session
	session.EndTime = &now
	session.HandsEnd = &hands
	session.AccountEnd = &account
	session.IsActive = false

	m.st.Dispatch(store.UpdateSession{Session: session})
	m.st.Dispatch(store.SetCurrentSession{Session: nil})

	m.result = session
	m.stopped = true
	return m, tea.Quit
}

// View renders the panel.
func (m SessionPanelModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("🂡  SESSION RUNNING  🂡")

	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(formatClock(m.elapsed))

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)

	details := []string{
		labelStyle.Render("Stake    ") + valueStyle.Render(m.session.Limit),
		labelStyle.Render("Format   ") + valueStyle.Render(m.session.Format),
		labelStyle.Render("Straddle ") + valueStyle.Render(yesNo(m.session.Straddle)),
		labelStyle.Render("Hands    ") + valueStyle.Render(fmt.Sprintf("from %d", m.session.HandsStart)),
		labelStyle.Render("Account  ") + valueStyle.Render(fmt.Sprintf("from %.2f", m.session.AccountStart)),
		labelStyle.Render("Started  ") + valueStyle.Render(m.session.StartTime.Format("15:04:05")),
	}
	detailBlock := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(strings.Join(details, "\n"))

	parts := []string{header, "", clock, "", detailBlock}

	if m.closing {
		parts = append(parts, "", m.renderClosingForm())
	}

	helpText := "s end session · esc/q leave it running · ctrl+c force quit"
	if m.closing {
		helpText = "enter save · tab next field · esc back to the clock"
	}
	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(helpText)

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 1).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m SessionPanelModel) renderClosingForm() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render("End session")
	b.WriteString(title + "\n\n")
	b.WriteString("Hands end:   " + m.inputs[0].View() + "\n")
	b.WriteString("Account end: " + m.inputs[1].View() + "\n")

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true)
		b.WriteString("\n" + errStyle.Render("⚠ "+m.validationErr))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 2).
		Render(b.String())
}

func formatClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RunSessionPanel opens the live panel for the store's current
// session.
func RunSessionPanel(st *store.Store) error {
	state := st.Snapshot()
	if state.CurrentSession == nil {
		return fmt.Errorf("no session is running")
	}

	model := NewSessionPanel(st, *state.CurrentSession)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final := finalModel.(SessionPanelModel)
	if final.stopped {
		s := final.result
		fmt.Printf("🂠 Session ended at %s\n", s.EndTime.Format("15:04"))
		if hands, ok := stats.Hands(s); ok {
			fmt.Printf("📊 Hands: %d (%.0f/hour)\n", hands, stats.HandsPerHour(s, time.Now()))
		}
		if net, ok := stats.Net(s); ok {
			fmt.Printf("💰 Net: %+.2f\n", net)
		}
	} else {
		fmt.Println("\n💡 The session keeps running in the background.")
		fmt.Println("   Use 'grindlog status' to check it or 'grindlog stop' to end it.")
	}

	return nil
}
