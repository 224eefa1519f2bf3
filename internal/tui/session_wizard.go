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
	"grindlog/internal/parser"
	"grindlog/internal/stats"
	"grindlog/internal/store"
)

// Step represents the current step in the session wizard
type Step int

const (
	StepStart Step = iota
	StepEnd
	StepHandsStart
	StepHandsEnd
	StepLimit
	StepFormat
	StepStraddle
	StepAccountStart
	StepAccountEnd
	StepSave
)

// SessionWizardModel is the step form behind 'grindlog add' and
// 'grindlog edit'. In add mode every closing figure is required; in
// edit mode the closing figures may stay blank so a still-running
// session can be edited without ending it.
type SessionWizardModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	st *store.Store

	// Pre-filled data from defaults or the session being edited
	prefilled map[string]string

	// Edit mode
	isEditMode    bool
	editSessionID string

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	savedSession  models.Session
}

var wizardStepLabels = []string{
	"Start", "End", "Hands start", "Hands end", "Stake", "Format",
	"Straddle", "Account start", "Account end", "Save",
}

// NewSessionWizardModel creates a new session wizard model
func NewSessionWizardModel(st *store.Store, prefilled map[string]string) SessionWizardModel {
	inputs := make([]textinput.Model, 9)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepStart].Placeholder = "Start: now, 19:30 or 27/08/2026 19:30 (required)"
	inputs[StepStart].Focus()
	inputs[StepStart].CharLimit = 20

	inputs[StepEnd].Placeholder = "End: now, 23:15 or 27/08/2026 23:15"
	inputs[StepEnd].CharLimit = 20

	inputs[StepHandsStart].Placeholder = "Hand counter at the start (required)"
	inputs[StepHandsStart].CharLimit = 12

	inputs[StepHandsEnd].Placeholder = "Hand counter at the end"
	inputs[StepHandsEnd].CharLimit = 12

	inputs[StepLimit].Placeholder = "Stake, like '1/2 (.5 ante)' (required)"
	inputs[StepLimit].CharLimit = 50

	inputs[StepFormat].Placeholder = "Format, like '8-max with ante' (required)"
	inputs[StepFormat].CharLimit = 50

	inputs[StepStraddle].Placeholder = "Straddle: yes/no (Enter for no)"
	inputs[StepStraddle].CharLimit = 3

	inputs[StepAccountStart].Placeholder = "Account balance at the start (required)"
	inputs[StepAccountStart].CharLimit = 12

	inputs[StepAccountEnd].Placeholder = "Account balance at the end"
	inputs[StepAccountEnd].CharLimit = 12

	m := SessionWizardModel{
		currentStep: StepStart,
		inputs:      inputs,
		prefilled:   prefilled,
		st:          st,
	}

	stepKeys := map[Step]string{
		StepStart:        "start",
		StepEnd:          "end",
		StepHandsStart:   "hands_start",
		StepHandsEnd:     "hands_end",
		StepLimit:        "limit",
		StepFormat:       "format",
		StepStraddle:     "straddle",
		StepAccountStart: "account_start",
		StepAccountEnd:   "account_end",
	}
	for step, key := range stepKeys {
		if v, ok := prefilled[key]; ok && v != "" {
			m.inputs[step].SetValue(v)
		}
	}

	return m
}

// NewEditSessionModel creates the wizard in edit mode with the
// session's current values filled in.
func NewEditSessionModel(st *store.Store, sessionID string, prefilled map[string]string) SessionWizardModel {
	m := NewSessionWizardModel(st, prefilled)
	m.isEditMode = true
	m.editSessionID = sessionID
	return m
}

// Init initializes the model
func (m SessionWizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m SessionWizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		maxInputWidth := (m.width * 2 / 3) - 10
		if maxInputWidth < 30 {
			maxInputWidth = 30
		}
		if maxInputWidth > 80 {
			maxInputWidth = 80
		}
		for i := range m.inputs {
			m.inputs[i].Width = maxInputWidth
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}

	return m, cmd
}

// handleEnter validates the current step and advances
func (m SessionWizardModel) handleEnter() (SessionWizardModel, tea.Cmd) {
	m.validationErr = ""

	if m.currentStep == StepSave {
		return m.saveSession()
	}

	if err := m.validateStep(m.currentStep); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	return m.nextStep()
}

// validateStep checks a single step's input without touching the rest
func (m SessionWizardModel) validateStep(step Step) error {
	value := strings.TrimSpace(m.inputs[step].Value())
	required := m.stepRequired(step)

	if value == "" {
		if required {
			return fmt.Errorf("%s is required", wizardStepLabels[step])
		}
		return nil
	}

	switch step {
	case StepStart, StepEnd:
		if _, err := parser.ParseDateTime(value, time.Now()); err != nil {
			return err
		}
	case StepHandsStart, StepHandsEnd:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s must be a whole number", wizardStepLabels[step])
		}
	case StepAccountStart, StepAccountEnd:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%s must be a number", wizardStepLabels[step])
		}
	case StepStraddle:
		lower := strings.ToLower(value)
		if lower != "yes" && lower != "no" && lower != "y" && lower != "n" {
			return fmt.Errorf("straddle must be yes or no")
		}
	}

	return nil
}

// stepRequired reports whether a blank value blocks the step. Closing
// figures are only optional in edit mode.
func (m SessionWizardModel) stepRequired(step Step) bool {
	switch step {
	case StepStart, StepHandsStart, StepLimit, StepFormat, StepAccountStart:
		return true
	case StepEnd, StepHandsEnd, StepAccountEnd:
		return !m.isEditMode
	default:
		return false
	}
}

// nextStep moves to the next step
func (m SessionWizardModel) nextStep() (SessionWizardModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m SessionWizardModel) prevStep() (SessionWizardModel, tea.Cmd) {
	if m.currentStep > StepStart {
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
	}
	return m, textinput.Blink
}

// saveSession validates every step, builds the session and dispatches
// it to the store.
func (m SessionWizardModel) saveSession() (SessionWizardModel, tea.Cmd) {
	for step := StepStart; step < StepSave; step++ {
		if err := m.validateStep(step); err != nil {
			m.validationErr = err.Error()
			m.currentStep = step
			for i := range m.inputs {
				m.inputs[i].Blur()
			}
			return m, m.inputs[step].Focus()
		}
	}

	now := time.Now()
	value := func(step Step) string { return strings.TrimSpace(m.inputs[step].Value()) }

	start, _ := parser.ParseDateTime(value(StepStart), now)
	handsStart, _ := strconv.Atoi(value(StepHandsStart))
	accountStart, _ := strconv.ParseFloat(value(StepAccountStart), 64)
	straddle := strings.HasPrefix(strings.ToLower(value(StepStraddle)), "y")

	session := models.Session{
		ID:           m.editSessionID,
		Date:         time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		StartTime:    start,
		HandsStart:   handsStart,
		Limit:        value(StepLimit),
		Format:       value(StepFormat),
		Straddle:     straddle,
		AccountStart: accountStart,
	}
	if v := value(StepEnd); v != "" {
		end, _ := parser.ParseDateTime(v, now)
		session.EndTime = &end
	}
	if v := value(StepHandsEnd); v != "" {
		hands, _ := strconv.Atoi(v)
		session.HandsEnd = &hands
	}
	if v := value(StepAccountEnd); v != "" {
		account, _ := strconv.ParseFloat(v, 64)
		session.AccountEnd = &account
	}
	if session.EndTime != nil && session.EndTime.Before(session.StartTime) {
		m.validationErr = "End must be after start"
		m.currentStep = StepEnd
		return m, m.inputs[StepEnd].Focus()
	}

	if m.isEditMode {
		prev, ok := findByID(m.st.Snapshot().Sessions, m.editSessionID)
		if !ok {
			m.err = fmt.Errorf("session %s no longer exists", m.editSessionID)
			return m, tea.Quit
		}
		session.IsActive = prev.IsActive && session.EndTime == nil
		m.st.Dispatch(store.UpdateSession{Session: session})
		if session.IsActive {
			m.st.Dispatch(store.SetCurrentSession{Session: &session})
		} else if prev.IsActive {
			m.st.Dispatch(store.SetCurrentSession{Session: nil})
		}
	} else {
		session.ID = store.NewID()
		m.st.Dispatch(store.AddSession{Session: session})
	}

	m.savedSession = session
	m.completed = true
	return m, tea.Quit
}

func findByID(sessions []models.Session, id string) (models.Session, bool) {
	for _, s := range sessions {
		if s.ID == id {
			return s, true
		}
	}
	return models.Session{}, false
}

// View renders the TUI
func (m SessionWizardModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	if m.width < 85 {
		return m.renderSmallLayout()
	}

	rightWidth := (m.width * 35) / 100
	if rightWidth < 40 {
		return m.renderSmallLayout()
	}
	leftWidth := m.width - rightWidth - 4

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 2).
		Padding(1)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.renderWizard()),
		" ",
		rightStyle.Render(m.renderPreview(rightWidth)),
	)
}

// renderWizard renders the step list and the current input
func (m SessionWizardModel) renderWizard() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)

	titleText := "🂡 Record Session"
	if m.isEditMode {
		titleText = fmt.Sprintf("🂡 Edit Session %s", shortWizardID(m.editSessionID))
	}

	b.WriteString(titleStyle.Render(titleText))
	b.WriteString("\n\n")

	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	skippedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, label := range wizardStepLabels {
		step := Step(i)
		if step == StepSave {
			b.WriteString("\n")
		}

		hasValue := step < StepSave && strings.TrimSpace(m.inputs[step].Value()) != ""

		switch {
		case step == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case hasValue:
			b.WriteString(doneStyle.Render("✓ " + label))
		case step < m.currentStep:
			b.WriteString(skippedStyle.Render("  " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.currentStep < StepSave {
		b.WriteString(wizardStepLabels[m.currentStep] + "\n")
		b.WriteString(m.inputs[m.currentStep].View())
	} else {
		b.WriteString("💾 Save Session\n")
		b.WriteString("Press Enter to save")
	}

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString(errorStyle.Render("⚠ " + m.validationErr))
	}

	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | Esc: Cancel"))

	return b.String()
}

// renderPreview renders the live session card on the right
func (m SessionWizardModel) renderPreview(width int) string {
	var card strings.Builder

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center)
	card.WriteString(logoStyle.Render("grindlog"))
	card.WriteString("\n\n")

	value := func(step Step) string { return strings.TrimSpace(m.inputs[step].Value()) }
	line := func(label, v string) {
		if v != "" {
			card.WriteString(fmt.Sprintf("%s %s\n", label, v))
		}
	}

	line("🕐 Start:  ", value(StepStart))
	line("🕐 End:    ", value(StepEnd))
	line("🂠 Hands:  ", joinRange(value(StepHandsStart), value(StepHandsEnd)))
	line("💵 Stake:  ", value(StepLimit))
	line("🎲 Format: ", value(StepFormat))
	line("⚡ Straddle:", value(StepStraddle))
	line("💰 Account:", joinRange(value(StepAccountStart), value(StepAccountEnd)))

	if net, ok := previewNet(value(StepAccountStart), value(StepAccountEnd)); ok {
		netColor := ColorSuccess
		if net < 0 {
			netColor = ColorError
		}
		netStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(netColor)).
			Bold(true)
		card.WriteString("\n")
		card.WriteString("Net: " + netStyle.Render(fmt.Sprintf("%+.2f", net)))
		card.WriteString("\n")
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(min(width-2, 44)).
		Padding(1)

	container := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center)

	return container.Render(cardStyle.Render(card.String()))
}

// renderSmallLayout renders a single column for narrow terminals
func (m SessionWizardModel) renderSmallLayout() string {
	style := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	return style.Render(m.renderWizard())
}

func joinRange(from, to string) string {
	if from == "" && to == "" {
		return ""
	}
	if to == "" {
		return from + " → ?"
	}
	return from + " → " + to
}

func previewNet(start, end string) (float64, bool) {
	a, err := strconv.ParseFloat(start, 64)
	if err != nil {
		return 0, false
	}
	b, err := strconv.ParseFloat(end, 64)
	if err != nil {
		return 0, false
	}
	return b - a, true
}

func shortWizardID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RunSessionWizard starts the interactive session form. An empty
// editID means add mode.
func RunSessionWizard(st *store.Store, prefilled map[string]string, editID string) error {
	var model SessionWizardModel
	if editID != "" {
		model = NewEditSessionModel(st, editID, prefilled)
	} else {
		model = NewSessionWizardModel(st, prefilled)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(SessionWizardModel); ok {
		if m.cancelled {
			fmt.Println("❌ Cancelled, nothing saved.")
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		} else if m.completed {
			s := m.savedSession
			if m.isEditMode {
				fmt.Printf("✅ Session %s updated\n", shortWizardID(s.ID))
			} else {
				fmt.Printf("✅ Session recorded - %s %s\n", s.Date.Format("02/01/2006"), s.Limit)
			}
			if net, ok := stats.Net(s); ok {
				fmt.Printf("💰 Net: %+.2f\n", net)
			}
		}
	}

	return nil
}
