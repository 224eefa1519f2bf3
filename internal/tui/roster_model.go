package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grindlog/internal/models"
	"grindlog/internal/store"
)

// RosterModel is the interactive player roster: a paginated table on
// the left with a color swatch per tag, the selected player's reads
// on the right.
type RosterModel struct {
	width  int
	height int

	st      *store.Store
	players []models.Player
	all     []models.Player // unfiltered roster, search restores from here

	selected int

	// UI state
	focus        Focus
	searchActive bool
	searchQuery  string

	// Pagination
	currentPage    int
	playersPerPage int
}

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
)

// NewRosterModel creates a new roster TUI model
func NewRosterModel(st *store.Store, players []models.Player) RosterModel {
	return RosterModel{
		st:      st,
		players: players,
		all:     players,
		focus:   FocusTable,
	}
}

// Init initializes the model
func (m RosterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		availableHeight := m.height - 12
		if availableHeight < 3 {
			availableHeight = 3
		}
		m.playersPerPage = availableHeight

		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if msg.String() == "esc" && m.searchQuery != "" {
				return m.clearSearch(), nil
			}
			return m, tea.Quit

		case "up", "k":
			return m.moveSelectionUp(), nil

		case "down", "j":
			return m.moveSelectionDown(), nil

		case "left", "h":
			return m.prevPage(), nil

		case "right", "l":
			return m.nextPage(), nil

		case "/":
			m.focus = FocusSearch
			m.searchActive = true
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKeys handles key input when in search mode
func (m RosterModel) handleSearchKeys(msg tea.KeyMsg) (RosterModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.clearSearch(), nil

	case "enter":
		m.focus = FocusTable
		m.searchActive = false
		return m, nil

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
		}
		m.applySearch()
		return m, nil

	default:
		if len(msg.String()) == 1 {
			m.searchQuery += msg.String()
			m.applySearch()
		}
		return m, nil
	}
}

// applySearch filters the full roster by name, note and exploits
func (m *RosterModel) applySearch() {
	if m.searchQuery == "" {
		m.players = m.all
	} else {
		needle := strings.ToLower(m.searchQuery)
		filtered := make([]models.Player, 0, len(m.all))
		for _, p := range m.all {
			haystack := strings.ToLower(p.Name + " " + p.Note + " " + p.Exploits)
			if strings.Contains(haystack, needle) {
				filtered = append(filtered, p)
			}
		}
		m.players = filtered
	}
	m.selected = 0
	m.currentPage = 0
}

func (m RosterModel) clearSearch() RosterModel {
	m.focus = FocusTable
	m.searchActive = false
	m.searchQuery = ""
	m.players = m.all
	m.selected = 0
	m.currentPage = 0
	return m
}

// moveSelectionUp moves the selection up
func (m RosterModel) moveSelectionUp() RosterModel {
	if m.selected > 0 {
		m.selected--

		currentPageStart := m.currentPage * m.playersPerPage
		if m.selected < currentPageStart && m.currentPage > 0 {
			m.currentPage--
		}
	}
	return m
}

// moveSelectionDown moves the selection down
func (m RosterModel) moveSelectionDown() RosterModel {
	if m.selected < len(m.players)-1 {
		m.selected++

		currentPageEnd := min((m.currentPage+1)*m.playersPerPage-1, len(m.players)-1)
		maxPages := (len(m.players) + m.playersPerPage - 1) / m.playersPerPage
		if m.selected > currentPageEnd && m.currentPage < maxPages-1 {
			m.currentPage++
		}
	}
	return m
}

// prevPage goes to previous page
func (m RosterModel) prevPage() RosterModel {
	if m.currentPage > 0 {
		m.currentPage--
		minIndex := m.currentPage * m.playersPerPage
		maxIndex := min((m.currentPage+1)*m.playersPerPage-1, len(m.players)-1)
		if m.selected > maxIndex {
			m.selected = maxIndex
		}
		if m.selected < minIndex {
			m.selected = minIndex
		}
	}
	return m
}

// nextPage goes to next page
func (m RosterModel) nextPage() RosterModel {
	maxPages := (len(m.players) + m.playersPerPage - 1) / m.playersPerPage
	if m.currentPage < maxPages-1 {
		m.currentPage++
		minIndex := m.currentPage * m.playersPerPage
		maxIndex := min((m.currentPage+1)*m.playersPerPage-1, len(m.players)-1)
		if m.selected < minIndex {
			m.selected = minIndex
		}
		if m.selected > maxIndex {
			m.selected = maxIndex
		}
	}
	return m
}

// View renders the TUI
func (m RosterModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	leftPanel := m.renderPlayerTable(leftWidth)
	rightPanel := m.renderPlayerDetails(rightWidth)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		" ",
		rightPanel,
	)

	var bottomBar string
	if m.searchActive {
		bottomBar = m.renderSearchBar()
	} else {
		bottomBar = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		content,
		"",
		bottomBar,
	)
}

// renderPlayerTable renders the left panel with the roster table
func (m RosterModel) renderPlayerTable(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	b.WriteString(headerStyle.Render("🂡 Players"))
	b.WriteString("\n\n")

	if len(m.players) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No players found"))
		return m.tableBorder(width).Render(b.String())
	}

	columnHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Padding(0, 1)

	availableWidth := width - 4
	swatchWidth := 2
	handsWidth := 7
	statsWidth := 11
	nameWidth := availableWidth - swatchWidth - handsWidth - statsWidth - 6
	if nameWidth < 12 {
		nameWidth = 12
	}

	headers := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		swatchWidth, "",
		nameWidth, "NAME",
		handsWidth, "HANDS",
		statsWidth, "VPIP/PFR")
	b.WriteString(columnHeaderStyle.Render(headers))
	b.WriteString("\n\n")

	startIndex := m.currentPage * m.playersPerPage
	endIndex := min(startIndex+m.playersPerPage, len(m.players))

	for i := startIndex; i < endIndex; i++ {
		p := m.players[i]
		isSelected := i == m.selected

		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.ColorTag.Hex())).
			Render("●")

		name := p.Name
		if len(name) > nameWidth-1 {
			if nameWidth > 4 {
				name = name[:nameWidth-4] + "..."
			} else {
				name = name[:nameWidth-1]
			}
		}

		rowContent := fmt.Sprintf("%s  %-*s %-*s %-*s",
			swatch,
			nameWidth, name,
			handsWidth, strconv.Itoa(p.TotalHands),
			statsWidth, fmt.Sprintf("%.0f/%.0f", p.VPIP, p.PFR))

		if isSelected {
			selectedBorder := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Bold(true).
				Padding(0, 1)
			b.WriteString(selectedBorder.Render(rowContent))
		} else {
			b.WriteString(" " + rowContent)
		}
		b.WriteString("\n")
	}

	if m.playersPerPage < len(m.players) {
		totalPages := (len(m.players) + m.playersPerPage - 1) / m.playersPerPage
		pageInfo := fmt.Sprintf("Page %d/%d (%d players)", m.currentPage+1, totalPages, len(m.players))
		pageStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Align(lipgloss.Center).
			Width(width - 2).
			MarginTop(1)
		b.WriteString(pageStyle.Render(pageInfo))
	}

	return m.tableBorder(width).Render(b.String())
}

func (m RosterModel) tableBorder(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)
}

// renderPlayerDetails renders the right panel with the selected
// player's reads
func (m RosterModel) renderPlayerDetails(width int) string {
	var b strings.Builder

	if len(m.players) == 0 || m.selected >= len(m.players) {
		logoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		b.WriteString(logoStyle.Render("grindlog"))

		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width).
			MarginTop(2)
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("Select a player to view reads"))
	} else {
		p := m.players[m.selected]

		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Width(width)
		b.WriteString(titleStyle.Render("🂡 " + p.Name))
		b.WriteString("\n\n")

		tagStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.ColorTag.Hex())).
			Bold(true)
		b.WriteString("Type: ")
		b.WriteString(tagStyle.Render("● " + p.ColorTag.Label()))
		b.WriteString("\n")

		b.WriteString(fmt.Sprintf("Hands: %d\n", p.TotalHands))
		b.WriteString(fmt.Sprintf("VPIP: %.0f%%  PFR: %.0f%%\n", p.VPIP, p.PFR))

		if len(p.Stakes) > 0 {
			var labels []string
			for _, s := range p.Stakes {
				labels = append(labels, strconv.Itoa(s))
			}
			b.WriteString("Stakes: ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(strings.Join(labels, ", ")))
			b.WriteString("\n")
		}

		if p.Note != "" {
			b.WriteString("\nNotes:\n")
			noteStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Italic(true).
				Width(width - 2)
			b.WriteString(noteStyle.Render(p.Note))
			b.WriteString("\n")
		}

		if p.Exploits != "" {
			b.WriteString("\nExploits:\n")
			exploitStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Width(width - 2)
			b.WriteString(exploitStyle.Render(p.Exploits))
		}
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return borderStyle.Render(b.String())
}

// renderSearchBar renders the search bar when active
func (m RosterModel) renderSearchBar() string {
	searchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(m.width - 2)

	return searchStyle.Render("Search: " + m.searchQuery + "█")
}

// renderHelpBar renders the help bar with hotkey hints
func (m RosterModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("↑/↓ nav · ←/→ page · / search · q/esc quit")
}

// Helper function for min
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RunRoster starts the interactive player roster
func RunRoster(st *store.Store, players []models.Player) error {
	model := NewRosterModel(st, players)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
