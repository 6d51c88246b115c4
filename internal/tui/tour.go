// Package tui plays the product tour in the terminal.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flexxoo/website/domain/tour"
)

// TickInterval is the playback clock resolution.
const TickInterval = 100 * time.Millisecond

type tickMsg time.Time

// KeyMap defines keybindings
type KeyMap struct {
	Toggle   key.Binding
	Next     key.Binding
	Previous key.Binding
	GoTo     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next step"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "b"),
			key.WithHelp("←/b", "previous step"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to step"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Previous, k.Next, k.GoTo},
		{k.Help, k.Quit},
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	screenStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 2)
)

// Model drives a tour.Player from keyboard input and a 100ms clock.
type Model struct {
	player   *tour.Player
	progress progress.Model
	help     help.Model
	keyMap   KeyMap
	showHelp bool
}

// New returns a model that starts playing immediately when autoplay is set.
func New(p *tour.Player, autoplay bool) Model {
	if autoplay {
		p.Play()
	}
	return Model{
		player:   p,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:     help.New(),
		keyMap:   DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickEvery(TickInterval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.player.Tick(int(TickInterval / time.Millisecond))
		return m, tickEvery(TickInterval)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = min(60, max(10, msg.Width-20))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keyMap.Toggle):
			m.player.Toggle()
		case key.Matches(msg, m.keyMap.Next):
			m.player.Next()
		case key.Matches(msg, m.keyMap.Previous):
			m.player.Previous()
		case key.Matches(msg, m.keyMap.GoTo):
			n, _ := strconv.Atoi(msg.String())
			// Digits beyond the tour length are ignored.
			_ = m.player.GoToStep(n - 1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	st := m.player.State()
	current := m.player.Current()

	b.WriteString(titleStyle.Render("See Flexxoo in Action"))
	b.WriteString("\n\n")

	for i, step := range m.player.Steps() {
		line := fmt.Sprintf("%d. %s", i+1, step.Title)
		if i == st.Index {
			b.WriteString(activeStyle.Render("▶ " + line))
		} else {
			b.WriteString(inactiveStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	screen := titleStyle.Render(current.Title) + "\n" + current.Description + "\n\n" + strings.Join(screenLines(current.Content), "\n")
	b.WriteString(screenStyle.Render(screen))
	b.WriteString("\n\n")

	status := "paused"
	if st.Playing {
		status = fmt.Sprintf("playing, next in %ds", m.player.Remaining())
	}
	b.WriteString(m.progress.ViewAs(m.player.Progress() / 100))
	b.WriteString("  " + status + "\n\n")

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keyMap.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keyMap.ShortHelp()))
	}
	b.WriteString("\n")
	return b.String()
}

// Player exposes the underlying player, mostly for tests.
func (m Model) Player() *tour.Player { return m.player }

func tickEvery(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func screenLines(content string) []string {
	switch content {
	case "dashboard":
		return []string{
			"₹1,24,500 Today's Revenue (+15% vs yesterday)",
			"28 Appointments (3 pending)",
			"92% Patient Satisfaction (+2% this week)",
			"",
			"Recent Activity",
			"  Dr. Sharma completed consultation   2 min ago",
			"  Payment received from Rajesh K.     5 min ago",
			"  New appointment booked              8 min ago",
		}
	case "appointments":
		return []string{
			"Today's Schedule (28 appointments)",
			"  10:30 AM  Priya Sharma   General Checkup   Confirmed",
			"  11:15 AM  Rajesh Kumar   Follow-up Visit   Reminder Sent",
			"   2:00 PM  Anita Verma    Consultation      Scheduled",
			"",
			"✓ Auto-reminder sent to 5 patients via WhatsApp",
		}
	case "billing":
		return []string{
			"Invoice #INV-2024-001 (Paid)",
			"  Consultation Fee     ₹800",
			"  Diagnostic Tests   ₹1,200",
			"  Medicines            ₹350",
			"  Total Amount       ₹2,350",
			"",
			"₹45,680 Today's Collections, ₹8,920 Pending Payments",
			"✓ Payment link sent via SMS & WhatsApp",
		}
	case "whatsapp":
		return []string{
			"Appointment Reminder  ✓ Sent to 15 patients today",
			"Payment Reminder      ⏰ Scheduled for tomorrow",
			"Follow-up Care        📋 Auto-sent after consultation",
			"",
			"✓ 60% reduction in no-shows",
		}
	}
	return []string{"Preview coming soon."}
}
