package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfields/tally/internal/config"
	"github.com/mfields/tally/internal/errors"
	"github.com/mfields/tally/internal/model"
	"github.com/mfields/tally/internal/notify"
	"github.com/mfields/tally/internal/tally"
)

// mode is the interaction mode of the counter screen.
type mode int

const (
	modeNormal mode = iota
	modeInputTarget
	modeConfirmReset
	modeConfirmClear
)

// tickMsg is sent once a second to expire transient UI state.
type tickMsg time.Time

// stateMsg carries a machine state change to the screen.
type stateMsg tally.State

// notifMsg carries a dispatched notification to the screen.
type notifMsg struct {
	n *model.Notification
}

// CounterModel is the bubbletea model for the counter screen.
type CounterModel struct {
	machine *tally.Machine

	// states receives snapshots from the machine's subscription; the
	// sink receives target-reached notifications from the dispatcher.
	states chan tally.State
	sink   *notify.ChannelSink

	st tally.State

	// UI state
	mode       mode
	input      string
	inputErr   string
	alert      string
	alertExp   time.Time
	flashUntil time.Time
	width      int
	height     int
}

// NewCounterModel creates the counter screen bound to a machine and a
// notification sink. The sink must be registered with the machine's
// dispatcher by the caller.
func NewCounterModel(machine *tally.Machine, sink *notify.ChannelSink) *CounterModel {
	m := &CounterModel{
		machine: machine,
		states:  make(chan tally.State, 16),
		sink:    sink,
		st:      machine.State(),
	}

	machine.Subscribe(func(st tally.State) {
		select {
		case m.states <- st:
		default:
		}
	})

	return m
}

// Init initializes the model.
func (m *CounterModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.waitState(), m.waitNotif())
}

// tickCmd schedules the next tick.
func (m *CounterModel) tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitState waits for the next machine state change.
func (m *CounterModel) waitState() tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-m.states)
	}
}

// waitNotif waits for the next dispatched notification.
func (m *CounterModel) waitNotif() tea.Cmd {
	if m.sink == nil {
		return nil
	}
	return func() tea.Msg {
		return notifMsg{n: <-m.sink.C()}
	}
}

// Update handles messages and updates the model.
func (m *CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.st = tally.State(msg)
		return m, m.waitState()

	case notifMsg:
		if msg.n != nil && msg.n.Type == model.NotifyTargetReached {
			if config.Global.Notify.Flash {
				m.flashUntil = time.Now().Add(config.Global.UI.FlashDuration)
			}
			if config.Global.Notify.Alert {
				m.setAlert(msg.n.Message)
			}
		}
		return m, m.waitNotif()

	case tickMsg:
		if !m.alertExp.IsZero() && time.Now().After(m.alertExp) {
			m.alert = ""
			m.alertExp = time.Time{}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// handleKeyPress handles keyboard input per mode.
func (m *CounterModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeInputTarget:
		return m.handleInputKey(msg)
	case modeConfirmReset, modeConfirmClear:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ", "+", "=":
		m.machine.Increment()
		return m, nil

	case "b":
		// The "+10" affordance.
		m.machine.IncrementBy(10)
		return m, nil

	case "t":
		m.mode = modeInputTarget
		m.input = ""
		if m.st.HasTarget() {
			m.input = strconv.Itoa(m.st.Target)
		}
		m.inputErr = ""
		return m, nil

	case "r":
		m.mode = modeConfirmReset
		return m, nil

	case "c":
		if m.st.HasTarget() {
			m.mode = modeConfirmClear
		} else {
			m.setAlert("No target to clear")
		}
		return m, nil
	}

	return m, nil
}

// handleInputKey handles the target entry overlay.
func (m *CounterModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		_, err := m.machine.SetTarget(m.input)
		if err != nil {
			// Keep the overlay open with the input retained so the
			// user can correct it.
			if ue, ok := errors.AsUserError(err); ok {
				m.inputErr = ue.Message
			} else {
				m.inputErr = err.Error()
			}
			return m, nil
		}
		m.mode = modeNormal
		m.input = ""
		m.inputErr = ""
		return m, nil

	case tea.KeyEsc:
		m.mode = modeNormal
		m.input = ""
		m.inputErr = ""
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil

	case tea.KeySpace:
		m.input += " "
		return m, nil
	}

	return m, nil
}

// handleConfirmKey handles the yes/no overlays.
func (m *CounterModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.mode == modeConfirmReset {
			m.machine.Reset()
			m.setAlert("Count reset")
		} else {
			m.machine.ClearTarget()
			m.setAlert("Target cleared")
		}
		m.mode = modeNormal
		return m, nil

	case "n", "N", "esc", "q":
		m.mode = modeNormal
		return m, nil
	}

	return m, nil
}

// setAlert shows a transient message.
func (m *CounterModel) setAlert(text string) {
	m.alert = text
	m.alertExp = time.Now().Add(config.Global.UI.MessageDuration)
}

// View renders the counter screen.
func (m *CounterModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, StyleTitle.Render("Tally"))

	sections = append(sections, m.renderCount())

	if m.st.HasTarget() {
		sections = append(sections, m.renderTarget())
	} else {
		sections = append(sections, StyleMuted.Render("No target · press t to set one"))
	}

	if m.alert != "" {
		sections = append(sections, StyleReached.Render(m.alert))
	}

	switch m.mode {
	case modeInputTarget:
		sections = append(sections, m.renderInputOverlay())
	case modeConfirmReset:
		sections = append(sections, m.renderConfirmOverlay("Reset count to 0?"))
	case modeConfirmClear:
		sections = append(sections, m.renderConfirmOverlay("Clear the target?"))
	}

	sections = append(sections, "", HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCount renders the framed count value.
func (m *CounterModel) renderCount() string {
	countStyle := StyleCount
	box := StyleCounterBox
	if m.st.Reached || time.Now().Before(m.flashUntil) {
		countStyle = StyleCountReached
		box = StyleCounterReachedBox
	}

	return box.Render(countStyle.Render(strconv.Itoa(m.st.Count)))
}

// renderTarget renders the target line with a progress bar.
func (m *CounterModel) renderTarget() string {
	barWidth := 24
	if m.width > 0 && m.width-20 < barWidth {
		barWidth = m.width - 20
		if barWidth < 8 {
			barWidth = 8
		}
	}

	line := fmt.Sprintf("%s %s %.0f%%",
		StyleTarget.Render(fmt.Sprintf("Target %d", m.st.Target)),
		ProgressBar(m.st.Progress(), barWidth),
		m.st.Progress())

	if m.st.Reached {
		line += "  " + StyleReached.Render("reached!")
	}
	return line
}

// renderInputOverlay renders the target entry overlay.
func (m *CounterModel) renderInputOverlay() string {
	body := "Set target (empty clears): " + m.input + "▌"
	if m.inputErr != "" {
		body += "\n" + StyleError.Render(m.inputErr)
	}
	body += "\n" + StyleMuted.Render("enter to confirm · esc to cancel")
	return StyleOverlayBox.Render(body)
}

// renderConfirmOverlay renders a yes/no overlay.
func (m *CounterModel) renderConfirmOverlay(question string) string {
	body := StyleWarning.Render(question) + "\n" +
		StyleMuted.Render("y to confirm · n to cancel")
	return StyleOverlayBox.Render(body)
}

// Run starts the counter screen in the alternate screen buffer.
func Run(machine *tally.Machine, sink *notify.ChannelSink) error {
	p := tea.NewProgram(NewCounterModel(machine, sink), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
