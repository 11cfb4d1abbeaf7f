package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/tally/internal/notify"
	"github.com/mfields/tally/internal/storage"
	"github.com/mfields/tally/internal/tally"
)

func setupModel(t *testing.T) (*CounterModel, *tally.Machine) {
	t.Helper()

	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	machine, err := tally.Load(tally.Deps{
		Repo:       storage.NewTallyRepo(db),
		Milestones: storage.NewMilestoneRepo(db),
		Dispatcher: notify.NewDispatcher(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { machine.Drain() })

	m := NewCounterModel(machine, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, machine
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// sync pumps the machine's latest state into the model, standing in
// for the subscription plumbing that runs under bubbletea.
func (m *CounterModel) sync(machine *tally.Machine) {
	m.Update(stateMsg(machine.State()))
}

func TestSpaceIncrements(t *testing.T) {
	m, machine := setupModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 1, machine.State().Count)

	m.Update(keyRunes("+"))
	assert.Equal(t, 2, machine.State().Count)
}

func TestBigIncrement(t *testing.T) {
	m, machine := setupModel(t)

	m.Update(keyRunes("b"))
	assert.Equal(t, 10, machine.State().Count)
}

func TestTargetInputFlow(t *testing.T) {
	m, machine := setupModel(t)

	m.Update(keyRunes("t"))
	assert.Equal(t, modeInputTarget, m.mode)

	for _, r := range "108" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 108, machine.State().Target)
}

func TestTargetInputInvalidRetainsInput(t *testing.T) {
	m, machine := setupModel(t)

	m.Update(keyRunes("t"))
	for _, r := range "abc" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Overlay stays open with the bad input kept for correction.
	assert.Equal(t, modeInputTarget, m.mode)
	assert.Equal(t, "abc", m.input)
	assert.NotEmpty(t, m.inputErr)
	assert.False(t, machine.State().HasTarget())
}

func TestTargetInputEmptyClears(t *testing.T) {
	m, machine := setupModel(t)

	_, err := machine.SetTarget("5")
	require.NoError(t, err)
	m.sync(machine)

	m.Update(keyRunes("t"))
	// Prefilled with the current target; erase it.
	for range "5" {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeNormal, m.mode)
	assert.False(t, machine.State().HasTarget())
}

func TestTargetInputEscCancels(t *testing.T) {
	m, machine := setupModel(t)

	m.Update(keyRunes("t"))
	m.Update(keyRunes("9"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeNormal, m.mode)
	assert.False(t, machine.State().HasTarget())
}

func TestResetConfirmFlow(t *testing.T) {
	m, machine := setupModel(t)

	machine.IncrementBy(5)
	m.sync(machine)

	m.Update(keyRunes("r"))
	assert.Equal(t, modeConfirmReset, m.mode)

	// Declining leaves the count alone.
	m.Update(keyRunes("n"))
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 5, machine.State().Count)

	m.Update(keyRunes("r"))
	m.Update(keyRunes("y"))
	assert.Equal(t, 0, machine.State().Count)
}

func TestClearTargetConfirmFlow(t *testing.T) {
	m, machine := setupModel(t)

	_, err := machine.SetTarget("10")
	require.NoError(t, err)
	m.sync(machine)

	m.Update(keyRunes("c"))
	assert.Equal(t, modeConfirmClear, m.mode)

	m.Update(keyRunes("y"))
	assert.Equal(t, modeNormal, m.mode)
	assert.False(t, machine.State().HasTarget())
}

func TestClearWithoutTargetShowsAlert(t *testing.T) {
	m, _ := setupModel(t)

	m.Update(keyRunes("c"))
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "No target to clear", m.alert)
}

func TestViewShowsCountAndTarget(t *testing.T) {
	m, machine := setupModel(t)

	machine.IncrementBy(5)
	_, err := machine.SetTarget("10")
	require.NoError(t, err)
	m.sync(machine)

	view := m.View()
	assert.Contains(t, view, "5")
	assert.Contains(t, view, "Target 10")
}

func TestViewNoTargetHint(t *testing.T) {
	m, _ := setupModel(t)

	assert.Contains(t, m.View(), "press t to set one")
}

func TestProgressBarWidth(t *testing.T) {
	bar := ProgressBar(50, 10)
	assert.NotEmpty(t, bar)

	assert.NotEmpty(t, HelpBar())
}
