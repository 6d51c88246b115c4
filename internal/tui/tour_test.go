package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexxoo/website/domain/tour"
)

func newModel(t *testing.T, autoplay bool) Model {
	t.Helper()
	steps, err := tour.DefaultSteps()
	require.NoError(t, err)
	p, err := tour.NewPlayer(steps)
	require.NoError(t, err)
	return New(p, autoplay)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Keys(t *testing.T) {
	m := newModel(t, false)
	assert.False(t, m.Player().Playing())

	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Player().Playing())

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tour.State{Index: 1}, m.Player().State())

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, m.Player().State().Index)

	m = press(m, runes("2"))
	assert.Equal(t, 1, m.Player().State().Index)

	m = press(m, runes("9"))
	assert.Equal(t, 1, m.Player().State().Index)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, false)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Tick(t *testing.T) {
	m := newModel(t, true)

	for range 40 {
		next, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd)
		m = next.(Model)
	}
	assert.Equal(t, tour.State{Index: 1, ElapsedMs: 0, Playing: true}, m.Player().State())

	m = press(m, runes("p"))
	next, _ := m.Update(tickMsg(time.Now()))
	assert.Equal(t, 0, next.(Model).Player().State().ElapsedMs)
}

func TestModel_View(t *testing.T) {
	m := newModel(t, false)
	view := m.View()
	assert.Contains(t, view, "Smart Dashboard Overview")
	assert.Contains(t, view, "Recent Activity")
	assert.Contains(t, view, "paused")

	m = press(m, runes("?"))
	assert.Contains(t, m.View(), "jump to step")
}
