package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type doneMsg struct{}

// counter counts keys, quits on doneMsg and starts a slow tick on init.
type counter struct {
	keys int
	got  bool
}

func (m counter) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(time.Time) tea.Msg { return nil }),
		func() tea.Msg { return doneMsg{} },
	)
}

func (m counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		m.keys++
	case doneMsg:
		m.got = true
		return m, tea.Quit
	}
	return m, nil
}

func (m counter) View() string { return "" }

func TestDriver_DrainsBatchAndDropsSlowCmds(t *testing.T) {
	d := New(t, counter{}).Start()

	assert.True(t, d.Model.(counter).got)
	assert.True(t, d.Quitting)
	assert.Equal(t, 1, d.Dropped)
}

func TestDriver_IgnoresInputAfterQuit(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('a')
	d.PressEsc()
	assert.Equal(t, 2, d.Model.(counter).keys)

	d.Send(doneMsg{})
	d.PressCtrlC()
	assert.True(t, d.Quitting)
	assert.Equal(t, 2, d.Model.(counter).keys)
}
