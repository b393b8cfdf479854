package tui

import (
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_InfoEventUpdatesStatus(t *testing.T) {
	m := NewModel(nil, domain.LevelWarn)

	_, cmd := m.Update(MsgEvent{Event: domain.Infof("Fetching open issues from octo/hello")})

	assert.Nil(t, cmd)
	assert.Equal(t, "Fetching open issues from octo/hello", m.status)
	assert.Contains(t, m.View(), "Fetching open issues from octo/hello")
}

func TestModel_InfoEventPrintedWhenVerbose(t *testing.T) {
	m := NewModel(nil, domain.LevelDebug)

	_, cmd := m.Update(MsgEvent{Event: domain.Infof("Resolving Shortcut project 7")})

	assert.NotNil(t, cmd)
	assert.Equal(t, "Resolving Shortcut project 7", m.status)
}

func TestModel_WarningIsPrinted(t *testing.T) {
	m := NewModel(nil, domain.LevelInfo)

	_, cmd := m.Update(MsgEvent{Event: domain.Warnf("Imported 15 of 25 issues")})

	assert.NotNil(t, cmd)
	assert.Equal(t, "Starting", m.status)
}

func TestModel_DebugIgnoredByDefault(t *testing.T) {
	m := NewModel(nil, domain.LevelInfo)

	_, cmd := m.Update(MsgEvent{Event: domain.Event{Level: domain.LevelDebug, Message: "batch 1 done"}})

	assert.Nil(t, cmd)
	assert.Equal(t, "Starting", m.status)
}

func TestModel_DoneQuits(t *testing.T) {
	m := NewModel(nil, domain.LevelInfo)
	workErr := errors.New("boom")

	_, cmd := m.Update(MsgDone{Err: workErr})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Same(t, workErr, m.Err())
	assert.Empty(t, m.View())
}

func TestModel_CtrlCCancels(t *testing.T) {
	cancelled := false
	m := NewModel(func() { cancelled = true }, domain.LevelInfo)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Nil(t, cmd)
	assert.True(t, cancelled)
	assert.True(t, m.Aborted())
	assert.Equal(t, "Cancelling", m.status)
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	cancelled := false
	m := NewModel(func() { cancelled = true }, domain.LevelInfo)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.False(t, cancelled)
	assert.False(t, m.Aborted())
}

type recordingSender struct {
	msgs []tea.Msg
	mu   sync.Mutex
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func TestProgramReporter_Report(t *testing.T) {
	s := &recordingSender{}
	r := NewProgramReporter(s)

	r.Report(domain.Infof("hello"))

	require.Len(t, s.msgs, 1)
	assert.Equal(t, MsgEvent{Event: domain.Infof("hello")}, s.msgs[0])
}

func TestStyles_FormatEvent(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, "plain", s.FormatEvent(domain.Infof("plain")))
	assert.Contains(t, s.FormatEvent(domain.Warnf("careful")), "warning:")
	assert.Contains(t, s.FormatEvent(domain.Warnf("careful")), "careful")
	assert.Contains(t, s.FormatEvent(domain.ErrorEvent(errors.New("broken"))), "error:")
	assert.Contains(t, s.FormatEvent(domain.Event{Level: domain.LevelDebug, Message: "quiet"}), "quiet")
}

