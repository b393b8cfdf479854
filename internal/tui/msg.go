package tui

import "github.com/runoshun/issue-import/internal/domain"

// Msg is the sealed interface for all progress messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgEvent carries a reported event into the program.
type MsgEvent struct {
	Event domain.Event
}

func (MsgEvent) sealed() {}

// MsgDone is sent when the work finished.
type MsgDone struct {
	Err error
}

func (MsgDone) sealed() {}
