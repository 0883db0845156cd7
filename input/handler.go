package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/byrax15/snake-gl/event"
)

// Submitter accepts game commands from the input goroutine
type Submitter interface {
	Submit(ev event.GameEvent)
}

// Handler translates terminal events into game commands
type Handler struct {
	table  *KeyTable
	target Submitter
}

func NewHandler(table *KeyTable, target Submitter) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{
		table:  table,
		target: target,
	}
}

// HandleEvent processes one terminal event, returns false when the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	intent := h.table.Lookup(key)
	if intent == IntentQuit {
		return false
	}
	if cmd, ok := intent.ToEvent(); ok {
		h.target.Submit(cmd)
	}
	return true
}
