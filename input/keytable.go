package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings: arrows, WASD and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'w': IntentUp,
			's': IntentDown,
			'a': IntentLeft,
			'd': IntentRight,
			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,
			'p': IntentPause,
			'r': IntentRestart,
			' ': IntentResume,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event, runes are matched case-insensitively
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
