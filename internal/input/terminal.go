package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between the first key press and the
// terminal's autorepeat.
const DefaultHoldWindow = 550 * time.Millisecond

// TerminalKeyboard tracks key state from tcell events. Terminals only report
// presses, so a key counts as held until HoldWindow passes without a repeat.
type TerminalKeyboard struct {
	HoldWindow time.Duration
	now        func() time.Time
	lastSeen   map[Key]time.Time
}

func NewTerminalKeyboard() *TerminalKeyboard {
	return &TerminalKeyboard{
		HoldWindow: DefaultHoldWindow,
		now:        time.Now,
		lastSeen:   make(map[Key]time.Time),
	}
}

// HandleEvent records ev and reports whether it was a movement key.
func (k *TerminalKeyboard) HandleEvent(ev *tcell.EventKey) bool {
	key := translateTcell(ev)
	if key == KeyUnknown {
		return false
	}
	k.lastSeen[key] = k.now()
	// opposing key releases the other immediately
	if opp, ok := opposite[key]; ok {
		delete(k.lastSeen, opp)
	}
	return true
}

func (k *TerminalKeyboard) IsPressed(key Key) bool {
	seen, ok := k.lastSeen[key]
	if !ok {
		return false
	}
	return k.now().Sub(seen) < k.HoldWindow
}

// Release forgets every held key.
func (k *TerminalKeyboard) Release() {
	for key := range k.lastSeen {
		delete(k.lastSeen, key)
	}
}

var opposite = map[Key]Key{
	KeyW: KeyS, KeyS: KeyW, KeyA: KeyD, KeyD: KeyA,
	KeyUp: KeyDown, KeyDown: KeyUp, KeyLeft: KeyRight, KeyRight: KeyLeft,
}

func translateTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return KeyW
		case 'a', 'A':
			return KeyA
		case 's', 'S':
			return KeyS
		case 'd', 'D':
			return KeyD
		}
	}
	return KeyUnknown
}
