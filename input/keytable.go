package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyRight:  IntentNextMode,
			tcell.KeyLeft:   IntentPrevMode,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			' ': IntentTogglePause,
			'r': IntentReset,
			'n': IntentNextMode,
			'p': IntentPrevMode,
			's': IntentNextShape,
			'g': IntentNextPattern,
			'c': IntentNextColor,
			'm': IntentToggleSound,
			'?': IntentToggleHelp,
		},
	}
}

// Translate decodes a key event
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	return kt.Lookup(ev.Key(), ev.Rune())
}

// Lookup resolves a key code, using r when key is tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}

// Bind overrides one binding from config; key is a single character or "space"
func (kt *KeyTable) Bind(action, key string) error {
	intent, ok := ParseIntent(action)
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}
	if strings.EqualFold(key, "space") {
		key = " "
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return fmt.Errorf("action %q: key %q must be a single character", action, key)
	}
	kt.Runes[r] = intent
	return nil
}
