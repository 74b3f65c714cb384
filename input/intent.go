package input

// Intent is a semantic preview action decoded from a key
type Intent uint8

const (
	IntentNone Intent = iota

	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // Space
	IntentReset       // r
	IntentNextMode    // n, Right
	IntentPrevMode    // p, Left
	IntentNextShape   // s
	IntentNextPattern // g
	IntentNextColor   // c
	IntentToggleSound // m
	IntentToggleHelp  // ?
)

var intentNames = map[string]Intent{
	"none":         IntentNone,
	"quit":         IntentQuit,
	"pause":        IntentTogglePause,
	"reset":        IntentReset,
	"next_mode":    IntentNextMode,
	"prev_mode":    IntentPrevMode,
	"next_shape":   IntentNextShape,
	"next_pattern": IntentNextPattern,
	"next_color":   IntentNextColor,
	"sound":        IntentToggleSound,
	"help":         IntentToggleHelp,
}

// ParseIntent resolves a config action name
func ParseIntent(name string) (Intent, bool) {
	i, ok := intentNames[name]
	return i, ok
}
