package input

import "github.com/gdamore/tcell/v2"

// AimStep is the aim change per arrow key press, in radians
const AimStep = 0.05

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent    IntentType
	Signal    Signal
	Magnitude float64
	Analog    Signal
	Value     float64
	Yaw       float64
	Pitch     float64
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyUp:     {Intent: IntentAim, Pitch: AimStep},
			tcell.KeyDown:   {Intent: IntentAim, Pitch: -AimStep},
			tcell.KeyLeft:   {Intent: IntentAim, Yaw: -AimStep},
			tcell.KeyRight:  {Intent: IntentAim, Yaw: AimStep},
		},

		Runes: map[rune]KeyEntry{
			' ': {Intent: IntentPress, Signal: SignalRightTrigger, Magnitude: 1, Analog: SignalTrigger, Value: 1},
			'f': {Intent: IntentPress, Signal: SignalLeftTrigger, Magnitude: 1, Analog: SignalTrigger, Value: 1},
			// Half pull stays under the rifle's trigger sensitivity
			'F': {Intent: IntentPress, Signal: SignalLeftTrigger, Magnitude: 0.3, Analog: SignalTrigger, Value: 0.3},
			's': {Intent: IntentPress, Signal: SignalSwapHands, Magnitude: 1},
			'p': {Intent: IntentPress, Signal: SignalPistolFire, Magnitude: 1},
			'g': {Intent: IntentValue, Analog: SignalGrip, Value: 1},
			'r': {Intent: IntentForceReset},
			'q': {Intent: IntentQuit},
		},
	}
}
