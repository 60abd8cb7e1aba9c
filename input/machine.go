package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// NewMachineWithTable creates a machine with custom bindings
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Process parses a terminal event; returns nil for unbound input
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok || entry.Intent == IntentNone {
		return nil
	}
	return &Intent{
		Type:      entry.Intent,
		Signal:    entry.Signal,
		Magnitude: entry.Magnitude,
		Analog:    entry.Analog,
		Value:     entry.Value,
		Yaw:       entry.Yaw,
		Pitch:     entry.Pitch,
	}
}
