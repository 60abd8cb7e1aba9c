package input

import (
	"time"

	"github.com/lixenwraith/vr-range/constants"
)

// State holds the current analog values
// Keyboards cannot hold an analog level, so set values relax back toward zero each tick
type State struct {
	values    map[Signal]float64
	disabled  map[Signal]bool
	relaxRate float64 // units per second, zero disables relaxation
}

// NewState creates an empty state relaxing at the default rate
func NewState() *State {
	return &State{
		values:    make(map[Signal]float64),
		disabled:  make(map[Signal]bool),
		relaxRate: constants.AnalogRelaxRate,
	}
}

// SetRelaxRate changes how fast values fall back to zero
func (s *State) SetRelaxRate(rate float64) {
	s.relaxRate = max(rate, 0)
}

// Value implements Source
func (s *State) Value(sig Signal) (float64, bool) {
	if s.disabled[sig] {
		return 0, false
	}
	v, ok := s.values[sig]
	return v, ok
}

// Set stores a value clamped to [0, 1]
func (s *State) Set(sig Signal, v float64) {
	s.values[sig] = min(max(v, 0), 1)
}

// Clear makes the signal absent
func (s *State) Clear(sig Signal) {
	delete(s.values, sig)
}

// Disable hides the signal from readers until Enable
func (s *State) Disable(sig Signal) {
	s.disabled[sig] = true
}

// Enable undoes Disable
func (s *State) Enable(sig Signal) {
	delete(s.disabled, sig)
}

// Update relaxes every present value toward zero; values stay present at zero
func (s *State) Update(dt time.Duration) {
	if s.relaxRate == 0 {
		return
	}
	step := s.relaxRate * dt.Seconds()
	for sig, v := range s.values {
		s.values[sig] = max(v-step, 0)
	}
}
