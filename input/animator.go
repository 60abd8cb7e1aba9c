package input

import "time"

// Animator parameter names
const (
	ParamTrigger = "Trigger"
	ParamGrip    = "Grip"
)

// AnimatorSink receives float animation parameters
type AnimatorSink interface {
	SetAnimatorFloat(name string, value float64)
}

// HandAnimator copies the analog trigger and grip levels into hand animation parameters each tick
// Absent signals leave the previous parameter value untouched
type HandAnimator struct {
	source Source
	sink   AnimatorSink
}

// NewHandAnimator creates an animator reading source
func NewHandAnimator(source Source, sink AnimatorSink) *HandAnimator {
	return &HandAnimator{source: source, sink: sink}
}

// Update implements engine.System
func (a *HandAnimator) Update(time.Duration) {
	if a.sink == nil || a.source == nil {
		return
	}
	if v, ok := a.source.Value(SignalTrigger); ok {
		a.sink.SetAnimatorFloat(ParamTrigger, v)
	}
	if v, ok := a.source.Value(SignalGrip); ok {
		a.sink.SetAnimatorFloat(ParamGrip, v)
	}
}
