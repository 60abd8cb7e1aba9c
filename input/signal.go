package input

// Signal names an input action or analog axis
type Signal string

const (
	SignalRightTrigger Signal = "RightTrigger"
	SignalLeftTrigger  Signal = "LeftTrigger"
	SignalSwapHands    Signal = "SwapHands"
	SignalPistolFire   Signal = "PistolFire"

	// Analog hand axes read every tick by the hand animator
	SignalTrigger Signal = "Trigger"
	SignalGrip    Signal = "Grip"
)

// Source reads analog values; ok is false when the signal is absent or disabled
type Source interface {
	Value(s Signal) (float64, bool)
}
