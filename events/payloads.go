package events

// InputPressPayload carries a press on a named input signal
type InputPressPayload struct {
	Signal    string
	Magnitude float64
}

// InputValuePayload sets or clears an analog input signal
type InputValuePayload struct {
	Signal  string
	Value   float64
	Present bool
}

// AimMovePayload nudges aim in radians
type AimMovePayload struct {
	Yaw   float64
	Pitch float64
}

// RoundStartedPayload names the selected difficulty
type RoundStartedPayload struct {
	Difficulty string
}

// RoundFinishedPayload carries the final score of a round
type RoundFinishedPayload struct {
	Score  int
	Forced bool
}
