package game

// Phase is the current stage of the proposal. Phases only ever advance.
type Phase uint8

const (
	PhaseChasing         Phase = iota // No button runs away
	PhasePersuading                   // No button stays put, Yes grows
	PhaseAccepted                     // celebration slideshow
	PhaseExpandedMessage              // closing letter (terminal)
)

var phaseNames = map[Phase]string{
	PhaseChasing:         "CHASING",
	PhasePersuading:      "PERSUADING",
	PhaseAccepted:        "ACCEPTED",
	PhaseExpandedMessage: "EXPANDED_MESSAGE",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "UNKNOWN"
}
