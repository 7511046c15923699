package game

// rejectionCaptions escalate with every click on the No button.
// Once exhausted the last entry sticks.
var rejectionCaptions = [...]string{
	"No",
	"Are you sure?",
	"Really sure?",
	"Think again please?",
	"Can we talk about this?",
	"I promise I'll be sweet!",
	"Please give me a chance!",
	"Is that your final answer?",
	"You're breaking my heart ;(",
	"Just one yes?",
	"Okay, but hear me out...",
	"Pretty please?",
	"there's a reason why you should say yes......",
	"to know, please say 'yes' ",
	"I'm waiting.....",
	"Pretty please!!!",
}

// CaptionCount is the number of distinct No-button captions.
const CaptionCount = len(rejectionCaptions)

// CaptionIndex clamps a persuasion count to a valid caption index.
func CaptionIndex(persuasionCount int) int {
	switch {
	case persuasionCount < 0:
		return 0
	case persuasionCount >= CaptionCount:
		return CaptionCount - 1
	default:
		return persuasionCount
	}
}

// Caption returns the No-button label for the given persuasion count.
func Caption(persuasionCount int) string {
	return rejectionCaptions[CaptionIndex(persuasionCount)]
}

// Captions returns a copy of the caption table.
func Captions() []string {
	out := make([]string, CaptionCount)
	copy(out, rejectionCaptions[:])
	return out
}
