package analytics

// MasteryLevel is a coarse classification of how well a user knows a word,
// derived from historical accuracy on that word.
type MasteryLevel string

const (
	Mastered   MasteryLevel = "mastered"
	Learning   MasteryLevel = "learning"
	NotStarted MasteryLevel = "not_started"
)

// ClassifyMastery maps an accuracy percentage in [0,100] to a mastery level.
// Exact thresholds resolve upward: 90 is mastered, 70 is learning. Words
// with no recorded history must be given a defined accuracy (0) by the
// caller before classification.
func ClassifyMastery(accuracy float64) MasteryLevel {
	switch {
	case accuracy >= 90:
		return Mastered
	case accuracy >= 70:
		return Learning
	default:
		return NotStarted
	}
}
