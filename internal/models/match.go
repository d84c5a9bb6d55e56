package models

// MatchConfidence is the qualitative tier for a goal match score.
type MatchConfidence string

const (
	ConfidenceHigh   MatchConfidence = "high"
	ConfidenceMedium MatchConfidence = "medium"
	ConfidenceLow    MatchConfidence = "low"
)

func (c MatchConfidence) String() string {
	return string(c)
}

// MatchResult is the best goal match found for a piece of content.
// The matcher returns nil instead of a MatchResult when no candidate clears
// the match threshold.
type MatchResult struct {
	GoalID string `json:"goal_id"`
	// Score is the accumulated signal total. It is unbounded above and is
	// compared against fixed thresholds, not normalized.
	Score      float64         `json:"score"`
	Confidence MatchConfidence `json:"confidence"`
	// Reason is a semicolon-joined trace of the signals that fired, for
	// debugging and explainability only.
	Reason string `json:"reason"`
}
