// Package models defines core data structures for content analysis, goal
// drafts, SMART validation, and goal matching.
package models

// RecordType is the classification assigned to a piece of user-submitted content.
type RecordType string

const (
	// RecordProgress is a record of measurable progress toward a goal.
	RecordProgress RecordType = "progress"
	// RecordProcess is an ordinary process note (the default type).
	RecordProcess RecordType = "process"
	// RecordMilestone marks an important stage being reached.
	RecordMilestone RecordType = "milestone"
	// RecordDifficulty records a problem or setback.
	RecordDifficulty RecordType = "difficulty"
	// RecordMethod records a technique or approach that worked.
	RecordMethod RecordType = "method"
	// RecordReflection records a review or retrospective thought.
	RecordReflection RecordType = "reflection"
	// RecordAdjustment records a change of plan.
	RecordAdjustment RecordType = "adjustment"
	// RecordAchievement records a success or recognition.
	RecordAchievement RecordType = "achievement"
	// RecordInsight records a realization or new idea.
	RecordInsight RecordType = "insight"
	// RecordOther is content that fits no other type.
	RecordOther RecordType = "other"
)

func (t RecordType) String() string {
	return string(t)
}

// Sentiment is the emotional polarity detected in content.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) String() string {
	return string(s)
}

// ContentAnalysis holds the structured signals extracted from one text
// submission. It is created once, attached to whatever record the caller
// persists, and never mutated.
type ContentAnalysis struct {
	RecordType RecordType `json:"record_type"`
	Sentiment  Sentiment  `json:"sentiment"`
	// EnergyLevel is 1-10 when detected, nil when the text gives no signal.
	EnergyLevel *int `json:"energy_level,omitempty"`
	// DifficultyLevel is 1-10 when detected, nil when the text gives no signal.
	DifficultyLevel *int     `json:"difficulty_level,omitempty"`
	Keywords        []string `json:"keywords"`
	Tags            []string `json:"tags"`
	IsImportant     bool     `json:"is_important"`
	IsMilestone     bool     `json:"is_milestone"`
	IsBreakthrough  bool     `json:"is_breakthrough"`
	// ConfidenceScore is 0-100; higher means the classification had more
	// keyword evidence to work with.
	ConfidenceScore int `json:"confidence_score"`
}
