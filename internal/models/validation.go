package models

// SmartDimension names one of the five SMART goal-quality dimensions.
type SmartDimension string

const (
	DimensionSpecific   SmartDimension = "specific"
	DimensionMeasurable SmartDimension = "measurable"
	DimensionAchievable SmartDimension = "achievable"
	DimensionRelevant   SmartDimension = "relevant"
	DimensionTimeBound  SmartDimension = "time_bound"
)

// SmartDimensions lists the five dimensions in canonical order.
var SmartDimensions = []SmartDimension{
	DimensionSpecific,
	DimensionMeasurable,
	DimensionAchievable,
	DimensionRelevant,
	DimensionTimeBound,
}

// ValidationResult is the outcome of scoring a goal draft against the SMART
// criteria. An invalid draft is a normal result, not an error.
type ValidationResult struct {
	// IsValid is true iff Errors is empty.
	IsValid     bool     `json:"is_valid"`
	HasWarnings bool     `json:"has_warnings"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
	// Score is the aggregate 0-100 quality score.
	Score int `json:"score"`
	// SmartScores holds the per-dimension sub-scores, each in [0,1].
	SmartScores map[SmartDimension]float64 `json:"smart_scores"`
	Analysis    *SmartAnalysis             `json:"analysis,omitempty"`
}

// SmartAnalysis summarizes the per-dimension sub-scores for display.
type SmartAnalysis struct {
	// OverallScore is the mean of the five sub-scores, in [0,1].
	OverallScore float64 `json:"overall_score"`
	// Strengths lists dimensions scoring at least 0.8.
	Strengths []string `json:"strengths"`
	// Weaknesses lists dimensions scoring below 0.5.
	Weaknesses []string `json:"weaknesses"`
	// Improvements pairs each weakness with a concrete improvement tip.
	Improvements []string `json:"improvements"`
}
