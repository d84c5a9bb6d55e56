package models

// ParsingQuality is the qualitative bucket summarizing how complete a parsed
// goal draft is.
type ParsingQuality string

const (
	QualityExcellent ParsingQuality = "excellent"
	QualityGood      ParsingQuality = "good"
	QualityFair      ParsingQuality = "fair"
	QualityPoor      ParsingQuality = "poor"
)

func (q ParsingQuality) String() string {
	return string(q)
}

// QualityForMissing maps the number of missing draft elements to a quality tier.
func QualityForMissing(n int) ParsingQuality {
	switch {
	case n == 0:
		return QualityExcellent
	case n == 1:
		return QualityGood
	case n == 2:
		return QualityFair
	default:
		return QualityPoor
	}
}

// ParsingHints describes what a parsed goal draft is missing so the
// mini-program can prompt the user to fill in the gaps.
type ParsingHints struct {
	// MissingElements lists the absent draft elements in check order
	// (quantity, deadline, category, description, specificity).
	MissingElements []string       `json:"missing_elements"`
	Quality         ParsingQuality `json:"parsing_quality"`
	// ImprovementTips carries one concrete suggestion per missing element.
	ImprovementTips []string `json:"improvement_tips,omitempty"`
}
