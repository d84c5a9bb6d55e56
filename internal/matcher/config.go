package matcher

// MatcherConfig tunes the per-signal weights and thresholds. Zero values fall
// back to DefaultConfig.
type MatcherConfig struct {
	// MatchThreshold is the minimum total score for a match to be reported.
	MatchThreshold float64 `yaml:"match_threshold"`
	// HighConfidence and MediumConfidence bound the confidence tiers.
	HighConfidence   float64 `yaml:"high_confidence"`
	MediumConfidence float64 `yaml:"medium_confidence"`

	// Category-signal weights.
	PrimaryKeywordScore float64 `yaml:"primary_keyword_score"`
	RelatedKeywordScore float64 `yaml:"related_keyword_score"`
	RelatedKeywordCap   float64 `yaml:"related_keyword_cap"`
	ContextKeywordScore float64 `yaml:"context_keyword_score"`
	ContextKeywordCap   float64 `yaml:"context_keyword_cap"`

	// Title- and description-signal weights.
	TitleTokenScore float64 `yaml:"title_token_score"`
	TitleScoreCap   float64 `yaml:"title_score_cap"`
	DescTokenScore  float64 `yaml:"desc_token_score"`
	DescScoreCap    float64 `yaml:"desc_score_cap"`

	// Unit- and history-signal weights.
	UnitMatchScore     float64 `yaml:"unit_match_score"`
	HistoryRecordScore float64 `yaml:"history_record_score"`
	HistoryScoreCap    float64 `yaml:"history_score_cap"`
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() MatcherConfig {
	return MatcherConfig{
		MatchThreshold:      0.6,
		HighConfidence:      1.5,
		MediumConfidence:    0.8,
		PrimaryKeywordScore: 1.0,
		RelatedKeywordScore: 0.3,
		RelatedKeywordCap:   0.9,
		ContextKeywordScore: 0.2,
		ContextKeywordCap:   0.6,
		TitleTokenScore:     0.5,
		TitleScoreCap:       1.5,
		DescTokenScore:      0.1,
		DescScoreCap:        0.5,
		UnitMatchScore:      0.4,
		HistoryRecordScore:  0.05,
		HistoryScoreCap:     0.5,
	}
}

// ApplyDefaults fills zero values with defaults.
func (c *MatcherConfig) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.MatchThreshold == 0 {
		c.MatchThreshold = defaults.MatchThreshold
	}
	if c.HighConfidence == 0 {
		c.HighConfidence = defaults.HighConfidence
	}
	if c.MediumConfidence == 0 {
		c.MediumConfidence = defaults.MediumConfidence
	}
	if c.PrimaryKeywordScore == 0 {
		c.PrimaryKeywordScore = defaults.PrimaryKeywordScore
	}
	if c.RelatedKeywordScore == 0 {
		c.RelatedKeywordScore = defaults.RelatedKeywordScore
	}
	if c.RelatedKeywordCap == 0 {
		c.RelatedKeywordCap = defaults.RelatedKeywordCap
	}
	if c.ContextKeywordScore == 0 {
		c.ContextKeywordScore = defaults.ContextKeywordScore
	}
	if c.ContextKeywordCap == 0 {
		c.ContextKeywordCap = defaults.ContextKeywordCap
	}
	if c.TitleTokenScore == 0 {
		c.TitleTokenScore = defaults.TitleTokenScore
	}
	if c.TitleScoreCap == 0 {
		c.TitleScoreCap = defaults.TitleScoreCap
	}
	if c.DescTokenScore == 0 {
		c.DescTokenScore = defaults.DescTokenScore
	}
	if c.DescScoreCap == 0 {
		c.DescScoreCap = defaults.DescScoreCap
	}
	if c.UnitMatchScore == 0 {
		c.UnitMatchScore = defaults.UnitMatchScore
	}
	if c.HistoryRecordScore == 0 {
		c.HistoryRecordScore = defaults.HistoryRecordScore
	}
	if c.HistoryScoreCap == 0 {
		c.HistoryScoreCap = defaults.HistoryScoreCap
	}
}
