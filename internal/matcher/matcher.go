// Package matcher picks the goal a free-text record most likely belongs to.
// Each candidate accumulates a score from independent signals (category
// keywords, title and description tokens, unit spelling, recent history);
// the best candidate is reported only when it clears the match threshold.
package matcher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dickey1981/targetmanage/internal/models"
)

// HistoryCounter reports how many records the user filed against a goal in
// the recent window. It is the matcher's only injection point for caller I/O;
// a panicking counter is treated as zero.
type HistoryCounter func(goalID string) int

// Matcher scores candidate goals against record content. Safe for concurrent
// use once constructed.
type Matcher struct {
	config       MatcherConfig
	categories   map[string]categoryKeywords
	unitVariants map[string][]string
	history      HistoryCounter
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithHistoryCounter injects the recent-record counter used for the history
// bonus. Without it the bonus is always zero.
func WithHistoryCounter(counter HistoryCounter) Option {
	return func(m *Matcher) {
		m.history = counter
	}
}

// NewMatcher creates a Matcher with the given configuration.
func NewMatcher(config MatcherConfig, opts ...Option) *Matcher {
	config.ApplyDefaults()
	m := &Matcher{
		config:       config,
		categories:   defaultKeywordCategories(),
		unitVariants: defaultUnitVariants(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the best-scoring candidate, or nil when no candidate clears
// the threshold. Ties keep the first-seen candidate in input order.
func (m *Matcher) Match(content string, candidates []models.GoalCandidate) *models.MatchResult {
	if len(candidates) == 0 {
		return nil
	}

	lowered := strings.ToLower(content)

	var best *models.MatchResult
	for _, candidate := range candidates {
		score, reasons := m.scoreCandidate(lowered, candidate)
		if best == nil || score > best.Score {
			best = &models.MatchResult{
				GoalID: candidate.ID,
				Score:  score,
				Reason: strings.Join(reasons, "; "),
			}
		}
	}

	if best.Score < m.config.MatchThreshold {
		return nil
	}
	best.Confidence = m.confidence(best.Score)
	return best
}

func (m *Matcher) scoreCandidate(content string, candidate models.GoalCandidate) (float64, []string) {
	score := 0.0
	var reasons []string

	add := func(s float64, rs []string) {
		score += s
		reasons = append(reasons, rs...)
	}
	add(m.scoreCategory(content, candidate.Category))
	add(m.scoreTitle(content, candidate.Title))
	if candidate.Description != "" {
		add(m.scoreDescription(content, candidate.Description))
	}
	if candidate.Unit != "" {
		add(m.scoreUnit(content, candidate.Unit))
	}
	add(m.scoreHistory(candidate.ID))

	return score, reasons
}

// scoreCategory applies the three keyword tiers for the candidate's category.
// The primary tier fires at most once; related and context hits accumulate up
// to their caps.
func (m *Matcher) scoreCategory(content, category string) (float64, []string) {
	keywords, ok := m.categories[strings.TrimSpace(category)]
	if !ok {
		return 0, nil
	}

	score := 0.0
	var reasons []string
	for _, kw := range keywords.Primary {
		if strings.Contains(content, kw) {
			score += m.config.PrimaryKeywordScore
			reasons = append(reasons, fmt.Sprintf("主关键词'%s'", kw))
			break
		}
	}
	if n := countContained(content, keywords.Related); n > 0 {
		score += capped(float64(n)*m.config.RelatedKeywordScore, m.config.RelatedKeywordCap)
		reasons = append(reasons, fmt.Sprintf("相关词×%d", n))
	}
	if n := countContained(content, keywords.Context); n > 0 {
		score += capped(float64(n)*m.config.ContextKeywordScore, m.config.ContextKeywordCap)
		reasons = append(reasons, fmt.Sprintf("上下文×%d", n))
	}
	return score, reasons
}

func (m *Matcher) scoreTitle(content, title string) (float64, []string) {
	cleaned := strings.ToLower(title)
	for _, filler := range titleFillers {
		cleaned = strings.ReplaceAll(cleaned, filler, "")
	}
	n := countContained(content, tokenize(cleaned))
	if n == 0 {
		return 0, nil
	}
	score := capped(float64(n)*m.config.TitleTokenScore, m.config.TitleScoreCap)
	return score, []string{fmt.Sprintf("标题词×%d", n)}
}

func (m *Matcher) scoreDescription(content, description string) (float64, []string) {
	n := countContained(content, tokenize(strings.ToLower(description)))
	if n == 0 {
		return 0, nil
	}
	score := capped(float64(n)*m.config.DescTokenScore, m.config.DescScoreCap)
	return score, []string{fmt.Sprintf("描述词×%d", n)}
}

func (m *Matcher) scoreUnit(content, unit string) (float64, []string) {
	unit = strings.ToLower(unit)
	if strings.Contains(content, unit) {
		return m.config.UnitMatchScore, []string{fmt.Sprintf("单位'%s'", unit)}
	}
	for _, variant := range m.unitVariants[unit] {
		if strings.Contains(content, variant) {
			return m.config.UnitMatchScore, []string{fmt.Sprintf("单位'%s'", variant)}
		}
	}
	return 0, nil
}

func (m *Matcher) scoreHistory(goalID string) (float64, []string) {
	count := m.countHistory(goalID)
	if count <= 0 {
		return 0, nil
	}
	score := capped(float64(count)*m.config.HistoryRecordScore, m.config.HistoryScoreCap)
	return score, []string{fmt.Sprintf("历史记录×%d", count)}
}

// countHistory shields the matcher from a misbehaving counter callback.
func (m *Matcher) countHistory(goalID string) (count int) {
	if m.history == nil {
		return 0
	}
	defer func() {
		if recover() != nil {
			count = 0
		}
	}()
	return m.history(goalID)
}

func (m *Matcher) confidence(score float64) models.MatchConfidence {
	switch {
	case score >= m.config.HighConfidence:
		return models.ConfidenceHigh
	case score >= m.config.MediumConfidence:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// tokenize splits on whitespace and drops tokens shorter than two runes,
// deduplicating while keeping first-seen order.
func tokenize(s string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, field := range strings.Fields(s) {
		if utf8.RuneCountInString(field) < 2 || seen[field] {
			continue
		}
		seen[field] = true
		tokens = append(tokens, field)
	}
	return tokens
}

func countContained(content string, needles []string) int {
	n := 0
	for _, needle := range needles {
		if strings.Contains(content, needle) {
			n++
		}
	}
	return n
}

func capped(score, limit float64) float64 {
	if score > limit {
		return limit
	}
	return score
}
