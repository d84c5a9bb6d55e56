// Package analyzer extracts structured signals (record type, sentiment,
// energy/difficulty levels, keywords, tags, importance flags) from free-form
// record text. All lookup tables are built once at construction and never
// mutated, so a single Analyzer is safe for concurrent use.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/dickey1981/targetmanage/internal/models"
	"github.com/dickey1981/targetmanage/pkg/utils"
)

var digitRunPattern = regexp.MustCompile(`\d+`)

// Analyzer classifies record content against fixed keyword tables.
type Analyzer struct {
	typeKeywords []typeKeywords
	sentiment    sentimentKeywords
	energyTiers  []levelTier
	difficulty   []levelTier
	important    []string
	topics       []topicTag
	importantInd []string
	milestoneInd []string
	breakthruInd []string
}

// NewAnalyzer creates an Analyzer with the default keyword tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		typeKeywords: defaultTypeKeywords(),
		sentiment:    defaultSentimentKeywords(),
		energyTiers:  defaultEnergyTiers(),
		difficulty:   defaultDifficultyTiers(),
		important:    defaultImportantWords(),
		topics:       defaultTopicTags(),
		importantInd: defaultImportantIndicators(),
		milestoneInd: defaultMilestoneIndicators(),
		breakthruInd: defaultBreakthroughIndicators(),
	}
}

// DefaultAnalysis is the fixed fallback returned when analysis cannot
// complete: a neutral process record with base confidence.
func DefaultAnalysis() *models.ContentAnalysis {
	return &models.ContentAnalysis{
		RecordType:      models.RecordProcess,
		Sentiment:       models.SentimentNeutral,
		Keywords:        []string{},
		Tags:            []string{},
		ConfidenceScore: 50,
	}
}

// Analyze extracts a ContentAnalysis from content. It never fails: any
// internal panic is replaced with DefaultAnalysis so callers can always
// persist a record.
func (a *Analyzer) Analyze(content string) (analysis *models.ContentAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			analysis = DefaultAnalysis()
		}
	}()

	lower := strings.ToLower(content)

	return &models.ContentAnalysis{
		RecordType:      a.classifyRecordType(lower),
		Sentiment:       a.analyzeSentiment(lower),
		EnergyLevel:     matchLevelTier(lower, a.energyTiers),
		DifficultyLevel: matchLevelTier(lower, a.difficulty),
		Keywords:        a.extractKeywords(content),
		Tags:            a.generateTags(content, lower),
		IsImportant:     containsAny(content, a.importantInd),
		IsMilestone:     containsAny(content, a.milestoneInd),
		IsBreakthrough:  containsAny(content, a.breakthruInd),
		ConfidenceScore: a.confidenceScore(content, lower),
	}
}

// classifyRecordType scores every type by keyword hit count and returns the
// highest scorer. Ties keep the earlier type in table order; zero hits
// everywhere falls back to the process type.
func (a *Analyzer) classifyRecordType(lower string) models.RecordType {
	best := models.RecordProcess
	bestScore := 0
	for _, tk := range a.typeKeywords {
		score := 0
		for _, kw := range tk.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = tk.Type
		}
	}
	return best
}

func (a *Analyzer) analyzeSentiment(lower string) models.Sentiment {
	positive := countHits(lower, a.sentiment.Positive)
	negative := countHits(lower, a.sentiment.Negative)
	switch {
	case positive > negative:
		return models.SentimentPositive
	case negative > positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// matchLevelTier returns the level of the first tier with a keyword hit,
// or nil when no tier matches.
func matchLevelTier(lower string, tiers []levelTier) *int {
	for _, tier := range tiers {
		if containsAny(lower, tier.Keywords) {
			level := tier.Level
			return &level
		}
	}
	return nil
}

// extractKeywords collects digit runs and any important-word hits,
// deduplicated in discovery order.
func (a *Analyzer) extractKeywords(content string) []string {
	keywords := []string{}
	seen := map[string]bool{}
	add := func(kw string) {
		if !seen[kw] {
			seen[kw] = true
			keywords = append(keywords, kw)
		}
	}
	for _, num := range digitRunPattern.FindAllString(content, -1) {
		add(num)
	}
	for _, word := range a.important {
		if strings.Contains(content, word) {
			add(word)
		}
	}
	return keywords
}

func (a *Analyzer) generateTags(content, lower string) []string {
	tags := []string{}
	for _, topic := range a.topics {
		if containsAny(content, topic.Keywords) {
			tags = append(tags, topic.Tag)
		}
	}
	switch a.analyzeSentiment(lower) {
	case models.SentimentPositive:
		tags = append(tags, "积极")
	case models.SentimentNegative:
		tags = append(tags, "消极")
	}
	return tags
}

// confidenceScore starts at a 50 base, adds a length bonus (longer entries
// carry more signal) and up to 30 points for type-keyword evidence.
func (a *Analyzer) confidenceScore(content, lower string) int {
	confidence := 50
	switch n := utils.RuneLen(content); {
	case n > 50:
		confidence += 20
	case n > 20:
		confidence += 10
	}
	matched := 0
	for _, tk := range a.typeKeywords {
		matched += countHits(lower, tk.Keywords)
	}
	if matched > 0 {
		bonus := matched * 5
		if bonus > 30 {
			bonus = 30
		}
		confidence += bonus
	}
	return utils.ClampInt(confidence, 0, 100)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func countHits(s string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			n++
		}
	}
	return n
}
