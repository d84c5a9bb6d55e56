// Package goalparse turns natural-language goal statements (typed or
// transcribed speech) into structured goal drafts, with parsing hints that
// tell the caller which elements the statement was missing.
package goalparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dickey1981/targetmanage/internal/models"
	"github.com/dickey1981/targetmanage/pkg/utils"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Options tunes parser defaults. Zero values fall back to DefaultOptions.
type Options struct {
	// DefaultWindowDays is the goal window length used when the statement
	// names no deadline.
	DefaultWindowDays int `yaml:"default_window_days"`
	// TitleMaxRunes caps how many characters of the statement become the title.
	TitleMaxRunes int `yaml:"title_max_runes"`
	// MinDescriptiveRunes is the statement length below which the draft is
	// flagged as lacking a detailed description.
	MinDescriptiveRunes int `yaml:"min_descriptive_runes"`
}

// DefaultOptions returns the default parser options.
func DefaultOptions() Options {
	return Options{
		DefaultWindowDays:   90,
		TitleMaxRunes:       50,
		MinDescriptiveRunes: 10,
	}
}

// ApplyDefaults fills zero values with defaults.
func (o *Options) ApplyDefaults() {
	defaults := DefaultOptions()
	if o.DefaultWindowDays == 0 {
		o.DefaultWindowDays = defaults.DefaultWindowDays
	}
	if o.TitleMaxRunes == 0 {
		o.TitleMaxRunes = defaults.TitleMaxRunes
	}
	if o.MinDescriptiveRunes == 0 {
		o.MinDescriptiveRunes = defaults.MinDescriptiveRunes
	}
}

// Parser extracts time windows, quantities, and categories from goal
// statements using fixed, ordered pattern tables. Safe for concurrent use.
type Parser struct {
	opts          Options
	timePatterns  []timePattern
	quantPatterns []*regexp.Regexp
	categories    []categoryRule
	vagueWords    []string
}

// NewParser creates a Parser with the given options.
func NewParser(opts Options) *Parser {
	opts.ApplyDefaults()
	return &Parser{
		opts:          opts,
		timePatterns:  defaultTimePatterns(),
		quantPatterns: defaultQuantPatterns(),
		categories:    defaultCategoryRules(),
		vagueWords:    defaultVagueWords(),
	}
}

// Parse parses a goal statement using the current date.
func (p *Parser) Parse(text string) (*models.GoalDraft, *models.ParsingHints) {
	return p.ParseAt(text, time.Now())
}

// ParseAt parses a goal statement with an explicit "now", which is truncated
// to midnight so that draft dates are calendar dates rather than timestamps.
func (p *Parser) ParseAt(text string, now time.Time) (*models.GoalDraft, *models.ParsingHints) {
	cleaned := cleanText(text)
	today := midnight(now)

	start, end, deadlineFound := p.parseTimeWindow(cleaned, today)
	value, unit := p.parseQuantity(cleaned)
	category := p.inferCategory(cleaned)

	draft := &models.GoalDraft{
		Title:            utils.TruncateRunes(cleaned, p.opts.TitleMaxRunes),
		Category:         category,
		Description:      p.describe(cleaned, value, unit),
		StartDate:        &start,
		EndDate:          &end,
		TargetValue:      value,
		CurrentValue:     "0",
		Unit:             unit,
		Priority:         "medium",
		DailyReminder:    true,
		DeadlineReminder: true,
	}
	hints := p.evaluateHints(cleaned, value, deadlineFound, category)
	return draft, hints
}

// parseTimeWindow resolves the first matching time expression, or the default
// window when nothing matches. The third return reports whether the statement
// actually named a deadline.
func (p *Parser) parseTimeWindow(text string, today time.Time) (time.Time, time.Time, bool) {
	for _, tp := range p.timePatterns {
		if m := tp.re.FindStringSubmatch(text); m != nil {
			start, end := tp.resolve(m, today)
			return start, end, true
		}
	}
	return today, today.AddDate(0, 0, p.opts.DefaultWindowDays), false
}

// parseQuantity returns the first matching value/unit pair, or empty strings
// when the statement carries no quantity.
func (p *Parser) parseQuantity(text string) (value, unit string) {
	for _, re := range p.quantPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], m[2]
		}
	}
	return "", ""
}

// inferCategory returns the first category with a keyword hit, or 其他.
func (p *Parser) inferCategory(text string) string {
	for _, rule := range p.categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	return "其他"
}

func (p *Parser) describe(text, value, unit string) string {
	if value != "" && unit != "" {
		return fmt.Sprintf("通过%s实现目标：%s%s", text, value, unit)
	}
	return text
}

func cleanText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
