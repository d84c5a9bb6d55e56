// Package engine wires the content analyzer, goal parser, validator, matcher,
// and progress updater behind one façade. All lookup tables are built once at
// construction; the engine is safe for concurrent use.
package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/dickey1981/targetmanage/internal/analyzer"
	"github.com/dickey1981/targetmanage/internal/config"
	"github.com/dickey1981/targetmanage/internal/goalparse"
	"github.com/dickey1981/targetmanage/internal/matcher"
	"github.com/dickey1981/targetmanage/internal/models"
	"github.com/dickey1981/targetmanage/internal/progress"
	"github.com/dickey1981/targetmanage/internal/validator"
)

// ErrNoStore is returned by write-back operations when the engine was built
// without a goal store.
var ErrNoStore = errors.New("engine: no goal store configured")

// RecordOutcome bundles the results of processing one record end to end.
type RecordOutcome struct {
	Analysis *models.ContentAnalysis `json:"analysis"`
	// Match is nil when no candidate cleared the match threshold.
	Match *models.MatchResult `json:"match,omitempty"`
	// Update is nil when no goal was matched or the record contributed no
	// progress.
	Update *progress.Update `json:"update,omitempty"`
}

// Engine is the façade over the five content-understanding components.
type Engine struct {
	analyzer  *analyzer.Analyzer
	parser    *goalparse.Parser
	validator *validator.Validator
	matcher   *matcher.Matcher
	updater   *progress.Updater
	store     progress.GoalStore
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	history matcher.HistoryCounter
	store   progress.GoalStore
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHistoryCounter injects the recent-record counter for the matcher's
// history bonus.
func WithHistoryCounter(counter matcher.HistoryCounter) Option {
	return func(o *options) {
		o.history = counter
	}
}

// WithGoalStore injects the persistence surface the progress updater writes
// through. Without it, write-back operations return ErrNoStore.
func WithGoalStore(store progress.GoalStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// NewEngine creates an Engine from the given configuration.
func NewEngine(cfg *config.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	var matcherOpts []matcher.Option
	if o.history != nil {
		matcherOpts = append(matcherOpts, matcher.WithHistoryCounter(o.history))
	}

	return &Engine{
		analyzer:  analyzer.NewAnalyzer(),
		parser:    goalparse.NewParser(cfg.Parser),
		validator: validator.NewValidator(cfg.Validator),
		matcher:   matcher.NewMatcher(cfg.Matcher, matcherOpts...),
		updater:   progress.NewUpdater(o.store, progress.WithLogger(o.logger)),
		store:     o.store,
		logger:    o.logger,
	}
}

// Analyze extracts structured signals from record content.
func (e *Engine) Analyze(content string) *models.ContentAnalysis {
	analysis := e.analyzer.Analyze(content)
	e.logger.Debug("content analyzed",
		zap.String("record_type", string(analysis.RecordType)),
		zap.String("sentiment", string(analysis.Sentiment)),
		zap.Int("confidence_score", analysis.ConfidenceScore))
	return analysis
}

// ParseGoal turns a natural-language goal statement into a draft plus hints.
func (e *Engine) ParseGoal(text string) (*models.GoalDraft, *models.ParsingHints) {
	draft, hints := e.parser.Parse(text)
	e.logger.Debug("goal parsed",
		zap.String("category", draft.Category),
		zap.String("quality", string(hints.Quality)),
		zap.Strings("missing", hints.MissingElements))
	return draft, hints
}

// ValidateGoal scores a goal draft against the SMART criteria.
func (e *Engine) ValidateGoal(draft *models.GoalDraft) *models.ValidationResult {
	result := e.validator.Validate(draft)
	e.logger.Debug("goal validated",
		zap.Bool("is_valid", result.IsValid),
		zap.Int("score", result.Score))
	return result
}

// MatchGoal picks the candidate goal the content most likely belongs to, or
// nil when nothing clears the threshold.
func (e *Engine) MatchGoal(content string, candidates []models.GoalCandidate) *models.MatchResult {
	match := e.matcher.Match(content, candidates)
	if match == nil {
		e.logger.Debug("no goal matched", zap.Int("candidates", len(candidates)))
		return nil
	}
	e.logger.Debug("goal matched",
		zap.String("goal_id", match.GoalID),
		zap.Float64("score", match.Score),
		zap.String("confidence", string(match.Confidence)))
	return match
}

// RecordProgress applies a classified record to the stored goal.
func (e *Engine) RecordProgress(goalID string, analysis *models.ContentAnalysis, content string) (*progress.Update, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	return e.updater.UpdateFromRecord(goalID, analysis, content)
}

// ProcessRecord runs the full pipeline for one record: analyze the content,
// match it against the candidate goals, and, when a store is configured and a
// goal matched, write the progress update back.
func (e *Engine) ProcessRecord(content string, candidates []models.GoalCandidate) (*RecordOutcome, error) {
	outcome := &RecordOutcome{
		Analysis: e.Analyze(content),
		Match:    e.MatchGoal(content, candidates),
	}
	if outcome.Match == nil || e.store == nil {
		return outcome, nil
	}

	update, err := e.updater.UpdateFromRecord(outcome.Match.GoalID, outcome.Analysis, content)
	if err != nil {
		return nil, err
	}
	outcome.Update = update
	return outcome, nil
}
