// Package progress turns a classified record into a goal progress increment
// and applies it to the goal's numeric state. This is the only component that
// writes anything back; everything upstream of it is read-only.
package progress

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dickey1981/targetmanage/internal/models"
)

// Progress value patterns, tried in order against progress-type records.
var (
	percentagePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
	fractionPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)`)
	completionPattern = regexp.MustCompile(`完成了?\s*(\d+(?:\.\d+)?)`)
	progressPattern   = regexp.MustCompile(`进度\s*(\d+(?:\.\d+)?)`)
)

// maxIncrement caps a single record's contribution, in percentage points.
const maxIncrement = 20.0

// defaultTarget substitutes for a missing or malformed target value so that
// increments still mean percentage points.
const defaultTarget = 100.0

// GoalStore is the narrow persistence surface the updater writes through.
type GoalStore interface {
	// Progress returns the goal's current and target values as stored.
	Progress(goalID string) (current, target string, err error)
	// SetProgress stores the new current value, marking the goal completed
	// when completed is true.
	SetProgress(goalID, current string, completed bool) error
}

// Update describes the outcome of applying one record to a goal.
type Update struct {
	// Increment is the applied progress delta in percentage points.
	Increment float64 `json:"increment"`
	// NewCurrentValue is the stored value after the update, never above the
	// target.
	NewCurrentValue string `json:"new_current_value"`
	// Ratio is the completion percentage after the update.
	Ratio float64 `json:"ratio"`
	// Completed is true when the update pushed the goal to its target.
	Completed bool `json:"completed"`
}

// Updater computes and applies progress increments. Safe for concurrent use.
type Updater struct {
	store  GoalStore
	logger *zap.Logger
}

// Option configures an Updater.
type Option func(*Updater)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(u *Updater) {
		u.logger = logger
	}
}

// NewUpdater creates an Updater writing through the given store. The store
// may be nil when only Apply is used.
func NewUpdater(store GoalStore, opts ...Option) *Updater {
	u := &Updater{store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Increment computes the progress delta for one classified record, in
// percentage points, clamped to the per-record maximum.
func (u *Updater) Increment(analysis *models.ContentAnalysis, content string) float64 {
	var base float64
	switch analysis.RecordType {
	case models.RecordProgress:
		base = extractProgressValue(content)
	case models.RecordMilestone:
		base = 10
	case models.RecordAchievement:
		base = 5
	case models.RecordProcess:
		base = 1
	case models.RecordMethod, models.RecordReflection:
		base = 0.5
	}

	if analysis.IsImportant {
		base *= 1.5
	}
	if analysis.IsBreakthrough {
		base *= 2.0
	}
	if analysis.IsMilestone {
		base *= 3.0
	}
	switch analysis.Sentiment {
	case models.SentimentPositive:
		base *= 1.2
	case models.SentimentNegative:
		base *= 0.8
	}

	if base > maxIncrement {
		return maxIncrement
	}
	return base
}

// Apply computes the new goal state for the given stored values without
// touching any store. The returned Update is nil when the record contributes
// nothing.
func (u *Updater) Apply(current, target string, analysis *models.ContentAnalysis, content string) *Update {
	increment := u.Increment(analysis, content)
	if increment <= 0 {
		return nil
	}

	targetValue := parseStoredValue(target, defaultTarget)
	currentValue := parseStoredValue(current, 0)

	newCurrent := currentValue + targetValue*increment/100
	if newCurrent > targetValue {
		newCurrent = targetValue
	}
	ratio := Ratio(newCurrent, targetValue)
	return &Update{
		Increment:       increment,
		NewCurrentValue: formatValue(newCurrent),
		Ratio:           ratio,
		Completed:       ratio >= 100,
	}
}

// UpdateFromRecord reads the goal, applies the record, and writes the result
// back. A nil Update with nil error means the record contributed nothing.
func (u *Updater) UpdateFromRecord(goalID string, analysis *models.ContentAnalysis, content string) (*Update, error) {
	current, target, err := u.store.Progress(goalID)
	if err != nil {
		return nil, fmt.Errorf("load goal %s: %w", goalID, err)
	}

	update := u.Apply(current, target, analysis, content)
	if update == nil {
		return nil, nil
	}

	if err := u.store.SetProgress(goalID, update.NewCurrentValue, update.Completed); err != nil {
		return nil, fmt.Errorf("store goal %s: %w", goalID, err)
	}
	u.logger.Info("goal progress updated",
		zap.String("goal_id", goalID),
		zap.Float64("increment", update.Increment),
		zap.String("current_value", update.NewCurrentValue),
		zap.Float64("ratio", update.Ratio),
		zap.Bool("completed", update.Completed))
	return update, nil
}

// Ratio returns the completion percentage for the given values.
func Ratio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target * 100
}

// extractProgressValue pulls an explicit progress amount out of record text.
func extractProgressValue(content string) float64 {
	if m := percentagePattern.FindStringSubmatch(content); m != nil {
		return mustParseFloat(m[1])
	}
	if m := fractionPattern.FindStringSubmatch(content); m != nil {
		numerator := mustParseFloat(m[1])
		denominator := mustParseFloat(m[2])
		if denominator > 0 {
			return numerator / denominator * 100
		}
	}
	if m := completionPattern.FindStringSubmatch(content); m != nil {
		return mustParseFloat(m[1])
	}
	if m := progressPattern.FindStringSubmatch(content); m != nil {
		return mustParseFloat(m[1])
	}
	return 0
}

// parseStoredValue reads a stored numeric string; malformed or empty input is
// treated as absent and replaced by the fallback.
func parseStoredValue(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// mustParseFloat converts a regex capture the pattern guarantees is numeric.
func mustParseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
