// Package validator scores goal drafts against the five SMART dimensions and
// produces errors, warnings, and suggestions for the user. An invalid draft
// is a normal result, never a Go error.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dickey1981/targetmanage/internal/models"
	"github.com/dickey1981/targetmanage/pkg/utils"
)

var (
	digitPattern     = regexp.MustCompile(`\d`)
	timeTokenPattern = regexp.MustCompile(`\d+\s*(天|周|个月|年)`)
)

// Validator checks goal drafts against fixed rule tables. Safe for concurrent
// use.
type Validator struct {
	rules Rules
}

// NewValidator creates a Validator with the given rules.
func NewValidator(rules Rules) *Validator {
	rules.ApplyDefaults()
	return &Validator{rules: rules}
}

// findings collects the output of one scoring pass.
type findings struct {
	score       float64
	errors      []string
	warnings    []string
	suggestions []string
}

func (f *findings) errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *findings) warnf(format string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *findings) suggest(s string) {
	f.suggestions = append(f.suggestions, s)
}

// Validate scores the draft using the current date.
func (v *Validator) Validate(draft *models.GoalDraft) *models.ValidationResult {
	return v.ValidateAt(draft, time.Now())
}

// ValidateAt scores the draft with an explicit "now", used to flag start
// dates already in the past.
func (v *Validator) ValidateAt(draft *models.GoalDraft, now time.Time) *models.ValidationResult {
	passes := map[models.SmartDimension]findings{
		models.DimensionTimeBound:  v.checkTime(draft, now),
		models.DimensionMeasurable: v.checkQuantification(draft),
		models.DimensionSpecific:   v.checkSpecificity(draft),
		models.DimensionRelevant:   v.checkCategory(draft),
		models.DimensionAchievable: v.checkAchievability(draft),
	}

	result := &models.ValidationResult{
		SmartScores: make(map[models.SmartDimension]float64, len(models.SmartDimensions)),
	}
	for _, dim := range models.SmartDimensions {
		f := passes[dim]
		result.Errors = append(result.Errors, f.errors...)
		result.Warnings = append(result.Warnings, f.warnings...)
		result.Suggestions = append(result.Suggestions, f.suggestions...)
		result.SmartScores[dim] = f.score
	}
	result.IsValid = len(result.Errors) == 0
	result.HasWarnings = len(result.Warnings) > 0
	result.Score = v.aggregateScore(draft, len(result.Errors), len(result.Warnings))
	result.Analysis = v.analyze(result.SmartScores)
	return result
}

func (v *Validator) checkTime(draft *models.GoalDraft, now time.Time) findings {
	var f findings
	if draft.StartDate == nil || draft.EndDate == nil {
		f.errorf("目标必须设置明确的开始和结束时间")
		f.suggest(`建议设置具体的时间范围，如"3个月内"`)
		f.score = 0
		return f
	}

	rules := v.rules.Time
	days := int(draft.EndDate.Sub(*draft.StartDate).Hours() / 24)
	switch {
	case days < rules.MinDays:
		f.errorf("目标时间过短，建议至少设置%d天以上", rules.MinDays)
		f.suggest(fmt.Sprintf("建议将时间调整为%d-%d天", rules.RecommendedMinDays, rules.RecommendedMaxDays))
	case days > rules.MaxDays:
		f.errorf("目标时间过长，建议分解为阶段性目标")
		f.suggest(fmt.Sprintf("建议将时间控制在%d天以内", rules.RecommendedMaxDays))
	case days < rules.RecommendedMinDays:
		f.warnf("目标时间较短，可能难以实现预期效果")
		f.suggest(fmt.Sprintf("建议考虑延长到%d天以上", rules.RecommendedMinDays))
	case days > rules.RecommendedMaxDays:
		f.warnf("目标时间较长，建议分解为多个阶段")
		f.suggest(fmt.Sprintf("建议每%d天为一个阶段", rules.RecommendedMaxDays))
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if draft.StartDate.Before(today) {
		f.warnf("目标开始时间已过，建议调整为今天或未来时间")
		f.suggest("建议从今天开始，重新计算时间范围")
	}

	switch {
	case days >= rules.RecommendedMinDays && days <= rules.RecommendedMaxDays:
		f.score = 1.0
	case days >= rules.MinDays && days <= rules.MaxDays:
		f.score = 0.7
	default:
		f.score = 0.3
	}
	return f
}

func (v *Validator) checkQuantification(draft *models.GoalDraft) findings {
	var f findings
	hasTarget := strings.TrimSpace(draft.TargetValue) != ""
	hasUnit := strings.TrimSpace(draft.Unit) != ""

	switch {
	case hasTarget && hasUnit:
		f.score = 1.0
	case hasTarget || hasUnit:
		f.score = 0.5
	}
	if !hasTarget || !hasUnit {
		f.errorf("目标必须设置具体的数值和单位")
		f.suggest(`建议设置明确的数值，如"减重10斤"、"学习5本书"`)
		return f
	}

	target, err := strconv.ParseFloat(draft.TargetValue, 64)
	if err != nil {
		// A malformed target counts as absent, so only the unit scores.
		f.score = 0.5
		f.errorf("目标值必须是有效的数字")
		f.suggest(`请使用数字格式，如"10"、"5.5"等`)
		return f
	}
	if target <= 0 {
		f.errorf("目标值必须大于0")
		f.suggest("请设置一个正数的目标值")
		return f
	}
	// A malformed current value is treated as zero, not an error.
	current, err := strconv.ParseFloat(draft.CurrentValue, 64)
	if err != nil {
		current = 0
	}
	if target <= current {
		f.warnf("目标值应该大于当前值")
		f.suggest("请设置一个高于当前值的目标")
	}
	return f
}

func (v *Validator) checkSpecificity(draft *models.GoalDraft) findings {
	var f findings
	title := strings.TrimSpace(draft.Title)
	if utils.RuneLen(title) < v.rules.TitleMinRunes {
		f.errorf("目标标题过短，请提供更详细的描述")
		f.suggest("建议描述包含：做什么、怎么做、达到什么效果")
	}
	if utils.RuneLen(title) > v.rules.TitleMaxRunes {
		f.warnf("目标标题过长，建议简洁明了")
		f.suggest("建议控制在50字以内，突出核心要点")
	}

	text := title + " " + draft.Description
	score := 0.0
	for _, w := range specificWords {
		if strings.Contains(text, w) {
			score += 0.2
		}
	}
	for _, w := range vagueWords {
		if strings.Contains(text, w) {
			score -= 0.3
		}
	}
	if digitPattern.MatchString(text) {
		score += 0.3
	}
	if timeTokenPattern.MatchString(text) {
		score += 0.2
	}
	for _, w := range measurementWords {
		if strings.Contains(text, w) {
			score += 0.2
			break
		}
	}
	f.score = utils.Clamp01(score)

	if f.score < 0.1 {
		f.warnf("目标描述不够具体，可能影响执行效果")
		f.suggest(`建议使用具体的数字和时间，如"每天跑步30分钟"`)
	}
	return f
}

func (v *Validator) checkCategory(draft *models.GoalDraft) findings {
	var f findings
	category := strings.TrimSpace(draft.Category)
	if category == "" {
		f.errorf("必须选择目标类别")
		f.suggest("请从预设类别中选择一个")
		f.score = 0
		return f
	}
	for _, c := range canonicalCategories {
		if category == c {
			f.score = 1.0
			return f
		}
	}
	f.score = 0.7
	return f
}

func (v *Validator) checkAchievability(draft *models.GoalDraft) findings {
	var f findings
	score := 0.5

	target, targetKnown := parseTarget(draft.TargetValue)
	if targetKnown {
		if r, ok := v.rules.Ranges[draft.Category]; ok {
			switch {
			case target > r.Max:
				score -= 0.3
			case target < r.Min:
				score += 0.1
			case target <= r.Recommended:
				score += 0.2
			}
		}
	}

	days := 0
	if draft.StartDate != nil && draft.EndDate != nil {
		days = int(draft.EndDate.Sub(*draft.StartDate).Hours() / 24)
		switch {
		case days < v.rules.Time.MinDays:
			score -= 0.3
		case days > v.rules.Time.MaxDays:
			score -= 0.2
		case days >= v.rules.Time.RecommendedMinDays && days <= v.rules.Time.RecommendedMaxDays:
			score += 0.2
		}
	}

	if targetKnown && days > 0 {
		rate := target / float64(days)
		switch {
		case rate > 10:
			score -= 0.2
			f.warnf("每日所需进度过高，可能难以坚持")
			f.suggest("建议降低目标值或延长时间范围")
		case rate < 0.01:
			score -= 0.1
			f.warnf("每日所需进度过低，目标周期可能过长")
			f.suggest("建议缩短时间范围或提高目标值")
		case rate >= 0.1 && rate <= 5:
			score += 0.1
		}
	}

	f.score = utils.Clamp01(score)
	if f.score < 0.3 {
		f.warnf("目标可能过于困难，实现难度较大")
		f.suggest("建议分解为多个阶段，逐步实现")
	} else if f.score > 0.8 {
		f.warnf("目标可能过于简单，缺乏挑战性")
		f.suggest("可以考虑适当提高目标值")
	}
	return f
}

// parseTarget reports the numeric target value; malformed input is treated as
// absent rather than an error here.
func parseTarget(s string) (float64, bool) {
	target, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || target <= 0 {
		return 0, false
	}
	return target, true
}

func (v *Validator) aggregateScore(draft *models.GoalDraft, errorCount, warningCount int) int {
	score := 100 - 20*errorCount - 5*warningCount
	if draft.StartDate != nil && draft.EndDate != nil {
		days := int(draft.EndDate.Sub(*draft.StartDate).Hours() / 24)
		if days >= v.rules.Time.RecommendedMinDays && days <= v.rules.Time.RecommendedMaxDays {
			score += 10
		}
	}
	if strings.TrimSpace(draft.TargetValue) != "" && strings.TrimSpace(draft.Unit) != "" {
		score += 10
	}
	return utils.ClampInt(score, 0, 100)
}

// dimensionStrengths and dimensionTips render per-dimension analysis text.
var dimensionStrengths = map[models.SmartDimension]string{
	models.DimensionSpecific:   "目标具体明确",
	models.DimensionMeasurable: "目标可量化",
	models.DimensionAchievable: "目标切实可行",
	models.DimensionRelevant:   "目标类别清晰",
	models.DimensionTimeBound:  "时间设置合理",
}

var dimensionTips = map[models.SmartDimension]string{
	models.DimensionSpecific:   "补充具体的执行细节和量化表达",
	models.DimensionMeasurable: "为目标设置明确的数值和单位",
	models.DimensionAchievable: "调整目标值或时间范围，使目标切实可行",
	models.DimensionRelevant:   "选择一个预设的目标类别",
	models.DimensionTimeBound:  "设置合理的开始和结束时间",
}

var dimensionWeaknesses = map[models.SmartDimension]string{
	models.DimensionSpecific:   "目标描述不够具体",
	models.DimensionMeasurable: "目标缺少量化指标",
	models.DimensionAchievable: "目标可实现性偏低",
	models.DimensionRelevant:   "目标类别不明确",
	models.DimensionTimeBound:  "时间设置不合理",
}

func (v *Validator) analyze(scores map[models.SmartDimension]float64) *models.SmartAnalysis {
	analysis := &models.SmartAnalysis{}
	sum := 0.0
	for _, dim := range models.SmartDimensions {
		score := scores[dim]
		sum += score
		if score >= 0.8 {
			analysis.Strengths = append(analysis.Strengths, dimensionStrengths[dim])
		}
		if score < 0.5 {
			analysis.Weaknesses = append(analysis.Weaknesses, dimensionWeaknesses[dim])
			analysis.Improvements = append(analysis.Improvements, dimensionTips[dim])
		}
	}
	analysis.OverallScore = sum / float64(len(models.SmartDimensions))
	return analysis
}
