package goalparse

import (
	"strings"

	"github.com/dickey1981/targetmanage/internal/models"
	"github.com/dickey1981/targetmanage/pkg/utils"
)

// Missing-element labels surfaced to the mini-program.
const (
	MissingQuantity    = "明确的数量指标"
	MissingDeadline    = "明确的时间期限"
	MissingCategory    = "明确的目标类别"
	MissingDescription = "详细的目标描述"
	MissingSpecificity = "具体明确的表达"
)

// improvementTips maps each missing element to a concrete suggestion.
var improvementTips = map[string]string{
	MissingQuantity:    `建议添加具体的数量指标，如"减重10斤"、"读完5本书"`,
	MissingDeadline:    `建议添加明确的时间期限，如"3个月内"、"半年内"`,
	MissingCategory:    `建议补充类别相关的描述，如健康、学习、工作或生活`,
	MissingDescription: `建议补充更详细的目标描述，说明如何实现`,
	MissingSpecificity: `建议使用具体明确的表达，避免"大概"、"差不多"等模糊词`,
}

// evaluateHints checks the statement for each draft element independently of
// whether extraction succeeded, and buckets the result into a quality tier.
func (p *Parser) evaluateHints(text, value string, deadlineFound bool, category string) *models.ParsingHints {
	missing := []string{}
	if value == "" {
		missing = append(missing, MissingQuantity)
	}
	if !deadlineFound {
		missing = append(missing, MissingDeadline)
	}
	if category == "其他" {
		missing = append(missing, MissingCategory)
	}
	if utils.RuneLen(text) < p.opts.MinDescriptiveRunes {
		missing = append(missing, MissingDescription)
	}
	if p.hasVagueWording(text) {
		missing = append(missing, MissingSpecificity)
	}

	tips := make([]string, 0, len(missing))
	for _, element := range missing {
		tips = append(tips, improvementTips[element])
	}

	return &models.ParsingHints{
		MissingElements: missing,
		Quality:         models.QualityForMissing(len(missing)),
		ImprovementTips: tips,
	}
}

func (p *Parser) hasVagueWording(text string) bool {
	for _, word := range p.vagueWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
