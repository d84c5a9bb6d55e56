package goalparse

import (
	"regexp"
	"time"
)

// timePattern pairs a time expression with its window resolver. Patterns are
// evaluated in slice order; the first match wins.
type timePattern struct {
	re      *regexp.Regexp
	resolve func(m []string, today time.Time) (start, end time.Time)
}

func defaultTimePatterns() []timePattern {
	return []timePattern{
		{regexp.MustCompile(`(\d+)个月内`), func(m []string, today time.Time) (time.Time, time.Time) {
			months := mustAtoi(m[1])
			return today, today.AddDate(0, 0, months*30)
		}},
		{regexp.MustCompile(`(\d+)周内`), func(m []string, today time.Time) (time.Time, time.Time) {
			weeks := mustAtoi(m[1])
			return today, today.AddDate(0, 0, weeks*7)
		}},
		{regexp.MustCompile(`(\d+)天内`), func(m []string, today time.Time) (time.Time, time.Time) {
			return today, today.AddDate(0, 0, mustAtoi(m[1]))
		}},
		{regexp.MustCompile(`半年内`), func(_ []string, today time.Time) (time.Time, time.Time) {
			return today, today.AddDate(0, 0, 180)
		}},
		{regexp.MustCompile(`一年内`), func(_ []string, today time.Time) (time.Time, time.Time) {
			return today, today.AddDate(0, 0, 365)
		}},
		{regexp.MustCompile(`下个月`), func(_ []string, today time.Time) (time.Time, time.Time) {
			firstOfNext := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
			return today, firstOfNext.AddDate(0, 0, 30)
		}},
		{regexp.MustCompile(`下周`), func(_ []string, today time.Time) (time.Time, time.Time) {
			return today, nextMonday(today).AddDate(0, 0, 7)
		}},
		{regexp.MustCompile(`明天`), func(_ []string, today time.Time) (time.Time, time.Time) {
			return today, today.AddDate(0, 0, 1)
		}},
	}
}

// nextMonday returns the first Monday strictly after today.
func nextMonday(today time.Time) time.Time {
	// Days since Monday, so Monday itself advances a full week.
	sinceMonday := (int(today.Weekday()) + 6) % 7
	return today.AddDate(0, 0, 7-sinceMonday)
}

// mustAtoi converts a digit-only regex capture; the pattern guarantees digits.
func mustAtoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// defaultQuantPatterns returns the ordered quantity+unit table. Each pattern
// captures the numeric value in group 1 and the unit in group 2; the first
// match wins.
func defaultQuantPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`减重(\d+)(斤|公斤|kg)`),
		regexp.MustCompile(`增重(\d+)(斤|公斤|kg)`),
		regexp.MustCompile(`学习(\d+)(本书|门课程|个技能)`),
		regexp.MustCompile(`读完(\d+)(本书|篇文章)`),
		regexp.MustCompile(`完成(\d+)(个项目|个任务)`),
		regexp.MustCompile(`跑(\d+)(公里|km)`),
		regexp.MustCompile(`存(\d+)(万|千)元`),
		regexp.MustCompile(`去(\d+)(个地方)`),
	}
}

// categoryRule maps a category to its trigger keywords. Rules are checked in
// slice order; the first category with a keyword hit wins.
type categoryRule struct {
	Category string
	Keywords []string
}

func defaultCategoryRules() []categoryRule {
	return []categoryRule{
		{"健康", []string{"减重", "增重", "跑步", "健身", "减肥", "运动", "锻炼", "增肌"}},
		{"学习", []string{"学习", "读书", "考试", "技能", "编程", "语言", "证书", "培训"}},
		{"工作", []string{"项目", "任务", "业绩", "升职", "工作", "创业", "客户", "销售"}},
		{"生活", []string{"旅行", "理财", "兴趣", "爱好", "生活", "存钱", "投资", "购物"}},
	}
}

// defaultVagueWords lists hedge words that make a goal statement non-specific.
func defaultVagueWords() []string {
	return []string{"大概", "可能", "也许", "差不多", "左右"}
}
