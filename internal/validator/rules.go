package validator

// TimeRules bounds the acceptable goal duration in days.
type TimeRules struct {
	// MinDays below which the duration is rejected.
	MinDays int `yaml:"min_days"`
	// MaxDays above which the duration is rejected.
	MaxDays int `yaml:"max_days"`
	// RecommendedMinDays and RecommendedMaxDays bound the sweet spot.
	RecommendedMinDays int `yaml:"recommended_min_days"`
	RecommendedMaxDays int `yaml:"recommended_max_days"`
}

// ValueRange bounds plausible target values for one goal category.
type ValueRange struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Recommended float64 `yaml:"recommended"`
}

// Rules tunes the validator. Zero values fall back to DefaultRules.
type Rules struct {
	Time TimeRules `yaml:"time"`
	// Ranges maps category to its plausible target-value range.
	Ranges map[string]ValueRange `yaml:"ranges"`
	// TitleMinRunes below which the title is rejected.
	TitleMinRunes int `yaml:"title_min_runes"`
	// TitleMaxRunes above which the title draws a warning.
	TitleMaxRunes int `yaml:"title_max_runes"`
}

// DefaultRules returns the default validation rules.
func DefaultRules() Rules {
	return Rules{
		Time: TimeRules{
			MinDays:            7,
			MaxDays:            365,
			RecommendedMinDays: 30,
			RecommendedMaxDays: 180,
		},
		Ranges: map[string]ValueRange{
			"健康": {Min: 1, Max: 50, Recommended: 20},
			"学习": {Min: 1, Max: 100, Recommended: 10},
			"工作": {Min: 1, Max: 50, Recommended: 10},
			"生活": {Min: 1, Max: 100000, Recommended: 10000},
		},
		TitleMinRunes: 3,
		TitleMaxRunes: 150,
	}
}

// ApplyDefaults fills zero values with defaults.
func (r *Rules) ApplyDefaults() {
	defaults := DefaultRules()
	if r.Time.MinDays == 0 {
		r.Time.MinDays = defaults.Time.MinDays
	}
	if r.Time.MaxDays == 0 {
		r.Time.MaxDays = defaults.Time.MaxDays
	}
	if r.Time.RecommendedMinDays == 0 {
		r.Time.RecommendedMinDays = defaults.Time.RecommendedMinDays
	}
	if r.Time.RecommendedMaxDays == 0 {
		r.Time.RecommendedMaxDays = defaults.Time.RecommendedMaxDays
	}
	if r.Ranges == nil {
		r.Ranges = defaults.Ranges
	}
	if r.TitleMinRunes == 0 {
		r.TitleMinRunes = defaults.TitleMinRunes
	}
	if r.TitleMaxRunes == 0 {
		r.TitleMaxRunes = defaults.TitleMaxRunes
	}
}

// canonicalCategories are the categories the mini-program offers.
var canonicalCategories = []string{"健康", "学习", "工作", "生活", "其他"}

// specificWords raise the specificity sub-score when present.
var specificWords = []string{
	"每天", "每周", "每月", "坚持", "通过", "完成", "达到", "控制", "计划", "具体",
}

// vagueWords lower the specificity sub-score when present.
var vagueWords = []string{"大概", "可能", "也许", "差不多", "左右", "一些", "随便"}

// measurementWords indicate the statement mentions a measurable quantity.
var measurementWords = []string{
	"斤", "公斤", "公里", "本", "个", "元", "次", "页", "小时", "分钟", "%",
}
