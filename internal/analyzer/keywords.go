package analyzer

import "github.com/dickey1981/targetmanage/internal/models"

// typeKeywords pairs a record type with its trigger keywords. The slice order
// is the tie-break order: when two types score equally, the earlier one wins.
type typeKeywords struct {
	Type     models.RecordType
	Keywords []string
}

// defaultTypeKeywords returns the record-type trigger table.
func defaultTypeKeywords() []typeKeywords {
	return []typeKeywords{
		{models.RecordProgress, []string{
			"完成", "达成", "实现", "达到", "获得", "取得", "进步", "提升", "改善",
			"跑了", "读了", "学了", "做了", "写了", "画了", "练了", "减了", "增了",
			"今天", "这周", "这个月", "已经", "终于", "成功",
		}},
		{models.RecordMilestone, []string{
			"里程碑", "重要", "突破", "第一次", "首次", "终于", "成功", "达成",
			"完成目标", "达到预期", "超越", "创纪录", "历史性", "意义重大",
		}},
		{models.RecordDifficulty, []string{
			"困难", "问题", "挑战", "障碍", "阻碍", "卡住", "停滞", "退步",
			"失败", "挫折", "沮丧", "焦虑", "压力", "疲惫", "累", "难",
			"不会", "不懂", "不明白", "搞不定", "解决不了",
		}},
		{models.RecordMethod, []string{
			"方法", "技巧", "策略", "方式", "做法", "经验", "心得", "体会",
			"发现", "学会", "掌握", "总结", "改进", "优化", "调整", "改变",
			"有效", "有用", "好用", "推荐", "建议",
		}},
		{models.RecordReflection, []string{
			"反思", "思考", "总结", "回顾", "分析", "感悟", "体会", "感受",
			"觉得", "认为", "感觉", "意识到", "明白", "理解", "领悟",
			"收获", "成长", "进步", "改变", "影响",
		}},
		{models.RecordAdjustment, []string{
			"调整", "修改", "改变", "优化", "改进", "重新", "重新开始",
			"计划", "安排", "安排时间", "时间管理", "优先级", "重点",
		}},
		{models.RecordAchievement, []string{
			"成就", "成功", "胜利", "获奖", "认可", "表扬", "称赞", "满意",
			"骄傲", "自豪", "开心", "高兴", "兴奋", "激动",
		}},
		{models.RecordInsight, []string{
			"洞察", "发现", "领悟", "明白", "理解", "意识到", "认识到",
			"启发", "灵感", "创意", "想法", "观点", "看法",
		}},
	}
}

// sentimentKeywords holds the disjoint positive/negative keyword lists.
type sentimentKeywords struct {
	Positive []string
	Negative []string
}

func defaultSentimentKeywords() sentimentKeywords {
	return sentimentKeywords{
		Positive: []string{
			"好", "棒", "优秀", "完美", "成功", "开心", "高兴", "满意", "兴奋",
			"激动", "自豪", "骄傲", "轻松", "愉快", "顺利", "有效", "有用",
			"进步", "提升", "改善", "突破", "成就", "胜利", "完成", "达成",
		},
		Negative: []string{
			"差", "糟糕", "失败", "困难", "问题", "挑战", "沮丧", "焦虑",
			"压力", "疲惫", "累", "难", "卡住", "停滞", "退步", "挫折",
			"失望", "担心", "害怕", "紧张", "困惑", "迷茫",
		},
	}
}

// levelTier is one tier of a three-tier level table. Tiers are checked in
// slice order; the first tier with any keyword hit wins.
type levelTier struct {
	Level    int
	Keywords []string
}

func defaultEnergyTiers() []levelTier {
	return []levelTier{
		{8, []string{"精力充沛", "活力满满", "精神很好", "状态很好", "充满活力"}},
		{5, []string{"一般", "正常", "还可以", "还行", "过得去"}},
		{3, []string{"疲惫", "累", "没精神", "状态不好", "困", "乏力"}},
	}
}

func defaultDifficultyTiers() []levelTier {
	return []levelTier{
		{8, []string{"很难", "非常难", "极其困难", "挑战很大", "压力很大"}},
		{5, []string{"有点难", "不太容易", "需要努力", "有一定挑战"}},
		{2, []string{"简单", "容易", "轻松", "不难", "小菜一碟"}},
	}
}

// defaultImportantWords is the fixed word list mined into Keywords alongside
// digit runs.
func defaultImportantWords() []string {
	return []string{
		"完成", "学习", "练习", "跑步", "读书", "工作", "项目", "目标",
		"进步", "提升", "改善", "突破", "成功", "失败", "困难", "挑战",
	}
}

// topicTag maps topic trigger keywords to a tag.
type topicTag struct {
	Tag      string
	Keywords []string
}

func defaultTopicTags() []topicTag {
	return []topicTag{
		{"运动", []string{"跑步", "运动"}},
		{"学习", []string{"学习", "读书"}},
		{"工作", []string{"工作", "项目"}},
		{"健康", []string{"健康", "减肥"}},
	}
}

func defaultImportantIndicators() []string {
	return []string{
		"重要", "关键", "里程碑", "突破", "第一次", "首次", "成功",
		"完成目标", "达到预期", "创纪录", "历史性", "意义重大",
	}
}

func defaultMilestoneIndicators() []string {
	return []string{
		"里程碑", "重要节点", "关键节点", "阶段性", "第一次", "首次",
		"完成目标", "达到预期", "突破", "创纪录",
	}
}

func defaultBreakthroughIndicators() []string {
	return []string{
		"突破", "超越", "创新", "新发现", "新方法", "新技巧",
		"突然明白", "豁然开朗", "灵感", "创意",
	}
}
