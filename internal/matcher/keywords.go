package matcher

// categoryKeywords holds the three keyword tiers for one goal category.
// Primary hits carry the full category weight and fire at most once; related
// and context hits accumulate with per-tier caps.
type categoryKeywords struct {
	Primary []string
	Related []string
	Context []string
}

func defaultKeywordCategories() map[string]categoryKeywords {
	return map[string]categoryKeywords{
		"学习": {
			Primary: []string{"学习", "学", "读书", "阅读", "看书", "复习", "预习", "背", "记", "温习"},
			Related: []string{
				"python", "java", "javascript", "编程", "代码", "课程", "教程",
				"知识", "技能", "考试", "作业", "笔记", "英语", "数学", "算法",
			},
			Context: []string{"完成", "学会", "掌握", "理解", "记住", "看完", "读完", "背会"},
		},
		"健身": {
			Primary: []string{
				"跑步", "健身", "运动", "锻炼", "瑜伽", "游泳", "爬山", "骑行",
				"篮球", "足球", "羽毛球", "网球", "打球",
			},
			Related: []string{
				"公里", "km", "步", "米", "减肥", "塑形", "增肌", "力量",
				"有氧", "无氧", "训练", "卡路里", "体重", "肌肉", "马拉松",
			},
			Context: []string{"跑了", "练了", "做了", "完成", "坚持", "打卡"},
		},
		"工作": {
			Primary: []string{
				"工作", "项目", "任务", "会议", "开发", "设计", "测试",
				"部署", "上线", "需求", "文档",
			},
			Related: []string{
				"代码", "程序", "bug", "功能", "接口", "api", "数据库",
				"前端", "后端", "客户", "方案", "报告", "汇报",
			},
			Context: []string{"完成", "交付", "解决", "实现", "优化", "修复", "提交"},
		},
		"生活": {
			Primary: []string{
				"做饭", "购物", "整理", "打扫", "洗衣", "买菜", "收拾",
				"清洁", "家务", "洗碗", "拖地",
			},
			Related: []string{
				"房间", "家里", "衣服", "菜", "超市", "市场", "垃圾",
				"卫生", "干净", "整洁",
			},
			Context: []string{"做了", "完成", "整理", "收拾", "打扫", "洗了"},
		},
		"财务": {
			Primary: []string{
				"赚钱", "理财", "投资", "存钱", "收入", "挣钱", "盈利",
				"营收", "副业", "兼职",
			},
			Related: []string{
				"元", "块", "钱", "工资", "奖金", "收益", "利润", "成本",
				"基金", "股票", "储蓄", "账单",
			},
			Context: []string{"赚了", "存了", "投资", "收到", "赚到", "挣了"},
		},
		"创作": {
			Primary: []string{
				"写作", "画画", "音乐", "视频", "文章", "创作", "设计",
				"拍摄", "剪辑", "博客",
			},
			Related: []string{
				"字", "篇", "幅", "首", "个", "张", "期", "集", "作品",
				"内容", "素材", "灵感",
			},
			Context: []string{"写了", "画了", "创作", "完成", "发布", "更新", "做了"},
		},
		"阅读": {
			Primary: []string{"读", "看", "阅读", "读书", "看书", "翻阅", "浏览"},
			Related: []string{
				"书", "页", "章", "本", "小说", "文章", "资料", "文档",
				"材料", "报告",
			},
			Context: []string{"读了", "看了", "读完", "看完", "翻了", "浏览"},
		},
		"社交": {
			Primary: []string{"社交", "交友", "聚会", "约会", "见面", "聊天", "沟通"},
			Related: []string{
				"朋友", "同学", "同事", "家人", "客户", "伙伴", "社群",
				"活动", "派对",
			},
			Context: []string{"见了", "聊了", "约了", "参加", "认识"},
		},
	}
}

// defaultUnitVariants maps a canonical unit to alternative spellings that
// count as the same unit in free text.
func defaultUnitVariants() map[string][]string {
	return map[string][]string{
		"公里": {"km", "kilometer", "千米"},
		"米":  {"m", "meter"},
		"小时": {"h", "hour", "钟头", "个小时"},
		"分钟": {"min", "minute", "分"},
		"秒":  {"s", "second", "秒钟"},
		"页":  {"page", "p"},
		"字":  {"word", "个字"},
		"%":  {"percent", "百分之", "百分比"},
		"元":  {"块", "块钱", "元钱", "人民币"},
		"斤":  {"公斤", "kg", "千克"},
		"本":  {"册"},
		"篇":  {"文"},
		"次":  {"遍", "回"},
	}
}

// titleFillers are stripped from goal titles before tokenization.
var titleFillers = []string{"计划", "目标", "任务", "的"}
