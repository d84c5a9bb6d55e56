package matcher

import (
	"math"
	"strings"
	"testing"

	"github.com/dickey1981/targetmanage/internal/models"
)

func testCandidates() []models.GoalCandidate {
	return []models.GoalCandidate{
		{ID: "1", Title: "Python学习计划", Category: "学习", Description: "学习Python编程语言", Unit: "个"},
		{ID: "2", Title: "健身运动计划", Category: "健身", Description: "每周跑步3次", Unit: "公里"},
		{ID: "3", Title: "每周读一本书", Category: "阅读", Description: "提升阅读量", Unit: "本"},
	}
}

func TestMatchRunningRecord(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	result := m.Match("今天跑了10公里，好累", testCandidates())

	if result == nil {
		t.Fatal("expected a match")
	}
	if result.GoalID != "2" {
		t.Fatalf("goal = %s, want 2", result.GoalID)
	}
	// related 公里 (0.3) + context 跑了 (0.2) + unit 公里 (0.4)
	if math.Abs(result.Score-0.9) > 1e-9 {
		t.Fatalf("score = %v, want 0.9", result.Score)
	}
	if result.Confidence != models.ConfidenceMedium {
		t.Fatalf("confidence = %s, want medium", result.Confidence)
	}
}

func TestMatchStudyRecord(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	result := m.Match("完成了Python装饰器的学习", testCandidates())

	if result == nil {
		t.Fatal("expected a match")
	}
	if result.GoalID != "1" {
		t.Fatalf("goal = %s, want 1", result.GoalID)
	}
	if result.Confidence != models.ConfidenceHigh {
		t.Fatalf("confidence = %s, want high (score %v)", result.Confidence, result.Score)
	}
}

func TestMatchEmptyCandidates(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	if result := m.Match("今天跑了10公里", nil); result != nil {
		t.Fatalf("got %+v, want nil", result)
	}
	if result := m.Match("今天跑了10公里", []models.GoalCandidate{}); result != nil {
		t.Fatalf("got %+v, want nil", result)
	}
}

func TestMatchBelowThreshold(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	if result := m.Match("今天天气不错", testCandidates()); result != nil {
		t.Fatalf("got %+v, want nil", result)
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	first := m.Match("今天跑了10公里，好累", testCandidates())
	for i := 0; i < 10; i++ {
		again := m.Match("今天跑了10公里，好累", testCandidates())
		if again == nil || *again != *first {
			t.Fatalf("run %d: %+v != %+v", i, again, first)
		}
	}
}

func TestMatchSelfContent(t *testing.T) {
	// A candidate's own title plus unit must always match that candidate.
	m := NewMatcher(MatcherConfig{})
	for _, candidate := range testCandidates() {
		content := candidate.Title + " " + candidate.Unit
		result := m.Match(content, []models.GoalCandidate{candidate})
		if result == nil {
			t.Fatalf("%q: no match", content)
		}
		if result.Score < 0.6 {
			t.Fatalf("%q: score = %v, want >= 0.6", content, result.Score)
		}
		if result.GoalID != candidate.ID {
			t.Fatalf("%q: goal = %s, want %s", content, result.GoalID, candidate.ID)
		}
	}
}

func TestMatchTieKeepsFirstCandidate(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	twins := []models.GoalCandidate{
		{ID: "a", Title: "跑步计划", Category: "健身", Unit: "公里"},
		{ID: "b", Title: "跑步计划", Category: "健身", Unit: "公里"},
	}
	result := m.Match("今天跑步5公里", twins)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.GoalID != "a" {
		t.Fatalf("goal = %s, want first-seen a", result.GoalID)
	}
}

func TestMatchUnitVariants(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	candidate := models.GoalCandidate{ID: "1", Title: "跑步计划", Category: "健身", Unit: "公里"}
	result := m.Match("今天跑了5km", []models.GoalCandidate{candidate})
	if result == nil {
		t.Fatal("expected a match via unit variant")
	}
	if !strings.Contains(result.Reason, "单位") {
		t.Fatalf("reason = %q, want a unit signal", result.Reason)
	}
}

func TestMatchHistoryBonus(t *testing.T) {
	counts := map[string]int{"2": 10}
	m := NewMatcher(MatcherConfig{}, WithHistoryCounter(func(goalID string) int {
		return counts[goalID]
	}))
	base := NewMatcher(MatcherConfig{})

	content := "今天跑了10公里，好累"
	with := m.Match(content, testCandidates())
	without := base.Match(content, testCandidates())
	if with == nil || without == nil {
		t.Fatal("expected matches")
	}
	if math.Abs(with.Score-without.Score-0.5) > 1e-9 {
		t.Fatalf("history bonus = %v, want 0.5", with.Score-without.Score)
	}
	if !strings.Contains(with.Reason, "历史记录×10") {
		t.Fatalf("reason = %q, want history signal", with.Reason)
	}
}

func TestMatchHistoryBonusCap(t *testing.T) {
	m := NewMatcher(MatcherConfig{}, WithHistoryCounter(func(string) int { return 100 }))
	base := NewMatcher(MatcherConfig{})
	content := "今天跑了10公里，好累"
	with := m.Match(content, testCandidates())
	without := base.Match(content, testCandidates())
	if math.Abs(with.Score-without.Score-0.5) > 1e-9 {
		t.Fatalf("history bonus = %v, want capped at 0.5", with.Score-without.Score)
	}
}

func TestMatchPanickingHistoryCounter(t *testing.T) {
	m := NewMatcher(MatcherConfig{}, WithHistoryCounter(func(string) int {
		panic("history store down")
	}))
	result := m.Match("今天跑了10公里，好累", testCandidates())
	if result == nil {
		t.Fatal("expected a match despite history failure")
	}
	if math.Abs(result.Score-0.9) > 1e-9 {
		t.Fatalf("score = %v, want 0.9 with history treated as zero", result.Score)
	}
}

func TestMatchReasonTrace(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	result := m.Match("完成了Python装饰器的学习", testCandidates())
	if result == nil {
		t.Fatal("expected a match")
	}
	for _, fragment := range []string{"主关键词", ";"} {
		if !strings.Contains(result.Reason, fragment) {
			t.Errorf("reason = %q, missing %q", result.Reason, fragment)
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := NewMatcher(MatcherConfig{})
	candidate := models.GoalCandidate{ID: "1", Title: "Python学习计划", Category: "学习"}
	result := m.Match("今天学习了PYTHON基础语法", []models.GoalCandidate{candidate})
	if result == nil {
		t.Fatal("expected a case-insensitive match")
	}
}
