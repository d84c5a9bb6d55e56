package engine

import (
	"errors"
	"testing"

	"github.com/dickey1981/targetmanage/internal/models"
)

type memoryStore struct {
	current   string
	target    string
	completed bool
}

func (s *memoryStore) Progress(string) (string, string, error) {
	return s.current, s.target, nil
}

func (s *memoryStore) SetProgress(_ string, current string, completed bool) error {
	s.current = current
	s.completed = completed
	return nil
}

func runningCandidates() []models.GoalCandidate {
	return []models.GoalCandidate{
		{ID: "g1", Title: "跑步计划", Category: "健身", Description: "每周跑步3次", Unit: "公里"},
	}
}

func TestEngineAnalyze(t *testing.T) {
	e := NewEngine(nil)
	analysis := e.Analyze("今天坚持跑了5公里，感觉很棒")
	if analysis == nil {
		t.Fatal("expected an analysis")
	}
	if analysis.Sentiment != models.SentimentPositive {
		t.Errorf("sentiment = %s, want positive", analysis.Sentiment)
	}
	if analysis.ConfidenceScore < 0 || analysis.ConfidenceScore > 100 {
		t.Errorf("confidence = %d out of range", analysis.ConfidenceScore)
	}
}

func TestEngineParseAndValidate(t *testing.T) {
	e := NewEngine(nil)
	draft, hints := e.ParseGoal("我要在3个月内减重10斤")
	if draft.Category != "健康" {
		t.Fatalf("category = %s, want 健康", draft.Category)
	}
	if hints.Quality != models.QualityExcellent {
		t.Fatalf("quality = %s, want excellent", hints.Quality)
	}

	result := e.ValidateGoal(draft)
	if !result.IsValid {
		t.Fatalf("errors = %v, want a valid draft", result.Errors)
	}
}

func TestEngineMatchGoal(t *testing.T) {
	e := NewEngine(nil)
	match := e.MatchGoal("今天跑了10公里，好累", runningCandidates())
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.GoalID != "g1" {
		t.Fatalf("goal = %s, want g1", match.GoalID)
	}
	if e.MatchGoal("今天跑了10公里", nil) != nil {
		t.Fatal("empty candidates should never match")
	}
}

func TestEngineRecordProgressWithoutStore(t *testing.T) {
	e := NewEngine(nil)
	analysis := e.Analyze("达成了一个重要里程碑")
	if _, err := e.RecordProgress("g1", analysis, ""); !errors.Is(err, ErrNoStore) {
		t.Fatalf("err = %v, want ErrNoStore", err)
	}
}

func TestEngineProcessRecord(t *testing.T) {
	store := &memoryStore{current: "5", target: "10"}
	e := NewEngine(nil, WithGoalStore(store))
	outcome, err := e.ProcessRecord("今天跑了10公里，完成了50%", runningCandidates())
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Match == nil {
		t.Fatal("expected a match")
	}
	if outcome.Update == nil {
		t.Fatal("expected a progress update")
	}
	if store.current == "5" {
		t.Fatal("store should have been written")
	}
}

func TestEngineProcessRecordNoMatch(t *testing.T) {
	store := &memoryStore{current: "5", target: "10"}
	e := NewEngine(nil, WithGoalStore(store))
	outcome, err := e.ProcessRecord("今天天气不错", runningCandidates())
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Match != nil || outcome.Update != nil {
		t.Fatalf("outcome = %+v, want analysis only", outcome)
	}
	if store.current != "5" {
		t.Fatal("store should be untouched")
	}
}

func TestEngineHistoryCounter(t *testing.T) {
	counted := false
	e := NewEngine(nil, WithHistoryCounter(func(string) int {
		counted = true
		return 4
	}))
	if e.MatchGoal("今天跑了10公里，好累", runningCandidates()) == nil {
		t.Fatal("expected a match")
	}
	if !counted {
		t.Fatal("history counter should have been consulted")
	}
}
