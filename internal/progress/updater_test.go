package progress

import (
	"errors"
	"math"
	"testing"

	"github.com/dickey1981/targetmanage/internal/models"
)

func analysisOf(recordType models.RecordType) *models.ContentAnalysis {
	return &models.ContentAnalysis{RecordType: recordType, Sentiment: models.SentimentNeutral}
}

func TestIncrementByRecordType(t *testing.T) {
	tests := []struct {
		recordType models.RecordType
		content    string
		want       float64
	}{
		{models.RecordMilestone, "达成阶段性成果", 10},
		{models.RecordAchievement, "拿到了证书", 5},
		{models.RecordProcess, "今天继续练习", 1},
		{models.RecordMethod, "发现一个好方法", 0.5},
		{models.RecordReflection, "回顾这周的安排", 0.5},
		{models.RecordDifficulty, "遇到了很大困难", 0},
		{models.RecordOther, "随便记一笔", 0},
	}
	u := NewUpdater(nil)
	for _, tc := range tests {
		if got := u.Increment(analysisOf(tc.recordType), tc.content); got != tc.want {
			t.Errorf("%s: increment = %v, want %v", tc.recordType, got, tc.want)
		}
	}
}

func TestIncrementFromProgressContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"percentage", "今天完成度达到15%", 15},
		{"fraction below cap", "读到了 1/10", 10},
		{"fraction capped", "读到了 3/10", 20},
		{"completion count", "完成了8个练习", 8},
		{"progress label", "进度 12", 12},
		{"no value", "有一点进展", 0},
		{"percentage capped", "已经完成95%", 20},
	}
	u := NewUpdater(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := u.Increment(analysisOf(models.RecordProgress), tc.content)
			if got != tc.want {
				t.Fatalf("increment = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIncrementMultipliers(t *testing.T) {
	u := NewUpdater(nil)
	analysis := analysisOf(models.RecordAchievement)
	analysis.IsImportant = true
	if got := u.Increment(analysis, ""); got != 7.5 {
		t.Fatalf("important achievement = %v, want 7.5", got)
	}

	analysis = analysisOf(models.RecordProcess)
	analysis.IsBreakthrough = true
	analysis.Sentiment = models.SentimentPositive
	if got := u.Increment(analysis, ""); math.Abs(got-2.4) > 1e-9 {
		t.Fatalf("breakthrough positive process = %v, want 2.4", got)
	}

	analysis = analysisOf(models.RecordProcess)
	analysis.Sentiment = models.SentimentNegative
	if got := u.Increment(analysis, ""); got != 0.8 {
		t.Fatalf("negative process = %v, want 0.8", got)
	}

	// Compounding multipliers still hit the per-record cap.
	analysis = analysisOf(models.RecordMilestone)
	analysis.IsImportant = true
	analysis.IsBreakthrough = true
	analysis.IsMilestone = true
	if got := u.Increment(analysis, ""); got != 20 {
		t.Fatalf("stacked multipliers = %v, want capped 20", got)
	}
}

func TestApply(t *testing.T) {
	u := NewUpdater(nil)
	update := u.Apply("2", "10", analysisOf(models.RecordMilestone), "")
	if update == nil {
		t.Fatal("expected an update")
	}
	// 10 points of a target of 10 adds 1.
	if update.NewCurrentValue != "3" {
		t.Fatalf("new current = %q, want 3", update.NewCurrentValue)
	}
	if update.Ratio != 30 {
		t.Fatalf("ratio = %v, want 30", update.Ratio)
	}
	if update.Completed {
		t.Fatal("goal should not be completed")
	}
}

func TestApplyCompletes(t *testing.T) {
	u := NewUpdater(nil)
	update := u.Apply("9.5", "10", analysisOf(models.RecordMilestone), "")
	if update == nil {
		t.Fatal("expected an update")
	}
	if update.NewCurrentValue != "10" {
		t.Fatalf("new current = %q, want clamped to 10", update.NewCurrentValue)
	}
	if !update.Completed {
		t.Fatal("goal should be completed")
	}
	if update.Ratio != 100 {
		t.Fatalf("ratio = %v, want 100", update.Ratio)
	}
}

func TestApplyNoContribution(t *testing.T) {
	u := NewUpdater(nil)
	if update := u.Apply("2", "10", analysisOf(models.RecordDifficulty), ""); update != nil {
		t.Fatalf("got %+v, want nil", update)
	}
}

func TestApplyMalformedValues(t *testing.T) {
	u := NewUpdater(nil)
	// A broken target is treated as the 100-point default, a broken current
	// value as zero.
	update := u.Apply("??", "not-a-number", analysisOf(models.RecordMilestone), "")
	if update == nil {
		t.Fatal("expected an update")
	}
	if update.NewCurrentValue != "10" {
		t.Fatalf("new current = %q, want 10", update.NewCurrentValue)
	}
}

type fakeStore struct {
	current   string
	target    string
	completed bool
	loadErr   error
	storeErr  error
	stores    int
}

func (s *fakeStore) Progress(string) (string, string, error) {
	return s.current, s.target, s.loadErr
}

func (s *fakeStore) SetProgress(_ string, current string, completed bool) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.current = current
	s.completed = completed
	s.stores++
	return nil
}

func TestUpdateFromRecord(t *testing.T) {
	store := &fakeStore{current: "5", target: "10"}
	u := NewUpdater(store)
	update, err := u.UpdateFromRecord("g1", analysisOf(models.RecordMilestone), "")
	if err != nil {
		t.Fatal(err)
	}
	if update == nil {
		t.Fatal("expected an update")
	}
	if store.current != "6" || store.completed {
		t.Fatalf("store = %q completed=%v, want 6 false", store.current, store.completed)
	}
}

func TestUpdateFromRecordSkipsZeroIncrement(t *testing.T) {
	store := &fakeStore{current: "5", target: "10"}
	u := NewUpdater(store)
	update, err := u.UpdateFromRecord("g1", analysisOf(models.RecordOther), "")
	if err != nil {
		t.Fatal(err)
	}
	if update != nil || store.stores != 0 {
		t.Fatalf("update = %+v, stores = %d, want no write", update, store.stores)
	}
}

func TestUpdateFromRecordErrors(t *testing.T) {
	boom := errors.New("boom")
	u := NewUpdater(&fakeStore{loadErr: boom})
	if _, err := u.UpdateFromRecord("g1", analysisOf(models.RecordMilestone), ""); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}

	u = NewUpdater(&fakeStore{current: "5", target: "10", storeErr: boom})
	if _, err := u.UpdateFromRecord("g1", analysisOf(models.RecordMilestone), ""); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(5, 10); got != 50 {
		t.Fatalf("ratio = %v, want 50", got)
	}
	if got := Ratio(5, 0); got != 0 {
		t.Fatalf("zero target ratio = %v, want 0", got)
	}
}
