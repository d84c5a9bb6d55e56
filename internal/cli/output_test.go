package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dickey1981/targetmanage/internal/models"
)

func TestWriteAnalysisJSON(t *testing.T) {
	analysis := &models.ContentAnalysis{
		RecordType:      models.RecordProgress,
		Sentiment:       models.SentimentPositive,
		Keywords:        []string{"跑步"},
		Tags:            []string{"运动"},
		ConfidenceScore: 70,
	}
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, analysis, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.ContentAnalysis
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.RecordType != models.RecordProgress {
		t.Errorf("record_type = %s, want progress", decoded.RecordType)
	}
}

func TestWriteAnalysisText(t *testing.T) {
	analysis := &models.ContentAnalysis{
		RecordType:      models.RecordMilestone,
		Sentiment:       models.SentimentNeutral,
		IsMilestone:     true,
		ConfidenceScore: 60,
	}
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, analysis, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"milestone", "neutral", "60/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMatchNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMatch(&buf, nil, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No goal matched") {
		t.Fatalf("output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteMatch(&buf, nil, OutputJSON); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "null" {
		t.Fatalf("json output = %q, want null", buf.String())
	}
}

func TestWriteValidationText(t *testing.T) {
	result := &models.ValidationResult{
		IsValid: false,
		Errors:  []string{"目标必须设置具体的数值和单位"},
		Score:   60,
		SmartScores: map[models.SmartDimension]float64{
			models.DimensionSpecific:   0.8,
			models.DimensionMeasurable: 0,
			models.DimensionAchievable: 0.5,
			models.DimensionRelevant:   1,
			models.DimensionTimeBound:  1,
		},
	}
	var buf bytes.Buffer
	if err := WriteValidation(&buf, result, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"invalid", "60/100", "measurable", "数值和单位"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReadCandidates(t *testing.T) {
	input := `[{"id":"1","title":"跑步计划","category":"健身","unit":"公里"}]`
	candidates, err := ReadCandidates(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) != 1 || candidates[0].ID != "1" {
		t.Fatalf("candidates = %+v", candidates)
	}

	if _, err := ReadCandidates(strings.NewReader("{broken")); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}
