// Package cli provides output formatting for the targetmanage CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dickey1981/targetmanage/internal/engine"
	"github.com/dickey1981/targetmanage/internal/models"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteAnalysis writes a content analysis to w in the given format.
func WriteAnalysis(w io.Writer, analysis *models.ContentAnalysis, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, analysis)
	}
	fmt.Fprintf(w, "Record type: %s\n", analysis.RecordType)
	fmt.Fprintf(w, "Sentiment:   %s\n", analysis.Sentiment)
	fmt.Fprintf(w, "Confidence:  %d/100\n", analysis.ConfidenceScore)
	if analysis.EnergyLevel != nil {
		fmt.Fprintf(w, "Energy:      %d/10\n", *analysis.EnergyLevel)
	}
	if analysis.DifficultyLevel != nil {
		fmt.Fprintf(w, "Difficulty:  %d/10\n", *analysis.DifficultyLevel)
	}
	if len(analysis.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords:    %s\n", strings.Join(analysis.Keywords, ", "))
	}
	if len(analysis.Tags) > 0 {
		fmt.Fprintf(w, "Tags:        %s\n", strings.Join(analysis.Tags, ", "))
	}
	var flags []string
	if analysis.IsImportant {
		flags = append(flags, "important")
	}
	if analysis.IsMilestone {
		flags = append(flags, "milestone")
	}
	if analysis.IsBreakthrough {
		flags = append(flags, "breakthrough")
	}
	if len(flags) > 0 {
		fmt.Fprintf(w, "Flags:       %s\n", strings.Join(flags, ", "))
	}
	return nil
}

// draftWithHints is the JSON shape for parse output.
type draftWithHints struct {
	Draft *models.GoalDraft    `json:"draft"`
	Hints *models.ParsingHints `json:"hints"`
}

// WriteDraft writes a parsed goal draft and its hints to w.
func WriteDraft(w io.Writer, draft *models.GoalDraft, hints *models.ParsingHints, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, draftWithHints{Draft: draft, Hints: hints})
	}
	fmt.Fprintf(w, "Title:       %s\n", draft.Title)
	fmt.Fprintf(w, "Category:    %s\n", draft.Category)
	fmt.Fprintf(w, "Description: %s\n", draft.Description)
	if draft.StartDate != nil && draft.EndDate != nil {
		fmt.Fprintf(w, "Window:      %s to %s\n",
			draft.StartDate.Format("2006-01-02"), draft.EndDate.Format("2006-01-02"))
	}
	if draft.TargetValue != "" {
		fmt.Fprintf(w, "Target:      %s %s\n", draft.TargetValue, draft.Unit)
	}
	fmt.Fprintf(w, "Quality:     %s\n", hints.Quality)
	if len(hints.MissingElements) > 0 {
		fmt.Fprintf(w, "Missing:     %s\n", strings.Join(hints.MissingElements, ", "))
	}
	for _, tip := range hints.ImprovementTips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
	return nil
}

// WriteValidation writes a validation result to w.
func WriteValidation(w io.Writer, result *models.ValidationResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	status := "valid"
	if !result.IsValid {
		status = "invalid"
	}
	fmt.Fprintf(w, "Result: %s (score %d/100)\n", status, result.Score)
	for _, dim := range models.SmartDimensions {
		fmt.Fprintf(w, "  %-10s %.2f\n", dim, result.SmartScores[dim])
	}
	writeList(w, "Errors", result.Errors)
	writeList(w, "Warnings", result.Warnings)
	writeList(w, "Suggestions", result.Suggestions)
	if result.Analysis != nil {
		fmt.Fprintf(w, "Overall: %.2f\n", result.Analysis.OverallScore)
		writeList(w, "Strengths", result.Analysis.Strengths)
		writeList(w, "Weaknesses", result.Analysis.Weaknesses)
	}
	return nil
}

// WriteMatch writes a match result to w. A nil match is reported rather than
// treated as an error.
func WriteMatch(w io.Writer, match *models.MatchResult, format OutputFormat) error {
	if format == OutputJSON {
		if match == nil {
			_, err := fmt.Fprintln(w, "null")
			return err
		}
		return writeJSON(w, match)
	}
	if match == nil {
		fmt.Fprintln(w, "No goal matched.")
		return nil
	}
	fmt.Fprintf(w, "Matched goal: %s\n", match.GoalID)
	fmt.Fprintf(w, "Score:        %.2f (%s confidence)\n", match.Score, match.Confidence)
	if match.Reason != "" {
		fmt.Fprintf(w, "Signals:      %s\n", match.Reason)
	}
	return nil
}

// WriteOutcome writes a full record-processing outcome to w.
func WriteOutcome(w io.Writer, outcome *engine.RecordOutcome, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, outcome)
	}
	if err := WriteAnalysis(w, outcome.Analysis, OutputText); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := WriteMatch(w, outcome.Match, OutputText); err != nil {
		return err
	}
	if outcome.Update != nil {
		fmt.Fprintf(w, "Progress:     +%.1f points, now %s (%.1f%%)\n",
			outcome.Update.Increment, outcome.Update.NewCurrentValue, outcome.Update.Ratio)
		if outcome.Update.Completed {
			fmt.Fprintln(w, "Goal completed.")
		}
	}
	return nil
}

func writeList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// ReadDraft parses a JSON goal draft, as passed to the validate command.
func ReadDraft(r io.Reader) (*models.GoalDraft, error) {
	var draft models.GoalDraft
	if err := json.NewDecoder(r).Decode(&draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return &draft, nil
}

// ReadCandidates parses a JSON array of candidate goals, as passed to the
// match command.
func ReadCandidates(r io.Reader) ([]models.GoalCandidate, error) {
	var candidates []models.GoalCandidate
	if err := json.NewDecoder(r).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}
	return candidates, nil
}
