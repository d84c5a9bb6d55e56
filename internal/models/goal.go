package models

import "time"

// GoalDraft is a structured goal parsed from a natural-language statement.
// A draft may be edited by the user before being persisted as a real goal;
// string value fields stay strings because the mini-program submits them
// verbatim and the validator owns numeric interpretation.
type GoalDraft struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	// StartDate and EndDate are calendar dates (midnight-truncated); nil when
	// no time window could be determined.
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	// TargetValue and Unit are empty when no quantity was found in the text.
	TargetValue      string `json:"target_value,omitempty"`
	CurrentValue     string `json:"current_value"`
	Unit             string `json:"unit,omitempty"`
	Priority         string `json:"priority"`
	DailyReminder    bool   `json:"daily_reminder"`
	DeadlineReminder bool   `json:"deadline_reminder"`
}

// GoalCandidate is the narrow read view of an existing goal that the matcher
// needs. The persistence layer supplies these; only the listed fields are read.
type GoalCandidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
}
