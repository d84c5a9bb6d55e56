package utils

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"ascii truncated", "hello world", 5, "hello"},
		{"cjk truncated by rune", "我要在三个月内减重", 4, "我要在三"},
		{"zero max unchanged", "hello", 0, "hello"},
		{"negative max unchanged", "hello", -1, "hello"},
		{"empty string", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.s, tt.max); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("我要减肥"); got != 4 {
		t.Errorf("RuneLen = %d, want 4", got)
	}
	if got := RuneLen("abc"); got != 3 {
		t.Errorf("RuneLen = %d, want 3", got)
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, want 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, want 1", got)
	}
	if got := Clamp01(0.3); got != 0.3 {
		t.Errorf("Clamp01(0.3) = %v, want 0.3", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(120, 0, 100); got != 100 {
		t.Errorf("ClampInt(120, 0, 100) = %d, want 100", got)
	}
	if got := ClampInt(-3, 0, 100); got != 0 {
		t.Errorf("ClampInt(-3, 0, 100) = %d, want 0", got)
	}
}
