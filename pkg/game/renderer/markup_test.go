package renderer

import "testing"

func TestApplyMarkup_ResolvesOnlyTranslations(t *testing.T) {
	// With no catalogue loaded gotext returns the key.
	got := ApplyMarkup("GT{HELLO} WORD{%s} solved", "CAT")
	if got != "HELLO WORD{CAT} solved" {
		t.Errorf("ApplyMarkup() = %q", got)
	}
}

func TestApplyMarkup_NoArgsKeepsPercent(t *testing.T) {
	if got := ApplyMarkup("100% done"); got != "100% done" {
		t.Errorf("ApplyMarkup() = %q, want unchanged", got)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"ACTION{:r} reveals", ":r reveals"},
		{"WORD{CAT} and CLUE{Feline, small}", "CAT and Feline, small"},
		{"DENIED{no} SUBTLE{(3)}", "no (3)"},
		{"lower{case} stays", "lower{case} stays"},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.in); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatText_WithoutRenderer(t *testing.T) {
	SetRenderer(nil)
	if got := FormatText("ACTION{%s}", "tab"); got != "tab" {
		t.Errorf("FormatText() = %q, want tab", got)
	}
}
