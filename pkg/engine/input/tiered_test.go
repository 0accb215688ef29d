package input

import (
	"testing"
	"time"
)

func TestNewDebouncedInput_TrimsCode(t *testing.T) {
	ev := NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: "  cat \n", Timestamp: time.Now()})
	if ev.Code != "cat" || ev.Device != DeviceTerminal {
		t.Errorf("NewDebouncedInput() = %+v, want Code=cat Device=Terminal", ev)
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code     string
		want     Action
		wantText string
	}{
		{"arrow_up", ActionMoveNorth, ""},
		{"arrow_left", ActionMoveWest, ""},
		{"tab", ActionToggleOrientation, ""},
		{":T", ActionToggleOrientation, ""},
		{"!", ActionReveal, ""},
		{":reveal", ActionReveal, ""},
		{"?", ActionClue, ""},
		{"enter", ActionSubmit, ""},
		{":next", ActionNextLevel, ""},
		{":dump", ActionDump, ""},
		{":q", ActionQuit, ""},
		{"ctrl_c", ActionQuit, ""},
		{"cat", ActionGuess, "cat"},
		{"ice cream", ActionGuess, "ice cream"},
		{"T", ActionGuess, "T"},
		{"c4t", ActionNone, ""},
		{"", ActionNone, ""},
		{":unknown", ActionNone, ""},
	}
	for _, tt := range tests {
		got := MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: tt.code})
		if got.Action != tt.want || got.Text != tt.wantText {
			t.Errorf("MapToIntent(%q) = {%s %q}, want {%s %q}",
				tt.code, ActionName(got.Action), got.Text, ActionName(tt.want), tt.wantText)
		}
	}
}

func TestGetBindingsByAction_SortedAndComplete(t *testing.T) {
	byAction := GetBindingsByAction()
	for _, a := range []Action{
		ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast,
		ActionToggleOrientation, ActionReveal, ActionClue, ActionNextLevel, ActionQuit,
	} {
		codes := byAction[a]
		if len(codes) == 0 {
			t.Errorf("%s has no bindings", ActionName(a))
			continue
		}
		for i := 1; i < len(codes); i++ {
			if codes[i-1] > codes[i] {
				t.Errorf("%s codes not sorted: %v", ActionName(a), codes)
			}
		}
	}
}

func TestTerminalCommand(t *testing.T) {
	if got := TerminalCommand(ActionReveal); got != ":r" {
		t.Errorf("TerminalCommand(Reveal) = %q, want :r", got)
	}
	if got := TerminalCommand(ActionMoveNorth); got != "" {
		t.Errorf("TerminalCommand(MoveNorth) = %q, want empty", got)
	}
}
