package terminal

import "testing"

func TestPadLeft(t *testing.T) {
	tests := []struct {
		visible, width int
		want           string
	}{
		{10, 20, "     "},
		{11, 20, "    "},
		{20, 20, ""},
		{30, 20, ""},
	}
	for _, tt := range tests {
		if got := PadLeft(tt.visible, tt.width); got != tt.want {
			t.Errorf("PadLeft(%d, %d) = %q, want %q", tt.visible, tt.width, got, tt.want)
		}
	}
}

func TestVisibleWidth_IgnoresColorCodes(t *testing.T) {
	if got := VisibleWidth("\x1b[32mCAT\x1b[0m"); got != 3 {
		t.Errorf("VisibleWidth() = %d, want 3", got)
	}
	if got := VisibleWidth("·A·"); got != 3 {
		t.Errorf("VisibleWidth(·A·) = %d, want 3", got)
	}
}

func TestGetSize_FallsBack(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive", w, h)
	}
}
