package effect

import "testing"

func TestPosition(t *testing.T) {
	tests := []struct {
		note uint8
		x, y int
	}{
		{36, 400, 510},
		{35, 400, 510},
		{38, 320, 360},
		{42, 160, 360},
		{49, 160, 180},
		{57, 640, 180},
		// fallback: 0.1 + (60%24)/24*0.8 = 0.5
		{60, 400, 300},
		// fallback: 0.1 + 0/24*0.8 = 0.1
		{0, 80, 300},
	}
	for _, tt := range tests {
		x, y := Position(tt.note, 800, 600)
		if x != tt.x || y != tt.y {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", tt.note, x, y, tt.x, tt.y)
		}
	}
}

func TestFallbackStaysOnScreen(t *testing.T) {
	for n := 0; n < 128; n++ {
		x, y := Normalized(uint8(n))
		if x < 0.1 || x >= 0.9 || y <= 0 || y >= 1 {
			t.Fatalf("note %d maps off kit: (%v,%v)", n, x, y)
		}
	}
}
