package mandel

import "testing"

func TestEscapeTime_Origin(t *testing.T) {
	for _, limit := range []int{1, 2, 10, 255, 10000} {
		if n, ok := EscapeTime(0, limit); ok {
			t.Errorf("EscapeTime(0, %d) escaped at %d", limit, n)
		}
	}
}

func TestEscapeTime_KnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		c      complex128
		limit  int
		wantN  int
		wantOK bool
	}{
		// z is 0 at iteration 0, so nothing escapes before iteration 1.
		{"far outside", complex(2, 2), 255, 1, true},
		{"far outside, limit 1", complex(2, 2), 1, 0, false},
		{"on the escape circle", complex(2, 0), 255, 2, true},
		{"just outside", complex(-2.1, 0), 255, 1, true},
		{"main cardioid", complex(-0.5, 0), 255, 0, false},
		{"period two bulb", complex(-1, 0), 255, 0, false},
		{"tip of the needle", complex(-2, 0), 255, 0, false},
		{"i", complex(0, 1), 255, 0, false},
		{"limit zero", complex(2, 2), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := EscapeTime(tt.c, tt.limit)
			if n != tt.wantN || ok != tt.wantOK {
				t.Errorf("EscapeTime(%v, %d) = (%d, %v), want (%d, %v)",
					tt.c, tt.limit, n, ok, tt.wantN, tt.wantOK)
			}
		})
	}
}

func TestEscapeTime_Deterministic(t *testing.T) {
	points := []complex128{
		complex(-0.7436447860, 0.1318252536),
		complex(0.285, 0.01),
		complex(-1.25066, 0.02012),
		complex(0.3, 0.5),
	}
	for _, c := range points {
		n1, ok1 := EscapeTime(c, 255)
		n2, ok2 := EscapeTime(c, 255)
		if n1 != n2 || ok1 != ok2 {
			t.Errorf("EscapeTime(%v) not repeatable: (%d, %v) then (%d, %v)", c, n1, ok1, n2, ok2)
		}
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		n     int
		ok    bool
		limit int
		want  uint8
	}{
		{0, false, 255, 0},
		{0, true, 255, 255},
		{1, true, 255, 254},
		{254, true, 255, 1},
		{255, true, 256, 0},
		{0, true, 1000, 255},
		{500, true, 1000, 127},
		{999, true, 1000, 0},
		{42, false, 1000, 0},
	}

	for _, tt := range tests {
		if got := Intensity(tt.n, tt.ok, tt.limit); got != tt.want {
			t.Errorf("Intensity(%d, %v, %d) = %d, want %d", tt.n, tt.ok, tt.limit, got, tt.want)
		}
	}
}
