package parse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

func TestPair(t *testing.T) {
	tests := []struct {
		s       string
		sep     rune
		a, b    int
		wantErr bool
	}{
		{"", ',', 0, 0, true},
		{",", ',', 0, 0, true},
		{"10,", ',', 0, 0, true},
		{",10", ',', 0, 0, true},
		{"10,20", ',', 10, 20, false},
		{"10,20xy", ',', 0, 0, true},
		{"10x20", 'x', 10, 20, false},
		{"10x20", ',', 0, 0, true},
		{"640:480", ':', 640, 480, false},
	}

	for _, tt := range tests {
		a, b, err := Pair(tt.s, tt.sep, strconv.Atoi)
		if tt.wantErr {
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Pair(%q, %q) error = %v, want ErrSyntax", tt.s, tt.sep, err)
			}
			continue
		}
		if err != nil || a != tt.a || b != tt.b {
			t.Errorf("Pair(%q, %q) = %d, %d, %v; want %d, %d", tt.s, tt.sep, a, b, err, tt.a, tt.b)
		}
	}
}

func TestPair_Floats(t *testing.T) {
	a, b, err := Pair("0.5x-1.5", 'x', func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if err != nil || a != 0.5 || b != -1.5 {
		t.Errorf("Pair = %g, %g, %v", a, b, err)
	}
}

func TestBounds(t *testing.T) {
	b, err := Bounds("1000x750", 'x')
	if err != nil || b != (types.Bounds{W: 1000, H: 750}) {
		t.Errorf("Bounds = %v, %v", b, err)
	}

	for _, s := range []string{"0x750", "1000x0", "-5x5", "axb", "1000"} {
		if _, err := Bounds(s, 'x'); !errors.Is(err, ErrSyntax) {
			t.Errorf("Bounds(%q) error = %v, want ErrSyntax", s, err)
		}
	}
}

func TestComplex(t *testing.T) {
	tests := []struct {
		s    string
		want complex128
	}{
		{"1.25,-0.0625", complex(1.25, -0.0625)},
		{"-1.20,0.35", complex(-1.20, 0.35)},
		{"0,0", 0},
	}
	for _, tt := range tests {
		got, err := Complex(tt.s)
		if err != nil || got != tt.want {
			t.Errorf("Complex(%q) = %v, %v; want %v", tt.s, got, err, tt.want)
		}
	}

	for _, s := range []string{"", ",-0.0625", "1.25", "1.25;0", "a,b"} {
		if _, err := Complex(s); !errors.Is(err, ErrSyntax) {
			t.Errorf("Complex(%q) error = %v, want ErrSyntax", s, err)
		}
	}
}

func TestSeparator(t *testing.T) {
	for _, s := range []string{"x", ",", "×"} {
		if _, err := Separator(s); err != nil {
			t.Errorf("Separator(%q): %v", s, err)
		}
	}
	if r, _ := Separator("×"); r != '×' {
		t.Errorf("Separator(×) = %q", r)
	}
	for _, s := range []string{"", "xx", "\xff"} {
		if _, err := Separator(s); !errors.Is(err, ErrSyntax) {
			t.Errorf("Separator(%q) error = %v, want ErrSyntax", s, err)
		}
	}
}

func TestViewport(t *testing.T) {
	vp, err := Viewport("-1.20,0.35", "-1,0.20")
	if err != nil {
		t.Fatal(err)
	}
	if vp.UpperLeft != complex(-1.20, 0.35) || vp.LowerRight != complex(-1, 0.20) {
		t.Errorf("Viewport = %s", vp)
	}

	tests := []struct{ ul, lr string }{
		{"-1,0.20", "-1.20,0.35"}, // swapped
		{"-1,1", "1,1"},           // no height
		{"-1,1", "bad"},
		{"bad", "1,-1"},
	}
	for _, tt := range tests {
		if _, err := Viewport(tt.ul, tt.lr); !errors.Is(err, ErrSyntax) {
			t.Errorf("Viewport(%q, %q) error = %v, want ErrSyntax", tt.ul, tt.lr, err)
		}
	}
}
