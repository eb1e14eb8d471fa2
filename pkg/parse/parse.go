// Package parse reads image sizes and complex numbers from command-line
// strings such as "1000x750" and "-1.20,0.35".
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

var ErrSyntax = errors.New("syntax error")

// Pair splits s at the first sep and parses both halves with conv.
func Pair[T any](s string, sep rune, conv func(string) (T, error)) (T, T, error) {
	var zero T
	l, r, found := strings.Cut(s, string(sep))
	if !found {
		return zero, zero, fmt.Errorf("%w: %q has no %q separator", ErrSyntax, s, sep)
	}
	a, err := conv(l)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	b, err := conv(r)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	return a, b, nil
}

// Bounds parses "<width><sep><height>" into positive image bounds.
func Bounds(s string, sep rune) (types.Bounds, error) {
	w, h, err := Pair(s, sep, strconv.Atoi)
	if err != nil {
		return types.Bounds{}, err
	}
	b := types.Bounds{W: w, H: h}
	if err := b.Validate(); err != nil {
		return types.Bounds{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return b, nil
}

// Complex parses "<real>,<imag>".
func Complex(s string) (complex128, error) {
	re, im, err := Pair(s, ',', func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// Separator parses a string holding exactly one character.
func Separator(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: separator %q is not a single character", ErrSyntax, s)
	}
	return r, nil
}

// Viewport parses two corner points and checks that the first is the upper
// left corner of the second.
func Viewport(upperLeft, lowerRight string) (types.Viewport, error) {
	ul, err := Complex(upperLeft)
	if err != nil {
		return types.Viewport{}, fmt.Errorf("upper left: %w", err)
	}
	lr, err := Complex(lowerRight)
	if err != nil {
		return types.Viewport{}, fmt.Errorf("lower right: %w", err)
	}
	vp := types.Viewport{UpperLeft: ul, LowerRight: lr}
	if err := vp.Validate(); err != nil {
		return types.Viewport{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return vp, nil
}
