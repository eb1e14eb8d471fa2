package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mandel.png")
	var stderr bytes.Buffer

	err := run([]string{"-workers", "4", out, "40x30", "x", "-1.20,0.35", "-1,0.20"}, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Errorf("image bounds = %v, want 40x30", img.Bounds())
	}
	if !strings.Contains(stderr.String(), "image written") {
		t.Errorf("missing summary in %q", stderr.String())
	}
}

func TestRun_CustomSeparator(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mandel.bmp")
	if err := run([]string{out, "16:9", ":", "-2,1", "1,-1"}, new(bytes.Buffer)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestRun_Usage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "m.png")

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"too few", []string{out, "10x10", "x", "-1,1"}},
		{"too many", []string{out, "10x10", "x", "-1,1", "1,-1", "extra"}},
		{"bad size", []string{out, "10by10", "x", "-1,1", "1,-1"}},
		{"zero size", []string{out, "0x10", "x", "-1,1", "1,-1"}},
		{"bad separator", []string{out, "10x10", "xx", "-1,1", "1,-1"}},
		{"bad point", []string{out, "10x10", "x", "-1;1", "1,-1"}},
		{"swapped corners", []string{out, "10x10", "x", "1,-1", "-1,1"}},
		{"unknown format", []string{filepath.Join(dir, "m.jpg"), "10x10", "x", "-1,1", "1,-1"}},
		{"bad limit", []string{"-limit", "0", out, "10x10", "x", "-1,1", "1,-1"}},
		{"unknown flag", []string{"-nope", out, "10x10", "x", "-1,1", "1,-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			err := run(tt.args, &stderr)
			if !errors.Is(err, errUsage) {
				t.Fatalf("run error = %v, want a usage error", err)
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Errorf("no usage message in %q", stderr.String())
			}
		})
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written despite bad arguments")
	}
}

func TestRun_WriteError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "m.png")
	err := run([]string{out, "4x4", "x", "-1,1", "1,-1"}, new(bytes.Buffer))
	if err == nil || errors.Is(err, errUsage) {
		t.Errorf("run error = %v, want an I/O error", err)
	}
}
