// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSwizzle(t *testing.T) {
	tests := []struct {
		pattern string
		want    []SwizzleComponent
		color   bool
		ok      bool
	}{
		{"x", []SwizzleComponent{SwizzleX}, false, true},
		{"zw", []SwizzleComponent{SwizzleZ, SwizzleW}, false, true},
		{"XXYY", []SwizzleComponent{SwizzleX, SwizzleX, SwizzleY, SwizzleY}, false, true},
		{"bgra", []SwizzleComponent{SwizzleZ, SwizzleY, SwizzleX, SwizzleW}, true, true},
		{"", nil, false, false},
		{"xyzwx", nil, false, false},
		{"xg", nil, false, false},
		{"q", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, color, ok := ParseSwizzle(tt.pattern)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if color != tt.color {
				t.Errorf("color = %v, want %v", color, tt.color)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("components (-want +got):\n%s", diff)
			}
			if s := SwizzleString(got, color); s != toLower(tt.pattern) {
				t.Errorf("SwizzleString = %q", s)
			}
		})
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestIsDistinct(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"x", true},
		{"zw", true},
		{"wzyx", true},
		{"xx", false},
		{"xyx", false},
		{"rgbr", false},
	}
	for _, tt := range tests {
		p, _, _ := ParseSwizzle(tt.pattern)
		if got := IsDistinct(p); got != tt.want {
			t.Errorf("IsDistinct(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestOperatorClasses(t *testing.T) {
	for op := BinaryAdd; op <= BinaryShiftRight; op++ {
		classes := 0
		for _, in := range []bool{op.IsComparison(), op.IsBitwise(), op.IsLogical()} {
			if in {
				classes++
			}
		}
		if classes > 1 {
			t.Errorf("%s belongs to %d classes", op.Symbol(), classes)
		}
		if op.Symbol() == "?" {
			t.Errorf("operator %d has no symbol", op)
		}
	}
}
