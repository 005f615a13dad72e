package utils

import (
	"testing"
	"time"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10.0, 10.0},
		{3.333, 3.33},
		{16.666666, 16.67},
		{1.236, 1.24},
		{-1.236, -1.24},
		{-20.0, -20.0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{78.5, "78.5"},
		{0.2, "0.2"},
		{76.98, "76.98"},
		{-20, "-20"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("30s"); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}
	// Empty and malformed both fall back to the 5m default.
	if got := ParseDuration(""); got != 5*time.Minute {
		t.Fatalf("expected 5m default, got %v", got)
	}
	if got := ParseDuration("soon"); got != 5*time.Minute {
		t.Fatalf("expected 5m default, got %v", got)
	}
}
