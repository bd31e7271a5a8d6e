package dateparse

import (
	"testing"
	"time"
)

// Fixed reference: Monday, August 31 2026, mid-afternoon
var refNow = time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

func TestParseDateFromExact(t *testing.T) {
	got, err := ParseDateFrom("2026-03-01", refNow)
	if err != nil {
		t.Fatalf("ParseDateFrom() error = %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDateFromKeywords(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"today", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"TODAY", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{" tomorrow ", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDateFrom(tc.input, refNow)
		if err != nil {
			t.Errorf("ParseDateFrom(%q) error = %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDateFrom(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseDateFromRelative(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"+0d", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{"+7d", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)},
		{"+2w", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDateFrom(tc.input, refNow)
		if err != nil {
			t.Errorf("ParseDateFrom(%q) error = %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDateFrom(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseDateFromDayNames(t *testing.T) {
	// reference is a Monday; "monday" must advance a full week
	got, err := ParseDateFrom("monday", refNow)
	if err != nil {
		t.Fatalf("ParseDateFrom(monday) error = %v", err)
	}
	want := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = ParseDateFrom("friday", refNow)
	if err != nil {
		t.Fatalf("ParseDateFrom(friday) error = %v", err)
	}
	want = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDateFromErrors(t *testing.T) {
	for _, input := range []string{"", "yesterday?", "+3x", "31/08/2026"} {
		if _, err := ParseDateFrom(input, refNow); err == nil {
			t.Errorf("ParseDateFrom(%q) expected error", input)
		}
	}
}
