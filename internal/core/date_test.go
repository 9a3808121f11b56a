package core

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{" 2024-03-15 ", "2024-03-15", true},
		{"2024-3-15", "", false},
		{"15/03/2024", "", false},
		{"2024-13-01", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestNormalizeDateEmptyDefaultsToToday(t *testing.T) {
	got, err := NormalizeDate("")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got != time.Now().Format(DateLayout) {
		t.Fatalf("expected today's date, got %q", got)
	}
}

func TestInMonth(t *testing.T) {
	if !InMonth("2024-03-15", "2024-03") {
		t.Fatalf("2024-03-15 should match month 2024-03")
	}
	if InMonth("2024-03-15", "2024-04") {
		t.Fatalf("2024-03-15 should not match month 2024-04")
	}
	if InMonth("2024-03-15", "") {
		t.Fatalf("empty month should match nothing")
	}
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
	if got := CurrentMonth(now); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %q", got)
	}
}
