package models

import (
	"testing"
	"time"
)

func TestParseOrderDate_DayFirst(t *testing.T) {
	got, err := ParseOrderDate("15/01/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestParseOrderDate_DayAndMonthNotSwapped(t *testing.T) {
	// 03/04/2024 is the 3rd of April, not the 4th of March.
	got, err := ParseOrderDate("03/04/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Month() != time.April || got.Day() != 3 {
		t.Errorf("expected 3 April, got %s", got)
	}
}

func TestParseOrderDate_TrimsWhitespace(t *testing.T) {
	got, err := ParseOrderDate(" 01/02/2024 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Month() != time.February || got.Day() != 1 {
		t.Errorf("expected 1 February, got %s", got)
	}
}

func TestParseOrderDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024-01-15",   // ISO, wrong convention
		"15/13/2024",   // month out of range
		"32/01/2024",   // day out of range
		"15/01/24",     // two-digit year
		"yesterday",
	}
	for _, raw := range cases {
		if _, err := ParseOrderDate(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseOrderTotal_OK(t *testing.T) {
	got, err := ParseOrderTotal("150.75")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "150.75" {
		t.Errorf("expected 150.75, got %s", got.StringFixed(2))
	}
}

func TestParseOrderTotal_Integer(t *testing.T) {
	got, err := ParseOrderTotal("200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "200.00" {
		t.Errorf("expected 200.00, got %s", got.StringFixed(2))
	}
}

func TestParseOrderTotal_Zero(t *testing.T) {
	got, err := ParseOrderTotal("0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestParseOrderTotal_Rejected(t *testing.T) {
	cases := []string{"", "  ", "abc", "12.3.4", "-5.00", "$100"}
	for _, raw := range cases {
		if _, err := ParseOrderTotal(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Electronics", "Electronics"},
		{"  Books ", "Books"},
		{"", CategoryUncategorized},
		{"   ", CategoryUncategorized},
	}
	for _, c := range cases {
		if got := NormalizeCategory(c.in); got != c.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSnapshotServable(t *testing.T) {
	var nilSnap *Snapshot
	if nilSnap.Servable() {
		t.Error("nil snapshot should not be servable")
	}
	if (&Snapshot{State: LoadStateFailed}).Servable() {
		t.Error("failed snapshot should not be servable")
	}
	if !(&Snapshot{State: LoadStateEmpty}).Servable() {
		t.Error("empty snapshot should be servable")
	}
	if !(&Snapshot{State: LoadStateReady}).Servable() {
		t.Error("ready snapshot should be servable")
	}
	if (&Snapshot{State: LoadStateEmpty}).Ready() {
		t.Error("empty snapshot should not report ready")
	}
}
