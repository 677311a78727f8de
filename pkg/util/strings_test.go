package util

import (
	"testing"
	"time"
)

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("8080", 1); got != 8080 {
		t.Fatalf("unexpected value %d", got)
	}
	if got := ParseIntDefault("", 42); got != 42 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("not-a-number", 42); got != 42 {
		t.Fatalf("expected default, got %d", got)
	}
}

func TestParseDurationDefault(t *testing.T) {
	if got := ParseDurationDefault("30s", time.Second); got != 30*time.Second {
		t.Fatalf("unexpected value %v", got)
	}
	if got := ParseDurationDefault("", time.Minute); got != time.Minute {
		t.Fatalf("expected default, got %v", got)
	}
	if got := ParseDurationDefault("nope", time.Minute); got != time.Minute {
		t.Fatalf("expected default, got %v", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := SplitAndTrim(" http://a.example , http://b.example ,", ",")
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected items %v", got)
	}
	if got := SplitAndTrim("", ","); got != nil {
		t.Fatalf("expected nil for empty input")
	}
}
