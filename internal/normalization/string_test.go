package normalization

import "testing"

func TestTrimInputString(t *testing.T) {
	if got := TrimInputString("  Classic  "); got != "Classic" {
		t.Fatalf("expected %q, got %q", "Classic", got)
	}
	if got := TrimInputString("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestParseInputString(t *testing.T) {
	if got := ParseInputString("  Patio  "); got != "patio" {
		t.Fatalf("expected %q, got %q", "patio", got)
	}
	if got := ParseInputString("PATIO"); got != "patio" {
		t.Fatalf("expected %q, got %q", "patio", got)
	}
}
