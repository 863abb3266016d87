package upstream

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// A fallback detail from a non-JSON body is capped, and the cap must never
// split a multi-byte character.
func TestExtractDetail_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("က", 80) // 3 bytes each, 240 bytes total
	got := extractDetail([]byte(long))

	if !utf8.ValidString(got) {
		t.Fatalf("truncated detail is not valid UTF-8: %q", got)
	}
	if len(got) > maxDetailBytes {
		t.Fatalf("expected at most %d bytes, got %d", maxDetailBytes, len(got))
	}
	// 66 whole runes fit in 198 bytes; the 67th straddles the cap and is
	// dropped entirely.
	if want := strings.Repeat("က", 66); got != want {
		t.Fatalf("expected %d runes, got %d", utf8.RuneCountInString(want), utf8.RuneCountInString(got))
	}
}

func TestExtractDetail_AsciiCapsAtLimit(t *testing.T) {
	got := extractDetail([]byte(strings.Repeat("x", 250)))
	if len(got) != maxDetailBytes {
		t.Fatalf("expected %d bytes, got %d", maxDetailBytes, len(got))
	}
}
