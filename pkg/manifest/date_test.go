package manifest

import "testing"

func TestParseDateCollapsesTimestamps(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-02-14", "2026-02-14"},
		{"2026-02-14T09:30:00Z", "2026-02-14"},
		{"2026-02-14T09:30:00.123456789Z", "2026-02-14"},
		{"2026-02-14 09:30:00", "2026-02-14"},
		{"2026/02/14", "2026-02-14"},
		{"February 14, 2026", "2026-02-14"},
		{"  2026-02-14  ", "2026-02-14"},
	}
	for _, tc := range tests {
		d, ok := ParseDate(tc.in)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", tc.in)
		}
		if d.String() != tc.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tc.in, d, tc.want)
		}
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, in := range []string{"", "  ", "not-a-date", "14th of Feb", "2026-13-45"} {
		if _, ok := ParseDate(in); ok {
			t.Fatalf("ParseDate(%q) should fail", in)
		}
	}
}

func TestDateEqual(t *testing.T) {
	a, _ := ParseDate("2026-02-14")
	b, _ := ParseDate("2026-02-14T23:59:59Z")
	if !a.Equal(b) {
		t.Fatalf("same calendar day should compare equal")
	}
	c, _ := ParseDate("2026-02-15")
	if a.Equal(c) {
		t.Fatalf("different days should not compare equal")
	}
}
