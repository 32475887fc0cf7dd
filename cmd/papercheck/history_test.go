package main

import "testing"

func TestShortID(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"9f8b4a2c-0000-4000-8000-000000000000", "9f8b4a2c"},
		{"short", "short"},
		{"", ""},
		{"12345678", "12345678"},
	}

	for _, tc := range tests {
		if got := shortID(tc.id); got != tc.expected {
			t.Errorf("shortID(%q) = %q, want %q", tc.id, got, tc.expected)
		}
	}
}
