package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "SCORE"},
		[][]string{
			{"abc123", "0.85"},
			{"def456"}, // short row pads with an empty cell
		},
		[]columnAlignment{alignLeft, alignRight},
	)

	if !strings.Contains(out, "abc123") || !strings.Contains(out, "0.85") {
		t.Errorf("rendered table missing cells:\n%s", out)
	}
	if !strings.Contains(out, "SCORE") {
		t.Errorf("rendered table missing header:\n%s", out)
	}
}

func TestRenderTableNoColumns(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
