package main

import (
	"io"
	"testing"
)

func TestRootCommandRejectsPartialArgs(t *testing.T) {
	for _, args := range [][]string{
		{"original.txt"},
		{"original.txt", "suspect.txt"},
	} {
		cmd := newRootCommand()
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		if err := cmd.Execute(); err == nil {
			t.Errorf("Execute(%v) = nil, want an argument-count error", args)
		}
	}
}

func TestRootCommandNoArgsShowsHelp(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute() = %v, want help without error", err)
	}
}
