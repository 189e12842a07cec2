package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"list", "export"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("Find(%q) = %v, %v", name, cmd, err)
		}
		for _, flag := range []string{"query", "family", "desc"} {
			if cmd.Flags().Lookup(flag) == nil {
				t.Fatalf("%s missing --%s", name, flag)
			}
		}
	}
	for _, flag := range []string{"config", "api-url", "verbose"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("root missing --%s", flag)
		}
	}
}

func TestListCmd_FormatDefault(t *testing.T) {
	cmd, _, err := newRootCmd().Find([]string{"list"})
	if err != nil {
		t.Fatalf("Find(list) returned error: %v", err)
	}
	if got := cmd.Flags().Lookup("format").DefValue; got != "table" {
		t.Fatalf("--format default = %q, want table", got)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"list", "extra"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("Execute error = %v, want unknown command", err)
	}
}
