package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestExportCmd_Stdout(t *testing.T) {
	out := runCmd(t, "export")

	if !strings.HasPrefix(out, "Rank,Name,P&L,P&L %,Trades,Win Rate,Badges\n") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExportCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	runCmd(t, "export", "--out", path)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(b), "Rank,") {
		t.Fatalf("unexpected file content: %q", b)
	}
}

func TestRoutesCmd(t *testing.T) {
	out := runCmd(t, "routes")

	for _, want := range []string{"PATH", "/facilitator/dashboard", "facilitator-only", "-> /facilitator/login", "render"} {
		if !strings.Contains(out, want) {
			t.Fatalf("routes output missing %q:\n%s", want, out)
		}
	}
}
