package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathsPrintsTreeWithoutCreatingIt(t *testing.T) {
	dir := withDataRoot(t)

	var out bytes.Buffer
	if err := execute([]string{"deemon", "paths"}, &out, &out); err != nil {
		t.Fatalf("paths error: %v", err)
	}
	for _, want := range []string{
		dir,
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "deemon.db"),
		filepath.Join(dir, "backups"),
		"-deemon.log",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output, got %q", want, out.String())
		}
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected paths to leave %s absent, got %v", dir, err)
	}
}

func TestPathsRejectsArgs(t *testing.T) {
	withDataRoot(t)
	var out bytes.Buffer
	if err := execute([]string{"deemon", "paths", "extra"}, &out, &out); err == nil {
		t.Fatal("expected error for extra args")
	}
}
