package testutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteFilesCreatesParents(t *testing.T) {
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{
		"config.json":          "{}",
		"logs/01-01-2026.log":  "line",
		"backups/nested/a.tar": "",
	})

	data, err := os.ReadFile(filepath.Join(root, "logs", "01-01-2026.log"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "line" {
		t.Fatalf("unexpected contents %q", string(data))
	}
}

func TestListTree(t *testing.T) {
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{"b/c.txt": "", "a.txt": ""})
	if err := os.Mkdir(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := ListTree(t, root)
	want := []string{"./", "a.txt", "b/", "b/c.txt", "empty/"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
