package watchlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "watchlist.yaml")
	content := "users:\n  - someone\n  - \"  \"\n  - https://www.reddit.com/user/someone-else/\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := []string{"someone", "https://www.reddit.com/user/someone-else/"}
	if !reflect.DeepEqual(l.Users, want) {
		t.Errorf("users = %v, want %v", l.Users, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
