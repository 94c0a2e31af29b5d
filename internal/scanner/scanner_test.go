package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanRecursive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mp4"))
	touch(t, filepath.Join(root, "a.mp4"))
	touch(t, filepath.Join(root, "nested", "deep", "c.MP4"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "clip.mkv"))

	files, err := Scan(root, []string{".mp4"})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a.mp4"),
		filepath.Join(root, "b.mp4"),
		filepath.Join(root, "nested", "deep", "c.MP4"),
	}
	var got []string
	for _, f := range files {
		got = append(got, f.Path)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScanDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"z.mp4", "m.mp4", "a.mp4"} {
		touch(t, filepath.Join(root, name))
	}

	first, err := Scan(root, []string{".mp4"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Scan(root, []string{".mp4"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Scan() order differs across runs on an unchanged tree")
	}
}

func TestScanEmptyTree(t *testing.T) {
	files, err := Scan(t.TempDir(), []string{".mp4"})
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil for an empty tree", err)
	}
	if len(files) != 0 {
		t.Errorf("Scan() = %v, want empty", files)
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"), []string{".mp4"})
	if err == nil {
		t.Fatal("Scan() should fail for a missing root")
	}
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Errorf("Scan() error = %T, want *ScanError", err)
	}
}

func TestMediaFileStemExt(t *testing.T) {
	m := MediaFile{Path: "/videos/talk.MP4"}
	if got := m.Stem(); got != "/videos/talk" {
		t.Errorf("Stem() = %q, want %q", got, "/videos/talk")
	}
	if got := m.Ext(); got != ".mp4" {
		t.Errorf("Ext() = %q, want %q", got, ".mp4")
	}
}
