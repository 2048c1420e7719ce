package cookies

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSafeCopy_CopiesDatabase(t *testing.T) {
	src := filepath.Join(t.TempDir(), "cookies.sqlite")
	content := append(append([]byte{}, sqliteMagic...), []byte("payload")...)
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	dbPath, cleanup, err := SafeCopy(src)
	if err != nil {
		t.Fatalf("SafeCopy: %v", err)
	}
	defer cleanup()

	if dbPath == src {
		t.Fatal("copy path must differ from the source")
	}
	got, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("copy does not match the source")
	}
}

func TestSafeCopy_CopiesWalAndShm(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cookies.sqlite")
	for _, name := range []string{"cookies.sqlite", "cookies.sqlite-wal", "cookies.sqlite-shm"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	dbPath, cleanup, err := SafeCopy(src)
	if err != nil {
		t.Fatalf("SafeCopy: %v", err)
	}
	defer cleanup()

	for _, suffix := range []string{"-wal", "-shm"} {
		if _, err := os.Stat(dbPath + suffix); err != nil {
			t.Errorf("companion %s not copied: %v", suffix, err)
		}
	}
}

func TestSafeCopy_CleanupRemovesCopy(t *testing.T) {
	src := filepath.Join(t.TempDir(), "cookies.sqlite")
	if err := os.WriteFile(src, []byte("data"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	dbPath, cleanup, err := SafeCopy(src)
	if err != nil {
		t.Fatalf("SafeCopy: %v", err)
	}
	cleanup()

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("cleanup left the copy behind: %v", err)
	}
}

func TestSafeCopy_CopyIsIndependent(t *testing.T) {
	src := filepath.Join(t.TempDir(), "cookies.sqlite")
	if err := os.WriteFile(src, []byte("original"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	dbPath, cleanup, err := SafeCopy(src)
	if err != nil {
		t.Fatalf("SafeCopy: %v", err)
	}
	defer cleanup()

	// The browser keeps writing; the copy must not move.
	if err := os.WriteFile(src, []byte("rewritten by the browser"), 0644); err != nil {
		t.Fatalf("rewrite source: %v", err)
	}
	got, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("copy changed with the source: %q", got)
	}
}

func TestSafeCopy_MissingFile(t *testing.T) {
	if _, _, err := SafeCopy(filepath.Join(t.TempDir(), "absent.sqlite")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSafeCopy_Directory(t *testing.T) {
	if _, _, err := SafeCopy(t.TempDir()); err == nil {
		t.Fatal("expected error for a directory path")
	}
}

func TestSafeCopy_EmptyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "empty.sqlite")
	if err := os.WriteFile(src, nil, 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if _, _, err := SafeCopy(src); err == nil {
		t.Fatal("expected error for an empty file")
	}
}
