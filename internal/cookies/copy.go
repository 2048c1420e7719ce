package cookies

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SafeCopy clones a SQLite cookie database, with any -wal and -shm
// companions, into a fresh temp directory, dodging the lock the owning
// browser holds on the original. It returns the path of the copied
// database and a cleanup func the caller must run when done.
func SafeCopy(srcPath string) (string, func(), error) {
	if err := checkStoreFile(srcPath); err != nil {
		return "", nil, err
	}

	tempDir, err := os.MkdirTemp("", "p13nctl-cookies-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(tempDir) }

	dbPath := filepath.Join(tempDir, filepath.Base(srcPath))
	if err := copyFile(srcPath, dbPath); err != nil {
		cleanup()
		return "", nil, err
	}

	// WAL and SHM companions are best-effort.
	for _, suffix := range []string{"-wal", "-shm"} {
		if _, err := os.Stat(srcPath + suffix); err == nil {
			_ = copyFile(srcPath+suffix, dbPath+suffix)
		}
	}

	return dbPath, cleanup, nil
}

// checkStoreFile rejects paths that cannot hold a cookie store before
// any copying starts.
func checkStoreFile(path string) error {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return fmt.Errorf("cookie store %s: %w", path, err)
	case info.IsDir():
		return fmt.Errorf("cookie store %s is a directory", path)
	case info.Size() == 0:
		return fmt.Errorf("cookie store %s is empty", path)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
