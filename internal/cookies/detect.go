package cookies

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// Every SQLite database opens with this 16-byte header string.
var sqliteMagic = []byte("SQLite format 3\x00")

// Netscape cookies.txt exports start with one of these comment lines.
var netscapeHeaders = []string{
	"# Netscape HTTP Cookie File",
	"# HTTP Cookie File",
}

// DetectFormat determines the format of the cookie store at path:
// FormatFirefox, FormatChrome or FormatNetscape.
func DetectFormat(path string) (Format, error) {
	if err := checkStoreFile(path); err != nil {
		return FormatUnknown, err
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 {
		return FormatUnknown, fmt.Errorf("reading cookie store %s: %w", path, err)
	}
	buf = buf[:n]

	if bytes.HasPrefix(buf, sqliteMagic) {
		return detectSQLiteFormat(path)
	}
	if isNetscapeHeader(buf) {
		return FormatNetscape, nil
	}
	return FormatUnknown, fmt.Errorf("unsupported cookie store format at %s", path)
}

func isNetscapeHeader(buf []byte) bool {
	line, _, _ := strings.Cut(string(buf), "\n")
	line = strings.TrimRight(line, "\r")
	for _, h := range netscapeHeaders {
		if line == h {
			return true
		}
	}
	return false
}

// detectSQLiteFormat probes the database for a known cookie table.
// moz_cookies outranks cookies when a store somehow carries both.
func detectSQLiteFormat(path string) (Format, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return FormatUnknown, fmt.Errorf("opening cookie database %s: %w", path, err)
	}
	defer db.Close()

	var table string
	err = db.QueryRow(
		`SELECT name FROM sqlite_master
		 WHERE type='table' AND name IN ('moz_cookies','cookies')
		 ORDER BY name DESC LIMIT 1`,
	).Scan(&table)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return FormatUnknown, fmt.Errorf("no cookie table in database %s", path)
	case err != nil:
		return FormatUnknown, fmt.Errorf("inspecting cookie database %s: %w", path, err)
	case table == "moz_cookies":
		return FormatFirefox, nil
	}
	return FormatChrome, nil
}
