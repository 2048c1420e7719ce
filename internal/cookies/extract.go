package cookies

import (
	"fmt"
)

// Extract lifts the named session cookies for domain out of the cookie
// store at path. The store format is detected first; SQLite stores are
// copied aside before opening. Names absent from the store are simply
// absent from the result, the caller decides whether that is fatal.
//
// Chrome-family stores are rejected with an explanation: their values
// are encrypted with an OS-bound key and cannot be read here.
func Extract(path, domain string, names ...string) (map[string]string, *Source, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, nil, err
	}

	src := &Source{Path: path, Format: format}

	var values map[string]string
	switch format {
	case FormatFirefox:
		src.Browser = "Firefox"
		values, err = extractSQLite(path, domain, names)
	case FormatNetscape:
		src.Browser = "Netscape"
		values, err = ParseNetscape(path, domain, names)
	case FormatChrome:
		return nil, nil, fmt.Errorf("%s is a Chrome-family cookie store; its values are encrypted and cannot be read, export a cookies.txt from the browser instead", path)
	default:
		return nil, nil, fmt.Errorf("unsupported cookie store format at %s", path)
	}
	if err != nil {
		return nil, nil, err
	}

	return values, src, nil
}

// extractSQLite copies the database safely and parses the copy.
func extractSQLite(path, domain string, names []string) (map[string]string, error) {
	dbPath, cleanup, err := SafeCopy(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return ParseFirefox(dbPath, domain, names)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
