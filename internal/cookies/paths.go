package cookies

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// browserSpec names a Firefox-family browser and the candidate
// profiles.ini locations to inspect for it. Chrome-family browsers are
// not scanned, their cookie values are encrypted at rest.
type browserSpec struct {
	Name             string
	IniPaths []string
}

// defaultProfile finds the default profile directory named by a
// Firefox-style profiles.ini. Modern Firefox records it as Default= in
// an [Install...] section; older layouts mark one [Profile...] section
// with Default=1. Returns "" when the file is missing or names none.
func defaultProfile(iniPath string) string {
	f, err := os.Open(iniPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	type section struct {
		name string
		keys map[string]string
	}
	var sections []section

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			sections = append(sections, section{
				name: line[1 : len(line)-1],
				keys: map[string]string{},
			})
		default:
			if len(sections) == 0 {
				continue
			}
			k, v, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			sections[len(sections)-1].keys[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	if scanner.Err() != nil {
		return ""
	}

	iniDir := filepath.Dir(iniPath)
	for _, s := range sections {
		if strings.HasPrefix(s.name, "Install") && s.keys["Default"] != "" {
			return resolveProfileDir(iniDir, s.keys["Default"])
		}
	}
	for _, s := range sections {
		if strings.HasPrefix(s.name, "Profile") && s.keys["Default"] == "1" && s.keys["Path"] != "" {
			return resolveProfileDir(iniDir, s.keys["Path"])
		}
	}
	return ""
}

// resolveProfileDir turns an ini path value, written with forward
// slashes and usually relative to the ini file, into a usable path.
func resolveProfileDir(iniDir, value string) string {
	p := filepath.FromSlash(value)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(iniDir, p)
}

// scanWithSpecs walks the given browser specs in order and lifts the
// named cookies from the first profile whose store yields all of them.
// A profile without a usable store, or holding only part of the wanted
// session, is skipped.
// Tests drive this seam directly; FromBrowser feeds it the real paths.
func scanWithSpecs(domain string, names []string, specs []browserSpec) (map[string]string, *Source, error) {
	wantedLen := len(nameSet(names))
	for _, spec := range specs {
		for _, iniPath := range spec.IniPaths {
			profileDir := defaultProfile(iniPath)
			if profileDir == "" {
				continue
			}
			storePath := filepath.Join(profileDir, "cookies.sqlite")
			if _, err := os.Stat(storePath); err != nil {
				continue
			}
			values, source, err := Extract(storePath, domain, names...)
			if err != nil || len(values) < wantedLen {
				continue
			}
			source.Browser = spec.Name
			return values, source, nil
		}
	}
	return nil, nil, errors.New("no browser cookie store found (tried Firefox and LibreWolf profiles; for other browsers pass an exported cookies.txt)")
}

// FromBrowser scans known browser profiles in priority order, Firefox
// before LibreWolf, and lifts the named cookies from the first profile
// holding the complete set.
func FromBrowser(domain string, names ...string) (map[string]string, *Source, error) {
	return scanWithSpecs(domain, names, browserCookiePaths())
}
