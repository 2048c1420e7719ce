package cookies

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseNetscape lifts the named cookies for domain out of a
// Netscape-format cookies.txt export. When a name appears on more than
// one matching line the first line wins. Lines starting with # are
// comments, except the #HttpOnly_ prefix, which marks a cookie line.
func ParseNetscape(path, domain string, names []string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cookies.txt: %w", err)
	}
	defer f.Close()

	wanted := nameSet(names)
	found := make(map[string]string, len(wanted))
	now := time.Now().Unix()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line, ok := dataLine(scanner.Text())
		if !ok {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			log.Warn().Int("fields", len(fields)).Msg("skipping malformed cookie line")
			continue
		}
		name := fields[5]
		if !wanted[name] {
			continue
		}
		if _, seen := found[name]; seen {
			continue
		}
		if !domainMatches(fields[0], domain) {
			continue
		}
		expiry, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			log.Warn().Str("name", name).Msg("skipping cookie with unreadable expiry")
			continue
		}
		// Expiry 0 marks a session cookie, which never counts as expired.
		if expiry > 0 && expiry <= now {
			continue
		}

		found[name] = fields[6]
		if len(found) == len(wanted) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cookies.txt: %w", err)
	}

	return found, nil
}

// dataLine normalizes one raw cookies.txt line. The bool is false for
// blank lines and comments; the #HttpOnly_ prefix is unwrapped rather
// than skipped.
func dataLine(raw string) (string, bool) {
	line := strings.TrimRight(raw, "\r")
	switch {
	case line == "":
		return "", false
	case strings.HasPrefix(line, "#HttpOnly_"):
		return strings.TrimPrefix(line, "#HttpOnly_"), true
	case strings.HasPrefix(line, "#"):
		return "", false
	}
	return line, true
}

// domainMatches reports whether a cookie scoped to cookieDomain belongs
// to domain: exact, dot-prefixed, or a subdomain of it.
func domainMatches(cookieDomain, domain string) bool {
	if cookieDomain == domain || cookieDomain == "."+domain {
		return true
	}
	return strings.HasSuffix(cookieDomain, "."+domain)
}
