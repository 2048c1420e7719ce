package cookies

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ParseFirefox lifts the named cookies for domain out of a Firefox
// cookies.sqlite database. dbPath should point at a copied (not in-use)
// database; see SafeCopy. When a name appears on more than one matching
// row the longest cookie path wins, the precedence browsers use when
// sending.
func ParseFirefox(dbPath, domain string, names []string) (map[string]string, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?immutable=1", dbPath))
	if err != nil {
		return nil, fmt.Errorf("cannot open Firefox cookie database: %w", err)
	}
	defer db.Close()

	const query = `SELECT name, value FROM moz_cookies
		WHERE (host = ? OR host = ? OR host LIKE ?) AND (expiry = 0 OR expiry > ?)
		ORDER BY LENGTH(path) DESC, name ASC`
	rows, err := db.Query(query, domain, "."+domain, "%."+domain, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query Firefox cookies: %w", err)
	}
	defer rows.Close()

	wanted := nameSet(names)
	found := make(map[string]string, len(wanted))
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan Firefox cookie row: %w", err)
		}
		if !wanted[name] {
			continue
		}
		if _, ok := found[name]; ok {
			continue
		}
		found[name] = value
		if len(found) == len(wanted) {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate Firefox cookie rows: %w", err)
	}

	return found, nil
}
