// Package cookies lifts named session cookies out of browser cookie
// stores. It reads Firefox profile databases (moz_cookies SQLite) and
// Netscape-format cookies.txt exports. Chrome-family stores are
// recognized but rejected: their cookie values are encrypted with an
// OS-bound key and cannot be read from the file alone.
//
// Lifted values are session secrets. They are returned in memory only
// and never logged; log lines carry cookie names and field counts at
// most.
package cookies
