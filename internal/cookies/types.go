package cookies

// Format identifies the on-disk format of a browser cookie store.
type Format int

const (
	// FormatUnknown means the store format could not be detected.
	FormatUnknown Format = iota
	// FormatFirefox is the moz_cookies SQLite schema of Firefox-family browsers.
	FormatFirefox
	// FormatChrome is the Chrome-family SQLite schema. Detected only to
	// tell the operator the values are encrypted and unusable.
	FormatChrome
	// FormatNetscape is the tab-separated cookies.txt export format.
	FormatNetscape
)

// Source describes the store a session was lifted from. Browser is the
// part meant for normal output; Path belongs in debug logs alone.
type Source struct {
	Path    string
	Format  Format
	Browser string
}
