//go:build windows

package cookies

import (
	"os"
	"path/filepath"
)

// browserCookiePathsIn builds the scan list under the given
// APPDATA directory, Firefox before LibreWolf. Tests call it directly.
func browserCookiePathsIn(appData string) []browserSpec {
	firefoxIni := filepath.Join(appData, "Mozilla", "Firefox", "profiles.ini")
	librewolfIni := filepath.Join(appData, "LibreWolf", "profiles.ini")

	return []browserSpec{
		{Name: "Firefox", IniPaths: []string{firefoxIni}},
		{Name: "LibreWolf", IniPaths: []string{librewolfIni}},
	}
}

func browserCookiePaths() []browserSpec {
	return browserCookiePathsIn(os.Getenv("APPDATA"))
}
