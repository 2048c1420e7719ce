//go:build unix

package cookies

import (
	"os"
	"path/filepath"
	"runtime"
)

// browserCookiePathsIn builds the scan list rooted at homeDir,
// Firefox before LibreWolf. Tests call it directly with a fake home.
func browserCookiePathsIn(homeDir string) []browserSpec {
	if runtime.GOOS == "darwin" {
		appSupport := filepath.Join(homeDir, "Library", "Application Support")
		return []browserSpec{
			{Name: "Firefox", IniPaths: []string{filepath.Join(appSupport, "Firefox", "profiles.ini")}},
			{Name: "LibreWolf", IniPaths: []string{filepath.Join(appSupport, "librewolf", "profiles.ini")}},
		}
	}

	// Linux installs land in the classic dotdir, the snap confinement
	// dir, or the flatpak one.
	mozillaIni := filepath.Join(homeDir, ".mozilla", "firefox", "profiles.ini")
	snapIni := filepath.Join(homeDir, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini")
	flatpakIni := filepath.Join(homeDir, ".var", "app", "org.mozilla.firefox", ".mozilla", "firefox", "profiles.ini")
	librewolfIni := filepath.Join(homeDir, ".librewolf", "profiles.ini")

	return []browserSpec{
		{Name: "Firefox", IniPaths: []string{mozillaIni, snapIni, flatpakIni}},
		{Name: "LibreWolf", IniPaths: []string{librewolfIni}},
	}
}

func browserCookiePaths() []browserSpec {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return browserCookiePathsIn(home)
}
