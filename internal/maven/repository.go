package maven

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"detektw/internal/interp"
)

// LocalRepoProperty is the user property that overrides the local repository.
const LocalRepoProperty = "maven.repo.local"

type settingsFile struct {
	XMLName         xml.Name `xml:"settings"`
	LocalRepository string   `xml:"localRepository"`
}

// SettingsPath returns ~/.m2/settings.xml for the given home.
func SettingsPath(home string) string {
	return filepath.Join(home, ".m2", "settings.xml")
}

// LocalRepository determines the local repository root. An explicit override
// (the maven.repo.local property) wins, then <localRepository> from the user
// settings file, then ~/.m2/repository. Unreadable or malformed settings fall
// through to the default.
func LocalRepository(override string, home string, environ []string) string {
	lookup := interp.Chain(
		interp.Map(map[string]string{"user.home": home}),
		interp.Env(environ),
	)

	if override = strings.TrimSpace(override); override != "" {
		return interp.Expand(override, lookup)
	}

	data, err := os.ReadFile(SettingsPath(home))
	if err == nil {
		var sf settingsFile
		if xml.Unmarshal(data, &sf) == nil {
			if repo := strings.TrimSpace(sf.LocalRepository); repo != "" {
				return interp.Expand(repo, lookup)
			}
		}
	}

	return DefaultLocalRepository(home)
}
