// Package launcher starts the external detekt CLI.
package launcher

import (
	"strings"

	"detektw/internal/config"
	"detektw/internal/maven"
)

const (
	// DefaultExecutable is used when nothing else is configured.
	DefaultExecutable = "detekt"
	// DefaultJava starts the detekt-cli jar.
	DefaultJava = "java"

	cliGroupID    = "io.gitlab.arturbosch.detekt"
	cliArtifactID = "detekt-cli"
	cliClassifier = "all"
)

// CLIJar returns the repository path of the self-contained detekt-cli jar,
// published under the "all" classifier.
func CLIJar(localRepo, version string) string {
	dep := maven.Dependency{
		GroupID:    cliGroupID,
		ArtifactID: cliArtifactID,
		Version:    version,
	}
	return strings.TrimSuffix(dep.ArtifactPath(localRepo), ".jar") + "-" + cliClassifier + ".jar"
}

// Command builds the command line prefix for the detekt CLI. An explicit
// command wins; a CLI version runs the detekt-cli jar from the local
// repository under java; otherwise "detekt" is looked up on PATH.
func Command(cfg config.LauncherConfig, localRepo string) []string {
	if len(cfg.Command) > 0 {
		return append([]string{}, cfg.Command...)
	}
	if cfg.CLIVersion != "" {
		java := cfg.Java
		if java == "" {
			java = DefaultJava
		}
		cmd := []string{java}
		cmd = append(cmd, cfg.JVMArgs...)
		return append(cmd, "-jar", CLIJar(localRepo, cfg.CLIVersion))
	}
	return []string{DefaultExecutable}
}
