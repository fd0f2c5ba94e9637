package config

// File is the decoded detektw configuration file.
type File struct {
	// Detekt holds detekt parameters keyed by property name without the
	// "detekt." prefix (e.g. "create-baseline") or by Maven field name.
	Detekt map[string]any `yaml:"detekt" toml:"detekt"`

	Launcher LauncherConfig `yaml:"launcher" toml:"launcher"`
	Project  ProjectConfig  `yaml:"project" toml:"project"`

	// LocalRepository overrides the local Maven repository root.
	LocalRepository string `yaml:"local-repository" toml:"local-repository"`

	// Path is where the file was read from; empty when none was found.
	Path string `yaml:"-" toml:"-"`
}

// LauncherConfig selects how the detekt CLI is started.
type LauncherConfig struct {
	// Command is the full command line prefix, e.g. ["detekt"]. When set,
	// the other launcher fields are ignored.
	Command []string `yaml:"command,omitempty" toml:"command,omitempty"`
	// Java is the java executable used with CLIVersion.
	Java string `yaml:"java,omitempty" toml:"java,omitempty"`
	// JVMArgs are passed to java before -jar.
	JVMArgs []string `yaml:"jvm-args,omitempty" toml:"jvm-args,omitempty"`
	// CLIVersion runs the detekt-cli "all" jar of that version from the local
	// repository.
	CLIVersion string `yaml:"cli-version,omitempty" toml:"cli-version,omitempty"`
}

// ProjectConfig locates the project descriptor.
type ProjectConfig struct {
	// POM is the project descriptor path, relative to the base directory.
	POM string `yaml:"pom,omitempty" toml:"pom,omitempty"`
	// Plugin is the "groupId:artifactId" of the plugin whose dependencies
	// provide rule-set jars.
	Plugin string `yaml:"plugin,omitempty" toml:"plugin,omitempty"`
}
