// Package detekt turns a resolved detekt parameter set into the detekt CLI
// argument list and dispatches it to the analyzer's entry points.
package detekt

import "detektw/internal/maven"

// Command-line flags understood by the detekt CLI.
const (
	FlagHelp                   = "--help"
	FlagCreateBaseline         = "--create-baseline"
	FlagDebug                  = "--debug"
	FlagDisableDefaultRuleSets = "--disable-default-rulesets"
	FlagGenerateConfig         = "--generate-config"
	FlagParallel               = "--parallel"
	FlagBaseline               = "--baseline"
	FlagConfig                 = "--config"
	FlagConfigResource         = "--config-resource"
	FlagFilters                = "--filters"
	FlagInput                  = "--input"
	FlagOutput                 = "--output"
	FlagOutputName             = "--output-name"
	FlagPlugins                = "--plugins"
)

// Separator joins list values (filters, plugin paths) into one token.
const Separator = ";"

// Invocation is the parameter set for one detekt execution. It is built once
// and only read afterwards.
type Invocation struct {
	Baseline               string
	Config                 string
	ConfigResource         string
	CreateBaseline         bool
	Debug                  bool
	DisableDefaultRuleSets bool
	Filters                []string
	GenerateConfig         bool
	Help                   bool
	Input                  string
	Output                 string
	OutputName             string
	Parallel               bool
	Plugins                []string
	Skip                   bool

	// BaseDir is the directory detekt runs in. Relative plugin paths are
	// checked against it.
	BaseDir string
	// LocalRepository is the root of the local Maven repository.
	LocalRepository string
	// Dependencies are the declared dependencies of the detekt Maven plugin
	// in the project descriptor. Plugin coordinates are matched against them.
	Dependencies []maven.Dependency
}
