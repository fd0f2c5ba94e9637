package detekt

import (
	"os"
	"path/filepath"
	"strings"
)

// argument is one row of the argument table: when use reports true, flag is
// appended, followed by value when value is non-nil.
type argument struct {
	flag  string
	use   func(inv Invocation) bool
	value func(inv Invocation) string
}

func boolArg(flag string, get func(inv Invocation) bool) argument {
	return argument{flag: flag, use: get}
}

func stringArg(flag string, get func(inv Invocation) string) argument {
	return argument{
		flag:  flag,
		use:   func(inv Invocation) bool { return get(inv) != "" },
		value: get,
	}
}

// arguments lists every detekt flag in the order it is emitted.
var arguments = []argument{
	boolArg(FlagHelp, func(inv Invocation) bool { return inv.Help }),
	boolArg(FlagCreateBaseline, func(inv Invocation) bool { return inv.CreateBaseline }),
	boolArg(FlagDebug, func(inv Invocation) bool { return inv.Debug }),
	boolArg(FlagDisableDefaultRuleSets, func(inv Invocation) bool { return inv.DisableDefaultRuleSets }),
	boolArg(FlagGenerateConfig, func(inv Invocation) bool { return inv.GenerateConfig }),
	boolArg(FlagParallel, func(inv Invocation) bool { return inv.Parallel }),
	stringArg(FlagBaseline, func(inv Invocation) string { return inv.Baseline }),
	stringArg(FlagConfig, func(inv Invocation) string { return inv.Config }),
	stringArg(FlagConfigResource, func(inv Invocation) string { return inv.ConfigResource }),
	{
		flag:  FlagFilters,
		use:   func(inv Invocation) bool { return len(inv.Filters) > 0 },
		value: func(inv Invocation) string { return strings.Join(inv.Filters, Separator) },
	},
	stringArg(FlagInput, func(inv Invocation) string { return inv.Input }),
	stringArg(FlagOutput, func(inv Invocation) string { return inv.Output }),
	stringArg(FlagOutputName, func(inv Invocation) string { return inv.OutputName }),
	{
		flag:  FlagPlugins,
		use:   func(inv Invocation) bool { return len(inv.Plugins) > 0 },
		value: PluginPaths,
	},
}

// BuildArgs produces the detekt CLI argument list for inv. It never fails:
// paths and coordinates are passed through or resolved without validation.
func BuildArgs(inv Invocation) []string {
	args := make([]string, 0, 2*len(arguments))
	for _, a := range arguments {
		if !a.use(inv) {
			continue
		}
		args = append(args, a.flag)
		if a.value != nil {
			args = append(args, a.value(inv))
		}
	}
	return args
}

// PluginPaths resolves every plugin entry and joins the results with
// Separator. An entry naming an existing file, relative entries taken from
// inv.BaseDir, is used verbatim. Anything else
// is taken as a "groupId:artifactId" coordinate and expands to the repository
// path of each matching declared dependency. Entries that match nothing
// contribute nothing.
func PluginPaths(inv Invocation) string {
	var paths []string
	for _, plugin := range inv.Plugins {
		if fileExists(inv.BaseDir, plugin) {
			paths = append(paths, plugin)
			continue
		}
		for _, dep := range inv.Dependencies {
			if dep.Key() == plugin {
				paths = append(paths, dep.ArtifactPath(inv.LocalRepository))
			}
		}
	}
	return strings.Join(paths, Separator)
}

func fileExists(dir, path string) bool {
	if path == "" {
		return false
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	_, err := os.Stat(path)
	return err == nil
}
