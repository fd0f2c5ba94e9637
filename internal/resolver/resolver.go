// Package resolver assembles the detekt parameter set from user properties,
// environment variables, the config file and the built-in defaults.
package resolver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"detektw/internal/detekt"
	"detektw/internal/interp"
)

// Sources are the inputs a parameter set is resolved from.
type Sources struct {
	// Defines are -D user properties. They win over everything else.
	Defines map[string]string
	// Environ is the process environment ("KEY=VALUE").
	Environ []string
	// File holds the detekt section of the config file.
	File map[string]any

	BaseDir         string
	Home            string
	LocalRepository string
}

// Result is a resolved parameter set.
type Result struct {
	Invocation detekt.Invocation
	// Sources records where each property's value came from.
	Sources map[string]string
	// Unknown lists names in the config file or -D properties that are not
	// part of the parameter set.
	Unknown []string
}

// Value origins reported in Result.Sources.
const (
	SourceDefine  = "define"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// value is a raw, not yet expanded parameter value.
type value struct {
	scalar string
	list   []string
	isList bool
	origin string
}

// Resolve resolves every option. Invalid values are collected and returned
// together; the Invocation is only meaningful when the error is nil.
func Resolve(src Sources) (Result, error) {
	env := parseEnviron(src.Environ)
	lookup := expressions(src)

	res := Result{
		Invocation: detekt.Invocation{BaseDir: src.BaseDir, LocalRepository: src.LocalRepository},
		Sources:    make(map[string]string, len(Options)),
	}
	res.Unknown = unknownNames(src)

	var merr *multierror.Error
	for _, opt := range Options {
		raw := pick(opt, src, env)
		res.Sources[opt.Property] = raw.origin
		if err := assign(&res.Invocation, opt, raw, lookup); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return res, merr.ErrorOrNil()
}

// pick selects the highest-precedence raw value for opt.
func pick(opt Option, src Sources, env map[string]string) value {
	if v, ok := src.Defines[opt.Property]; ok {
		return value{scalar: v, origin: SourceDefine}
	}
	if v, ok := env[PropertyToEnvVar(opt.Property)]; ok {
		return value{scalar: v, origin: SourceEnv}
	}
	for _, name := range []string{opt.Key(), opt.Field, opt.Property} {
		if v, ok := src.File[name]; ok && v != nil {
			return fileValue(v)
		}
	}
	return value{scalar: opt.Default, origin: SourceDefault}
}

func fileValue(v any) value {
	switch t := v.(type) {
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, fmt.Sprint(item))
		}
		return value{list: items, isList: true, origin: SourceFile}
	case []string:
		return value{list: t, isList: true, origin: SourceFile}
	default:
		return value{scalar: fmt.Sprint(t), origin: SourceFile}
	}
}

func assign(inv *detekt.Invocation, opt Option, raw value, lookup interp.Lookup) error {
	switch opt.Kind {
	case KindBool:
		if raw.isList {
			return fmt.Errorf("%s: expected a %s, got a list", opt.Property, opt.Kind)
		}
		b, err := ParseBool(raw.scalar)
		if err != nil {
			return fmt.Errorf("%s: %w", opt.Property, err)
		}
		setBool(inv, opt.Property, b)
	case KindString:
		if raw.isList {
			return fmt.Errorf("%s: expected a %s, got a list", opt.Property, opt.Kind)
		}
		setString(inv, opt.Property, interp.Expand(raw.scalar, lookup))
	case KindList:
		items := raw.list
		if !raw.isList {
			items = SplitList(raw.scalar)
		}
		expanded := make([]string, 0, len(items))
		for _, item := range items {
			expanded = append(expanded, interp.Expand(item, lookup))
		}
		setList(inv, opt.Property, expanded)
	}
	return nil
}

func setBool(inv *detekt.Invocation, property string, b bool) {
	switch property {
	case "detekt.create-baseline":
		inv.CreateBaseline = b
	case "detekt.debug":
		inv.Debug = b
	case "detekt.disable-default-rulesets":
		inv.DisableDefaultRuleSets = b
	case "detekt.generate-config":
		inv.GenerateConfig = b
	case "detekt.help":
		inv.Help = b
	case "detekt.parallel":
		inv.Parallel = b
	case "detekt.skip":
		inv.Skip = b
	}
}

func setString(inv *detekt.Invocation, property, s string) {
	switch property {
	case "detekt.baseline":
		inv.Baseline = s
	case "detekt.config":
		inv.Config = s
	case "detekt.config-resource":
		inv.ConfigResource = s
	case "detekt.input":
		inv.Input = s
	case "detekt.output":
		inv.Output = s
	case "detekt.output-name":
		inv.OutputName = s
	}
}

func setList(inv *detekt.Invocation, property string, items []string) {
	switch property {
	case "detekt.filters":
		inv.Filters = items
	case "detekt.plugins":
		inv.Plugins = items
	}
}

// expressions is what ${...} in parameter values may refer to.
func expressions(src Sources) interp.Lookup {
	builtins := map[string]string{
		"basedir":                  src.BaseDir,
		"project.basedir":          src.BaseDir,
		"user.home":                src.Home,
		"settings.localRepository": src.LocalRepository,
	}
	return interp.Chain(interp.Map(builtins), interp.Env(src.Environ), interp.Map(src.Defines))
}

func unknownNames(src Sources) []string {
	var unknown []string
	for name := range src.File {
		if _, ok := Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	for name := range src.Defines {
		if !strings.HasPrefix(name, PropertyPrefix) {
			continue
		}
		if _, ok := Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// ParseBool accepts true/false, 1/0, yes/no and on/off in any case. An empty
// string is false.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "no", "off":
		return false, nil
	case "true", "1", "yes", "on":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean %s", strconv.Quote(s))
}

// SplitList splits a comma-separated property value, dropping blank items.
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
