package resolver

// Kind is the value type of a parameter.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Option describes one parameter of the detekt parameter set.
type Option struct {
	Property string // user property, e.g. "detekt.create-baseline"
	Field    string // Maven <configuration> element, e.g. "createBaseline"
	Kind     Kind
	Default  string
}

// Key is the property name without the "detekt." prefix, as used in the
// detekt section of a config file.
func (o Option) Key() string {
	return o.Property[len(PropertyPrefix):]
}

// PropertyPrefix starts every detekt user property.
const PropertyPrefix = "detekt."

// Options is the parameter set, in declaration order.
var Options = []Option{
	{Property: "detekt.baseline", Field: "baseline", Kind: KindString},
	{Property: "detekt.config", Field: "config", Kind: KindString},
	{Property: "detekt.config-resource", Field: "configResource", Kind: KindString},
	{Property: "detekt.create-baseline", Field: "createBaseline", Kind: KindBool, Default: "false"},
	{Property: "detekt.debug", Field: "debug", Kind: KindBool, Default: "false"},
	{Property: "detekt.disable-default-rulesets", Field: "disableDefaultRuleSets", Kind: KindBool, Default: "false"},
	{Property: "detekt.filters", Field: "filters", Kind: KindList},
	{Property: "detekt.generate-config", Field: "generateConfig", Kind: KindBool, Default: "false"},
	{Property: "detekt.help", Field: "help", Kind: KindBool, Default: "false"},
	{Property: "detekt.input", Field: "input", Kind: KindString, Default: "${basedir}/src"},
	{Property: "detekt.output", Field: "output", Kind: KindString, Default: "${basedir}/detekt"},
	{Property: "detekt.output-name", Field: "outputName", Kind: KindString},
	{Property: "detekt.parallel", Field: "parallel", Kind: KindBool, Default: "false"},
	{Property: "detekt.plugins", Field: "plugins", Kind: KindList},
	{Property: "detekt.skip", Field: "skip", Kind: KindBool, Default: "false"},
}

// Lookup finds an option by property name, file key or Maven field name.
func Lookup(name string) (Option, bool) {
	for _, o := range Options {
		if name == o.Property || name == o.Key() || name == o.Field {
			return o, true
		}
	}
	return Option{}, false
}
