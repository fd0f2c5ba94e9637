package resolver

import "strings"

// PropertyToEnvVar converts a property name to the environment variable that
// may also carry it.
// e.g., "detekt.create-baseline" -> "DETEKT_CREATE_BASELINE"
func PropertyToEnvVar(property string) string {
	if property == "" {
		return ""
	}
	r := strings.NewReplacer(".", "_", "-", "_")
	return strings.ToUpper(r.Replace(property))
}

// parseEnviron converts an environ slice (["KEY=VALUE", ...]) into a map.
// Values may themselves contain "=".
func parseEnviron(environ []string) map[string]string {
	result := make(map[string]string)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}
