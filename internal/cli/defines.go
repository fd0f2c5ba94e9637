package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefine is returned for a -D property without a name.
var ErrInvalidDefine = errors.New("invalid property definition")

// ParseDefines turns -D arguments into user properties. "name=value" sets
// name to value; a bare "name" sets it to "true", as Maven does. Later
// definitions win.
func ParseDefines(defines []string) (map[string]string, error) {
	props := make(map[string]string, len(defines))
	for _, d := range defines {
		name, value, ok := strings.Cut(d, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDefine, d)
		}
		if !ok {
			value = "true"
		}
		props[name] = value
	}
	return props, nil
}
