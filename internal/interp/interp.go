// Package interp expands ${name} expressions the way Maven interpolates
// parameter and descriptor values.
package interp

import "strings"

// maxPasses bounds nested expansion such as a=${b}, b=${c}.
const maxPasses = 8

// Lookup resolves a single expression name.
type Lookup func(name string) (string, bool)

// Expand replaces every ${name} in s that lookup resolves. Expressions that do
// not resolve, and unterminated "${", are left verbatim.
func Expand(s string, lookup Lookup) string {
	if lookup == nil {
		return s
	}
	for i := 0; i < maxPasses; i++ {
		next := expandOnce(s, lookup)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

func expandOnce(s string, lookup Lookup) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var sb strings.Builder
	rest := s
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			sb.WriteString(rest)
			break
		}
		name := rest[start+2 : start+2+end]
		sb.WriteString(rest[:start])
		if v, ok := lookup(name); ok {
			sb.WriteString(v)
		} else {
			sb.WriteString(rest[start : start+2+end+1])
		}
		rest = rest[start+2+end+1:]
	}
	return sb.String()
}

// Chain tries each lookup in order.
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Map looks names up in m.
func Map(m map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// Env resolves "env.NAME" against an environ slice ("KEY=VALUE").
func Env(environ []string) Lookup {
	return func(name string) (string, bool) {
		key, ok := strings.CutPrefix(name, "env.")
		if !ok {
			return "", false
		}
		prefix := key + "="
		for _, kv := range environ {
			if strings.HasPrefix(kv, prefix) {
				return strings.TrimPrefix(kv, prefix), true
			}
		}
		return "", false
	}
}
