package resolver

import (
	"reflect"
	"strings"
	"sync"
)

var cache sync.Map // map[reflect.Type]string

// Resolve derives the canonical command name for v.
//
// If override is non-empty, it is returned verbatim — an explicit
// annotation always wins. Otherwise Resolve falls back to convention:
// it takes the concrete type name of v (or, if v is already a string,
// uses it directly as the type token), strips a trailing "Command"
// suffix, inserts an underscore before every non-initial uppercase
// rune, and lowercases the result.
//
// Resolution is deterministic — the same (v, override) pair always
// yields the same name — and results keyed by concrete type are cached
// for the life of the process.
func Resolve(v any, override string) string {
	if override != "" {
		return override
	}
	token := typeToken(v)
	if cached, ok := cache.Load(token); ok {
		return cached.(string)
	}
	name := convert(tokenName(v, token))
	cache.Store(token, name)
	return name
}

// typeToken returns a comparable key identifying v's concrete type,
// suitable for use as a sync.Map key.
func typeToken(v any) any {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.TypeOf(v)
}

func tokenName(v any, token any) string {
	if s, ok := token.(string); ok {
		return s
	}
	t := token.(reflect.Type)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// convert applies the "Command" suffix strip + CamelCase-to-snake_case
// + lowercase pipeline described in spec §4.3.
func convert(name string) string {
	name = strings.TrimSuffix(name, "Command")
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
