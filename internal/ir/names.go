package ir

import (
	"strings"
	"unicode"
)

// GoName maps a proto field name to an exported Go identifier:
// "item_id" -> "ItemId", "field2name" -> "Field2Name".
func GoName(protoName string) string {
	return exported(camelCase(protoName))
}

// TypeName joins the names of a declaration and its enclosing messages
// into one exported Go type name: ["outer", "Inner"] -> "Outer_Inner".
func TypeName(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := sanitize(p); s != "" {
			out = append(out, s)
		}
	}
	return exported(strings.Join(out, "_"))
}

// EnumValueName returns the constant name of an enum value.
func EnumValueName(enumType, value string) string {
	return enumType + "_" + strings.ToUpper(sanitize(value))
}

// PackageName turns a namespace such as "acme.geo.v1" or
// "github.com/acme/geo;geopb" into a Go package name.
func PackageName(namespace string) string {
	if i := strings.LastIndex(namespace, ";"); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.TrimSuffix(namespace, "/")
	if i := strings.LastIndex(namespace, "/"); i >= 0 {
		namespace = namespace[i+1:]
	}
	name := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return '_'
		}
		return r
	}, namespace)
	name = sanitize(name)
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "pb" + name
	}
	return name
}

func camelCase(name string) string {
	capNext := true
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z':
			if capNext {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
			capNext = false
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c)
			capNext = false
		case '0' <= c && c <= '9':
			b.WriteByte(c)
			capNext = true
		default:
			capNext = true
		}
	}
	return b.String()
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func exported(s string) string {
	if s == "" {
		return "X"
	}
	r := []rune(s)
	if !unicode.IsLetter(r[0]) {
		return "X" + s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
