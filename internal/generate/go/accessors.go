package gogen

import (
	"fmt"
	"strings"

	"github.com/jptrs93/pb2gen/internal/ir"
)

func buildAccessors(msg *ir.Message, field *ir.Field, names messageNames, def goDefault, hasDefault bool) ([]string, error) {
	if field.IsRepeated() {
		return repeatedAccessors(msg, field, names)
	}
	return singularAccessors(msg, field, names, def, hasDefault)
}

func singularAccessors(msg *ir.Message, field *ir.Field, names messageNames, def goDefault, hasDefault bool) ([]string, error) {
	recv := "func (m *" + msg.Name + ") "
	name := names[field].Accessor
	storage := names.storage(field)
	typ, err := storageGoType(field)
	if err != nil {
		return nil, err
	}

	var get []string
	if isPointerStored(field) {
		typ = strings.TrimPrefix(typ, "*")
		fallback := zeroValue(field)
		if hasDefault {
			fallback = def.Name
		}
		get = []string{
			fmt.Sprintf("%sGet%s() %s {", recv, name, typ),
			fmt.Sprintf("if m != nil && %s != nil {", storage),
			"return *" + storage,
			"}",
			"return " + fallback,
			"}",
		}
	} else {
		fallback := "nil"
		if hasDefault {
			// Callers may write to the returned slice.
			fallback = "append([]byte(nil), " + def.Name + "...)"
		}
		get = []string{
			fmt.Sprintf("%sGet%s() %s {", recv, name, typ),
			fmt.Sprintf("if m != nil && %s != nil {", storage),
			"return " + storage,
			"}",
			"return " + fallback,
			"}",
		}
	}

	set := fmt.Sprintf("%sSet%s(v %s) {\n%s = v\n}", recv, name, typ, storage)
	if isPointerStored(field) {
		set = fmt.Sprintf("%sSet%s(v %s) {\n%s = &v\n}", recv, name, typ, storage)
	}
	return []string{
		strings.Join(get, "\n"),
		fmt.Sprintf("%sHas%s() bool {\nreturn m != nil && %s != nil\n}", recv, name, storage),
		set,
		fmt.Sprintf("%sClear%s() {\n%s = nil\n}", recv, name, storage),
	}, nil
}

func repeatedAccessors(msg *ir.Message, field *ir.Field, names messageNames) ([]string, error) {
	recv := "func (m *" + msg.Name + ") "
	name := names[field].Accessor
	storage := names.storage(field)
	elem, err := elemGoType(field)
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("%sGet%s(i int) %s {\nif m == nil {\nreturn %s\n}\nreturn %s[i]\n}", recv, name, elem, elemZeroValue(field), storage),
		fmt.Sprintf("%s%sCount() int {\nif m == nil {\nreturn 0\n}\nreturn len(%s)\n}", recv, name, storage),
		fmt.Sprintf("// Get%sArray never returns nil.\n%sGet%sArray() []%s {\nif m == nil || %s == nil {\nreturn []%s{}\n}\nreturn %s\n}",
			name, recv, name, elem, storage, elem, storage),
		fmt.Sprintf("%sSet%s(i int, v %s) {\n%s[i] = v\n}", recv, name, elem, storage),
		fmt.Sprintf("%sAdd%s(v %s) {\n%s = append(%s, v)\n}", recv, name, elem, storage, storage),
		fmt.Sprintf("%sAddAll%s(vs ...%s) {\n%s = append(%s, vs...)\n}", recv, name, elem, storage, storage),
		fmt.Sprintf("%sClear%s() {\n%s = nil\n}", recv, name, storage),
	}, nil
}

// elemZeroValue is the zero value of one element of a repeated field.
func elemZeroValue(field *ir.Field) string {
	switch field.Kind {
	case ir.KindBytes, ir.KindMessage, ir.KindGroup:
		return "nil"
	default:
		return zeroValue(field)
	}
}

func zeroValue(field *ir.Field) string {
	switch field.Kind {
	case ir.KindBool:
		return "false"
	case ir.KindString:
		return `""`
	default:
		return "0"
	}
}
