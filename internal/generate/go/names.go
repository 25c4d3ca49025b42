package gogen

import (
	"github.com/jptrs93/pb2gen/internal/ir"
)

// reservedNames are methods every generated message carries.
var reservedNames = map[string]bool{
	"Reset":            true,
	"String":           true,
	"ValidateRequired": true,
	"Marshal":          true,
	"Unmarshal":        true,
	"AppendTo":         true,
	"Size":             true,
	"Decode":           true,
	"GetUnknownFields": true,
}

// fieldName holds the identifiers generated for one field: the struct field
// and the suffix shared by its accessors (GetX, HasX, XCount, ...).
type fieldName struct {
	Struct   string
	Accessor string
}

type messageNames map[*ir.Field]fieldName

// storage is the selector of the struct field holding field.
func (n messageNames) storage(field *ir.Field) string {
	return "m." + n[field].Struct
}

func accessorMethods(field *ir.Field, base string) []string {
	if field.IsRepeated() {
		return []string{
			"Get" + base,
			base + "Count",
			"Get" + base + "Array",
			"Set" + base,
			"Add" + base,
			"AddAll" + base,
			"Clear" + base,
		}
	}
	return []string{"Get" + base, "Has" + base, "Set" + base, "Clear" + base}
}

// allocateNames assigns identifiers to the fields of msg so that no two
// methods, and no struct field and method, share a name. Fields claim names
// in declaration order; a later field that collides gets trailing
// underscores.
func allocateNames(msg *ir.Message) messageNames {
	methods := make(map[string]bool, len(reservedNames)+4*len(msg.Fields))
	for name := range reservedNames {
		methods[name] = true
	}
	names := make(messageNames, len(msg.Fields))
	for _, field := range msg.Fields {
		base := ir.GoName(field.Name)
		for anyTaken(methods, accessorMethods(field, base)) {
			base += "_"
		}
		for _, name := range accessorMethods(field, base) {
			methods[name] = true
		}
		names[field] = fieldName{Accessor: base}
	}

	taken := methods
	for _, field := range msg.Fields {
		ident := ir.GoName(field.Name)
		for taken[ident] {
			ident += "_"
		}
		taken[ident] = true
		name := names[field]
		name.Struct = ident
		names[field] = name
	}
	return names
}

func anyTaken(taken map[string]bool, names []string) bool {
	for _, name := range names {
		if taken[name] {
			return true
		}
	}
	return false
}

func defaultName(msg *ir.Message, name fieldName) string {
	return "Default_" + msg.Name + "_" + name.Accessor
}
