package gogen

import "github.com/jptrs93/pb2gen/internal/ir"

type goEnum struct {
	Name      string
	FullName  string
	Values    []goEnumValue
	Canonical []goEnumValue
}

type goEnumValue struct {
	Const  string
	Name   string
	Number int32
}

// buildEnum lays out the constants and lookup tables for enum. Aliases get
// their own constant and reverse entry, but only the first name declared
// for a number appears in the forward table.
func buildEnum(enum *ir.Enum) goEnum {
	out := goEnum{Name: enum.Name, FullName: enum.FullName}
	for _, v := range enum.Values {
		out.Values = append(out.Values, enumValue(enum, v))
	}
	for _, v := range enum.Canonical() {
		out.Canonical = append(out.Canonical, enumValue(enum, v))
	}
	return out
}

func enumValue(enum *ir.Enum, v ir.EnumValue) goEnumValue {
	return goEnumValue{
		Const:  ir.EnumValueName(enum.Name, v.Name),
		Name:   v.Name,
		Number: v.Number,
	}
}
