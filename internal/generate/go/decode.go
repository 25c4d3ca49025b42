package gogen

import (
	"fmt"

	"github.com/jptrs93/pb2gen/internal/ir"
)

// buildDecodeLines emits one switch case per field of msg for the Decode
// loop. Each case checks the wire type, reads the value and charges the
// bytes it consumed to *limit.
func buildDecodeLines(msg *ir.Message, names messageNames) ([]string, error) {
	var lines []string
	for _, field := range msg.Fields {
		shape, err := fieldShape(field)
		if err != nil {
			return nil, err
		}
		storage := names.storage(field)
		wireType := wireTypeName(shape.Type)
		lines = append(lines,
			fmt.Sprintf("case %d:", field.Number),
			fmt.Sprintf("if typ != %s {", wireType),
			fmt.Sprintf("return false, wire.WireTypeError(num, typ, %s)", wireType),
			"}",
		)
		switch shape.Framing {
		case FramingGroup:
			lines = append(lines, decodeGroup(field, storage)...)
		case FramingBytes:
			if field.Kind == ir.KindMessage {
				lines = append(lines, decodeMessage(field, storage)...)
				continue
			}
			fallthrough
		default:
			lines = append(lines,
				fmt.Sprintf("v, n, err := %s", readCall(field, shape)),
				"if err != nil {",
				"return false, err",
				"}",
				"*limit -= n",
			)
			lines = append(lines, storeScalar(field, storage, goValue(field, "v"))...)
		}
	}
	return lines, nil
}

func decodeMessage(field *ir.Field, storage string) []string {
	lines := []string{
		"l, n, err := r.ReadLength()",
		"if err != nil {",
		"return false, err",
		"}",
		"*limit -= n + l",
		fmt.Sprintf("v := new(%s)", field.Message.Name),
	}
	if field.Message.GroupField() != nil {
		// The type is also a group body, so it stops at its own end tag.
		lines = append(lines,
			"ended, err := v.Decode(r, &l)",
			"if err != nil {",
			"return false, err",
			"}",
			"if ended {",
			"return false, wire.EndGroupError(num)",
			"}",
		)
	} else {
		lines = append(lines,
			"if _, err := v.Decode(r, &l); err != nil {",
			"return false, err",
			"}",
		)
	}
	lines = append(lines,
		"if l != 0 {",
		"return false, wire.NestedLengthError(num, l)",
		"}",
	)
	return append(lines, storeMessage(field, storage)...)
}

func decodeGroup(field *ir.Field, storage string) []string {
	lines := []string{
		fmt.Sprintf("v := new(%s)", field.Message.Name),
		"closed, err := v.Decode(r, limit)",
		"if err != nil {",
		"return false, err",
		"}",
		"if !closed {",
		"return false, wire.UnterminatedGroupError(num)",
		"}",
	}
	return append(lines, storeMessage(field, storage)...)
}

func storeMessage(field *ir.Field, name string) []string {
	if field.IsRepeated() {
		return []string{fmt.Sprintf("%s = append(%s, v)", name, name)}
	}
	return []string{name + " = v"}
}

func storeScalar(field *ir.Field, name, value string) []string {
	switch {
	case field.IsRepeated():
		return []string{fmt.Sprintf("%s = append(%s, %s)", name, name, value)}
	case !isPointerStored(field):
		return []string{fmt.Sprintf("%s = %s", name, value)}
	case value == "v":
		return []string{name + " = &v"}
	default:
		return []string{
			fmt.Sprintf("x := %s", value),
			name + " = &x",
		}
	}
}
