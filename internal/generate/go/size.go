package gogen

import (
	"fmt"

	"github.com/jptrs93/pb2gen/internal/ir"
)

// buildSizeLines emits the body of Size for msg. Every term mirrors the
// bytes buildEncodeLines appends for the same field.
func buildSizeLines(msg *ir.Message, names messageNames) ([]string, error) {
	var lines []string
	for _, field := range msg.Fields {
		shape, err := fieldShape(field)
		if err != nil {
			return nil, err
		}
		name := names.storage(field)
		tag := tagSize(field.Number)

		// Constant width values need no loop.
		if width, ok := constantWidth(field, shape); ok {
			if field.IsRepeated() {
				lines = append(lines, fmt.Sprintf("n += %d * len(%s)", tag+width, name))
			} else {
				lines = append(lines,
					fmt.Sprintf("if %s != nil {", name),
					fmt.Sprintf("n += %d", tag+width),
					"}",
				)
			}
			continue
		}

		value := name
		if field.IsRepeated() {
			value = "v"
		} else if isPointerStored(field) {
			value = "*" + name
		}
		var term string
		switch {
		case shape.Framing == FramingVarint:
			term = fmt.Sprintf("%d + protowire.SizeVarint(%s)", tag, wireValue(field.Kind, value))
		case field.Kind == ir.KindString || field.Kind == ir.KindBytes:
			term = fmt.Sprintf("%d + protowire.SizeBytes(len(%s))", tag, value)
		case shape.Framing == FramingGroup:
			term = fmt.Sprintf("%d + %s.Size()", 2*tag, value)
		default:
			term = fmt.Sprintf("%d + protowire.SizeBytes(%s.Size())", tag, value)
		}
		if field.IsRepeated() {
			lines = append(lines, fmt.Sprintf("for _, v := range %s {", name))
		} else {
			lines = append(lines, fmt.Sprintf("if %s != nil {", name))
		}
		lines = append(lines, "n += "+term, "}")
	}
	return lines, nil
}

func constantWidth(field *ir.Field, shape WireShape) (int, bool) {
	switch {
	case shape.Framing == FramingFixed:
		return shape.Width, true
	case field.Kind == ir.KindBool:
		return 1, true
	default:
		return 0, false
	}
}
