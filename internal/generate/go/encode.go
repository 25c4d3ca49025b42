package gogen

import (
	"fmt"

	"github.com/jptrs93/pb2gen/internal/ir"
)

// buildEncodeLines emits the body of AppendTo for msg. It reports whether
// the lines assign to an err variable declared by the caller.
func buildEncodeLines(msg *ir.Message, names messageNames) ([]string, bool, error) {
	var lines []string
	usesErr := false
	for _, field := range msg.Fields {
		shape, err := fieldShape(field)
		if err != nil {
			return nil, false, err
		}
		name := names.storage(field)
		value := name
		if field.IsRepeated() {
			value = "v"
		} else if isPointerStored(field) {
			value = "*" + name
		}

		body := []string{fmt.Sprintf("b = append(b, %s...)", tagLiteral(field.Number, shape.Type))}
		switch shape.Framing {
		case FramingVarint:
			body = append(body, fmt.Sprintf("b = protowire.AppendVarint(b, %s)", wireValue(field.Kind, value)))
		case FramingFixed:
			body = append(body, fmt.Sprintf("b = protowire.AppendFixed%d(b, %s)", shape.Width*8, wireValue(field.Kind, value)))
		case FramingBytes:
			switch field.Kind {
			case ir.KindString:
				body = append(body, fmt.Sprintf("b = protowire.AppendString(b, %s)", value))
			case ir.KindBytes:
				body = append(body, fmt.Sprintf("b = protowire.AppendBytes(b, %s)", value))
			default:
				usesErr = true
				body = append(body,
					fmt.Sprintf("b = protowire.AppendVarint(b, uint64(%s.Size()))", value),
					fmt.Sprintf("if b, err = %s.AppendTo(b); err != nil {", value),
					"return b, err",
					"}",
				)
			}
		case FramingGroup:
			usesErr = true
			body = append(body,
				fmt.Sprintf("if b, err = %s.AppendTo(b); err != nil {", value),
				"return b, err",
				"}",
				fmt.Sprintf("b = append(b, %s...)", endTagLiteral(field.Number)),
			)
		}

		if field.IsRepeated() {
			lines = append(lines, fmt.Sprintf("for _, v := range %s {", name))
		} else {
			lines = append(lines, fmt.Sprintf("if %s != nil {", name))
		}
		lines = append(lines, body...)
		lines = append(lines, "}")
	}
	return lines, usesErr, nil
}
