package gogen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jptrs93/pb2gen/internal/ir"
)

type goMessage struct {
	Name        string
	FullName    string
	Kind        string
	GroupNumber int
	Preserve    bool
	Fields      []goField
	Defaults    []goDefault
	Required    []string
	StringLines []string
	EncodeLines []string
	EncodeErr   bool
	SizeLines   []string
	DecodeLines []string
	Accessors   []string
}

type goField struct {
	Name string
	Type string
}

type goDefault struct {
	Decl  string
	Name  string
	Type  string
	Value string
}

// isPointerStored reports whether a singular field is held behind a
// pointer. Bytes, message and group fields use nil directly.
func isPointerStored(field *ir.Field) bool {
	if field.IsRepeated() {
		return false
	}
	switch field.Kind {
	case ir.KindBytes, ir.KindMessage, ir.KindGroup:
		return false
	default:
		return true
	}
}

func endTagLiteral(num int) string {
	return tagLiteral(num, protowire.EndGroupType)
}

func buildMessage(msg *ir.Message, preserve bool) (goMessage, error) {
	out := goMessage{
		Name:     msg.Name,
		FullName: msg.FullName,
		Kind:     "message",
		Preserve: preserve,
	}
	if group := msg.GroupField(); group != nil {
		out.Kind = "group"
		out.GroupNumber = group.Number
	} else if msg.IsMapEntry {
		out.Kind = "map entry"
	}
	names := allocateNames(msg)
	for _, field := range msg.RequiredFields() {
		out.Required = append(out.Required, names[field].Struct)
	}
	for _, field := range msg.Fields {
		if _, err := fieldShape(field); err != nil {
			return goMessage{}, err
		}
		typ, err := storageGoType(field)
		if err != nil {
			return goMessage{}, err
		}
		out.Fields = append(out.Fields, goField{Name: names[field].Struct, Type: typ})
		def, ok, err := buildDefault(msg, field, names[field])
		if err != nil {
			return goMessage{}, err
		}
		if ok {
			out.Defaults = append(out.Defaults, def)
		}
		out.StringLines = append(out.StringLines, stringLines(field, names.storage(field))...)
		accessors, err := buildAccessors(msg, field, names, def, ok)
		if err != nil {
			return goMessage{}, err
		}
		out.Accessors = append(out.Accessors, accessors...)
	}

	var err error
	if out.EncodeLines, out.EncodeErr, err = buildEncodeLines(msg, names); err != nil {
		return goMessage{}, err
	}
	if out.SizeLines, err = buildSizeLines(msg, names); err != nil {
		return goMessage{}, err
	}
	if out.DecodeLines, err = buildDecodeLines(msg, names); err != nil {
		return goMessage{}, err
	}
	return out, nil
}

func stringLines(field *ir.Field, name string) []string {
	label := strconv.Quote(field.Name)
	switch {
	case field.IsRepeated():
		return []string{
			fmt.Sprintf("if len(%s) > 0 {", name),
			fmt.Sprintf("f.Add(%s, %s)", label, name),
			"}",
		}
	case isPointerStored(field):
		return []string{
			fmt.Sprintf("if %s != nil {", name),
			fmt.Sprintf("f.Add(%s, *%s)", label, name),
			"}",
		}
	default:
		return []string{
			fmt.Sprintf("if %s != nil {", name),
			fmt.Sprintf("f.Add(%s, %s)", label, name),
			"}",
		}
	}
}

// buildDefault declares Default_<Message>_<Field> for fields with an
// explicit or enum default. Values that are not Go constants become vars.
func buildDefault(msg *ir.Message, field *ir.Field, name fieldName) (goDefault, bool, error) {
	if field.Default == nil || field.IsRepeated() {
		return goDefault{}, false, nil
	}
	typ, err := scalarGoType(field)
	if err != nil {
		return goDefault{}, false, err
	}
	def := goDefault{
		Decl: "const",
		Name: defaultName(msg, name),
		Type: typ,
	}
	switch v := field.Default.(type) {
	case bool:
		def.Value = strconv.FormatBool(v)
	case int32:
		def.Value = strconv.FormatInt(int64(v), 10)
	case int64:
		def.Value = strconv.FormatInt(v, 10)
	case uint32:
		def.Value = strconv.FormatUint(uint64(v), 10)
	case uint64:
		def.Value = strconv.FormatUint(v, 10)
	case float32:
		def.Value, def.Decl = floatLiteral(float64(v), 32)
	case float64:
		def.Value, def.Decl = floatLiteral(v, 64)
	case string:
		def.Value = strconv.Quote(v)
	case []byte:
		def.Decl = "var"
		def.Value = "[]byte(" + strconv.Quote(string(v)) + ")"
	case ir.EnumValue:
		def.Value = ir.EnumValueName(field.Enum.Name, v.Name)
	default:
		return goDefault{}, false, errors.Errorf("field %s: unexpected default %T", field.FullName, field.Default)
	}
	return def, true, nil
}

func floatLiteral(v float64, bits int) (string, string) {
	var expr string
	switch {
	case math.IsInf(v, 1):
		expr = "math.Inf(1)"
	case math.IsInf(v, -1):
		expr = "math.Inf(-1)"
	case math.IsNaN(v):
		expr = "math.NaN()"
	default:
		return strconv.FormatFloat(v, 'g', -1, bits), "const"
	}
	if bits == 32 {
		expr = "float32(" + expr + ")"
	}
	return expr, "var"
}
