package gogen

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jptrs93/pb2gen/internal/ir"
)

var (
	ErrUnsupportedType   = errors.New("unsupported field type")
	ErrPackedUnsupported = errors.New("packed repeated fields are not supported")
)

// Framing is how a field's value is delimited on the wire.
type Framing int

const (
	FramingVarint Framing = iota
	FramingFixed
	FramingBytes
	FramingGroup
)

// WireShape is the resolved wire layout of a field.
type WireShape struct {
	Type    protowire.Type
	Framing Framing
	// Width is 4 or 8 for FramingFixed and 0 otherwise.
	Width int
}

// ResolveWireShape maps a field kind to its wire type and framing. Message
// and group kinds both nest a message but differ in framing: a length
// prefix for messages, start and end tags for groups.
func ResolveWireShape(kind ir.Kind) (WireShape, error) {
	switch kind {
	case ir.KindBool, ir.KindInt32, ir.KindInt64, ir.KindUint32, ir.KindUint64,
		ir.KindSint32, ir.KindSint64, ir.KindEnum:
		return WireShape{Type: protowire.VarintType, Framing: FramingVarint}, nil
	case ir.KindFixed32, ir.KindSfixed32, ir.KindFloat:
		return WireShape{Type: protowire.Fixed32Type, Framing: FramingFixed, Width: 4}, nil
	case ir.KindFixed64, ir.KindSfixed64, ir.KindDouble:
		return WireShape{Type: protowire.Fixed64Type, Framing: FramingFixed, Width: 8}, nil
	case ir.KindString, ir.KindBytes, ir.KindMessage:
		return WireShape{Type: protowire.BytesType, Framing: FramingBytes}, nil
	case ir.KindGroup:
		return WireShape{Type: protowire.StartGroupType, Framing: FramingGroup}, nil
	default:
		return WireShape{}, errors.Wrapf(ErrUnsupportedType, "kind %v", kind)
	}
}

func fieldShape(field *ir.Field) (WireShape, error) {
	if field.IsPacked {
		return WireShape{}, errors.Wrapf(ErrPackedUnsupported, "field %s", field.FullName)
	}
	shape, err := ResolveWireShape(field.Kind)
	if err != nil {
		return WireShape{}, errors.Wrapf(err, "field %s", field.FullName)
	}
	return shape, nil
}

// wireTypeName is the protowire constant for typ as it appears in
// generated code.
func wireTypeName(typ protowire.Type) string {
	switch typ {
	case protowire.VarintType:
		return "protowire.VarintType"
	case protowire.Fixed32Type:
		return "protowire.Fixed32Type"
	case protowire.Fixed64Type:
		return "protowire.Fixed64Type"
	case protowire.BytesType:
		return "protowire.BytesType"
	case protowire.StartGroupType:
		return "protowire.StartGroupType"
	default:
		return "protowire.EndGroupType"
	}
}

// tagLiteral freezes the varint encoding of a tag into a Go string literal.
func tagLiteral(num int, typ protowire.Type) string {
	return bytesLiteral(protowire.AppendTag(nil, protowire.Number(num), typ))
}

func bytesLiteral(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		fmt.Fprintf(&sb, "\\x%02x", c)
	}
	sb.WriteByte('"')
	return sb.String()
}

func tagSize(num int) int {
	return protowire.SizeTag(protowire.Number(num))
}

// scalarGoType is the Go type of one value of a non-message field.
func scalarGoType(field *ir.Field) (string, error) {
	switch field.Kind {
	case ir.KindBool:
		return "bool", nil
	case ir.KindInt32, ir.KindSint32, ir.KindSfixed32:
		return "int32", nil
	case ir.KindInt64, ir.KindSint64, ir.KindSfixed64:
		return "int64", nil
	case ir.KindUint32, ir.KindFixed32:
		return "uint32", nil
	case ir.KindUint64, ir.KindFixed64:
		return "uint64", nil
	case ir.KindFloat:
		return "float32", nil
	case ir.KindDouble:
		return "float64", nil
	case ir.KindString:
		return "string", nil
	case ir.KindBytes:
		return "[]byte", nil
	case ir.KindEnum:
		return field.Enum.Name, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedType, "field %s: kind %v", field.FullName, field.Kind)
	}
}

// elemGoType is the Go type of one value of field, messages included.
func elemGoType(field *ir.Field) (string, error) {
	if field.Kind == ir.KindMessage || field.Kind == ir.KindGroup {
		return "*" + field.Message.Name, nil
	}
	return scalarGoType(field)
}

// storageGoType is the type of the struct field holding field. Singular
// scalars are pointers so that unset is distinct from the zero value; bytes
// use the nil slice for that.
func storageGoType(field *ir.Field) (string, error) {
	elem, err := elemGoType(field)
	if err != nil {
		return "", err
	}
	if field.IsRepeated() {
		return "[]" + elem, nil
	}
	switch field.Kind {
	case ir.KindMessage, ir.KindGroup, ir.KindBytes:
		return elem, nil
	default:
		return "*" + elem, nil
	}
}

// wireValue is the expression handed to protowire.AppendVarint,
// AppendFixed32 or AppendFixed64 for the Go value v. The encoder and the
// size computation both use it so that they can never disagree.
func wireValue(kind ir.Kind, v string) string {
	switch kind {
	case ir.KindBool:
		return "protowire.EncodeBool(" + v + ")"
	case ir.KindInt32, ir.KindInt64, ir.KindUint32, ir.KindEnum, ir.KindSfixed64:
		return "uint64(" + v + ")"
	case ir.KindSint32:
		return "protowire.EncodeZigZag(int64(" + v + "))"
	case ir.KindSint64:
		return "protowire.EncodeZigZag(" + v + ")"
	case ir.KindSfixed32:
		return "uint32(" + v + ")"
	case ir.KindFloat:
		return "math.Float32bits(" + v + ")"
	case ir.KindDouble:
		return "math.Float64bits(" + v + ")"
	default:
		// uint64, fixed32, fixed64
		return v
	}
}

// goValue converts the raw value v returned by a wire.Reader primitive back
// to the field's Go type.
func goValue(field *ir.Field, v string) string {
	switch field.Kind {
	case ir.KindBool:
		return "protowire.DecodeBool(" + v + ")"
	case ir.KindInt32, ir.KindSfixed32:
		return "int32(" + v + ")"
	case ir.KindInt64, ir.KindSfixed64:
		return "int64(" + v + ")"
	case ir.KindUint32:
		return "uint32(" + v + ")"
	case ir.KindSint32:
		return "int32(protowire.DecodeZigZag(" + v + " & math.MaxUint32))"
	case ir.KindSint64:
		return "protowire.DecodeZigZag(" + v + ")"
	case ir.KindEnum:
		return field.Enum.Name + "(" + v + ")"
	case ir.KindFloat:
		return "math.Float32frombits(" + v + ")"
	case ir.KindDouble:
		return "math.Float64frombits(" + v + ")"
	default:
		// uint64, fixed32, fixed64
		return v
	}
}

// readCall is the wire.Reader method that reads one value of field.
func readCall(field *ir.Field, shape WireShape) string {
	switch {
	case shape.Framing == FramingVarint:
		return "r.ReadVarint()"
	case shape.Framing == FramingFixed && shape.Width == 4:
		return "r.ReadFixed32()"
	case shape.Framing == FramingFixed:
		return "r.ReadFixed64()"
	case field.Kind == ir.KindString:
		return "r.ReadString()"
	default:
		return "r.ReadBytes()"
	}
}
