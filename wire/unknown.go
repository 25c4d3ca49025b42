package wire

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// UnknownField is one occurrence of a field the decoder had no case for.
// Raw holds the encoded value without its tag.
type UnknownField struct {
	Number protowire.Number
	Type   protowire.Type
	Raw    []byte
}

// UnknownFields is the side table of a message that preserves unknown
// fields. Occurrences are kept in the order they were read.
type UnknownFields []UnknownField

// Append records one occurrence and returns the extended table.
func (u UnknownFields) Append(num protowire.Number, typ protowire.Type, raw []byte) UnknownFields {
	return append(u, UnknownField{Number: num, Type: typ, Raw: raw})
}

// Get returns the raw values recorded for num and typ, in read order.
func (u UnknownFields) Get(num protowire.Number, typ protowire.Type) [][]byte {
	var out [][]byte
	for _, f := range u {
		if f.Number == num && f.Type == typ {
			out = append(out, f.Raw)
		}
	}
	return out
}

// AppendTo re-emits every occurrence with its tag.
func (u UnknownFields) AppendTo(b []byte) []byte {
	for _, f := range u {
		b = protowire.AppendTag(b, f.Number, f.Type)
		b = append(b, f.Raw...)
	}
	return b
}

// Size returns the number of bytes AppendTo writes.
func (u UnknownFields) Size() int {
	n := 0
	for _, f := range u {
		n += protowire.SizeTag(f.Number) + len(f.Raw)
	}
	return n
}

func (u UnknownFields) String() string {
	parts := make([]string, 0, len(u))
	for _, f := range u {
		parts = append(parts, fmt.Sprintf("%d-%s:%x", f.Number, TypeName(f.Type), f.Raw))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// TypeName returns the conventional name of a wire type.
func TypeName(typ protowire.Type) string {
	switch typ {
	case protowire.VarintType:
		return "varint"
	case protowire.Fixed64Type:
		return "fixed64"
	case protowire.BytesType:
		return "bytes"
	case protowire.StartGroupType:
		return "start_group"
	case protowire.EndGroupType:
		return "end_group"
	case protowire.Fixed32Type:
		return "fixed32"
	default:
		return fmt.Sprintf("unknown(%d)", typ)
	}
}
