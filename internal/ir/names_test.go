package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "id", want: "Id"},
		{in: "item_id", want: "ItemId"},
		{in: "clientFlipId", want: "ClientFlipId"},
		{in: "field2name", want: "Field2Name"},
		{in: "_private", want: "Private"},
		{in: "2d", want: "X2D"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, GoName(tc.in), "GoName(%q)", tc.in)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Point", TypeName([]string{"Point"}))
	assert.Equal(t, "Outer_Inner", TypeName([]string{"Outer", "Inner"}))
	assert.Equal(t, "Outer_Inner", TypeName([]string{"outer", "Inner"}))
}

func TestEnumValueName(t *testing.T) {
	assert.Equal(t, "Color_RED", EnumValueName("Color", "red"))
	assert.Equal(t, "Outer_Kind_A_B", EnumValueName("Outer_Kind", "A_B"))
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "geo", want: "geo"},
		{in: "acme.geo.v1", want: "acme_geo_v1"},
		{in: "github.com/acme/geo", want: "geo"},
		{in: "github.com/acme/geo;geopb", want: "geopb"},
		{in: "my-pkg", want: "my_pkg"},
		{in: "", want: "pb"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, PackageName(tc.in), "PackageName(%q)", tc.in)
	}
}

func TestEnumCanonicalFirstNameWins(t *testing.T) {
	e := &Enum{Values: []EnumValue{
		{Name: "STARTED", Number: 1},
		{Name: "RUNNING", Number: 1},
		{Name: "DONE", Number: 2},
	}}
	assert.Equal(t, []EnumValue{{Name: "STARTED", Number: 1}, {Name: "DONE", Number: 2}}, e.Canonical())
}

func TestGroupField(t *testing.T) {
	parent := &Message{Name: "SearchResponse"}
	body := &Message{Name: "SearchResponse_Result", Parent: parent}
	plain := &Message{Name: "SearchResponse_Meta", Parent: parent}
	parent.Fields = []*Field{
		{Name: "meta", Number: 1, Kind: KindMessage, Message: plain},
		{Name: "result", Number: 2, Kind: KindGroup, Label: LabelRepeated, Message: body},
	}
	parent.Messages = []*Message{body, plain}

	assert.Same(t, parent.Fields[1], body.GroupField())
	assert.Nil(t, plain.GroupField())
	assert.Nil(t, parent.GroupField())
}
