package ir

type File struct {
	Path      string
	Package   string
	GoPackage string
	// PreserveUnknown keeps unrecognized fields in a side table instead of
	// skipping them.
	PreserveUnknown bool
	Messages        []*Message
	Enums           []*Enum
}

type Enum struct {
	Name     string
	FullName string
	Values   []EnumValue
}

type EnumValue struct {
	Name   string
	Number int32
}

// Canonical returns one value per number. When several names share a
// number the first declared one wins.
func (e *Enum) Canonical() []EnumValue {
	seen := make(map[int32]bool, len(e.Values))
	var out []EnumValue
	for _, v := range e.Values {
		if seen[v.Number] {
			continue
		}
		seen[v.Number] = true
		out = append(out, v)
	}
	return out
}

type Message struct {
	Name       string
	FullName   string
	Fields     []*Field
	Messages   []*Message
	Enums      []*Enum
	Parent     *Message
	IsMapEntry bool
}

// GroupField returns the field of the containing message that frames m as
// a group body, or nil when m is an ordinary message.
func (m *Message) GroupField() *Field {
	if m.Parent == nil {
		return nil
	}
	for _, f := range m.Parent.Fields {
		if f.Kind == KindGroup && f.Message == m {
			return f
		}
	}
	return nil
}

// RequiredFields returns the required fields in declaration order.
func (m *Message) RequiredFields() []*Field {
	var out []*Field
	for _, f := range m.Fields {
		if f.Label == LabelRequired {
			out = append(out, f)
		}
	}
	return out
}

type Field struct {
	Name     string
	FullName string
	Number   int
	Kind     Kind
	Label    Label
	IsPacked bool
	// Default is the typed default value: bool, int32, int64, uint32, uint64,
	// float32, float64, string, []byte, or the EnumValue for enum fields. It
	// is nil for message and group fields and when the schema gives none.
	Default any
	Message *Message
	Enum    *Enum
}

func (f *Field) IsRepeated() bool {
	return f.Label == LabelRepeated
}

type Label int

const (
	LabelOptional Label = iota
	LabelRequired
	LabelRepeated
)

func (l Label) String() string {
	switch l {
	case LabelOptional:
		return "optional"
	case LabelRequired:
		return "required"
	case LabelRepeated:
		return "repeated"
	default:
		return "unknown"
	}
}

type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindMessage
	KindEnum
	KindGroup
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
	KindFixed32:  "fixed32",
	KindFixed64:  "fixed64",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindString:   "string",
	KindBytes:    "bytes",
	KindMessage:  "message",
	KindEnum:     "enum",
	KindGroup:    "group",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
