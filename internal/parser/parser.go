package parser

import (
	"context"
	"io"
	"os"
	"path"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/jptrs93/pb2gen/internal/ir"
)

// ErrUnsupported marks schema features the generator refuses to handle.
var ErrUnsupported = errors.New("unsupported schema feature")

type Parser struct {
	ImportPaths []string
	// Accessor opens source files. Nil means the file system.
	Accessor func(path string) (io.ReadCloser, error)
}

func (p *Parser) Parse(ctx context.Context, filePaths []string) ([]*ir.File, error) {
	open := p.Accessor
	if open == nil {
		open = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}
	resolver := &protocompile.SourceResolver{
		ImportPaths: p.ImportPaths,
		Accessor: func(path string) (io.ReadCloser, error) {
			if path == OptionsProtoPath || strings.HasSuffix(path, string(os.PathSeparator)+OptionsProtoPath) {
				return io.NopCloser(strings.NewReader(optionsProtoSource)), nil
			}
			return open(path)
		},
	}
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(resolver),
	}
	files, err := compiler.Compile(ctx, filePaths...)
	if err != nil {
		return nil, errors.Wrap(err, "compile schema")
	}
	descs := make([]protoreflect.FileDescriptor, 0, len(files))
	for _, file := range files {
		descs = append(descs, file)
	}
	return Convert(descs)
}

type converter struct {
	messages map[protoreflect.FullName]*ir.Message
	enums    map[protoreflect.FullName]*ir.Enum
	owners   map[protoreflect.FullName]*ir.File
}

// Convert turns compiled descriptors into the generator's IR. Message and
// enum references are resolved across all given files, and must stay
// within one Go package.
func Convert(files []protoreflect.FileDescriptor) ([]*ir.File, error) {
	c := &converter{
		messages: make(map[protoreflect.FullName]*ir.Message),
		enums:    make(map[protoreflect.FullName]*ir.Enum),
		owners:   make(map[protoreflect.FullName]*ir.File),
	}
	result := make([]*ir.File, 0, len(files))
	for _, file := range files {
		irFile, err := c.declareFile(file)
		if err != nil {
			return nil, err
		}
		result = append(result, irFile)
	}
	for i, file := range files {
		if err := c.resolveMessages(file.Messages(), result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (c *converter) declareFile(file protoreflect.FileDescriptor) (*ir.File, error) {
	switch file.Syntax() {
	case protoreflect.Proto2, protoreflect.Proto3:
	default:
		return nil, errors.Wrapf(ErrUnsupported, "%s: syntax %s", file.Path(), file.Syntax())
	}
	if file.Services().Len() > 0 {
		return nil, errors.Wrapf(ErrUnsupported, "%s: service %s", file.Path(), file.Services().Get(0).FullName())
	}
	if file.Extensions().Len() > 0 {
		return nil, errors.Wrapf(ErrUnsupported, "%s: extension %s", file.Path(), file.Extensions().Get(0).FullName())
	}
	out := &ir.File{
		Path:            file.Path(),
		Package:         string(file.Package()),
		GoPackage:       ir.PackageName(namespaceFor(file)),
		PreserveUnknown: !skipUnknownFromOptions(file),
	}
	msgs, err := c.declareMessages(file.Messages(), nil, nil, out)
	if err != nil {
		return nil, err
	}
	out.Messages = msgs
	out.Enums = c.declareEnums(file.Enums(), nil, out)
	return out, nil
}

func namespaceFor(file protoreflect.FileDescriptor) string {
	if ns := namespaceFromOptions(file); ns != "" {
		return ns
	}
	if goPkg := goPackageFromOptions(file); goPkg != "" {
		return goPkg
	}
	if pkg := string(file.Package()); pkg != "" {
		return pkg
	}
	return strings.TrimSuffix(path.Base(file.Path()), ".proto")
}

func (c *converter) declareMessages(messages protoreflect.MessageDescriptors, prefix []string, parent *ir.Message, owner *ir.File) ([]*ir.Message, error) {
	var result []*ir.Message
	for i := 0; i < messages.Len(); i++ {
		msg := messages.Get(i)
		if msg.Extensions().Len() > 0 {
			return nil, errors.Wrapf(ErrUnsupported, "%s: extension %s", owner.Path, msg.Extensions().Get(0).FullName())
		}
		nameParts := append(append([]string(nil), prefix...), string(msg.Name()))
		irMsg := &ir.Message{
			Name:       ir.TypeName(nameParts),
			FullName:   string(msg.FullName()),
			Parent:     parent,
			IsMapEntry: msg.IsMapEntry(),
		}
		c.messages[msg.FullName()] = irMsg
		c.owners[msg.FullName()] = owner

		nested, err := c.declareMessages(msg.Messages(), nameParts, irMsg, owner)
		if err != nil {
			return nil, err
		}
		irMsg.Messages = nested
		irMsg.Enums = c.declareEnums(msg.Enums(), nameParts, owner)
		result = append(result, irMsg)
	}
	return result, nil
}

func (c *converter) declareEnums(enums protoreflect.EnumDescriptors, prefix []string, owner *ir.File) []*ir.Enum {
	var result []*ir.Enum
	for i := 0; i < enums.Len(); i++ {
		enum := enums.Get(i)
		nameParts := append(append([]string(nil), prefix...), string(enum.Name()))
		irEnum := &ir.Enum{
			Name:     ir.TypeName(nameParts),
			FullName: string(enum.FullName()),
		}
		values := enum.Values()
		for j := 0; j < values.Len(); j++ {
			v := values.Get(j)
			irEnum.Values = append(irEnum.Values, ir.EnumValue{
				Name:   string(v.Name()),
				Number: int32(v.Number()),
			})
		}
		c.enums[enum.FullName()] = irEnum
		c.owners[enum.FullName()] = owner
		result = append(result, irEnum)
	}
	return result
}

func (c *converter) resolveMessages(messages protoreflect.MessageDescriptors, owner *ir.File) error {
	for i := 0; i < messages.Len(); i++ {
		msg := messages.Get(i)
		irMsg := c.messages[msg.FullName()]
		fields, err := c.collectFields(msg.Fields(), owner)
		if err != nil {
			return err
		}
		irMsg.Fields = fields
		if err := c.resolveMessages(msg.Messages(), owner); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) collectFields(fields protoreflect.FieldDescriptors, owner *ir.File) ([]*ir.Field, error) {
	var result []*ir.Field
	for i := 0; i < fields.Len(); i++ {
		field := fields.Get(i)
		if oneof := field.ContainingOneof(); oneof != nil && !oneof.IsSynthetic() {
			return nil, errors.Wrapf(ErrUnsupported, "oneof field %s", field.FullName())
		}
		kind, err := kindFromField(field)
		if err != nil {
			return nil, err
		}
		irField := &ir.Field{
			Name:     string(field.Name()),
			FullName: string(field.FullName()),
			Number:   int(field.Number()),
			Kind:     kind,
			Label:    labelFromField(field),
			IsPacked: field.IsPacked(),
		}
		switch kind {
		case ir.KindMessage, ir.KindGroup:
			name := field.Message().FullName()
			msg, ok := c.messages[name]
			if !ok {
				return nil, errors.Wrapf(ErrUnsupported, "field %s: message %s is not part of the generated files", field.FullName(), name)
			}
			if err := c.checkSamePackage(field, name, owner); err != nil {
				return nil, err
			}
			irField.Message = msg
		case ir.KindEnum:
			name := field.Enum().FullName()
			enum, ok := c.enums[name]
			if !ok {
				return nil, errors.Wrapf(ErrUnsupported, "field %s: enum %s is not part of the generated files", field.FullName(), name)
			}
			if err := c.checkSamePackage(field, name, owner); err != nil {
				return nil, err
			}
			irField.Enum = enum
		}
		irField.Default = defaultValue(field, kind)
		result = append(result, irField)
	}
	return result, nil
}

func (c *converter) checkSamePackage(field protoreflect.FieldDescriptor, name protoreflect.FullName, owner *ir.File) error {
	if other := c.owners[name]; other.GoPackage != owner.GoPackage {
		return errors.Wrapf(ErrUnsupported, "field %s: %s lives in Go package %s, not %s", field.FullName(), name, other.GoPackage, owner.GoPackage)
	}
	return nil
}

func labelFromField(field protoreflect.FieldDescriptor) ir.Label {
	switch field.Cardinality() {
	case protoreflect.Required:
		return ir.LabelRequired
	case protoreflect.Repeated:
		return ir.LabelRepeated
	default:
		return ir.LabelOptional
	}
}

func defaultValue(field protoreflect.FieldDescriptor, kind ir.Kind) any {
	if kind == ir.KindEnum {
		if ev := field.DefaultEnumValue(); ev != nil && !field.IsList() {
			return ir.EnumValue{Name: string(ev.Name()), Number: int32(ev.Number())}
		}
		return nil
	}
	if !field.HasDefault() {
		return nil
	}
	v := field.Default()
	switch kind {
	case ir.KindBool:
		return v.Bool()
	case ir.KindInt32, ir.KindSint32, ir.KindSfixed32:
		return int32(v.Int())
	case ir.KindInt64, ir.KindSint64, ir.KindSfixed64:
		return v.Int()
	case ir.KindUint32, ir.KindFixed32:
		return uint32(v.Uint())
	case ir.KindUint64, ir.KindFixed64:
		return v.Uint()
	case ir.KindFloat:
		return float32(v.Float())
	case ir.KindDouble:
		return v.Float()
	case ir.KindString:
		return v.String()
	case ir.KindBytes:
		return append([]byte(nil), v.Bytes()...)
	default:
		return nil
	}
}

func kindFromField(field protoreflect.FieldDescriptor) (ir.Kind, error) {
	switch field.Kind() {
	case protoreflect.BoolKind:
		return ir.KindBool, nil
	case protoreflect.Int32Kind:
		return ir.KindInt32, nil
	case protoreflect.Int64Kind:
		return ir.KindInt64, nil
	case protoreflect.Uint32Kind:
		return ir.KindUint32, nil
	case protoreflect.Uint64Kind:
		return ir.KindUint64, nil
	case protoreflect.Sint32Kind:
		return ir.KindSint32, nil
	case protoreflect.Sint64Kind:
		return ir.KindSint64, nil
	case protoreflect.Fixed32Kind:
		return ir.KindFixed32, nil
	case protoreflect.Fixed64Kind:
		return ir.KindFixed64, nil
	case protoreflect.Sfixed32Kind:
		return ir.KindSfixed32, nil
	case protoreflect.Sfixed64Kind:
		return ir.KindSfixed64, nil
	case protoreflect.FloatKind:
		return ir.KindFloat, nil
	case protoreflect.DoubleKind:
		return ir.KindDouble, nil
	case protoreflect.StringKind:
		return ir.KindString, nil
	case protoreflect.BytesKind:
		return ir.KindBytes, nil
	case protoreflect.MessageKind:
		return ir.KindMessage, nil
	case protoreflect.GroupKind:
		return ir.KindGroup, nil
	case protoreflect.EnumKind:
		return ir.KindEnum, nil
	default:
		return 0, errors.Wrapf(ErrUnsupported, "field %s: kind %s", field.FullName(), field.Kind())
	}
}
