package gogen

import (
	"bytes"
	"context"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/jptrs93/pb2gen/internal/generate"
	"github.com/jptrs93/pb2gen/internal/generate/templates"
	"github.com/jptrs93/pb2gen/internal/ir"
)

// WireImport is the runtime package generated code depends on.
const WireImport = "github.com/jptrs93/pb2gen/wire"

// ErrNameCollision is returned when two declarations written to one Go
// package map to the same identifier.
var ErrNameCollision = errors.New("generated identifiers collide")

type Generator struct{}

func (g Generator) Name() string {
	return "go"
}

// Generate emits one Go file per schema file.
func (g Generator) Generate(files []*ir.File, options generate.Options) ([]generate.OutputFile, error) {
	if err := checkDeclarations(files, options); err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(templates.FS, "go_file.tmpl")
	if err != nil {
		return nil, err
	}
	return generate.Run(context.Background(), files, func(file *ir.File) (generate.OutputFile, error) {
		out, err := generateFile(tmpl, file, options)
		return out, errors.Wrap(err, file.Path)
	})
}

type goFileData struct {
	Source     string
	Package    string
	WireImport string
	Decls      []goDecl
}

// goDecl is either an enum or a message; exactly one is set.
type goDecl struct {
	Enum    *goEnum
	Message *goMessage
}

func generateFile(tmpl *template.Template, file *ir.File, options generate.Options) (generate.OutputFile, error) {
	pkg := file.GoPackage
	if options.GoPackage != "" {
		pkg = ir.PackageName(options.GoPackage)
	}
	if pkg == "" {
		return generate.OutputFile{}, errors.New("go package name is required (set --go-pkg, go_package or (pb2.namespace))")
	}
	preserve := file.PreserveUnknown && !options.SkipUnknown

	data := goFileData{
		Source:     file.Path,
		Package:    pkg,
		WireImport: WireImport,
	}
	for _, msg := range file.Messages {
		decls, err := messageDecls(msg, preserve)
		if err != nil {
			return generate.OutputFile{}, err
		}
		data.Decls = append(data.Decls, decls...)
	}
	for _, enum := range file.Enums {
		e := buildEnum(enum)
		data.Decls = append(data.Decls, goDecl{Enum: &e})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return generate.OutputFile{}, err
	}
	content, err := format.Source(buf.Bytes())
	if err != nil {
		return generate.OutputFile{}, errors.Wrapf(err, "format generated code\n%s", buf.String())
	}
	return generate.OutputFile{
		Path:    outputPath(file, options),
		Content: content,
	}, nil
}

// messageDecls flattens msg and everything nested in it. Nested types come
// before the message that declares them.
func messageDecls(msg *ir.Message, preserve bool) ([]goDecl, error) {
	var decls []goDecl
	for _, nested := range msg.Messages {
		nestedDecls, err := messageDecls(nested, preserve)
		if err != nil {
			return nil, err
		}
		decls = append(decls, nestedDecls...)
	}
	for _, enum := range msg.Enums {
		e := buildEnum(enum)
		decls = append(decls, goDecl{Enum: &e})
	}
	m, err := buildMessage(msg, preserve)
	if err != nil {
		return nil, err
	}
	return append(decls, goDecl{Message: &m}), nil
}

func outputPath(file *ir.File, options generate.Options) string {
	return filepath.Join(options.GoOut, OutputName(file.Path))
}

// checkDeclarations fails when two declarations that end up in the same
// output directory produce one package-level identifier, for example a
// nested Outer.Inner next to a top-level Outer_Inner.
func checkDeclarations(files []*ir.File, options generate.Options) error {
	type key struct{ dir, ident string }
	owners := map[key]string{}
	var err error
	claim := func(dir, ident, owner string) {
		k := key{dir, ident}
		if prev, ok := owners[k]; ok && err == nil {
			err = errors.Wrapf(ErrNameCollision, "%s: declared by both %s and %s", ident, prev, owner)
		}
		owners[k] = owner
	}
	claimEnum := func(dir string, enum *ir.Enum) {
		claim(dir, enum.Name, enum.FullName)
		claim(dir, enum.Name+"_name", enum.FullName)
		claim(dir, enum.Name+"_value", enum.FullName)
		for _, v := range enum.Values {
			claim(dir, ir.EnumValueName(enum.Name, v.Name), enum.FullName+"."+v.Name)
		}
	}
	var claimMessage func(dir string, msg *ir.Message)
	claimMessage = func(dir string, msg *ir.Message) {
		claim(dir, msg.Name, msg.FullName)
		names := allocateNames(msg)
		for _, field := range msg.Fields {
			if field.Default != nil && !field.IsRepeated() {
				claim(dir, defaultName(msg, names[field]), field.FullName)
			}
		}
		for _, nested := range msg.Messages {
			claimMessage(dir, nested)
		}
		for _, enum := range msg.Enums {
			claimEnum(dir, enum)
		}
	}
	for _, file := range files {
		dir := filepath.Dir(outputPath(file, options))
		for _, msg := range file.Messages {
			claimMessage(dir, msg)
		}
		for _, enum := range file.Enums {
			claimEnum(dir, enum)
		}
	}
	return err
}

// OutputName is the generated file name for a schema path.
func OutputName(protoPath string) string {
	return strings.TrimSuffix(protoPath, ".proto") + ".pb2.go"
}
