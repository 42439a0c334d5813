package convert

import (
	"fmt"
	"strings"

	"github.com/dhamidi/retrojanet/format"
	"github.com/dhamidi/retrojanet/janet"
	"github.com/dhamidi/retrojanet/java"
	"github.com/tliron/commonlog"
)

const logName = "retrojanet.convert"

// Emitter writes one generated declaration and returns where it went.
type Emitter interface {
	Emit(decl *janet.Declaration) (string, error)
}

// DirEmitter writes declarations as .java files into Dir.
type DirEmitter struct {
	Dir string
}

func (e DirEmitter) Emit(decl *janet.Declaration) (string, error) {
	return format.Save(e.Dir, decl)
}

type Option func(*Converter)

// WithPackage overrides the package declared by the source file.
func WithPackage(name string) Option {
	return func(c *Converter) {
		c.pkg = name
	}
}

// WithOutputDir writes generated files into dir.
func WithOutputDir(dir string) Option {
	return func(c *Converter) {
		c.emitter = DirEmitter{Dir: dir}
	}
}

func WithEmitter(e Emitter) Option {
	return func(c *Converter) {
		c.emitter = e
	}
}

// WithSavedHook registers fn to run after each file is written.
func WithSavedHook(fn func(path string)) Option {
	return func(c *Converter) {
		c.onSaved = fn
	}
}

type Converter struct {
	pkg     string
	emitter Emitter
	onSaved func(path string)
	log     commonlog.Logger
}

func New(opts ...Option) *Converter {
	c := &Converter{
		emitter: DirEmitter{Dir: "."},
		log:     commonlog.GetLogger(logName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertFile converts every Retrofit method of the Java file at path and
// returns the paths of the written files in method order.
func (c *Converter) ConvertFile(path string) ([]string, error) {
	unit, err := java.CompilationUnitFromFile(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(unit)
}

// Convert builds and emits one declaration per convertible method. Each
// file is written before the next method is looked at.
func (c *Converter) Convert(unit *java.CompilationUnit) ([]string, error) {
	env := c.environment(unit)

	var written []string
	for _, m := range unit.Methods {
		decl, ok := c.declaration(env, m)
		if !ok {
			continue
		}
		path, err := c.emitter.Emit(decl)
		if err != nil {
			return written, fmt.Errorf("emit %s: %w", decl.Name, err)
		}
		c.log.Infof("%s -> %s", m.Name, path)
		written = append(written, path)
		if c.onSaved != nil {
			c.onSaved(path)
		}
	}
	return written, nil
}

// Plan returns the declarations Convert would emit, without emitting them.
func (c *Converter) Plan(unit *java.CompilationUnit) []*janet.Declaration {
	env := c.environment(unit)

	var decls []*janet.Declaration
	for _, m := range unit.Methods {
		if decl, ok := c.declaration(env, m); ok {
			decls = append(decls, decl)
		}
	}
	return decls
}

// environment holds what is resolved once per file and shared by all
// methods.
type environment struct {
	pkg     string
	imports []java.ImportModel
}

func (c *Converter) environment(unit *java.CompilationUnit) environment {
	env := environment{pkg: c.pkg}
	if env.pkg == "" {
		env.pkg = unit.Package
	}
	env.imports = SourceImports(unit.Imports)

	for _, t := range unit.Types {
		c.log.Debugf("found %s %s with %d methods", t.Kind, t.Name, len(t.Methods))
	}
	return env
}

func (c *Converter) declaration(env environment, m java.MethodModel) (*janet.Declaration, bool) {
	spec, ok := InterpretMethod(m)
	if !ok {
		c.log.Debugf("skipping %s (line %d): no HTTP verb annotation", m.Name, m.Line)
		return nil, false
	}

	fields := make([]MappedField, len(m.Parameters))
	for i, p := range m.Parameters {
		fields[i] = MapParameter(p)
		if fields[i].NeedsReview {
			c.log.Warningf("%s: parameter %s uses @%s, which needs manual translation", m.Name, p.Name, fields[i].Binding)
		}
	}

	decl := BuildDeclaration(DeclarationInput{
		Package:       env.pkg,
		MethodName:    m.Name,
		Spec:          spec,
		Fields:        fields,
		SourceImports: env.imports,
		ResponseType:  m.ReturnType,
	})

	var summary strings.Builder
	if err := format.NewLineEncoder(&summary).Encode(decl); err == nil {
		c.log.Debugf("%s", strings.TrimRight(summary.String(), "\n"))
	}
	return decl, true
}

// SourceImports drops Retrofit imports; they never belong in generated code.
func SourceImports(imports []java.ImportModel) []java.ImportModel {
	var kept []java.ImportModel
	for _, imp := range imports {
		if strings.Contains(imp.Name, "retrofit") {
			continue
		}
		kept = append(kept, imp)
	}
	return kept
}
