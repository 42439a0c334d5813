package format

import (
	"io"
	"strings"

	"github.com/dhamidi/retrojanet/janet"
	"github.com/dhamidi/retrojanet/java"
)

const indent = "    "

type JavaEncoder struct {
	w    io.Writer
	decl *janet.Declaration
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(decl *janet.Declaration) error {
	e.decl = decl
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	d := e.decl

	if d.Package != "" {
		sb.WriteString("package ")
		sb.WriteString(d.Package)
		sb.WriteString(";\n\n")
	}

	e.writeImports(&sb)

	writeAnnotation(&sb, d.Annotation)
	sb.WriteString("\n")
	sb.WriteString("public class ")
	sb.WriteString(d.Name)
	sb.WriteString(" {\n")

	for _, f := range d.Fields {
		sb.WriteString("\n")
		e.writeField(&sb, f)
	}
	if d.Response != nil {
		sb.WriteString("\n")
		e.writeField(&sb, *d.Response)
	}

	sb.WriteString("\n")
	e.writeConstructor(&sb)

	if d.Accessor != nil {
		sb.WriteString("\n")
		e.writeAccessor(&sb, *d.Accessor)
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func (e *JavaEncoder) writeImports(sb *strings.Builder) {
	imports := e.decl.Imports
	for _, imp := range imports {
		sb.WriteString("import ")
		if imp.IsStatic {
			sb.WriteString("static ")
		}
		sb.WriteString(imp.String())
		sb.WriteString(";\n")
	}
	if len(imports) > 0 {
		sb.WriteString("\n")
	}
}

func (e *JavaEncoder) writeField(sb *strings.Builder, f janet.Field) {
	if f.Annotation != nil {
		sb.WriteString(indent)
		writeAnnotation(sb, *f.Annotation)
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString(f.Type.String())
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	sb.WriteString(";\n")
}

func (e *JavaEncoder) writeConstructor(sb *strings.Builder) {
	c := e.decl.Constructor
	sb.WriteString(indent)
	sb.WriteString("public ")
	sb.WriteString(e.decl.Name)
	sb.WriteString("(")
	for i, p := range c.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(") {\n")
	for _, stmt := range c.Assignments() {
		sb.WriteString(indent + indent)
		sb.WriteString(stmt)
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func (e *JavaEncoder) writeAccessor(sb *strings.Builder, a janet.Accessor) {
	sb.WriteString(indent)
	sb.WriteString("public ")
	sb.WriteString(a.Type.String())
	sb.WriteString(" ")
	sb.WriteString(a.Name)
	sb.WriteString("() {\n")
	sb.WriteString(indent + indent)
	sb.WriteString("return ")
	sb.WriteString(a.Result)
	sb.WriteString(";\n")
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func writeAnnotation(sb *strings.Builder, a janet.Annotation) {
	sb.WriteString("@")
	sb.WriteString(a.Tag)
	if a.Placeholder || len(a.Arguments) == 0 {
		return
	}
	sb.WriteString("(")
	if a.IsCompact() {
		writeExpr(sb, a.Arguments[0].Value)
	} else {
		for i, arg := range a.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.Name)
			sb.WriteString(" = ")
			writeExpr(sb, arg.Value)
		}
	}
	sb.WriteString(")")
}

func writeExpr(sb *strings.Builder, e java.Expr) {
	sb.WriteString(e.Text)
}
