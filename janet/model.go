// Package janet models declarations written for the Janet HTTP action
// scheme: one class per request, described by a class-level @HttpAction and
// field-level binding annotations.
package janet

import "github.com/dhamidi/retrojanet/java"

const (
	AnnotationsPackage = "io.techery.janet.http.annotations"
	BodyPackage        = "io.techery.janet.body"

	HttpActionType     = "HttpAction"
	ResponseType       = "Response"
	FileBodyType       = "FileBody"
	BytesArrayBodyType = "BytesArrayBody"

	ResponseFieldName = "response"
	ResponseAccessor  = "getResponse"
)

// Method is the HTTP verb of an action.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodHead   Method = "HEAD"
	MethodPatch  Method = "PATCH"
)

// Type is the request body encoding of an action.
type Type string

const (
	TypeSimple         Type = "SIMPLE"
	TypeFormURLEncoded Type = "FORM_URL_ENCODED"
	TypeMultipart      Type = "MULTIPART"
)

// MethodExpr returns the source expression selecting m, e.g. HttpAction.Method.POST.
func MethodExpr(m Method) java.Expr {
	return java.Expr{Kind: java.ExprName, Text: HttpActionType + ".Method." + string(m)}
}

// TypeExpr returns the source expression selecting t, e.g. HttpAction.Type.MULTIPART.
func TypeExpr(t Type) java.Expr {
	return java.Expr{Kind: java.ExprName, Text: HttpActionType + ".Type." + string(t)}
}

// AnnotationImport returns the import for an annotation of the target scheme.
func AnnotationImport(simpleName string) java.ImportModel {
	return java.ImportModel{Name: AnnotationsPackage + "." + simpleName}
}

// BodyImport returns the import for one of the request body types.
func BodyImport(simpleName string) java.ImportModel {
	return java.ImportModel{Name: BodyPackage + "." + simpleName}
}

type Argument struct {
	Name  string
	Value java.Expr
}

// Annotation is a generated annotation. With no arguments it renders as a
// marker, with a single "value" argument in the compact form, and with
// anything else in the named form. A placeholder renders its tag verbatim and
// is expected not to compile.
type Annotation struct {
	Tag         string
	Arguments   []Argument
	Placeholder bool
}

func Marker(tag string) Annotation {
	return Annotation{Tag: tag}
}

func SingleMember(tag string, value java.Expr) Annotation {
	return Annotation{Tag: tag, Arguments: []Argument{{Name: "value", Value: value}}}
}

func Named(tag string, args ...Argument) Annotation {
	return Annotation{Tag: tag, Arguments: args}
}

func Placeholder(tag string) Annotation {
	return Annotation{Tag: tag + "!!!//TODO", Placeholder: true}
}

// IsCompact reports whether the annotation renders as @Tag(value).
func (a Annotation) IsCompact() bool {
	return len(a.Arguments) == 1 && a.Arguments[0].Name == "value"
}

func (a Annotation) Argument(name string) (java.Expr, bool) {
	for _, arg := range a.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return java.Expr{}, false
}

type Field struct {
	Name       string
	Type       java.TypeModel
	Annotation *Annotation
}

type Parameter struct {
	Name string
	Type java.TypeModel
}

// Constructor assigns each parameter to the field of the same name, in order.
type Constructor struct {
	Parameters []Parameter
}

// Assignments returns the constructor body statements.
func (c Constructor) Assignments() []string {
	stmts := make([]string, len(c.Parameters))
	for i, p := range c.Parameters {
		stmts[i] = "this." + p.Name + " = " + p.Name + ";"
	}
	return stmts
}

type Accessor struct {
	Name   string
	Type   java.TypeModel
	Result string
}

type Declaration struct {
	Package     string
	Imports     []java.ImportModel
	Name        string
	Annotation  Annotation
	Fields      []Field
	Response    *Field
	Constructor Constructor
	Accessor    *Accessor
}

// FileName is the name of the source file holding the declaration.
func (d *Declaration) FileName() string {
	return d.Name + ".java"
}
