package java

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// CompilationUnit is the read-only view of one parsed .java file.
//
// Methods holds every method declaration of the file, nested types included,
// in the order they appear in the source.
type CompilationUnit struct {
	File    string
	Package string
	Imports []ImportModel
	Types   []*ClassModel
	Methods []MethodModel
}

type ImportModel struct {
	Name       string
	IsStatic   bool
	IsWildcard bool
}

// String returns the imported name as written, with a trailing ".*" for
// on-demand imports.
func (i ImportModel) String() string {
	if i.IsWildcard {
		return i.Name + ".*"
	}
	return i.Name
}

type ClassModel struct {
	Name        string
	Kind        ClassKind
	Annotations []AnnotationModel
	Methods     []MethodModel
}

type MethodModel struct {
	Name        string
	ReturnType  TypeModel
	Parameters  []ParameterModel
	Annotations []AnnotationModel
	IsDefault   bool
	IsStatic    bool
	Line        int
}

type ParameterModel struct {
	Name        string
	Type        TypeModel
	IsFinal     bool
	IsVarargs   bool
	Annotations []AnnotationModel
}

type TypeModel struct {
	Name          string
	TypeArguments []TypeModel
	ArrayDepth    int
}

type AnnotationForm int

const (
	AnnotationMarker AnnotationForm = iota
	AnnotationSingleMember
	AnnotationNormal
)

type AnnotationModel struct {
	Type     string
	Form     AnnotationForm
	Elements []ElementValuePair
}

type ElementValuePair struct {
	Name  string
	Value Expr
}

type ExprKind int

const (
	ExprOther ExprKind = iota
	ExprString
	ExprArray
	ExprName
	ExprBool
	ExprNumber
)

// Expr is an annotation argument kept as source text. The converter never
// evaluates expressions, it only moves them between annotations.
type Expr struct {
	Kind ExprKind
	Text string
}
