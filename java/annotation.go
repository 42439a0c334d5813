package java

import (
	"strconv"
	"strings"
)

// SimpleName returns the last segment of the annotation type, so that
// @retrofit2.http.GET and @GET compare equal.
func (a AnnotationModel) SimpleName() string {
	if i := strings.LastIndex(a.Type, "."); i >= 0 {
		return a.Type[i+1:]
	}
	return a.Type
}

// Value returns the argument named name. The argument of a single-member
// annotation is available as "value". Marker annotations have no values.
func (a AnnotationModel) Value(name string) (Expr, bool) {
	for _, p := range a.Elements {
		if p.Name == name {
			return p.Value, true
		}
	}
	return Expr{}, false
}

func (a AnnotationModel) String() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.Type)
	switch a.Form {
	case AnnotationSingleMember:
		if len(a.Elements) == 1 {
			sb.WriteString("(")
			sb.WriteString(a.Elements[0].Value.Text)
			sb.WriteString(")")
		}
	case AnnotationNormal:
		sb.WriteString("(")
		for i, p := range a.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name)
			sb.WriteString(" = ")
			sb.WriteString(p.Value.Text)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// StringLiteral builds a string literal expression from an unquoted value.
func StringLiteral(s string) Expr {
	return Expr{Kind: ExprString, Text: strconv.Quote(s)}
}

func (e Expr) String() string {
	return e.Text
}

func (e Expr) IsZero() bool {
	return e.Text == ""
}
