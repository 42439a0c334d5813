package java

import "strings"

func (t TypeModel) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.TypeArguments) > 0 {
		sb.WriteString("<")
		for i, arg := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (t TypeModel) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeModel) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t TypeModel) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

// SimpleType builds a non-generic, non-array type.
func SimpleType(name string) TypeModel {
	return TypeModel{Name: name}
}
