package convert

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/retrojanet/janet"
	"github.com/dhamidi/retrojanet/java"
)

// ActionSuffix is appended to the capitalized method name to name the
// generated class.
const ActionSuffix = "Action"

type DeclarationInput struct {
	Package       string
	MethodName    string
	Spec          ActionSpec
	Fields        []MappedField
	SourceImports []java.ImportModel
	ResponseType  java.TypeModel
}

// BuildDeclaration assembles the action class for one method. It never
// fails; odd input produces an odd class that the operator fixes by hand.
func BuildDeclaration(in DeclarationInput) *janet.Declaration {
	decl := &janet.Declaration{
		Package:    in.Package,
		Name:       capitalize(in.MethodName) + ActionSuffix,
		Annotation: ActionAnnotation(in.Spec),
	}

	imports := []java.ImportModel{janet.AnnotationImport(janet.HttpActionType)}

	for _, f := range in.Fields {
		decl.Fields = append(decl.Fields, f.Field)
		decl.Constructor.Parameters = append(decl.Constructor.Parameters, janet.Parameter{
			Name: f.Field.Name,
			Type: f.Field.Type,
		})
		imports = append(imports, f.Imports...)
	}

	if HasResponse(in.ResponseType) {
		marker := janet.Marker(janet.ResponseType)
		decl.Response = &janet.Field{
			Name:       janet.ResponseFieldName,
			Type:       in.ResponseType,
			Annotation: &marker,
		}
		decl.Accessor = &janet.Accessor{
			Name:   janet.ResponseAccessor,
			Type:   in.ResponseType,
			Result: "this." + janet.ResponseFieldName,
		}
		imports = append(imports, janet.AnnotationImport(janet.ResponseType))
	}

	imports = append(imports, ResponseTypeImports(in.SourceImports, in.ResponseType)...)
	decl.Imports = DedupImports(imports)

	return decl
}

// HasResponse reports whether a method declared to return t produces a
// value. Both void and any type mentioning Void (Call<Void>) count as none.
func HasResponse(t java.TypeModel) bool {
	if t.IsVoid() || t.Name == "" {
		return false
	}
	return !strings.Contains(t.String(), "Void")
}

// ResponseTypeImports picks the source imports whose name contains the
// response type as written. This is a heuristic: it misses aliased and
// wildcard imports and matches unrelated names sharing the same text.
func ResponseTypeImports(imports []java.ImportModel, response java.TypeModel) []java.ImportModel {
	text := response.String()
	if text == "" {
		return nil
	}
	var matched []java.ImportModel
	for _, imp := range imports {
		if strings.Contains(imp.String(), text) {
			matched = append(matched, imp)
		}
	}
	return matched
}

// DedupImports drops repeated imports, keeping the first occurrence.
func DedupImports(imports []java.ImportModel) []java.ImportModel {
	seen := make(map[java.ImportModel]bool, len(imports))
	result := make([]java.ImportModel, 0, len(imports))
	for _, imp := range imports {
		if seen[imp] {
			continue
		}
		seen[imp] = true
		result = append(result, imp)
	}
	return result
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
