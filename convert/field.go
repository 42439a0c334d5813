package convert

import (
	"strings"

	"github.com/dhamidi/retrojanet/janet"
	"github.com/dhamidi/retrojanet/java"
)

var fileTypeMarkers = []string{"TypedFile", "File"}

const requestBodyMarker = "RequestBody"

// MappedField is a parameter translated to the target scheme together with
// the imports the translation needs.
type MappedField struct {
	Field   janet.Field
	Imports []java.ImportModel
	// Binding is BindingNone when the parameter had no recognized annotation.
	Binding Binding
	// NeedsReview is set when the field carries a placeholder annotation.
	NeedsReview bool
}

// MapParameter translates one method parameter into a field.
func MapParameter(p java.ParameterModel) MappedField {
	mapped := MappedField{
		Field: janet.Field{Name: p.Name, Type: p.Type},
	}

	typ, imp, substituted := substituteType(p.Type)
	if substituted {
		mapped.Field.Type = typ
		mapped.Imports = append(mapped.Imports, imp)
	}

	for _, ann := range p.Annotations {
		binding := BindingForTag(ann.SimpleName())
		if binding == BindingNone {
			continue
		}
		rule := bindingRules[binding]
		mapped.Binding = binding
		if rule.stub {
			placeholder := janet.Placeholder(rule.target)
			mapped.Field.Annotation = &placeholder
			mapped.NeedsReview = true
			break
		}
		target := targetAnnotation(rule, ann)
		mapped.Field.Annotation = &target
		mapped.Imports = append(mapped.Imports, janet.AnnotationImport(rule.target))
		break
	}

	return mapped
}

// substituteType replaces file and raw request body parameters with the
// body types of the target scheme. The check is a substring match on the
// type as written, so wrapped and generic forms are caught as well.
func substituteType(t java.TypeModel) (java.TypeModel, java.ImportModel, bool) {
	text := t.String()
	if containsAny(text, fileTypeMarkers...) {
		return java.SimpleType(janet.FileBodyType), janet.BodyImport(janet.FileBodyType), true
	}
	if strings.Contains(text, requestBodyMarker) {
		return java.SimpleType(janet.BytesArrayBodyType), janet.BodyImport(janet.BytesArrayBodyType), true
	}
	return t, java.ImportModel{}, false
}

func targetAnnotation(rule bindingRule, source java.AnnotationModel) janet.Annotation {
	if rule.primary == "" {
		return janet.Marker(rule.target)
	}
	value, ok := source.Value(rule.primary)
	if !ok {
		return janet.Marker(rule.target)
	}
	if rule.secondary != "" {
		if extra, ok := source.Value(rule.secondary); ok {
			return janet.Named(rule.target,
				janet.Argument{Name: "value", Value: value},
				janet.Argument{Name: rule.secondaryTarget, Value: extra},
			)
		}
	}
	return janet.SingleMember(rule.target, value)
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
