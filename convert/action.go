package convert

import (
	"github.com/dhamidi/retrojanet/janet"
	"github.com/dhamidi/retrojanet/java"
)

// Method-level Retrofit annotations.
const (
	tagGET            = "GET"
	tagPOST           = "POST"
	tagPUT            = "PUT"
	tagDELETE         = "DELETE"
	tagHEAD           = "HEAD"
	tagPATCH          = "PATCH"
	tagFormURLEncoded = "FormUrlEncoded"
	tagMultipart      = "Multipart"
	tagHeaders        = "Headers"
)

var verbTags = map[string]janet.Method{
	tagGET:    janet.MethodGet,
	tagPOST:   janet.MethodPost,
	tagPUT:    janet.MethodPut,
	tagDELETE: janet.MethodDelete,
	tagHEAD:   janet.MethodHead,
	tagPATCH:  janet.MethodPatch,
}

// ActionSpec is what a Retrofit method says about its request.
type ActionSpec struct {
	Method  janet.Method
	Type    janet.Type
	Path    java.Expr
	Headers *java.Expr
}

// IsCompact reports whether every attribute other than the path holds its
// default, so that @HttpAction(path) is enough to describe the action.
func (s ActionSpec) IsCompact() bool {
	return s.Method == janet.MethodGet && s.Headers == nil && s.Type == janet.TypeSimple
}

// InterpretMethod classifies the annotations of m. It returns false when m
// has no HTTP verb annotation and therefore does not describe a request.
//
// When several verbs are present the last one wins, while the path is taken
// from the first annotation, starting at the first verb, that has a value.
func InterpretMethod(m java.MethodModel) (ActionSpec, bool) {
	spec := ActionSpec{Type: janet.TypeSimple}
	var (
		hasVerb bool
		hasPath bool
	)

	for _, ann := range m.Annotations {
		tag := ann.SimpleName()
		if verb, ok := verbTags[tag]; ok {
			spec.Method = verb
			hasVerb = true
		}
		switch tag {
		case tagFormURLEncoded:
			spec.Type = janet.TypeFormURLEncoded
		case tagMultipart:
			spec.Type = janet.TypeMultipart
		case tagHeaders:
			if headers, ok := ann.Value("value"); ok {
				spec.Headers = &headers
			}
		}
		if !hasPath && hasVerb {
			if path, ok := ann.Value("value"); ok {
				spec.Path = path
				hasPath = true
			}
		}
	}

	if !hasVerb {
		return ActionSpec{}, false
	}
	if !hasPath {
		spec.Path = java.StringLiteral("")
	}
	return spec, true
}

// ActionAnnotation builds the class-level @HttpAction for spec.
func ActionAnnotation(spec ActionSpec) janet.Annotation {
	if spec.IsCompact() {
		return janet.SingleMember(janet.HttpActionType, spec.Path)
	}
	args := []janet.Argument{{Name: "value", Value: spec.Path}}
	if spec.Headers != nil {
		args = append(args, janet.Argument{Name: "headers", Value: *spec.Headers})
	}
	if spec.Type != janet.TypeSimple {
		args = append(args, janet.Argument{Name: "type", Value: janet.TypeExpr(spec.Type)})
	}
	if spec.Method != janet.MethodGet {
		args = append(args, janet.Argument{Name: "method", Value: janet.MethodExpr(spec.Method)})
	}
	return janet.Named(janet.HttpActionType, args...)
}
