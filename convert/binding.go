package convert

// Binding is how a parameter value travels with the request.
type Binding int

const (
	BindingNone Binding = iota
	BindingField
	BindingFieldMap
	BindingBody
	BindingHeader
	BindingHeaders
	BindingPart
	BindingPartMap
	BindingPath
	BindingQuery
	BindingQueryMap
	BindingURL
)

var bindingNames = map[Binding]string{
	BindingNone:     "None",
	BindingField:    "Field",
	BindingFieldMap: "FieldMap",
	BindingBody:     "Body",
	BindingHeader:   "Header",
	BindingHeaders:  "Headers",
	BindingPart:     "Part",
	BindingPartMap:  "PartMap",
	BindingPath:     "Path",
	BindingQuery:    "Query",
	BindingQueryMap: "QueryMap",
	BindingURL:      "Url",
}

func (b Binding) String() string {
	if name, ok := bindingNames[b]; ok {
		return name
	}
	return "Unknown"
}

// sourceBindings maps Retrofit parameter annotations to bindings.
var sourceBindings = map[string]Binding{
	"Field":    BindingField,
	"FieldMap": BindingFieldMap,
	"Body":     BindingBody,
	"Header":   BindingHeader,
	"Headers":  BindingHeaders,
	"Part":     BindingPart,
	"PartMap":  BindingPartMap,
	"Path":     BindingPath,
	"Query":    BindingQuery,
	"QueryMap": BindingQueryMap,
	"Url":      BindingURL,
}

// BindingForTag returns the binding of a Retrofit parameter annotation, or
// BindingNone for tags the converter does not know.
func BindingForTag(tag string) Binding {
	return sourceBindings[tag]
}

// bindingRule describes the target annotation of a binding.
//
// primary is copied as "value"; secondary, when present on the source, is
// copied under secondaryTarget and switches the annotation to the named form.
type bindingRule struct {
	target          string
	primary         string
	secondary       string
	secondaryTarget string
	stub            bool
}

var bindingRules = map[Binding]bindingRule{
	BindingField:    {target: "Field", primary: "value"},
	BindingFieldMap: {target: "FieldMap", stub: true},
	BindingBody:     {target: "Body"},
	BindingHeader:   {target: "RequestHeader", primary: "value"},
	BindingHeaders:  {target: "Headers", stub: true},
	BindingPart:     {target: "Part", primary: "value", secondary: "encoding", secondaryTarget: "encoding"},
	BindingPartMap:  {target: "PartMap", stub: true},
	BindingPath:     {target: "Path", primary: "value", secondary: "encoded", secondaryTarget: "encoded"},
	BindingQuery:    {target: "Query", primary: "value", secondary: "encoded", secondaryTarget: "encodeName"},
	BindingQueryMap: {target: "QueryMap", stub: true},
	BindingURL:      {target: "Url", stub: true},
}
