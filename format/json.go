package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/retrojanet/janet"
)

type JSONEncoder struct {
	w    io.Writer
	decl *janet.Declaration
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(decl *janet.Declaration) error {
	e.decl = decl
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildDeclarationData(), "", "  ")
}

type jsonDeclaration struct {
	Name       string         `json:"name"`
	Package    string         `json:"package,omitempty"`
	File       string         `json:"file"`
	Imports    []string       `json:"imports,omitempty"`
	Annotation jsonAnnotation `json:"annotation"`
	Fields     []jsonField    `json:"fields,omitempty"`
	Response   *jsonField     `json:"response,omitempty"`
	Accessor   string         `json:"accessor,omitempty"`
}

type jsonAnnotation struct {
	Tag         string            `json:"tag"`
	Arguments   map[string]string `json:"arguments,omitempty"`
	Placeholder bool              `json:"placeholder,omitempty"`
}

type jsonField struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Annotation *jsonAnnotation `json:"annotation,omitempty"`
}

func (e *JSONEncoder) buildDeclarationData() jsonDeclaration {
	d := e.decl
	data := jsonDeclaration{
		Name:       d.Name,
		Package:    d.Package,
		File:       d.FileName(),
		Annotation: buildAnnotationData(d.Annotation),
	}
	for _, imp := range d.Imports {
		name := imp.String()
		if imp.IsStatic {
			name = "static " + name
		}
		data.Imports = append(data.Imports, name)
	}
	for _, f := range d.Fields {
		data.Fields = append(data.Fields, buildFieldData(f))
	}
	if d.Response != nil {
		f := buildFieldData(*d.Response)
		data.Response = &f
	}
	if d.Accessor != nil {
		data.Accessor = d.Accessor.Name
	}
	return data
}

func buildFieldData(f janet.Field) jsonField {
	data := jsonField{Name: f.Name, Type: f.Type.String()}
	if f.Annotation != nil {
		ann := buildAnnotationData(*f.Annotation)
		data.Annotation = &ann
	}
	return data
}

func buildAnnotationData(a janet.Annotation) jsonAnnotation {
	data := jsonAnnotation{Tag: a.Tag, Placeholder: a.Placeholder}
	if len(a.Arguments) > 0 {
		data.Arguments = make(map[string]string, len(a.Arguments))
		for _, arg := range a.Arguments {
			data.Arguments[arg.Name] = arg.Value.Text
		}
	}
	return data
}
