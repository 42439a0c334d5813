package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/retrojanet/janet"
)

// LineEncoder writes a tab-separated summary of a declaration, one line per
// class, field, and accessor.
type LineEncoder struct {
	w    io.Writer
	decl *janet.Declaration
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(decl *janet.Declaration) error {
	e.decl = decl
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	d := e.decl

	fmt.Fprintf(&sb, "action\t%s\t%s\n", d.Name, annotationString(d.Annotation))
	for _, f := range d.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\t%s\n", f.Name, f.Type.String(), fieldAnnotationString(f))
	}
	if d.Response != nil {
		fmt.Fprintf(&sb, "response\t%s\t%s\n", d.Response.Name, d.Response.Type.String())
	}
	if d.Accessor != nil {
		fmt.Fprintf(&sb, "accessor\t%s\t%s\n", d.Accessor.Name, d.Accessor.Type.String())
	}
	return []byte(sb.String()), nil
}

func fieldAnnotationString(f janet.Field) string {
	if f.Annotation == nil {
		return "-"
	}
	return annotationString(*f.Annotation)
}

func annotationString(a janet.Annotation) string {
	var sb strings.Builder
	writeAnnotation(&sb, a)
	return sb.String()
}
