package format

import (
	"encoding/json"
	"io"

	sitter "github.com/smacker/go-tree-sitter"
)

// ASTJSONEncoder dumps a Java syntax tree as JSON. Only named nodes are
// included; leaves carry their source text.
type ASTJSONEncoder struct {
	w      io.Writer
	source []byte
}

func NewASTJSONEncoder(w io.Writer, source []byte) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w, source: source}
}

func (e *ASTJSONEncoder) Encode(node *sitter.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *sitter.Node) ([]byte, error) {
	return json.MarshalIndent(e.nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Field    string         `json:"field,omitempty"`
	Span     astJSONSpan    `json:"span"`
	Token    string         `json:"token,omitempty"`
	Error    bool           `json:"error,omitempty"`
	Missing  bool           `json:"missing,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func position(p sitter.Point) astJSONPosition {
	return astJSONPosition{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func (e *ASTJSONEncoder) nodeToJSON(n *sitter.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:    n.Type(),
		Span:    astJSONSpan{Start: position(n.StartPoint()), End: position(n.EndPoint())},
		Error:   n.Type() == "ERROR",
		Missing: n.IsMissing(),
	}

	if n.NamedChildCount() == 0 {
		jn.Token = n.Content(e.source)
		return jn
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		cj := e.nodeToJSON(child)
		cj.Field = n.FieldNameForChild(i)
		jn.Children = append(jn.Children, cj)
	}
	return jn
}
