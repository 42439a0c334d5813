package java

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

type Option func(*sourceReader)

// WithFile sets the file name reported in syntax errors.
func WithFile(path string) Option {
	return func(r *sourceReader) {
		r.file = path
	}
}

type sourceReader struct {
	file   string
	source []byte
}

// CompilationUnitFromFile reads and parses a .java file.
func CompilationUnitFromFile(path string) (*CompilationUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read java file: %w", err)
	}
	return CompilationUnitFromSource(data, WithFile(path))
}

// CompilationUnitFromSource parses Java source text. Any syntax error in the
// input is reported as a *SyntaxError; no partial unit is returned.
func CompilationUnitFromSource(source []byte, opts ...Option) (*CompilationUnit, error) {
	r := &sourceReader{source: source}
	for _, opt := range opts {
		opt(r)
	}

	root, err := SyntaxTree(source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.displayName(), err)
	}
	if root.HasError() {
		return nil, r.syntaxError(root)
	}

	unit := &CompilationUnit{File: r.file}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			unit.Package = r.packageName(child)
		case "import_declaration":
			unit.Imports = append(unit.Imports, r.importModel(child))
		case "class_declaration", "interface_declaration", "enum_declaration",
			"record_declaration", "annotation_type_declaration":
			unit.Types = append(unit.Types, r.classModel(child))
		}
	}
	unit.Methods = r.collectMethods(root, nil)

	return unit, nil
}

// SyntaxTree parses source and returns the root of its concrete syntax tree.
// Syntax errors are not reported; they appear as ERROR or missing nodes.
func SyntaxTree(source []byte) (*sitter.Node, error) {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, err
	}
	return tree.RootNode(), nil
}

func (r *sourceReader) displayName() string {
	if r.file == "" {
		return "<source>"
	}
	return r.file
}

func (r *sourceReader) text(node *sitter.Node) string {
	return node.Content(r.source)
}

func (r *sourceReader) syntaxError(root *sitter.Node) error {
	bad := firstErrorNode(root)
	if bad == nil {
		bad = root
	}
	pos := bad.StartPoint()
	msg := "unexpected input"
	if bad.IsMissing() {
		msg = "missing " + bad.Type()
	}
	return &SyntaxError{
		File:    r.file,
		Line:    int(pos.Row) + 1,
		Column:  int(pos.Column) + 1,
		Message: msg,
	}
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "ERROR" || child.IsMissing() || child.HasError() {
			if found := firstErrorNode(child); found != nil {
				return found
			}
		}
	}
	return nil
}

func (r *sourceReader) packageName(node *sitter.Node) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
			return r.text(child)
		}
	}
	return ""
}

func (r *sourceReader) importModel(node *sitter.Node) ImportModel {
	imp := ImportModel{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "static":
			imp.IsStatic = true
		case "asterisk":
			imp.IsWildcard = true
		case "scoped_identifier", "identifier":
			imp.Name = r.text(child)
		}
	}
	return imp
}

func (r *sourceReader) classModel(node *sitter.Node) *ClassModel {
	model := &ClassModel{}
	switch node.Type() {
	case "interface_declaration":
		model.Kind = ClassKindInterface
	case "enum_declaration":
		model.Kind = ClassKindEnum
	case "record_declaration":
		model.Kind = ClassKindRecord
	case "annotation_type_declaration":
		model.Kind = ClassKindAnnotation
	default:
		model.Kind = ClassKindClass
	}

	if name := node.ChildByFieldName("name"); name != nil {
		model.Name = r.text(name)
	}
	if modifiers := firstChildOfType(node, "modifiers"); modifiers != nil {
		model.Annotations = r.annotationsFromModifiers(modifiers)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			child := body.NamedChild(i)
			if child.Type() == "method_declaration" {
				model.Methods = append(model.Methods, r.methodModel(child))
			}
		}
	}
	return model
}

// collectMethods walks the tree in source order and returns every method
// declaration it finds, including methods of nested and local types.
func (r *sourceReader) collectMethods(node *sitter.Node, acc []MethodModel) []MethodModel {
	if node.Type() == "method_declaration" {
		acc = append(acc, r.methodModel(node))
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		acc = r.collectMethods(node.NamedChild(i), acc)
	}
	return acc
}

func (r *sourceReader) methodModel(node *sitter.Node) MethodModel {
	model := MethodModel{
		Line: int(node.StartPoint().Row) + 1,
	}

	if modifiers := firstChildOfType(node, "modifiers"); modifiers != nil {
		model.Annotations = r.annotationsFromModifiers(modifiers)
		for _, kw := range modifierKeywords(modifiers) {
			switch kw {
			case "default":
				model.IsDefault = true
			case "static":
				model.IsStatic = true
			}
		}
	}
	if name := node.ChildByFieldName("name"); name != nil {
		model.Name = r.text(name)
	}
	if typ := node.ChildByFieldName("type"); typ != nil {
		model.ReturnType = r.typeModel(typ)
	}
	if dims := node.ChildByFieldName("dimensions"); dims != nil {
		model.ReturnType.ArrayDepth += strings.Count(r.text(dims), "[")
	}
	if params := node.ChildByFieldName("parameters"); params != nil {
		model.Parameters = r.parameters(params)
	}
	return model
}

func (r *sourceReader) parameters(node *sitter.Node) []ParameterModel {
	var params []ParameterModel
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "formal_parameter":
			params = append(params, r.formalParameter(child))
		case "spread_parameter":
			params = append(params, r.spreadParameter(child))
		}
	}
	return params
}

func (r *sourceReader) formalParameter(node *sitter.Node) ParameterModel {
	param := ParameterModel{}
	if modifiers := firstChildOfType(node, "modifiers"); modifiers != nil {
		r.applyParameterModifiers(modifiers, &param)
	}
	if typ := node.ChildByFieldName("type"); typ != nil {
		param.Type = r.typeModel(typ)
	}
	if name := node.ChildByFieldName("name"); name != nil {
		param.Name = r.text(name)
	}
	if dims := node.ChildByFieldName("dimensions"); dims != nil {
		param.Type.ArrayDepth += strings.Count(r.text(dims), "[")
	}
	return param
}

func (r *sourceReader) spreadParameter(node *sitter.Node) ParameterModel {
	param := ParameterModel{IsVarargs: true}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "modifiers":
			r.applyParameterModifiers(child, &param)
		case "variable_declarator":
			if name := child.ChildByFieldName("name"); name != nil {
				param.Name = r.text(name)
			}
		default:
			if isTypeNode(child.Type()) {
				param.Type = r.typeModel(child)
			}
		}
	}
	param.Type.ArrayDepth++
	return param
}

func (r *sourceReader) applyParameterModifiers(modifiers *sitter.Node, param *ParameterModel) {
	param.Annotations = r.annotationsFromModifiers(modifiers)
	for _, kw := range modifierKeywords(modifiers) {
		if kw == "final" {
			param.IsFinal = true
		}
	}
}

func isTypeNode(kind string) bool {
	switch kind {
	case "void_type", "integral_type", "floating_point_type", "boolean_type",
		"type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"annotated_type":
		return true
	}
	return false
}

func (r *sourceReader) typeModel(node *sitter.Node) TypeModel {
	switch node.Type() {
	case "generic_type":
		model := TypeModel{}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "type_arguments" {
				for j := 0; j < int(child.NamedChildCount()); j++ {
					model.TypeArguments = append(model.TypeArguments, r.typeModel(child.NamedChild(j)))
				}
				continue
			}
			model.Name = r.text(child)
		}
		return model
	case "array_type":
		var model TypeModel
		if elem := node.ChildByFieldName("element"); elem != nil {
			model = r.typeModel(elem)
		}
		if dims := node.ChildByFieldName("dimensions"); dims != nil {
			model.ArrayDepth += strings.Count(r.text(dims), "[")
		}
		return model
	case "annotated_type":
		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			child := node.NamedChild(i)
			if isTypeNode(child.Type()) {
				return r.typeModel(child)
			}
		}
	}
	return TypeModel{Name: collapseSpace(r.text(node))}
}

func (r *sourceReader) annotationsFromModifiers(modifiers *sitter.Node) []AnnotationModel {
	var anns []AnnotationModel
	for i := 0; i < int(modifiers.NamedChildCount()); i++ {
		child := modifiers.NamedChild(i)
		switch child.Type() {
		case "marker_annotation", "annotation":
			anns = append(anns, r.annotationModel(child))
		}
	}
	return anns
}

func (r *sourceReader) annotationModel(node *sitter.Node) AnnotationModel {
	ann := AnnotationModel{Form: AnnotationMarker}
	if name := node.ChildByFieldName("name"); name != nil {
		ann.Type = r.text(name)
	}

	args := node.ChildByFieldName("arguments")
	if args == nil {
		return ann
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() == "element_value_pair" {
			ann.Form = AnnotationNormal
			pair := ElementValuePair{}
			if key := child.ChildByFieldName("key"); key != nil {
				pair.Name = r.text(key)
			}
			if value := child.ChildByFieldName("value"); value != nil {
				pair.Value = r.expr(value)
			}
			ann.Elements = append(ann.Elements, pair)
			continue
		}
		if child.Type() == "line_comment" || child.Type() == "block_comment" {
			continue
		}
		ann.Form = AnnotationSingleMember
		ann.Elements = append(ann.Elements, ElementValuePair{Name: "value", Value: r.expr(child)})
	}
	if len(ann.Elements) == 0 {
		ann.Form = AnnotationMarker
	}
	return ann
}

func (r *sourceReader) expr(node *sitter.Node) Expr {
	switch node.Type() {
	case "string_literal", "text_block":
		return Expr{Kind: ExprString, Text: r.text(node)}
	case "element_value_array_initializer", "array_initializer":
		var elems []string
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "line_comment" || child.Type() == "block_comment" {
				continue
			}
			elems = append(elems, r.expr(child).Text)
		}
		return Expr{Kind: ExprArray, Text: "{" + strings.Join(elems, ", ") + "}"}
	case "identifier", "field_access", "scoped_identifier":
		return Expr{Kind: ExprName, Text: r.text(node)}
	case "true", "false":
		return Expr{Kind: ExprBool, Text: r.text(node)}
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal",
		"binary_integer_literal", "decimal_floating_point_literal", "hex_floating_point_literal":
		return Expr{Kind: ExprNumber, Text: r.text(node)}
	}
	return Expr{Kind: ExprOther, Text: r.text(node)}
}

func firstChildOfType(node *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == kind {
			return child
		}
	}
	return nil
}

func modifierKeywords(modifiers *sitter.Node) []string {
	var kws []string
	for i := 0; i < int(modifiers.ChildCount()); i++ {
		child := modifiers.Child(i)
		if !child.IsNamed() {
			kws = append(kws, child.Type())
		}
	}
	return kws
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
