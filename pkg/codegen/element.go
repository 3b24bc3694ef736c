package codegen

import (
	"strings"
)

// Attr is a single attribute on an element. Order is significant: writers
// emit attributes exactly as they appear in the slice.
type Attr struct {
	Name  string
	Value Expr
}

// Element is a rendered output element. An empty Tag marks an anonymous
// fragment (`<>…</>`). Children hold nested expressions in rendering order;
// elements with neither attributes nor children are written self-closing.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Expr
}

func (*Element) isExpr() {}

// Fragment groups sibling expressions under an anonymous fragment wrapper.
func Fragment(children ...Expr) *Element {
	return &Element{Children: children}
}

// SetAttr appends an attribute, keeping declaration order.
func (e *Element) SetAttr(name string, value Expr) {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// HasAttr reports whether an attribute with the given name is present.
func (e *Element) HasAttr(name string) bool {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// Writer turns expressions into indented JSX text. The zero value is not
// usable; construct one with NewWriter.
type Writer struct {
	indent string
}

// NewWriter builds a writer emitting width spaces per nesting level. Widths
// below one fall back to two spaces, matching the default generator output.
func NewWriter(width int) *Writer {
	if width < 1 {
		width = 2
	}
	return &Writer{indent: strings.Repeat(" ", width)}
}

// Block renders an expression as an indented block starting at the given
// nesting level, without a trailing newline.
func (w *Writer) Block(expr Expr, level int) string {
	var sb strings.Builder
	w.writeBlock(&sb, expr, level)
	return sb.String()
}

// Inline renders an expression on a single line. Used for expressions in
// attribute position, where the open tag must stay on one line.
func (w *Writer) Inline(expr Expr) string {
	var sb strings.Builder
	w.writeInline(&sb, expr)
	return sb.String()
}

func (w *Writer) writeBlock(sb *strings.Builder, expr Expr, level int) {
	pad := strings.Repeat(w.indent, level)
	switch v := expr.(type) {
	case *Element:
		sb.WriteString(pad)
		w.writeOpenTag(sb, v)
		if len(v.Children) == 0 {
			return
		}
		for _, child := range v.Children {
			sb.WriteString("\n")
			w.writeBlock(sb, child, level+1)
		}
		sb.WriteString("\n")
		sb.WriteString(pad)
		w.writeCloseTag(sb, v)
	case Literal:
		sb.WriteString(pad)
		sb.WriteString("{")
		sb.WriteString(v.Code)
		sb.WriteString("}")
	case Raw:
		sb.WriteString(pad)
		sb.WriteString(v.Code)
	}
}

func (w *Writer) writeInline(sb *strings.Builder, expr Expr) {
	switch v := expr.(type) {
	case *Element:
		w.writeOpenTag(sb, v)
		if len(v.Children) == 0 {
			return
		}
		for _, child := range v.Children {
			w.writeInline(sb, child)
		}
		w.writeCloseTag(sb, v)
	case Literal:
		sb.WriteString("{")
		sb.WriteString(v.Code)
		sb.WriteString("}")
	case Raw:
		sb.WriteString(v.Code)
	}
}

func (w *Writer) writeOpenTag(sb *strings.Builder, e *Element) {
	if e.Tag == "" {
		if len(e.Children) == 0 {
			sb.WriteString("<></>")
			return
		}
		sb.WriteString("<>")
		return
	}
	sb.WriteString("<")
	sb.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		sb.WriteString("=")
		w.writeAttrValue(sb, attr.Value)
	}
	if len(e.Children) == 0 {
		sb.WriteString(" />")
		return
	}
	sb.WriteString(">")
}

func (w *Writer) writeCloseTag(sb *strings.Builder, e *Element) {
	if e.Tag == "" {
		sb.WriteString("</>")
		return
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteString(">")
}

func (w *Writer) writeAttrValue(sb *strings.Builder, value Expr) {
	switch v := value.(type) {
	case Literal:
		if v.Str {
			sb.WriteString(v.Code)
			return
		}
		sb.WriteString("{")
		sb.WriteString(v.Code)
		sb.WriteString("}")
	case Raw:
		sb.WriteString("{")
		sb.WriteString(v.Code)
		sb.WriteString("}")
	case *Element:
		sb.WriteString("{")
		w.writeInline(sb, v)
		sb.WriteString("}")
	}
}
