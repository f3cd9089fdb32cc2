// Package model edits provisioning model documents (model.xml) as an ordered XML tree.
package model

import (
	"encoding/xml"
	"strings"
)

// Node is a node of a document tree: *Element, CharData, Comment, ProcInst or Directive.
type Node interface {
	isNode()
}

// Element is an XML element with its qualified name, ordered attributes and children.
// Names keep the prefix they were written with.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []Node
}

// CharData is text content.
type CharData string

// Comment is the text of a comment, without delimiters.
type Comment string

// ProcInst is a processing instruction such as the XML declaration.
type ProcInst struct {
	Target string
	Inst   string
}

// Directive is a <!...> declaration, without delimiters.
type Directive string

func (*Element) isNode()  {}
func (CharData) isNode()  {}
func (Comment) isNode()   {}
func (ProcInst) isNode()  {}
func (Directive) isNode() {}

// NewElement creates an element without attributes or children.
func NewElement(tag string) *Element {
	return &Element{Name: qualifiedName(tag)}
}

func qualifiedName(tag string) xml.Name {
	if prefix, local, ok := strings.Cut(tag, ":"); ok {
		return xml.Name{Space: prefix, Local: local}
	}
	return xml.Name{Local: tag}
}

func formatName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Tag returns the qualified tag name as written in the source, e.g. "catalog" or "x:page".
func (e *Element) Tag() string {
	return formatName(e.Name)
}

// Attribute returns the value of the attribute with the given qualified name.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attr {
		if formatName(a.Name) == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, keeping its position if it already exists.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.Attr {
		if formatName(a.Name) == name {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, xml.Attr{Name: qualifiedName(name), Value: value})
}

// ChildFunc returns the first child element matching fn.
func (e *Element) ChildFunc(fn func(*Element) bool) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && fn(el) {
			return el
		}
	}
	return nil
}

// Child returns the first child element with the given tag.
func (e *Element) Child(tag string) *Element {
	return e.ChildFunc(func(el *Element) bool { return el.Tag() == tag })
}

// ChildElements returns the element children with the given tag, in document order.
func (e *Element) ChildElements(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Tag() == tag {
			out = append(out, el)
		}
	}
	return out
}

// AppendChild adds n as the last child.
func (e *Element) AppendChild(n Node) {
	e.Children = append(e.Children, n)
}

// Text returns the concatenated text of the element and its descendants.
func (e *Element) Text() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case CharData:
			sb.WriteString(string(n))
		case *Element:
			n.collectText(sb)
		}
	}
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	e.Children = []Node{CharData(text)}
}
