// Package xmltree is a small structured-document abstraction over etree.
//
// Callers see documents and elements only through load, tag and attribute
// access, ordered child lists, path queries, child insertion and removal, and
// indented serialization. Paths use etree's syntax, e.g.
// "./Applications/Application/uap:VisualElements".
package xmltree

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Document is a parsed XML document.
type Document struct {
	doc *etree.Document
}

// Element is a handle to one element of a Document.
// Two handles are Same when they refer to the same underlying node.
type Element struct {
	el *etree.Element
}

// Load reads and parses the XML file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses an XML document from memory.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// ParseFragment parses a single XML element, e.g. `<Capability Name="x"/>`.
// Namespace prefixes do not need to be declared in the fragment.
func ParseFragment(s string) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(strings.TrimSpace(s)); err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parsing fragment: no element in %q", s)
	}
	return &Element{el: root.Copy()}, nil
}

// Root returns the document element, or nil for an empty document.
func (d *Document) Root() *Element {
	return wrap(d.doc.Root())
}

// Bytes serializes the document, re-indenting it with the given number of
// spaces per level.
func (d *Document) Bytes(indent int) ([]byte, error) {
	d.doc.Indent(indent)
	return d.doc.WriteToBytes()
}

// WriteFile serializes the document to path, re-indenting it first.
func (d *Document) WriteFile(path string, indent int) error {
	data, err := d.Bytes(indent)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// NewElement creates a detached element. tag may carry a namespace prefix.
func NewElement(tag string) *Element {
	return &Element{el: etree.NewElement(tag)}
}

func wrap(el *etree.Element) *Element {
	if el == nil {
		return nil
	}
	return &Element{el: el}
}

// Tag returns the element tag including any namespace prefix.
func (e *Element) Tag() string {
	return e.el.FullTag()
}

// LocalName returns the tag with its namespace prefix stripped.
func (e *Element) LocalName() string {
	return LocalName(e.el.FullTag())
}

// Prefix returns the namespace prefix of the tag, or "".
func (e *Element) Prefix() string {
	return e.el.Space
}

// SetTag replaces the tag, including its namespace prefix.
func (e *Element) SetTag(tag string) {
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		e.el.Space, e.el.Tag = tag[:i], tag[i+1:]
		return
	}
	e.el.Space, e.el.Tag = "", tag
}

// Attr returns the value of the attribute key, e.g. "Name" or "xmlns:uap".
func (e *Element) Attr(key string) (string, bool) {
	a := e.el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// AttrValue returns the attribute value or "" when it is absent.
func (e *Element) AttrValue(key string) string {
	v, _ := e.Attr(key)
	return v
}

// SetAttr creates or replaces an attribute.
func (e *Element) SetAttr(key, value string) {
	e.el.CreateAttr(key, value)
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	e.el.RemoveAttr(key)
}

// Attrs returns a copy of all attributes keyed by their full name.
func (e *Element) Attrs() map[string]string {
	attrs := make(map[string]string, len(e.el.Attr))
	for _, a := range e.el.Attr {
		attrs[a.FullKey()] = a.Value
	}
	return attrs
}

// Text returns the character data directly inside the element.
func (e *Element) Text() string {
	return e.el.Text()
}

// SetText replaces the character data of the element.
func (e *Element) SetText(text string) {
	e.el.SetText(text)
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	kids := e.el.ChildElements()
	out := make([]*Element, len(kids))
	for i, k := range kids {
		out[i] = &Element{el: k}
	}
	return out
}

// Find returns the first element matching path, or nil. An invalid path
// matches nothing.
func (e *Element) Find(path string) *Element {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil
	}
	return wrap(e.el.FindElementPath(p))
}

// FindAll returns every element matching path in document order.
func (e *Element) FindAll(path string) []*Element {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil
	}
	found := e.el.FindElementsPath(p)
	out := make([]*Element, len(found))
	for i, f := range found {
		out[i] = &Element{el: f}
	}
	return out
}

// Append adds child as the last child element, detaching it from any
// previous parent.
func (e *Element) Append(child *Element) {
	e.el.AddChild(child.el)
}

// InsertAt inserts child before the child element at index. An index past
// the last child element appends.
func (e *Element) InsertAt(index int, child *Element) {
	kids := e.el.ChildElements()
	if index >= len(kids) {
		e.el.AddChild(child.el)
		return
	}
	if index < 0 {
		index = 0
	}
	e.el.InsertChildAt(kids[index].Index(), child.el)
}

// Remove detaches child from e. It is a no-op when child is not a child of e.
func (e *Element) Remove(child *Element) {
	e.el.RemoveChild(child.el)
}

// Parent returns the parent element, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	p := e.el.Parent()
	if p == nil || p.Tag == "" {
		// The document itself is an etree element with an empty tag.
		return nil
	}
	return wrap(p)
}

// Copy returns a deep, detached copy of the element.
func (e *Element) Copy() *Element {
	return &Element{el: e.el.Copy()}
}

// Same reports whether both handles refer to the same node.
func (e *Element) Same(other *Element) bool {
	return other != nil && e.el == other.el
}

// Equal reports whether two elements have the same tag, attributes and
// trimmed text. Children are not compared.
func (e *Element) Equal(other *Element) bool {
	if other == nil || e.Tag() != other.Tag() {
		return false
	}
	if strings.TrimSpace(e.Text()) != strings.TrimSpace(other.Text()) {
		return false
	}
	a, b := e.Attrs(), other.Attrs()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// LocalName strips everything up to and including the last ':' from tag.
func LocalName(tag string) string {
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}
