package xmltree

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Builder assembles a new XML document.
type Builder struct {
	doc  *etree.Document
	root *Element
}

// NewBuilder starts a document with an XML declaration and a root element.
// attrs are name/value pairs.
func NewBuilder(rootTag string, attrs ...string) *Builder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)
	for i := 0; i+1 < len(attrs); i += 2 {
		root.CreateAttr(attrs[i], attrs[i+1])
	}
	return &Builder{doc: doc, root: &Element{el: root}}
}

// Root returns the root element.
func (b *Builder) Root() *Element {
	return b.root
}

// AddChild appends a child element named tag and returns it.
func (e *Element) AddChild(tag string) *Element {
	return &Element{el: e.el.CreateElement(tag)}
}

// AddText appends a child element named tag holding text.
func (e *Element) AddText(tag, text string) *Element {
	child := e.AddChild(tag)
	child.el.SetText(text)
	return child
}

// WriteTo writes the indented document to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.doc.Indent(2)
	n, err := b.doc.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write XML: %w", err)
	}
	return n, nil
}
