// Package xmltree loads XML configuration files into a navigable element
// tree and builds new ones. It wraps github.com/beevik/etree so callers only
// see the small surface the translator needs.
package xmltree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

// Document is a parsed XML file.
type Document struct {
	doc  *etree.Document
	path string
}

// Load reads and parses the XML file at path.
func Load(path string) (*Document, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	d, err := Parse(file)
	if err != nil {
		return nil, err
	}
	d.path = path
	return d, nil
}

// Parse reads an XML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString is Parse for in-memory XML.
func ParseString(s string) (*Document, error) {
	return Parse(bytes.NewBufferString(s))
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Root returns the top-level element named tag. A prefixed element such as
// <x:security_log> does not match an unprefixed tag.
func (d *Document) Root(tag string) (*Element, bool) {
	if d == nil || d.doc == nil {
		return nil, false
	}
	el := childElement(&d.doc.Element, tag)
	if el == nil {
		return nil, false
	}
	return &Element{el: el}, true
}

// childElement returns the first child of parent whose qualified name,
// prefix included, equals tag.
func childElement(parent *etree.Element, tag string) *etree.Element {
	for child := range parent.ChildElementsSeq() {
		if child.FullTag() == tag {
			return child
		}
	}
	return nil
}

// Element is a node of a Document.
type Element struct {
	el *etree.Element
}

// Tag returns the qualified tag name, including any namespace prefix.
func (e *Element) Tag() string {
	return e.el.FullTag()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}
