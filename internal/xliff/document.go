// Package xliff provides an in-memory view over an XLIFF 1.2 file.
// The Document owns the backing XML tree; Units are handles onto
// trans-unit nodes inside it and must not outlive their document.
package xliff

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the XLIFF 1.2 document namespace. Exactly one namespace
// per file is supported.
const Namespace = "urn:oasis:names:tc:xliff:document:1.2"

var (
	// ErrNoRoot indicates the file has no root element.
	ErrNoRoot = errors.New("document has no root element")

	// ErrNoNamespace indicates the root element declares no namespace.
	ErrNoNamespace = errors.New("root element has no namespace")

	// ErrNoBody indicates the document has no body element.
	ErrNoBody = errors.New("document has no body element")
)

// Document is an XLIFF 1.2 translation file. Lookup by unit id is
// index-backed; iteration follows document order.
type Document struct {
	path  string
	doc   *etree.Document
	body  *etree.Element
	index map[string]*etree.Element
}

// New builds an empty document skeleton for the given path. Nothing is
// written until Save is called.
func New(path, sourceLanguage, targetLanguage string) *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("xliff")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("version", "1.2")
	file := root.CreateElement("file")
	file.CreateAttr("source-language", sourceLanguage)
	file.CreateAttr("target-language", targetLanguage)
	file.CreateAttr("datatype", "plaintext")
	file.CreateAttr("original", "global")
	body := file.CreateElement("body")

	return &Document{
		path:  path,
		doc:   doc,
		body:  body,
		index: make(map[string]*etree.Element),
	}
}

// Load parses an existing XLIFF file. It fails if the root element is
// missing or carries no namespace, or if no body element is present.
func Load(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRoot)
	}
	if root.NamespaceURI() == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNoNamespace)
	}

	var body *etree.Element
	if file := root.SelectElement("file"); file != nil {
		body = file.SelectElement("body")
	}
	if body == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoBody)
	}

	d := &Document{
		path:  path,
		doc:   doc,
		body:  body,
		index: make(map[string]*etree.Element),
	}
	for _, el := range body.SelectElements("trans-unit") {
		d.index[el.SelectAttrValue("id", "")] = el
	}
	return d, nil
}

// Path returns the file path the document persists to.
func (d *Document) Path() string {
	return d.path
}

// SourceLanguage returns the file element's source-language attribute.
func (d *Document) SourceLanguage() string {
	return d.fileAttr("source-language")
}

// TargetLanguage returns the file element's target-language attribute.
func (d *Document) TargetLanguage() string {
	return d.fileAttr("target-language")
}

func (d *Document) fileAttr(name string) string {
	if file := d.doc.Root().SelectElement("file"); file != nil {
		return file.SelectAttrValue(name, "")
	}
	return ""
}

// Units returns the translation units in document order. The slice is
// a fresh snapshot; mutations through the document are reflected on
// the next call.
func (d *Document) Units() []*Unit {
	els := d.body.SelectElements("trans-unit")
	units := make([]*Unit, 0, len(els))
	for _, el := range els {
		units = append(units, &Unit{el: el})
	}
	return units
}

// Unit looks up a translation unit by id. Ids are compared as opaque
// strings.
func (d *Document) Unit(id string) (*Unit, bool) {
	el, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return &Unit{el: el}, true
}

// CreateUnit adds a new unit with the given source text, an empty
// target, no approval, and state forced to "new". It is inserted
// immediately after the given unit, or appended to the body when after
// is nil.
func (d *Document) CreateUnit(id, source string, after *Unit) *Unit {
	el := etree.NewElement("trans-unit")
	el.CreateAttr("id", id)
	src := el.CreateElement("source")
	src.SetText(source)
	el.CreateElement("target")

	if after != nil && after.el.Parent() == d.body {
		d.body.InsertChildAt(after.el.Index()+1, el)
	} else {
		d.body.AddChild(el)
	}
	d.index[id] = el

	u := &Unit{el: el}
	u.SetState(StateNew)
	return u
}

// RemoveUnit detaches a unit from the document.
func (d *Document) RemoveUnit(u *Unit) {
	delete(d.index, u.ID())
	d.body.RemoveChild(u.el)
}

// Save serializes the document with stable two-space indentation.
// Self-closing tags are normalized from "<tag />" to "<tag/>" so that
// files written by different tool versions diff cleanly.
func (d *Document) Save() error {
	d.doc.Indent(2)
	s, err := d.doc.WriteToString()
	if err != nil {
		return fmt.Errorf("serialize %s: %w", d.path, err)
	}
	s = strings.ReplaceAll(s, " />", "/>")
	if err := os.WriteFile(d.path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}
