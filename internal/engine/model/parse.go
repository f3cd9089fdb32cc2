package model

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Document is a parsed XML document. Nodes before and after the root element
// (XML declaration, comments, whitespace) are kept so that writing the document
// reproduces them.
type Document struct {
	prolog []Node
	Root   *Element
	epilog []Node
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, "model document not found"), "path", path))
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open model document"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	doc, err := Parse(f)
	if err != nil {
		return nil, domain.With(err, "path", path)
	}
	return doc, nil
}

// Parse reads a document from r.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	var stack []*Element
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(zerr.Wrap(err, "failed to parse XML"))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attr: append([]xml.Attr(nil), t.Attr...)}
			switch {
			case len(stack) > 0:
				stack[len(stack)-1].AppendChild(el)
			case doc.Root == nil:
				doc.Root = el
			default:
				return nil, malformed(zerr.With(zerr.New("multiple root elements"), "element", formatName(t.Name)))
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].Name != t.Name {
				return nil, malformed(zerr.With(zerr.New("unexpected end element"), "element", formatName(t.Name)))
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, malformed(zerr.New("text outside of root element"))
			}
			doc.add(stack, CharData(t))

		case xml.Comment:
			doc.add(stack, Comment(t))

		case xml.ProcInst:
			doc.add(stack, ProcInst{Target: t.Target, Inst: string(t.Inst)})

		case xml.Directive:
			doc.add(stack, Directive(t))
		}
	}

	if len(stack) > 0 {
		return nil, malformed(zerr.With(zerr.New("unclosed element"), "element", stack[len(stack)-1].Tag()))
	}
	if doc.Root == nil {
		return nil, malformed(zerr.New("document has no root element"))
	}
	return doc, nil
}

// ParseString parses a document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) add(stack []*Element, n Node) {
	switch {
	case len(stack) > 0:
		stack[len(stack)-1].AppendChild(n)
	case d.Root == nil:
		d.prolog = append(d.prolog, n)
	default:
		d.epilog = append(d.epilog, n)
	}
}

func malformed(err error) error {
	return domain.Tag(domain.ErrMalformedDocument, err)
}
