package model

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;",
	)
)

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, n := range d.prolog {
		writeNode(&buf, n)
	}
	writeNode(&buf, d.Root)
	for _, n := range d.epilog {
		writeNode(&buf, n)
	}
	return buf.WriteTo(w)
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

// WriteFile writes the serialized document to path.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, d.Bytes(), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write model document"), "path", path)
	}
	return nil
}

func writeNode(buf *bytes.Buffer, n Node) {
	switch t := n.(type) {
	case *Element:
		writeElement(buf, t)
	case CharData:
		textEscaper.WriteString(buf, string(t)) //nolint:errcheck // bytes.Buffer writes do not fail
	case Comment:
		buf.WriteString("<!--")
		buf.WriteString(string(t))
		buf.WriteString("-->")
	case ProcInst:
		buf.WriteString("<?")
		buf.WriteString(t.Target)
		if t.Inst != "" {
			buf.WriteByte(' ')
			buf.WriteString(t.Inst)
		}
		buf.WriteString("?>")
	case Directive:
		buf.WriteString("<!")
		buf.WriteString(string(t))
		buf.WriteByte('>')
	}
}

func writeElement(buf *bytes.Buffer, e *Element) {
	tag := e.Tag()
	buf.WriteByte('<')
	buf.WriteString(tag)
	for _, a := range e.Attr {
		writeAttr(buf, a)
	}
	if len(e.Children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	for _, c := range e.Children {
		writeNode(buf, c)
	}
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

func writeAttr(buf *bytes.Buffer, a xml.Attr) {
	buf.WriteByte(' ')
	buf.WriteString(formatName(a.Name))
	buf.WriteString(`="`)
	attrEscaper.WriteString(buf, a.Value) //nolint:errcheck // bytes.Buffer writes do not fail
	buf.WriteByte('"')
}
