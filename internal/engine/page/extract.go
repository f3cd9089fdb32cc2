package page

import (
	"bytes"
	"io"
	"net/url"
	"path"
	"strings"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags holds the markup of the stylesheet links and scripts of one index file.
type Tags struct {
	Styles  []string
	Scripts []string
}

// Extract parses an index document and returns its <link> elements from the head
// and its <script> elements from the body, in document order. Relative href and src
// references are prefixed with prefix when it is not empty.
func Extract(r io.Reader, prefix string) (Tags, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Tags{}, domain.Tag(domain.ErrMalformedDocument, zerr.Wrap(err, "failed to parse index document"))
	}

	var tags Tags
	if head := findElement(doc, atom.Head); head != nil {
		for _, n := range collect(head, atom.Link) {
			s, err := renderTag(n, "href", prefix)
			if err != nil {
				return Tags{}, err
			}
			tags.Styles = append(tags.Styles, s)
		}
	}
	if body := findElement(doc, atom.Body); body != nil {
		for _, n := range collect(body, atom.Script) {
			s, err := renderTag(n, "src", prefix)
			if err != nil {
				return Tags{}, err
			}
			tags.Scripts = append(tags.Scripts, s)
		}
	}
	return tags, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func collect(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

func renderTag(n *html.Node, refAttr, prefix string) (string, error) {
	if prefix != "" {
		for i, a := range n.Attr {
			if a.Namespace == "" && a.Key == refAttr && isRelativeRef(a.Val) {
				n.Attr[i].Val = path.Join(prefix, a.Val)
			}
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", zerr.Wrap(err, "failed to render tag")
	}
	return buf.String(), nil
}

// isRelativeRef reports whether ref resolves against the document's directory.
func isRelativeRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "#") {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
