package model

import (
	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	catalogTag    = "catalog"
	pageTag       = "page"
	propertiesTag = "properties"
	propertyTag   = "property"
	valueTag      = "value"
	nameAttr      = "name"
	typeAttr      = "type"

	// StringType is the value type written by Upsert.
	StringType = "string"
)

// Catalog is the root element of a model document.
type Catalog struct {
	el   *Element
	page *Page
}

// Catalog returns the typed view of the document root.
func (d *Document) Catalog() (*Catalog, error) {
	if d.Root.Tag() != catalogTag {
		return nil, domain.Tag(domain.ErrMalformedModel, malformed(
			zerr.With(zerr.New("expected document element to be 'catalog'"), "element", d.Root.Tag()),
		))
	}

	page := d.Root.Child(pageTag)
	if page == nil {
		return nil, domain.Tag(domain.ErrMissingPageElement, malformed(
			zerr.New("expected a <page> child of the <catalog> document element"),
		))
	}

	return &Catalog{el: d.Root, page: &Page{el: page}}, nil
}

// Element returns the underlying element.
func (c *Catalog) Element() *Element { return c.el }

// Page returns the first page of the catalog.
func (c *Catalog) Page() *Page { return c.page }

// Page is a <page> element.
type Page struct {
	el *Element
}

// Element returns the underlying element.
func (p *Page) Element() *Element { return p.el }

// Properties returns the page properties if present.
func (p *Page) Properties() (*Properties, bool) {
	el := p.el.Child(propertiesTag)
	if el == nil {
		return nil, false
	}
	return &Properties{el: el}, true
}

// EnsureProperties returns the page properties, appending an empty <properties>
// element first if the page has none.
func (p *Page) EnsureProperties() *Properties {
	if props, ok := p.Properties(); ok {
		return props
	}
	el := NewElement(propertiesTag)
	p.el.AppendChild(el)
	return &Properties{el: el}
}

// Properties is a <properties> element.
type Properties struct {
	el *Element
}

// Element returns the underlying element.
func (p *Properties) Element() *Element { return p.el }

// Property returns the first property whose name attribute equals name.
func (p *Properties) Property(name string) (*Property, bool) {
	el := p.el.ChildFunc(func(e *Element) bool {
		if e.Tag() != propertyTag {
			return false
		}
		n, ok := e.Attribute(nameAttr)
		return ok && n == name
	})
	if el == nil {
		return nil, false
	}
	return &Property{el: el}, true
}

// All returns every property in document order.
func (p *Properties) All() []*Property {
	els := p.el.ChildElements(propertyTag)
	out := make([]*Property, 0, len(els))
	for _, el := range els {
		out = append(out, &Property{el: el})
	}
	return out
}

// Upsert sets the string value of the named property, creating the property or
// its <value> child when missing. Applying the same pair twice leaves the tree unchanged.
func (p *Properties) Upsert(name, value string) *Property {
	prop, ok := p.Property(name)
	if !ok {
		el := NewElement(propertyTag)
		el.SetAttribute(nameAttr, name)
		p.el.AppendChild(el)
		prop = &Property{el: el}
	}

	v := prop.el.Child(valueTag)
	if v == nil {
		v = NewElement(valueTag)
		prop.el.AppendChild(v)
	}
	v.SetAttribute(typeAttr, StringType)
	v.SetText(value)

	return prop
}

// Property is a <property name="..."> element.
type Property struct {
	el *Element
}

// Element returns the underlying element.
func (p *Property) Element() *Element { return p.el }

// Name returns the name attribute.
func (p *Property) Name() string {
	n, _ := p.el.Attribute(nameAttr)
	return n
}

// Value returns the first <value> child.
func (p *Property) Value() (*Value, bool) {
	el := p.el.Child(valueTag)
	if el == nil {
		return nil, false
	}
	return &Value{el: el}, true
}

// Value is a <value type="..."> element.
type Value struct {
	el *Element
}

// Type returns the type attribute.
func (v *Value) Type() string {
	t, _ := v.el.Attribute(typeAttr)
	return t
}

// Text returns the text content.
func (v *Value) Text() string {
	return v.el.Text()
}
