package osil

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// element is a generic view of one XML element: tag, attributes, child
// elements and character data. OSiL trees are recursive with open tag
// vocabularies (the nonlinear operator set), so the document is decoded
// into this shape first and dispatched on local tag names afterwards.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// tag returns the element's local (namespace-stripped) tag name.
func (e *element) tag() string { return e.XMLName.Local }

// attr returns the named attribute value and whether it is present.
// Attribute lookup ignores namespaces, matching on local names.
func (e *element) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

// floatAttr parses the named attribute as a float, falling back to def
// when absent.
func (e *element) floatAttr(name string, def float64) (float64, error) {
	raw, ok := e.attr(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q on <%s>", ErrBadAttr, name, raw, e.tag())
	}

	return v, nil
}

// intAttr parses the named attribute as an int, falling back to def when
// absent.
func (e *element) intAttr(name string, def int) (int, error) {
	raw, ok := e.attr(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q on <%s>", ErrBadAttr, name, raw, e.tag())
	}

	return v, nil
}

// requireIntAttr parses the named attribute as an int and fails when it is
// absent.
func (e *element) requireIntAttr(name string) (int, error) {
	if _, ok := e.attr(name); !ok {
		return 0, fmt.Errorf("%w: %s on <%s>", ErrMissingAttr, name, e.tag())
	}

	return e.intAttr(name, 0)
}

// requireFloatAttr parses the named attribute as a float and fails when it
// is absent.
func (e *element) requireFloatAttr(name string) (float64, error) {
	if _, ok := e.attr(name); !ok {
		return 0, fmt.Errorf("%w: %s on <%s>", ErrMissingAttr, name, e.tag())
	}

	return e.floatAttr(name, 0)
}

// requireAttr returns the named attribute value and fails when absent.
func (e *element) requireAttr(name string) (string, error) {
	raw, ok := e.attr(name)
	if !ok {
		return "", fmt.Errorf("%w: %s on <%s>", ErrMissingAttr, name, e.tag())
	}

	return raw, nil
}

// parseFloatText parses the element's character data as a float.
func parseFloatText(e *element) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: text %q in <%s>", ErrBadAttr, e.Text, e.tag())
	}

	return v, nil
}

// find returns the first child with the given local tag name, or nil.
func (e *element) find(tag string) *element {
	for i := range e.Children {
		if e.Children[i].tag() == tag {
			return &e.Children[i]
		}
	}

	return nil
}
