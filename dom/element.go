package dom

import "strings"

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Element is an individual HTML element that gets added to the DOM.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap
}

func (e *Element) HasAttributes() bool {
	return e.Attributes.Length() > 0
}

// GetAttributeNames returns the attribute names sorted, so callers get a
// stable order.
func (e *Element) GetAttributeNames() []string {
	return sortedKeys(e.Attributes.Attrs)
}

func (e *Element) GetAttribute(qualifiedName string) string {
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

func (e *Element) SetAttribute(qualifiedName, value string) {
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		a.Value = value
		return
	}
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value, e.Attributes.AssociatedElement))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.Attributes.RemoveNamedItem(qualifiedName)
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

// ID is the value of the id attribute.
func (e *Element) ID() string {
	return e.GetAttribute("id")
}

// ClassList splits the class attribute on ASCII whitespace.
// https://dom.spec.whatwg.org/#dom-element-classlist
func (e *Element) ClassList() []string {
	return strings.Fields(e.GetAttribute("class"))
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.ClassList() {
		if c == name {
			return true
		}
	}
	return false
}

// Style parses the inline style attribute into a map of lowercased
// property names to trimmed values. Later declarations win.
func (e *Element) Style() map[string]string {
	style := map[string]string{}
	for _, decl := range strings.Split(e.GetAttribute("style"), ";") {
		i := strings.IndexByte(decl, ':')
		if i == -1 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(decl[:i]))
		if name == "" {
			continue
		}
		style[name] = strings.TrimSpace(decl[i+1:])
	}
	return style
}
