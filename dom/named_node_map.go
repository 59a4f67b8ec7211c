package dom

import "strings"

// NewNamedNodeMap builds the attribute map for oe from plain name/value
// pairs.
func NewNamedNodeMap(attrs map[string]string, oe *Node) *NamedNodeMap {
	a := make(map[string]*Attr, len(attrs))
	for k, v := range attrs {
		a[k] = NewAttr(k, v, oe)
	}
	return &NamedNodeMap{
		Attrs:             a,
		AssociatedElement: oe,
	}
}

// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

func (n *NamedNodeMap) Length() int {
	return len(n.Attrs)
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if v, ok := n.Attrs[n.fold(qn)]; ok {
		return v
	}
	return nil
}

// SetNamedItem stores s, replacing any attribute with the same name, and
// returns the replaced attribute.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement
	name := n.fold(s.Name)
	old := n.Attrs[name]
	n.Attrs[name] = s
	return old
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	name := n.fold(qn)
	old, ok := n.Attrs[name]
	if !ok {
		return nil
	}
	delete(n.Attrs, name)
	old.OwnerElement = nil
	return old
}

// fold lowercases names on HTML elements living in an HTML document.
// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) fold(qn string) string {
	oe := n.AssociatedElement
	if oe != nil && oe.Element != nil &&
		oe.Element.NamespaceURI == Htmlns &&
		oe.OwnerDocument != nil &&
		oe.OwnerDocument.NodeType == DocumentNode &&
		oe.OwnerDocument.Type == "html" {
		return strings.ToLower(qn)
	}
	return qn
}
