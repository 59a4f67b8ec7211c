package dom

import (
	"fmt"
	"sort"
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// NewDocument returns an empty HTML document node.
func NewDocument() *Node {
	doc := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html"},
	}
	doc.OwnerDocument = doc
	return doc
}

// NewComment returns a comment node with its Data section filled.
func NewComment(od *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       &Comment{CharacterData: newCharacterData(data)},
	}
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          &Text{CharacterData: newCharacterData(text)},
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

// NewElement creates an element owned by od. An optional prefix may be
// passed after the namespace.
func NewElement(od *Node, name string, namespace Namespace, optionals ...string) *Node {
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
		},
	}
	n.Attributes = NewNamedNodeMap(nil, n)
	return n
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document
	*DocumentType

	listeners map[string][]EventListener
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.NodeName + ">"
		names := node.GetAttributeNames()
		if len(names) == 0 {
			return e
		}
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, name := range names {
			e += "\n" + spaces + name + "=\"" + node.GetAttribute(name) + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		return "<!DOCTYPE " + node.DocumentType.Name + ">"
	case DocumentNode:
		return "#document"
	default:
		return fmt.Sprintf("#unknown(%d)", node.NodeType)
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the subtree in the html5lib tree-construction test format.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// TextContent concatenates the data of every descendant text node.
// https://dom.spec.whatwg.org/#dom-node-textcontent
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode:
		return n.Text.Data
	case CommentNode:
		return n.Comment.Data
	case DocumentNode, DocumentTypeNode:
		return ""
	}
	var b strings.Builder
	n.Walk(func(d *Node) bool {
		if d.NodeType == TextNode {
			b.WriteString(d.Text.Data)
		}
		return true
	})
	return b.String()
}

// Walk visits n and its descendants in tree order. Returning false from fn
// skips the children of the node just visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.ChildNodes {
		child.Walk(fn)
	}
}

// Contains reports whether on is an inclusive descendant of n.
// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// InsertBefore inserts on into n's children before child. A nil child
// appends.
func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	n.detach(on)
	// detaching on may have shifted child
	i = n.ChildNodes.Contains(child)
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	n.relink()
	return on
}

// didn't really follow the steps here because they seem complicated :/
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	n.detach(on)
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
		on.PreviousSibling = nil
	}
	on.NextSibling = nil
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) ReplaceChild(on, child *Node) *Node {
	if n.ChildNodes.Contains(child) == -1 {
		return nil
	}
	if on == child {
		return child
	}
	n.detach(on)
	i := n.ChildNodes.Contains(child)
	n.ChildNodes[i] = on
	on.ParentNode = n
	child.ParentNode, child.PreviousSibling, child.NextSibling = nil, nil, nil
	n.relink()
	return child
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	node.ParentNode, node.PreviousSibling, node.NextSibling = nil, nil, nil
	n.relink()
	return node
}

// detach removes on from whatever parent it currently has.
func (n *Node) detach(on *Node) {
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
}

// relink rebuilds the first/last child and sibling pointers from ChildNodes.
func (n *Node) relink() {
	n.FirstChild, n.LastChild = nil, nil
	var prev *Node
	for _, child := range n.ChildNodes {
		child.ParentNode = n
		child.PreviousSibling = prev
		child.NextSibling = nil
		if prev != nil {
			prev.NextSibling = child
		}
		prev = child
	}
	if len(n.ChildNodes) > 0 {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
}

// sortedKeys is shared by the serializers so output is stable.
func sortedKeys(m map[string]*Attr) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
