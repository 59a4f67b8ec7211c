package dom

import "strings"

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// https://html.spec.whatwg.org/#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
	"basefont": true, "bgsound": true, "frame": true, "keygen": true, "param": true,
}

// InnerHTML serializes the children of n.
// https://html.spec.whatwg.org/#serialising-html-fragments
func InnerHTML(n *Node) string {
	var b strings.Builder
	serializeChildren(&b, n)
	return b.String()
}

// OuterHTML serializes n and its children.
func OuterHTML(n *Node) string {
	var b strings.Builder
	serializeNode(&b, n)
	return b.String()
}

func serializeChildren(b *strings.Builder, n *Node) {
	if n.NodeType == ElementNode && voidElements[n.NodeName] {
		return
	}
	for _, child := range n.ChildNodes {
		serializeNode(b, child)
	}
}

func serializeNode(b *strings.Builder, n *Node) {
	switch n.NodeType {
	case ElementNode:
		b.WriteString("<" + n.NodeName)
		for _, k := range n.GetAttributeNames() {
			b.WriteString(" " + k + "=\"" + escapeString(n.GetAttribute(k), true) + "\"")
		}
		b.WriteString(">")
		if voidElements[n.NodeName] {
			return
		}
		serializeChildren(b, n)
		b.WriteString("</" + n.NodeName + ">")
	case TextNode:
		parent := ""
		if n.ParentNode != nil {
			parent = n.ParentNode.NodeName
		}
		switch parent {
		case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext", "noscript":
			b.WriteString(n.Text.Data)
		default:
			b.WriteString(escapeString(n.Text.Data, false))
		}
	case CommentNode:
		b.WriteString("<!--" + n.Comment.Data + "-->")
	case DocumentTypeNode:
		b.WriteString("<!DOCTYPE " + n.DocumentType.Name + ">")
	case DocumentNode, DocumentFragmentNode:
		serializeChildren(b, n)
	}
}
