package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type parseConfig struct {
	trimWhitespace bool
}

// ParseOption tunes how parsed markup is turned into nodes.
type ParseOption func(*parseConfig)

// TrimWhitespace drops text nodes that contain only whitespace, the way a
// template compiler condenses the space between tags.
func TrimWhitespace() ParseOption {
	return func(c *parseConfig) { c.trimWhitespace = true }
}

// Parser builds a Document from an HTML byte stream.
type Parser struct {
	input  io.Reader
	config parseConfig
}

func NewParser(htmlIn io.Reader, opts ...ParseOption) *Parser {
	p := &Parser{input: htmlIn}
	for _, opt := range opts {
		opt(&p.config)
	}
	return p
}

// Start parses the whole input and returns the document node.
func (p *Parser) Start() (*Node, error) {
	root, err := html.Parse(p.input)
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	doc := NewDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := p.convert(doc, c); n != nil {
			doc.AppendChild(n)
		}
	}
	return doc, nil
}

// DocumentElement returns the first element child of a document, usually
// <html>.
func DocumentElement(doc *Node) *Node {
	for _, c := range doc.ChildNodes {
		if c.NodeType == ElementNode {
			return c
		}
	}
	return nil
}

// ParseFragment parses markup as if it were the contents of a <body> and
// returns the top-level nodes. They share a fresh document and have no
// parent.
// https://html.spec.whatwg.org/#html-fragment-parsing-algorithm
func ParseFragment(markup string, opts ...ParseOption) (NodeList, error) {
	p := NewParser(strings.NewReader(markup), opts...)
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(p.input, context)
	if err != nil {
		return nil, errors.Wrap(err, "parse fragment")
	}
	doc := NewDocument()
	var out NodeList
	for _, hn := range nodes {
		if n := p.convert(doc, hn); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func (p *Parser) convert(doc *Node, hn *html.Node) *Node {
	var n *Node
	switch hn.Type {
	case html.ElementNode:
		ns := Htmlns
		switch hn.Namespace {
		case "svg":
			ns = Svgns
		case "math":
			ns = Mathmlns
		}
		n = NewElement(doc, hn.Data, ns)
		for _, a := range hn.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			if !n.HasAttribute(name) {
				n.SetAttribute(name, a.Val)
			}
		}
	case html.TextNode:
		if p.config.trimWhitespace && strings.TrimSpace(hn.Data) == "" {
			return nil
		}
		return NewTextNode(doc, hn.Data)
	case html.CommentNode:
		return NewComment(doc, hn.Data)
	case html.DoctypeNode:
		var pub, sys string
		for _, a := range hn.Attr {
			switch a.Key {
			case "public":
				pub = a.Val
			case "system":
				sys = a.Val
			}
		}
		dt := NewDocTypeNode(hn.Data, pub, sys)
		dt.OwnerDocument = doc
		return dt
	default:
		return nil
	}

	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if child := p.convert(doc, c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}
