package dom

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSelector is returned for selector strings the matcher cannot
// parse.
var ErrInvalidSelector = errors.New("invalid selector")

// Matches reports whether n is an element matched by selectors.
// https://dom.spec.whatwg.org/#dom-element-matches
func (n *Node) Matches(selectors string) (bool, error) {
	g, err := compileSelector(selectors)
	if err != nil {
		return false, err
	}
	return g.match(n), nil
}

// QuerySelectorAll returns the descendants of n matched by selectors, in
// tree order. n itself is never part of the result.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselectorall
func (n *Node) QuerySelectorAll(selectors string) (NodeList, error) {
	g, err := compileSelector(selectors)
	if err != nil {
		return nil, err
	}
	var found NodeList
	for _, child := range n.ChildNodes {
		child.Walk(func(d *Node) bool {
			if g.match(d) {
				found = append(found, d)
			}
			return true
		})
	}
	return found, nil
}

// QuerySelector returns the first descendant matched by selectors, or nil.
func (n *Node) QuerySelector(selectors string) (*Node, error) {
	found, err := n.QuerySelectorAll(selectors)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

type attrSelector struct {
	name, value string
	hasValue    bool
}

// compoundSelector is a sequence of simple selectors with no combinator,
// e.g. div.a-class[title=x].
type compoundSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrSelector
}

func (s compoundSelector) match(n *Node) bool {
	if n == nil || n.NodeType != ElementNode {
		return false
	}
	if s.tag != "" && s.tag != "*" && !strings.EqualFold(s.tag, n.NodeName) {
		return false
	}
	if s.id != "" && n.ID() != s.id {
		return false
	}
	for _, c := range s.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	for _, a := range s.attrs {
		attr := n.Attributes.GetNamedItem(a.name)
		if attr == nil {
			return false
		}
		if a.hasValue && attr.Value != a.value {
			return false
		}
	}
	return true
}

type complexSelector struct {
	compounds []compoundSelector
	// combinators[i] joins compounds[i] and compounds[i+1]: ' ' or '>'
	combinators []byte
}

func (c complexSelector) match(n *Node) bool {
	return c.matchAt(n, len(c.compounds)-1)
}

func (c complexSelector) matchAt(n *Node, i int) bool {
	if !c.compounds[i].match(n) {
		return false
	}
	if i == 0 {
		return true
	}
	if c.combinators[i-1] == '>' {
		p := parentElement(n)
		return p != nil && c.matchAt(p, i-1)
	}
	for p := parentElement(n); p != nil; p = parentElement(p) {
		if c.matchAt(p, i-1) {
			return true
		}
	}
	return false
}

type selectorGroup []complexSelector

func (g selectorGroup) match(n *Node) bool {
	for _, c := range g {
		if c.match(n) {
			return true
		}
	}
	return false
}

func parentElement(n *Node) *Node {
	if n.ParentNode != nil && n.ParentNode.NodeType == ElementNode {
		return n.ParentNode
	}
	return nil
}

func compileSelector(s string) (selectorGroup, error) {
	p := &selectorParser{s: s}
	return p.parseGroup()
}

type selectorParser struct {
	s string
	i int
}

func (p *selectorParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidSelector, "%q at offset %d: "+format, append([]interface{}{p.s, p.i}, args...)...)
}

func (p *selectorParser) eof() bool {
	return p.i >= len(p.s)
}

func (p *selectorParser) skipSpace() bool {
	start := p.i
	for !p.eof() && isSpace(p.s[p.i]) {
		p.i++
	}
	return p.i > start
}

func (p *selectorParser) parseGroup() (selectorGroup, error) {
	var g selectorGroup
	for {
		p.skipSpace()
		c, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		g = append(g, c)
		p.skipSpace()
		if p.eof() {
			return g, nil
		}
		if p.s[p.i] != ',' {
			return nil, p.errorf("unexpected %q", p.s[p.i])
		}
		p.i++
	}
}

func (p *selectorParser) parseComplex() (complexSelector, error) {
	var c complexSelector
	first, err := p.parseCompound()
	if err != nil {
		return c, err
	}
	c.compounds = append(c.compounds, first)
	for {
		sawSpace := p.skipSpace()
		if p.eof() || p.s[p.i] == ',' {
			return c, nil
		}
		comb := byte(' ')
		if p.s[p.i] == '>' {
			comb = '>'
			p.i++
			p.skipSpace()
		} else if !sawSpace {
			return c, p.errorf("unexpected %q", p.s[p.i])
		}
		next, err := p.parseCompound()
		if err != nil {
			return c, err
		}
		c.compounds = append(c.compounds, next)
		c.combinators = append(c.combinators, comb)
	}
}

func (p *selectorParser) parseCompound() (compoundSelector, error) {
	var s compoundSelector
	start := p.i
	if !p.eof() && p.s[p.i] == '*' {
		s.tag = "*"
		p.i++
	} else {
		s.tag = p.ident()
	}
	for !p.eof() {
		switch p.s[p.i] {
		case '#':
			p.i++
			if s.id = p.ident(); s.id == "" {
				return s, p.errorf("expected id")
			}
			continue
		case '.':
			p.i++
			class := p.ident()
			if class == "" {
				return s, p.errorf("expected class name")
			}
			s.classes = append(s.classes, class)
			continue
		case '[':
			p.i++
			a, err := p.parseAttr()
			if err != nil {
				return s, err
			}
			s.attrs = append(s.attrs, a)
			continue
		}
		break
	}
	if p.i == start {
		return s, p.errorf("expected selector")
	}
	return s, nil
}

func (p *selectorParser) parseAttr() (attrSelector, error) {
	var a attrSelector
	p.skipSpace()
	if a.name = p.ident(); a.name == "" {
		return a, p.errorf("expected attribute name")
	}
	p.skipSpace()
	if !p.eof() && p.s[p.i] == '=' {
		p.i++
		p.skipSpace()
		a.hasValue = true
		if p.eof() {
			return a, p.errorf("expected attribute value")
		}
		if q := p.s[p.i]; q == '"' || q == '\'' {
			end := strings.IndexByte(p.s[p.i+1:], q)
			if end == -1 {
				return a, p.errorf("unterminated string")
			}
			a.value = p.s[p.i+1 : p.i+1+end]
			p.i += end + 2
		} else if a.value = p.ident(); a.value == "" {
			return a, p.errorf("expected attribute value")
		}
		p.skipSpace()
	}
	if p.eof() || p.s[p.i] != ']' {
		return a, p.errorf("expected ]")
	}
	p.i++
	return a, nil
}

func (p *selectorParser) ident() string {
	start := p.i
	for !p.eof() && isIdentByte(p.s[p.i]) {
		p.i++
	}
	return p.s[start:p.i]
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' ||
		c >= 0x80
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
