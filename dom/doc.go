// Package dom is a small WHATWG DOM model: nodes, elements, attributes,
// events, a simple selector matcher, an HTML serializer and a parser
// front end backed by golang.org/x/net/html.
//
// https://dom.spec.whatwg.org/
package dom
