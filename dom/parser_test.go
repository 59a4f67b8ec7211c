package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attributeAccuracyTestcase struct {
	inHTML string            // snippet of HTML to parse (should only be one element)
	attrs  map[string]string // expected attributes on the first element that is produced
}

var attributeAccuracyTests = []attributeAccuracyTestcase{
	{"<script src='123' onload='test'></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", map[string]string{
		"href":    "https://google.com",
		"onclick": "alert(1)",
	}},
	{"<script src='123' src='456'></script>", map[string]string{
		"src": "123",
	}},
	{"<script src=123 onload=test></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src='123' onload='test' ></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src></script>", map[string]string{
		"src": "",
	}},
	{"<script src test></script>", map[string]string{
		"src":  "",
		"test": "",
	}},
	{"<script ABC=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<script\tabc=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<button @click=\"inc\" v-on:keyup=\"log\"></button>", map[string]string{
		"@click":     "inc",
		"v-on:keyup": "log",
	}},
}

// TestAttributeAccuracy makes sure that we have the correct attribute
// names and values after a round trip through the parser.
func TestAttributeAccuracy(t *testing.T) {
	for _, tt := range attributeAccuracyTests {
		runAttributeAccuracy(tt, t)
	}
}

func runAttributeAccuracy(tt attributeAccuracyTestcase, t *testing.T) {
	t.Run(tt.inHTML, func(t *testing.T) {
		t.Parallel()
		nodes, err := ParseFragment(tt.inHTML)
		require.NoError(t, err)
		elems := nodes.Elements()
		require.NotEmpty(t, elems)

		el := elems[0]
		assert.Len(t, el.GetAttributeNames(), len(tt.attrs))
		for k, v := range tt.attrs {
			if assert.True(t, el.HasAttribute(k), "expected attribute %s", k) {
				assert.Equal(t, v, el.GetAttribute(k))
			}
		}
	})
}

func TestParserStart(t *testing.T) {
	doc, err := NewParser(strings.NewReader(`<span><div class="a-class"></div></span>`)).Start()
	require.NoError(t, err)

	expected := `#document
| <html>
|   <head>
|   <body>
|     <span>
|       <div>
|         class="a-class"`
	assert.Equal(t, expected, doc.String())

	html := DocumentElement(doc)
	require.NotNil(t, html)
	assert.Equal(t, "html", html.NodeName)
	assert.Same(t, doc, html.OwnerDocument)
}

func TestParseFragmentTrimWhitespace(t *testing.T) {
	markup := "<ul>\n  <li>one</li>\n  <li> two </li>\n</ul>"

	nodes, err := ParseFragment(markup)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Len(t, nodes[0].ChildNodes, 5)

	nodes, err = ParseFragment(markup, TrimWhitespace())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	ul := nodes[0]
	assert.Nil(t, ul.ParentNode)
	require.Len(t, ul.ChildNodes, 2)
	assert.Equal(t, " two ", ul.ChildNodes[1].TextContent())
}

func TestParseFragmentNamespaces(t *testing.T) {
	nodes, err := ParseFragment(`<svg viewBox="0 0 10 10"><circle r="1"></circle></svg>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	svg := nodes[0]
	assert.Equal(t, Svgns, svg.Element.NamespaceURI)
	assert.Equal(t, "0 0 10 10", svg.GetAttribute("viewBox"))
	assert.Equal(t, Svgns, svg.FirstChild.Element.NamespaceURI)
}
