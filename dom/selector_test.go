package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, markup string) *Node {
	t.Helper()
	nodes, err := ParseFragment(markup, TrimWhitespace())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

const selectorFixture = `
<div id="app" class="root">
  <ul class="list">
    <li class="item first" data-id="1">one</li>
    <li class="item" data-id="2"><a href="#two" title="two words">two</a></li>
  </ul>
  <p>para <a href="#p">link</a></p>
</div>`

func TestMatches(t *testing.T) {
	root := mustParse(t, selectorFixture)

	tests := []struct {
		selector string
		want     bool
	}{
		{"div", true},
		{"DIV", true},
		{"*", true},
		{"#app", true},
		{"div#app.root", true},
		{".root", true},
		{"[id]", true},
		{"[id=app]", true},
		{`[id="app"]`, true},
		{"[id='app']", true},
		{"p, div", true},
		{"span", false},
		{"#other", false},
		{".root.missing", false},
		{"[id=other]", false},
		{"ul div", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.selector, func(t *testing.T) {
			t.Parallel()
			got, err := root.Matches(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuerySelectorAll(t *testing.T) {
	root := mustParse(t, selectorFixture)

	tests := []struct {
		selector string
		want     []string // data-id or href of each match, in tree order
	}{
		{"li", []string{"1", "2"}},
		{"li.first", []string{"1"}},
		{"ul > li", []string{"1", "2"}},
		{"div > li", nil},
		{"div li", []string{"1", "2"}},
		{"[data-id=2]", []string{"2"}},
		{"a", []string{"#two", "#p"}},
		{"li a", []string{"#two"}},
		{`a[title="two words"]`, []string{"#two"}},
		{"p > a, li > a", []string{"#two", "#p"}},
		{"div", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.selector, func(t *testing.T) {
			t.Parallel()
			found, err := root.QuerySelectorAll(tt.selector)
			require.NoError(t, err)
			var got []string
			for _, n := range found {
				if n.HasAttribute("data-id") {
					got = append(got, n.GetAttribute("data-id"))
				} else {
					got = append(got, n.GetAttribute("href"))
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuerySelector(t *testing.T) {
	root := mustParse(t, selectorFixture)

	n, err := root.QuerySelector("li")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "1", n.GetAttribute("data-id"))

	n, err = root.QuerySelector("table")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestInvalidSelector(t *testing.T) {
	root := mustParse(t, selectorFixture)

	for _, sel := range []string{"", " ", "div,", "#", ".", "[", "[id", "[id=]", "[id='app]", "div >", "a!b", ">"} {
		sel := sel
		t.Run(sel, func(t *testing.T) {
			t.Parallel()
			_, err := root.Matches(sel)
			assert.ErrorIs(t, err, ErrInvalidSelector)
			_, err = root.QuerySelectorAll(sel)
			assert.ErrorIs(t, err, ErrInvalidSelector)
		})
	}
}

func TestMatchesTextNode(t *testing.T) {
	root := mustParse(t, "<p>text</p>")
	got, err := root.FirstChild.Matches("*")
	require.NoError(t, err)
	assert.False(t, got)
}
