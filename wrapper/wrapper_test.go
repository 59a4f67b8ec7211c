package wrapper

import (
	"strings"
	"testing"

	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head></head><body>` +
	`<div id="main" class="a b" style="color: red; Font-Size: 12px" title="t">` +
	`<p class="x">one</p><p class="x y"> two </p><i></i><button disabled="">b</button>` +
	`</div></body></html>`

func parsePage(t *testing.T) *Wrapper {
	t.Helper()
	w, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return w
}

func findMain(t *testing.T) BaseWrapper {
	t.Helper()
	main, err := parsePage(t).Find(CSS("#main"))
	require.NoError(t, err)
	return main
}

func TestParse(t *testing.T) {
	w := parsePage(t)
	name, err := w.Name()
	require.NoError(t, err)
	assert.Equal(t, "html", name)
	assert.Equal(t, "html", w.Element().NodeName)
}

func TestParseWithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	w, err := Parse(strings.NewReader("<html>\n<body>\n<p>one</p>\n</body>\n</html>"),
		WithLogger(logger), WithParseOptions(dom.TrimWhitespace()))
	require.NoError(t, err)
	html, err := w.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<html><head></head><body><p>one</p></body></html>", html)

	p, err := w.Find(CSS("p"))
	require.NoError(t, err)
	require.NoError(t, p.Trigger("click"))
	p.(*Wrapper).Element().AddEventListener("click", func(*dom.Event) {})
	require.NoError(t, p.Trigger("click"))

	var matched *logrus.Entry
	var handled []any
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "matched 1":
			matched = e
		case "dispatching event":
			assert.Equal(t, "p", e.Data["element"])
			handled = append(handled, e.Data["handled"])
		}
	}
	require.NotNil(t, matched)
	assert.Equal(t, "html", matched.Data["element"])
	assert.Equal(t, "p", matched.Data["selector"])
	assert.Equal(t, []any{false, true}, handled)
}

func TestWrapperAttributeQueries(t *testing.T) {
	main := findMain(t)

	tests := []struct {
		name string
		run  func() (bool, error)
		want bool
	}{
		{"attribute", func() (bool, error) { return main.HasAttribute("title", "t") }, true},
		{"attribute value differs", func() (bool, error) { return main.HasAttribute("title", "u") }, false},
		{"attribute missing", func() (bool, error) { return main.HasAttribute("lang", "") }, false},
		{"class", func() (bool, error) { return main.HasClass("a") }, true},
		{"classes", func() (bool, error) { return main.HasClass("b a") }, true},
		{"class missing", func() (bool, error) { return main.HasClass("a c") }, false},
		{"style", func() (bool, error) { return main.HasStyle("font-size", "12px") }, true},
		{"style case", func() (bool, error) { return main.HasStyle("COLOR", "red") }, true},
		{"style value differs", func() (bool, error) { return main.HasStyle("color", "blue") }, false},
		{"style missing", func() (bool, error) { return main.HasStyle("margin", "0") }, false},
		{"is", func() (bool, error) { return main.Is(CSS("div#main.a")) }, true},
		{"is not", func() (bool, error) { return main.Is(CSS("p")) }, false},
		{"contains self", func() (bool, error) { return main.Contains(CSS("div")) }, true},
		{"contains descendant", func() (bool, error) { return main.Contains(CSS("p.y")) }, true},
		{"contains nothing", func() (bool, error) { return main.Contains(CSS("span")) }, false},
		{"not empty", func() (bool, error) { return main.IsEmpty() }, false},
		{"not a vue instance", func() (bool, error) { return main.IsVueInstance() }, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrapperInvalidArguments(t *testing.T) {
	main := findMain(t)

	tests := []struct {
		name string
		run  func() error
		msg  string
	}{
		{"empty class", func() error { _, err := main.HasClass(" "); return err }, "wrapper.hasClass() must be passed a string"},
		{"empty attribute", func() error { _, err := main.HasAttribute("", "x"); return err }, ""},
		{"empty style", func() error { _, err := main.HasStyle("", "red"); return err }, ""},
		{"empty style value", func() error { _, err := main.HasStyle("color", ""); return err }, ""},
		{"nil selector", func() error { _, err := main.Is(nil); return err }, ""},
		{"empty css", func() error { _, err := main.Contains(CSS("")); return err }, ""},
		{"nil component", func() error { _, err := main.Find(ComponentSelector(nil)); return err }, ""},
		{"empty event", func() error { return main.Trigger("") }, "wrapper.trigger() must be passed a string"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assert.ErrorIs(t, err, ErrInvalidArgument)
			if tt.msg != "" {
				assert.EqualError(t, err, tt.msg)
			}
		})
	}
}

func TestWrapperInvalidSelector(t *testing.T) {
	main := findMain(t)

	_, err := main.Is(CSS("p["))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, dom.ErrInvalidSelector)

	_, err = main.FindAll(CSS("p["))
	assert.ErrorIs(t, err, &Error{Kind: InvalidArgument, Op: "findAll"})
}

func TestWrapperFind(t *testing.T) {
	main := findMain(t)

	ps, err := main.FindAll(CSS("p"))
	require.NoError(t, err)
	require.Equal(t, 2, ps.Length())

	ok, err := ps.HasClass("x")
	require.NoError(t, err)
	assert.True(t, ok)

	second, err := ps.At(1)
	require.NoError(t, err)
	text, err := second.Text()
	require.NoError(t, err)
	assert.Equal(t, "two", text)

	first, err := main.Find(CSS("p"))
	require.NoError(t, err)
	html, err := first.HTML()
	require.NoError(t, err)
	assert.Equal(t, `<p class="x">one</p>`, html)
	name, err := first.Name()
	require.NoError(t, err)
	assert.Equal(t, "p", name)

	self, err := main.Find(CSS(".a"))
	require.NoError(t, err)
	assert.Same(t, main.(*Wrapper).Element(), self.(*Wrapper).Element())

	_, err = main.Find(CSS("span"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "no element matches span")

	none, err := main.FindAll(CSS("span"))
	require.NoError(t, err)
	assert.Equal(t, 0, none.Length())

	italic, err := main.Find(CSS("i"))
	require.NoError(t, err)
	empty, err := italic.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestWrapperUnsupported(t *testing.T) {
	main := findMain(t)

	_, err := main.HasProp("p", 1)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.EqualError(t, main.SetData(map[string]any{}), "wrapper.setData() can only be called on a Vue instance")
	assert.ErrorIs(t, main.SetProps(map[string]any{}), ErrUnsupported)
	assert.NoError(t, main.Update())
}

func TestWrapperTrigger(t *testing.T) {
	main := findMain(t)
	el := main.(*Wrapper).Element()

	var got []string
	el.AddEventListener("click", func(e *dom.Event) {
		got = append(got, e.Target.NodeName)
	})

	p, err := main.Find(CSS("p"))
	require.NoError(t, err)
	require.NoError(t, p.Trigger("click"))

	button, err := main.Find(CSS("button"))
	require.NoError(t, err)
	require.NoError(t, button.Trigger("click"))

	assert.Equal(t, []string{"p"}, got, "disabled elements do not dispatch")
}

func TestWrapperArrayOverElements(t *testing.T) {
	main := findMain(t)

	ps, err := main.FindAll(CSS("p"))
	require.NoError(t, err)
	ok, err := ps.HasClass("y")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ps.Text()
	assert.ErrorIs(t, err, ErrAmbiguousOperation)
	assert.Contains(t, err.Error(), "at(i)")

	err = ps.SetData(map[string]any{"a": 1})
	assert.ErrorIs(t, err, &Error{Kind: Unsupported, Op: "setData"})

	var werr *Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, Unsupported, werr.Kind)
}
