package wrapper

import (
	"io"
	"strings"

	"github.com/heathj/gomount/component"
	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var _ BaseWrapper = (*Wrapper)(nil)

// Wrapper wraps a single element. When the element belongs to a mounted
// component tree, root is that tree's root instance and mutations
// re-render it.
type Wrapper struct {
	el   *dom.Node
	root *component.Instance
	// base is inherited by the wrappers Find and FindAll return.
	base *logrus.Entry
	log  *logrus.Entry
}

// Wrap wraps an element that does not belong to a mounted component.
func Wrap(el *dom.Node) *Wrapper {
	return newWrapper(el, nil, logrus.NewEntry(logrus.StandardLogger()))
}

// Parse parses an HTML document and wraps its document element. It
// accepts WithLogger and WithParseOptions.
func Parse(r io.Reader, opts ...Option) (*Wrapper, error) {
	o := newOptions(opts)
	doc, err := dom.NewParser(r, o.parse...).Start()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	el := dom.DocumentElement(doc)
	if el == nil {
		return nil, errors.New("parse: document has no document element")
	}
	return newWrapper(el, nil, logrus.NewEntry(o.logger)), nil
}

func newWrapper(el *dom.Node, root *component.Instance, base *logrus.Entry) *Wrapper {
	return &Wrapper{el: el, root: root, base: base, log: base.WithField("element", el.NodeName)}
}

// Element returns the wrapped node.
func (w *Wrapper) Element() *dom.Node {
	return w.el
}

// Contains reports whether the element, or any element below it, matches
// sel.
func (w *Wrapper) Contains(sel Selector) (bool, error) {
	if err := validateSelector("contains", sel); err != nil {
		return false, err
	}
	if s, ok := sel.(componentSelector); ok {
		return len(w.instances(s.c)) > 0, nil
	}
	nodes, err := w.match("contains", sel.(CSS))
	return len(nodes) > 0, err
}

func (w *Wrapper) HasAttribute(attribute, value string) (bool, error) {
	if attribute == "" {
		return false, invalidArgument("hasAttribute", "a string as first argument")
	}
	return w.el.HasAttribute(attribute) && w.el.GetAttribute(attribute) == value, nil
}

// HasClass reports whether the element carries every space separated
// class in className.
func (w *Wrapper) HasClass(className string) (bool, error) {
	classes := strings.Fields(className)
	if len(classes) == 0 {
		return false, invalidArgument("hasClass", "a string")
	}
	for _, c := range classes {
		if !w.el.HasClass(c) {
			return false, nil
		}
	}
	return true, nil
}

func (w *Wrapper) HasProp(string, any) (bool, error) {
	return false, unsupported("hasProp")
}

// HasStyle compares against the inline style attribute. Property names
// are case insensitive.
func (w *Wrapper) HasStyle(style, value string) (bool, error) {
	if strings.TrimSpace(style) == "" {
		return false, invalidArgument("hasStyle", "a string as first argument")
	}
	if strings.TrimSpace(value) == "" {
		return false, invalidArgument("hasStyle", "a string as second argument")
	}
	got, ok := w.el.Style()[strings.ToLower(strings.TrimSpace(style))]
	return ok && got == strings.TrimSpace(value), nil
}

// Is reports whether the element itself matches a CSS selector. Plain
// elements never match a component selector.
func (w *Wrapper) Is(sel Selector) (bool, error) {
	if err := validateSelector("is", sel); err != nil {
		return false, err
	}
	css, ok := sel.(CSS)
	if !ok {
		return false, nil
	}
	matched, err := w.el.Matches(string(css))
	if err != nil {
		return false, invalidArgument("is", "a valid selector").because(err)
	}
	return matched, nil
}

func (w *Wrapper) IsEmpty() (bool, error) {
	return !w.el.HasChildNodes(), nil
}

func (w *Wrapper) IsVueInstance() (bool, error) {
	return false, nil
}

// Find returns the first match for sel, the element itself included, in
// document order. Component selectors resolve to a *VueWrapper.
func (w *Wrapper) Find(sel Selector) (BaseWrapper, error) {
	found, err := w.findAll("find", sel)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, notFound("find", sel)
	}
	return found[0], nil
}

// FindAll returns every match for sel, the element itself included, in
// document order.
func (w *Wrapper) FindAll(sel Selector) (*WrapperArray, error) {
	found, err := w.findAll("findAll", sel)
	if err != nil {
		return nil, err
	}
	return NewWrapperArray(found...), nil
}

func (w *Wrapper) HTML() (string, error) {
	return dom.OuterHTML(w.el), nil
}

func (w *Wrapper) Name() (string, error) {
	return w.el.NodeName, nil
}

func (w *Wrapper) Text() (string, error) {
	return strings.TrimSpace(w.el.TextContent()), nil
}

func (w *Wrapper) SetData(map[string]any) error {
	return unsupported("setData")
}

func (w *Wrapper) SetProps(map[string]any) error {
	return unsupported("setProps")
}

// Trigger dispatches a bubbling event on the element and re-renders the
// owning component tree. Disabled elements ignore it.
func (w *Wrapper) Trigger(event string) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return invalidArgument("trigger", "a string")
	}
	if w.el.HasAttribute("disabled") {
		w.log.WithField("event", event).Debug("element is disabled, not dispatching")
		return nil
	}
	w.log.WithFields(logrus.Fields{
		"event":   event,
		"handled": w.el.HasEventListeners(event),
	}).Debug("dispatching event")
	w.el.DispatchEvent(dom.NewEvent(event, true))
	return w.Update()
}

// Update re-renders the owning component tree. It does nothing for
// elements outside one.
func (w *Wrapper) Update() error {
	if w.root == nil {
		return nil
	}
	return w.root.Update()
}

func (w *Wrapper) findAll(op string, sel Selector) ([]BaseWrapper, error) {
	if err := validateSelector(op, sel); err != nil {
		return nil, err
	}
	var found []BaseWrapper
	if s, ok := sel.(componentSelector); ok {
		for _, vm := range w.instances(s.c) {
			found = append(found, newVueWrapper(vm))
		}
	} else {
		nodes, err := w.match(op, sel.(CSS))
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			found = append(found, w.wrapNode(n))
		}
	}
	w.log.WithField("selector", sel.String()).Debugf("matched %d", len(found))
	return found, nil
}

// match returns the element and its descendants that match css.
func (w *Wrapper) match(op string, css CSS) ([]*dom.Node, error) {
	self, err := w.el.Matches(string(css))
	if err != nil {
		return nil, invalidArgument(op, "a valid selector").because(err)
	}
	below, err := w.el.QuerySelectorAll(string(css))
	if err != nil {
		return nil, invalidArgument(op, "a valid selector").because(err)
	}
	if self {
		return append([]*dom.Node{w.el}, below...), nil
	}
	return below, nil
}

// instances returns the mounted instances of c whose root element is the
// wrapped element or one of its descendants. Instance pre-order matches
// document order.
func (w *Wrapper) instances(c *component.Component) []*component.Instance {
	if w.root == nil {
		return nil
	}
	var found []*component.Instance
	w.root.Walk(func(vm *component.Instance) bool {
		if vm.Is(c) && w.el.Contains(vm.El) {
			found = append(found, vm)
		}
		return true
	})
	return found
}

// wrapNode wraps n, preferring a component wrapper when n is the root
// element of an instance.
func (w *Wrapper) wrapNode(n *dom.Node) BaseWrapper {
	if w.root != nil {
		var owner *component.Instance
		w.root.Walk(func(vm *component.Instance) bool {
			if vm.El == n {
				owner = vm
			}
			return owner == nil
		})
		if owner != nil {
			return newVueWrapper(owner)
		}
	}
	return newWrapper(n, w.root, w.base)
}
