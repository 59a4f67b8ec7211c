// Package component is a minimal component runtime: a definition renders
// an html/template into the dom package's tree, binds event attributes to
// methods and instantiates nested components. Instances re-render on
// Update and patch their existing tree in place.
package component

import (
	"strings"

	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
)

var (
	ErrInvalidComponent = errors.New("invalid component")
	ErrUnknownProp      = errors.New("unknown prop")
	ErrUnknownMethod    = errors.New("unknown method")
	ErrNoRoot           = errors.New("template has no root element")
	ErrMultipleRoots    = errors.New("template must have exactly one root element")
)

// Method handles an event bound in a template with @event="name" or
// v-on:event="name".
type Method func(vm *Instance, e *dom.Event)

// Component is a component definition. Template is an html/template
// executed against the instance's props merged with its data; data wins
// on conflicts. It must render exactly one root element.
//
// Inside the template:
//
//	@click="inc"          binds the "inc" method to click events
//	<child-comp msg="x">  mounts Components["ChildComp"] with prop msg="x"
//	<child-comp :n="count"> passes the parent's "count" value as prop n
type Component struct {
	Name       string
	Template   string
	Props      []string
	Data       func() map[string]any
	Methods    map[string]Method
	Components map[string]*Component
}

func (c *Component) hasProp(name string) bool {
	return c.propName(name) != ""
}

// propName resolves an attribute-style name (my-prop, myprop) to the
// declared prop name, or "".
func (c *Component) propName(name string) string {
	want := normalizeName(name)
	for _, p := range c.Props {
		if normalizeName(p) == want {
			return p
		}
	}
	return ""
}

// child returns the locally registered component for tag, if any.
func (c *Component) child(tag string) *Component {
	want := normalizeName(tag)
	for name, def := range c.Components {
		if normalizeName(name) == want {
			return def
		}
	}
	return nil
}

func (c *Component) validate() error {
	if c == nil {
		return errors.Wrap(ErrInvalidComponent, "nil component")
	}
	if strings.TrimSpace(c.Template) == "" {
		return errors.Wrapf(ErrInvalidComponent, "component %q has no template", c.Name)
	}
	for name, def := range c.Components {
		if def == nil {
			return errors.Wrapf(ErrInvalidComponent, "component %q registers nil child %q", c.Name, name)
		}
	}
	return nil
}

// normalizeName folds case and drops dashes so that ChildComp, childComp
// and child-comp compare equal.
func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", ""))
}
