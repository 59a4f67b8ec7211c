package wrapper

import (
	"strings"

	"github.com/heathj/gomount/component"
)

// Selector picks elements or component instances. It is either a CSS
// string or a ComponentSelector.
type Selector interface {
	selector()
	String() string
}

// CSS is a CSS selector: type, #id, .class and [attr=value] compounds
// joined by descendant or child combinators, comma separated.
type CSS string

func (CSS) selector() {}

func (s CSS) String() string {
	return string(s)
}

type componentSelector struct {
	c *component.Component
}

// ComponentSelector selects the mounted instances of c.
func ComponentSelector(c *component.Component) Selector {
	return componentSelector{c: c}
}

func (componentSelector) selector() {}

func (s componentSelector) String() string {
	if s.c == nil {
		return "<nil component>"
	}
	if s.c.Name == "" {
		return "<anonymous component>"
	}
	return s.c.Name
}

func validateSelector(op string, sel Selector) error {
	switch s := sel.(type) {
	case nil:
		return invalidArgument(op, "a CSS selector or a component")
	case CSS:
		if strings.TrimSpace(string(s)) == "" {
			return invalidArgument(op, "a non-empty CSS selector")
		}
	case componentSelector:
		if s.c == nil {
			return invalidArgument(op, "a non-nil component")
		}
	}
	return nil
}
