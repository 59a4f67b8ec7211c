package wrapper

import (
	"github.com/heathj/gomount/component"
	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type options struct {
	props  map[string]any
	logger *logrus.Logger
	parse  []dom.ParseOption
}

// Option configures Mount and Parse. Options that do not apply to the
// call are ignored.
type Option func(*options)

// WithProps passes props to the mounted root instance.
func WithProps(props map[string]any) Option {
	return func(o *options) {
		o.props = props
	}
}

// WithLogger routes the debug logs of the wrapped tree to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithParseOptions tunes how Parse reads the document.
func WithParseOptions(opts ...dom.ParseOption) Option {
	return func(o *options) {
		o.parse = append(o.parse, opts...)
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Mount creates and renders an instance of c and wraps it.
func Mount(c *component.Component, opts ...Option) (*VueWrapper, error) {
	o := newOptions(opts)
	vm, err := component.New(c, o.props, component.WithLogger(o.logger))
	if err != nil {
		return nil, errors.Wrap(err, "mount")
	}
	return newVueWrapper(vm), nil
}
