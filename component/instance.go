package component

import (
	"html/template"

	"github.com/google/uuid"
	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Instance is a mounted component. It is not safe for concurrent use.
type Instance struct {
	UID     string
	Options *Component
	// El is the root element. It keeps its identity across updates.
	El *dom.Node

	parent   *Instance
	children []*Instance
	props    map[string]any
	data     map[string]any
	tmpl     *template.Template
	log      *logrus.Entry
}

// Option configures an Instance before its first render.
type Option func(*Instance)

// WithLogger makes the instance, and every child it creates, log to l.
func WithLogger(l *logrus.Logger) Option {
	return func(vm *Instance) {
		vm.log = logrus.NewEntry(l)
	}
}

func withParent(p *Instance) Option {
	return func(vm *Instance) {
		vm.parent = p
		vm.log = logrus.NewEntry(p.log.Logger)
	}
}

// New creates an instance of c with the given props and renders it.
// Every prop key must be declared in c.Props.
func New(c *Component, props map[string]any, opts ...Option) (*Instance, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	vm := &Instance{
		UID:     uuid.NewString(),
		Options: c,
		props:   make(map[string]any, len(c.Props)),
		data:    map[string]any{},
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.log = vm.log.WithFields(logrus.Fields{"component": c.Name, "uid": vm.UID})

	for _, p := range c.Props {
		vm.props[p] = nil
	}
	if err := vm.SetProps(props); err != nil {
		return nil, err
	}
	if c.Data != nil {
		for k, v := range c.Data() {
			vm.data[k] = v
		}
	}

	tmpl, err := template.New(c.Name).Option("missingkey=error").Parse(c.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "component %q: parse template", c.Name)
	}
	vm.tmpl = tmpl

	root, subs, err := vm.render()
	if err != nil {
		return nil, err
	}
	dom.Substitute(root, subs)
	vm.El = root
	vm.log.Debug("mounted")
	return vm, nil
}

// Update re-renders the instance and patches the result into El.
func (vm *Instance) Update() error {
	root, subs, err := vm.render()
	if err != nil {
		return err
	}
	dom.Patch(vm.El, root, subs)
	vm.log.Debug("updated")
	return nil
}

// SetData merges data into the instance's data. It does not re-render.
func (vm *Instance) SetData(data map[string]any) {
	for k, v := range data {
		vm.data[k] = v
	}
}

// SetProps assigns props. Every key must be a declared prop; nothing is
// assigned otherwise. It does not re-render.
func (vm *Instance) SetProps(props map[string]any) error {
	for k := range props {
		if !vm.Options.hasProp(k) {
			return errors.Wrapf(ErrUnknownProp, "component %q has no prop %q", vm.Options.Name, k)
		}
	}
	for k, v := range props {
		vm.props[vm.Options.propName(k)] = v
	}
	return nil
}

// Get looks key up in data, then in props.
func (vm *Instance) Get(key string) (any, bool) {
	if v, ok := vm.data[key]; ok {
		return v, true
	}
	v, ok := vm.props[key]
	return v, ok
}

func (vm *Instance) Prop(name string) (any, bool) {
	v, ok := vm.props[name]
	return v, ok
}

// Props returns a copy of the current props.
func (vm *Instance) Props() map[string]any {
	return copyMap(vm.props)
}

// Data returns a copy of the current data.
func (vm *Instance) Data() map[string]any {
	return copyMap(vm.data)
}

func (vm *Instance) Parent() *Instance {
	return vm.parent
}

func (vm *Instance) Root() *Instance {
	root := vm
	for root.parent != nil {
		root = root.parent
	}
	return root
}

func (vm *Instance) Children() []*Instance {
	return append([]*Instance(nil), vm.children...)
}

// Walk visits vm and its descendants depth first, parents before
// children. Returning false skips the children of the instance just
// visited.
func (vm *Instance) Walk(fn func(*Instance) bool) {
	if !fn(vm) {
		return
	}
	for _, child := range vm.children {
		child.Walk(fn)
	}
}

// Is reports whether vm was created from c, or from a definition with the
// same non-empty name.
func (vm *Instance) Is(c *Component) bool {
	if c == nil {
		return false
	}
	return vm.Options == c || c.Name != "" && c.Name == vm.Options.Name
}

func (vm *Instance) Logger() *logrus.Entry {
	return vm.log
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
