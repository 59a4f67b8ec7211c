package wrapper

import (
	"reflect"

	"github.com/heathj/gomount/component"
)

var _ BaseWrapper = (*VueWrapper)(nil)

// VueWrapper wraps a mounted component instance. Element queries run
// against the instance's root element.
type VueWrapper struct {
	*Wrapper
	vm *component.Instance
}

func newVueWrapper(vm *component.Instance) *VueWrapper {
	w := newWrapper(vm.El, vm.Root(), vm.Logger())
	return &VueWrapper{Wrapper: w, vm: vm}
}

// VM returns the wrapped instance.
func (w *VueWrapper) VM() *component.Instance {
	return w.vm
}

func (w *VueWrapper) IsVueInstance() (bool, error) {
	return true, nil
}

// Name is the component name, or the root tag for anonymous components.
func (w *VueWrapper) Name() (string, error) {
	if w.vm.Options.Name != "" {
		return w.vm.Options.Name, nil
	}
	return w.Wrapper.Name()
}

// HasProp reports whether prop is declared and deeply equal to value.
func (w *VueWrapper) HasProp(prop string, value any) (bool, error) {
	if prop == "" {
		return false, invalidArgument("hasProp", "a string as first argument")
	}
	got, ok := w.vm.Prop(prop)
	if !ok {
		return false, nil
	}
	return reflect.DeepEqual(got, value), nil
}

// Is also matches a component selector against the wrapped instance.
func (w *VueWrapper) Is(sel Selector) (bool, error) {
	if s, ok := sel.(componentSelector); ok && s.c != nil {
		return w.vm.Is(s.c), nil
	}
	return w.Wrapper.Is(sel)
}

// SetData merges data into the instance and re-renders it.
func (w *VueWrapper) SetData(data map[string]any) error {
	if data == nil {
		return invalidArgument("setData", "an object")
	}
	w.vm.SetData(data)
	w.log.Debug("set data")
	return w.Update()
}

// SetProps assigns props and re-renders the instance. Props set on a
// child instance are overwritten the next time its parent renders.
func (w *VueWrapper) SetProps(props map[string]any) error {
	if props == nil {
		return invalidArgument("setProps", "an object")
	}
	if err := w.vm.SetProps(props); err != nil {
		return invalidArgument("setProps", "declared props").because(err)
	}
	w.log.Debug("set props")
	return w.Update()
}

// Update re-renders the instance and its children.
func (w *VueWrapper) Update() error {
	if err := w.vm.Update(); err != nil {
		return err
	}
	w.log.Debug("updated")
	return nil
}
