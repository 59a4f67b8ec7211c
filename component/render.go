package component

import (
	"bytes"
	"strings"

	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// scope is what the template sees: props overlaid with data.
func (vm *Instance) scope() map[string]any {
	s := make(map[string]any, len(vm.props)+len(vm.data))
	for k, v := range vm.props {
		s[k] = v
	}
	for k, v := range vm.data {
		s[k] = v
	}
	return s
}

// render executes the template and builds a fresh tree. The returned map
// takes each child component placeholder to the root of the child
// instance that stands in for it.
func (vm *Instance) render() (*dom.Node, map[*dom.Node]*dom.Node, error) {
	name := vm.Options.Name
	var buf bytes.Buffer
	if err := vm.tmpl.Execute(&buf, vm.scope()); err != nil {
		return nil, nil, errors.Wrapf(err, "component %q: render", name)
	}
	nodes, err := dom.ParseFragment(buf.String(), dom.TrimWhitespace())
	if err != nil {
		return nil, nil, errors.Wrapf(err, "component %q", name)
	}

	var root *dom.Node
	for _, n := range nodes {
		switch n.NodeType {
		case dom.CommentNode:
			continue
		case dom.ElementNode:
			if root == nil {
				root = n
				continue
			}
		}
		return nil, nil, errors.Wrapf(ErrMultipleRoots, "component %q", name)
	}
	if root == nil {
		return nil, nil, errors.Wrapf(ErrNoRoot, "component %q", name)
	}
	if vm.Options.child(root.NodeName) != nil {
		return nil, nil, errors.Wrapf(ErrInvalidComponent, "component %q: root element cannot be a child component", name)
	}

	placeholders, err := vm.bind(root)
	if err != nil {
		return nil, nil, err
	}
	subs, err := vm.renderChildren(placeholders)
	if err != nil {
		return nil, nil, err
	}
	vm.log.WithField("method", "render").Debugf("rendered %d nodes", countNodes(root))
	return root, subs, nil
}

// bind turns event attributes into listeners and collects the elements
// that stand for child components, in tree order.
func (vm *Instance) bind(root *dom.Node) ([]*dom.Node, error) {
	var (
		placeholders []*dom.Node
		bindErr      error
	)
	root.Walk(func(n *dom.Node) bool {
		if bindErr != nil || n.NodeType != dom.ElementNode {
			return false
		}
		if n != root && vm.Options.child(n.NodeName) != nil {
			placeholders = append(placeholders, n)
			return false
		}
		for _, attr := range n.GetAttributeNames() {
			event, ok := eventName(attr)
			if !ok {
				continue
			}
			method := strings.TrimSpace(n.GetAttribute(attr))
			fn, ok := vm.Options.Methods[method]
			if !ok {
				bindErr = errors.Wrapf(ErrUnknownMethod, "component %q has no method %q for %s", vm.Options.Name, method, attr)
				return false
			}
			n.RemoveAttribute(attr)
			n.AddEventListener(event, vm.handler(method, fn))
		}
		return true
	})
	return placeholders, bindErr
}

func (vm *Instance) handler(method string, fn Method) dom.EventListener {
	return func(e *dom.Event) {
		vm.log.WithFields(logrus.Fields{"method": method, "event": e.Type}).Debug("handling event")
		fn(vm, e)
	}
}

// renderChildren creates or reuses one child instance per placeholder.
// Children are matched to existing instances by position and definition.
func (vm *Instance) renderChildren(placeholders []*dom.Node) (map[*dom.Node]*dom.Node, error) {
	subs := make(map[*dom.Node]*dom.Node, len(placeholders))
	children := make([]*Instance, 0, len(placeholders))
	for i, ph := range placeholders {
		def := vm.Options.child(ph.NodeName)
		props, err := vm.childProps(def, ph)
		if err != nil {
			return nil, err
		}

		var child *Instance
		if i < len(vm.children) && vm.children[i].Options == def {
			child = vm.children[i]
			if err := child.SetProps(props); err != nil {
				return nil, err
			}
			if err := child.Update(); err != nil {
				return nil, err
			}
		} else {
			child, err = New(def, props, withParent(vm))
			if err != nil {
				return nil, err
			}
			vm.log.WithField("child", def.Name).Debug("created child instance")
		}
		children = append(children, child)
		subs[ph] = child.El
	}
	vm.children = children
	return subs, nil
}

// childProps reads the props for def off a placeholder element. Plain
// attributes pass their string value, :name and v-bind:name attributes
// pass the value the parent holds under the attribute's value.
func (vm *Instance) childProps(def *Component, ph *dom.Node) (map[string]any, error) {
	props := map[string]any{}
	for _, attr := range ph.GetAttributeNames() {
		name, bound := strings.TrimPrefix(attr, ":"), strings.HasPrefix(attr, ":")
		if strings.HasPrefix(attr, "v-bind:") {
			name, bound = strings.TrimPrefix(attr, "v-bind:"), true
		}
		prop := def.propName(name)
		if prop == "" {
			vm.log.WithField("child", def.Name).Debugf("ignoring attribute %q", attr)
			continue
		}
		if !bound {
			props[prop] = ph.GetAttribute(attr)
			continue
		}
		key := strings.TrimSpace(ph.GetAttribute(attr))
		v, ok := vm.Get(key)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownProp, "component %q binds unknown key %q to %s", vm.Options.Name, key, attr)
		}
		props[prop] = v
	}
	return props, nil
}

// eventName extracts the event from @event and v-on:event attributes.
func eventName(attr string) (string, bool) {
	switch {
	case strings.HasPrefix(attr, "@") && len(attr) > 1:
		return attr[1:], true
	case strings.HasPrefix(attr, "v-on:") && len(attr) > len("v-on:"):
		return attr[len("v-on:"):], true
	}
	return "", false
}

func countNodes(root *dom.Node) int {
	n := 0
	root.Walk(func(*dom.Node) bool {
		n++
		return true
	})
	return n
}
