package wrapper

// BaseWrapper is the surface shared by element wrappers, component
// wrappers and WrapperArray.
type BaseWrapper interface {
	Contains(sel Selector) (bool, error)
	HasAttribute(attribute, value string) (bool, error)
	HasClass(className string) (bool, error)
	HasProp(prop string, value any) (bool, error)
	HasStyle(style, value string) (bool, error)
	Is(sel Selector) (bool, error)
	IsEmpty() (bool, error)
	IsVueInstance() (bool, error)

	Find(sel Selector) (BaseWrapper, error)
	FindAll(sel Selector) (*WrapperArray, error)
	HTML() (string, error)
	Name() (string, error)
	Text() (string, error)

	SetData(data map[string]any) error
	SetProps(props map[string]any) error
	Trigger(event string) error
	Update() error
}
