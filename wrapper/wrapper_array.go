package wrapper

var _ BaseWrapper = (*WrapperArray)(nil)

// WrapperArray runs one query or mutation across a fixed list of
// wrappers. Queries are true only when every wrapper answers true;
// operations that need a single wrapper fail and point at At.
type WrapperArray struct {
	wrappers []BaseWrapper
	length   int
}

// NewWrapperArray copies ws, so later writes to the caller's slice do not
// change the array.
func NewWrapperArray(ws ...BaseWrapper) *WrapperArray {
	wrappers := make([]BaseWrapper, len(ws))
	copy(wrappers, ws)
	return &WrapperArray{wrappers: wrappers, length: len(wrappers)}
}

func (a *WrapperArray) Length() int {
	return a.length
}

// Wrappers returns the wrappers in order. The slice is a copy.
func (a *WrapperArray) Wrappers() []BaseWrapper {
	return append([]BaseWrapper(nil), a.wrappers...)
}

func (a *WrapperArray) At(index int) (BaseWrapper, error) {
	if index < 0 || index > a.length-1 {
		return nil, outOfRange(index)
	}
	return a.wrappers[index], nil
}

func (a *WrapperArray) Contains(sel Selector) (bool, error) {
	return a.every("contains", func(w BaseWrapper) (bool, error) {
		return w.Contains(sel)
	})
}

func (a *WrapperArray) HasAttribute(attribute, value string) (bool, error) {
	return a.every("hasAttribute", func(w BaseWrapper) (bool, error) {
		return w.HasAttribute(attribute, value)
	})
}

func (a *WrapperArray) HasClass(className string) (bool, error) {
	return a.every("hasClass", func(w BaseWrapper) (bool, error) {
		return w.HasClass(className)
	})
}

func (a *WrapperArray) HasProp(prop string, value any) (bool, error) {
	return a.every("hasProp", func(w BaseWrapper) (bool, error) {
		return w.HasProp(prop, value)
	})
}

func (a *WrapperArray) HasStyle(style, value string) (bool, error) {
	return a.every("hasStyle", func(w BaseWrapper) (bool, error) {
		return w.HasStyle(style, value)
	})
}

func (a *WrapperArray) Is(sel Selector) (bool, error) {
	return a.every("is", func(w BaseWrapper) (bool, error) {
		return w.Is(sel)
	})
}

func (a *WrapperArray) IsEmpty() (bool, error) {
	return a.every("isEmpty", BaseWrapper.IsEmpty)
}

func (a *WrapperArray) IsVueInstance() (bool, error) {
	return a.every("isVueInstance", BaseWrapper.IsVueInstance)
}

func (a *WrapperArray) FindAll(Selector) (*WrapperArray, error) {
	return nil, a.single("findAll")
}

func (a *WrapperArray) Find(Selector) (BaseWrapper, error) {
	return nil, a.single("find")
}

func (a *WrapperArray) HTML() (string, error) {
	return "", a.single("html")
}

func (a *WrapperArray) Name() (string, error) {
	return "", a.single("name")
}

func (a *WrapperArray) Text() (string, error) {
	return "", a.single("text")
}

func (a *WrapperArray) SetData(data map[string]any) error {
	return a.each("setData", func(w BaseWrapper) error {
		return w.SetData(data)
	})
}

func (a *WrapperArray) SetProps(props map[string]any) error {
	return a.each("setProps", func(w BaseWrapper) error {
		return w.SetProps(props)
	})
}

func (a *WrapperArray) Trigger(event string) error {
	return a.each("trigger", func(w BaseWrapper) error {
		return w.Trigger(event)
	})
}

func (a *WrapperArray) Update() error {
	return a.each("update", BaseWrapper.Update)
}

func (a *WrapperArray) checkNotEmpty(op string) error {
	if len(a.wrappers) == 0 {
		return emptyCollection(op)
	}
	return nil
}

// every stops at the first wrapper that answers false or fails.
func (a *WrapperArray) every(op string, fn func(BaseWrapper) (bool, error)) (bool, error) {
	if err := a.checkNotEmpty(op); err != nil {
		return false, err
	}
	for _, w := range a.wrappers {
		ok, err := fn(w)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// each applies fn in order and stops at the first error. Wrappers already
// visited keep their changes.
func (a *WrapperArray) each(op string, fn func(BaseWrapper) error) error {
	if err := a.checkNotEmpty(op); err != nil {
		return err
	}
	for _, w := range a.wrappers {
		if err := fn(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *WrapperArray) single(op string) error {
	if err := a.checkNotEmpty(op); err != nil {
		return err
	}
	return ambiguousOperation(op)
}
