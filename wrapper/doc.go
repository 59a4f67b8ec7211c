// Package wrapper provides the test-facing handles of gomount.
//
// Mount renders a component and returns a *VueWrapper. Find and FindAll
// select elements or child components below it, returning *Wrapper,
// *VueWrapper or a *WrapperArray. A WrapperArray answers queries such as
// HasClass for all of its wrappers at once and applies mutations such as
// Trigger to each of them in turn:
//
//	w, err := wrapper.Mount(list)
//	items, err := w.FindAll(wrapper.CSS("li"))
//	ok, err := items.HasClass("item")
//	first, err := items.At(0)
//
// Operations that only make sense on one wrapper (Find, FindAll, HTML,
// Name, Text) fail on an array with an AmbiguousOperation error. Errors
// raised by the wrappers themselves are *Error values and can be tested
// with errors.Is against the Err* values.
//
// Wrappers are meant to be used from a single test goroutine.
package wrapper
