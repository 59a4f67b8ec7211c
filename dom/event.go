package dom

type eventPhase uint

const (
	noneEventPhase eventPhase = iota
	capturingPhase
	atTargetPhase
	bubblingPhase
)

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node
	Bubbles       bool

	eventPhase       eventPhase
	stopPropagation  bool
	defaultPrevented bool
}

// EventListener is called with the event while it is dispatched.
type EventListener func(e *Event)

func NewEvent(eventType string, bubbles bool) *Event {
	return &Event{Type: eventType, Bubbles: bubbles}
}

func (e *Event) StopPropagation()       { e.stopPropagation = true }
func (e *Event) PreventDefault()        { e.defaultPrevented = true }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

func (n *Node) AddEventListener(eventType string, l EventListener) {
	if n.listeners == nil {
		n.listeners = map[string][]EventListener{}
	}
	n.listeners[eventType] = append(n.listeners[eventType], l)
}

// RemoveEventListeners drops every listener registered for eventType, or
// all listeners when eventType is empty.
func (n *Node) RemoveEventListeners(eventType string) {
	if eventType == "" {
		n.listeners = nil
		return
	}
	delete(n.listeners, eventType)
}

func (n *Node) HasEventListeners(eventType string) bool {
	return len(n.listeners[eventType]) > 0
}

// DispatchEvent runs the target's listeners and then, for bubbling events,
// every ancestor's. It returns false if a listener called PreventDefault.
// There is no capture phase.
// https://dom.spec.whatwg.org/#concept-event-dispatch
func (n *Node) DispatchEvent(e *Event) bool {
	e.Target = n
	e.eventPhase = atTargetPhase
	for cur := n; cur != nil; cur = cur.ParentNode {
		if cur != n {
			if !e.Bubbles {
				break
			}
			e.eventPhase = bubblingPhase
		}
		e.CurrentTarget = cur
		// listeners added while dispatching are not run for this event
		ls := append([]EventListener(nil), cur.listeners[e.Type]...)
		for _, l := range ls {
			l(e)
		}
		if e.stopPropagation {
			break
		}
	}
	e.eventPhase = noneEventPhase
	e.CurrentTarget = nil
	return !e.defaultPrevented
}
