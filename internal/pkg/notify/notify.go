// Package notify implements the synchronous change-notification hook the
// in-memory stores fire after every mutation. Presentation layers subscribe
// to refresh their views.
package notify

// Notifier invokes registered listeners synchronously, in registration order.
// A panic inside one listener is swallowed so the remaining listeners still
// run and the triggering mutation is not aborted.
//
// Notifier is not safe for concurrent use and listeners must not trigger
// further mutations on the component that fired them; the engine is designed
// for a single logical thread of control.
type Notifier struct {
	listeners []*listener
}

type listener struct {
	fn func()
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns an unsubscribe handle. Unsubscribing
// twice is a no-op.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	n.listeners = append(n.listeners, l)

	return func() {
		for i, cur := range n.listeners {
			if cur == l {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every listener in registration order.
func (n *Notifier) Publish() {
	for _, l := range n.listeners {
		invoke(l.fn)
	}
}

// Len reports the number of registered listeners.
func (n *Notifier) Len() int {
	return len(n.listeners)
}

func invoke(fn func()) {
	defer func() {
		// Listener faults are isolated from the triggering mutation.
		_ = recover()
	}()
	fn()
}
