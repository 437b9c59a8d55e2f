// Package app carries the pieces shared between the services and the
// presentation layer: the change notifier and the banner message slot.
package app

import (
	"log"
	"sync"
)

// Change identifies which persisted collection a mutation touched.
type Change string

const (
	ChangedUsers    Change = "users"
	ChangedPosts    Change = "posts"
	ChangedComments Change = "comments"
	ChangedSession  Change = "currentUser"
)

// Notifier fans mutation events out to subscribers, so the presentation layer
// can re-render from new state instead of re-reading after every dispatch.
// Dispatch is synchronous: subscribers observe changes in the same total order
// the single-writer services produce them.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Change)
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Change))}
}

// Subscribe registers fn for every published change and returns the matching
// unsubscribe function.
func (n *Notifier) Subscribe(fn func(Change)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish delivers each change to every subscriber. A nil Notifier publishes
// to nobody, so services can run without one.
func (n *Notifier) Publish(changes ...Change) {
	if n == nil {
		return
	}
	n.mu.Lock()
	subs := make([]func(Change), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, change := range changes {
		for _, fn := range subs {
			dispatch(fn, change)
		}
	}
}

func dispatch(fn func(Change), change Change) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("recovered from panicking change subscriber", r)
		}
	}()
	fn(change)
}
