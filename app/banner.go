package app

import (
	"sync"
)

// Banner is the single process-wide error-message slot. The latest failure
// message stays visible until it is dismissed or replaced by a newer one.
type Banner struct {
	mu      sync.Mutex
	message string
	shown   bool
}

func (b *Banner) Show(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = message
	b.shown = true
}

func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = ""
	b.shown = false
}

func (b *Banner) Current() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message, b.shown
}
