package auth

import (
	"sync"
	"time"
)

const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

type Event struct {
	Type   string    `json:"type"`
	UserID uint64    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

// Notifier fans auth-state changes out to subscribers so clients can react
// to sign-in/sign-out without reloading their cached state.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away; after cancel the channel is closed.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if _, ok := n.subs[ch]; ok {
			delete(n.subs, ch)
			close(ch)
		}
		n.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers ev to every subscriber. Slow subscribers are skipped
// rather than blocking the caller.
func (n *Notifier) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
