// Package buffer holds the most recent chat messages for display.
package buffer

import "github.com/john/chatview/internal/message"

// Ring is a bounded, insertion-ordered store of chat messages, newest first.
// Inserting beyond capacity evicts the oldest entry. It is owned by the
// render loop and must not be shared across goroutines.
type Ring struct {
	msgs []message.Message
	cap  int
}

// New creates a ring holding at most capacity messages. Capacity must be
// positive; anything else is clamped to 1.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{msgs: make([]message.Message, 0, capacity), cap: capacity}
}

// Insert adds a message at the front, evicting the back entry when full.
func (r *Ring) Insert(m message.Message) {
	if len(r.msgs) < r.cap {
		r.msgs = append(r.msgs, message.Message{})
	}
	copy(r.msgs[1:], r.msgs)
	r.msgs[0] = m
}

// Len returns the number of stored messages.
func (r *Ring) Len() int {
	return len(r.msgs)
}

// Each calls fn for every stored message, newest first.
func (r *Ring) Each(fn func(message.Message)) {
	for _, m := range r.msgs {
		fn(m)
	}
}
