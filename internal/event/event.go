// Package event merges the viewer's independently-timed producers — the
// chat network, the keyboard and a fixed-period render tick — into one
// ordered stream for the render loop.
package event

import (
	"context"
	"sync"
	"time"

	"github.com/john/chatview/internal/message"
	"github.com/john/chatview/internal/ui"
)

// Event is the closed set of things the render loop dispatches on. Each
// variant is emitted by exactly one producer and consumed exactly once.
type Event interface {
	event()
}

// Incoming carries one chat message from the network producer.
type Incoming struct {
	Message message.Message
}

// Key carries one key press from the input producer.
type Key struct {
	Press ui.KeyEvent
}

// Tick requests a redraw pass.
type Tick struct{}

func (Incoming) event() {}
func (Key) event()      {}
func (Tick) event()     {}

// DefaultTickRate is the redraw period when the config does not override it.
const DefaultTickRate = 200 * time.Millisecond

// Aggregator owns the shared event channel. Chat and key events use a
// blocking send so none are lost; ticks are sent best-effort and dropped
// when the channel is full, since a missed tick only delays a redraw.
type Aggregator struct {
	events   chan Event
	tickRate time.Duration
}

// New creates an aggregator with the given channel capacity and tick period.
func New(capacity int, tickRate time.Duration) *Aggregator {
	if capacity < 1 {
		capacity = 1
	}
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Aggregator{
		events:   make(chan Event, capacity),
		tickRate: tickRate,
	}
}

// Events returns the merged stream. Events arrive in send order across
// producers. The channel closes once both producers have stopped.
func (a *Aggregator) Events() <-chan Event {
	return a.events
}

// Start launches the network producer and the input/tick producer. Both run
// until their source closes or ctx is cancelled.
func (a *Aggregator) Start(ctx context.Context, msgs <-chan message.Message, keys <-chan ui.KeyEvent) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.runMessages(ctx, msgs)
	}()
	go func() {
		defer wg.Done()
		a.runInputTick(ctx, keys)
	}()
	go func() {
		wg.Wait()
		close(a.events)
	}()
}

// runMessages forwards every chat message as an Incoming event until the
// source channel closes.
func (a *Aggregator) runMessages(ctx context.Context, msgs <-chan message.Message) {
	for {
		select {
		case m, ok := <-msgs:
			if !ok {
				return
			}
			if !a.send(ctx, Incoming{Message: m}) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// runInputTick polls the keyboard with a timeout equal to the time left
// until the next tick boundary. Key presses are forwarded the moment they
// arrive and do not reset the tick reference, so input latency and render
// cadence stay decoupled.
func (a *Aggregator) runInputTick(ctx context.Context, keys <-chan ui.KeyEvent) {
	last := time.Now()
	for {
		timeout := a.tickRate - time.Since(last)
		if timeout < 0 {
			timeout = 0
		}
		select {
		case k, ok := <-keys:
			if !ok {
				return
			}
			if !a.send(ctx, Key{Press: k}) {
				return
			}
		case <-time.After(timeout):
		case <-ctx.Done():
			return
		}
		if time.Since(last) >= a.tickRate {
			a.trySend(Tick{})
			last = time.Now()
		}
	}
}

// send enqueues ev, waiting for channel space. Returns false once ctx ends.
func (a *Aggregator) send(ctx context.Context, ev Event) bool {
	select {
	case a.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// trySend enqueues ev only if space is available right now.
func (a *Aggregator) trySend(ev Event) bool {
	select {
	case a.events <- ev:
		return true
	default:
		return false
	}
}
