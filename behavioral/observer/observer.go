package observer

import (
	"fmt"
	"slices"
	"sync"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"behavioral_observer",
		"Demonstrates a feed broadcasting messages to subscribers that relay through a shared console.",
		ObserverExample,
	)
}

// Subscriber receives every message published to a Feed.
type Subscriber interface {
	Notify(message string)
}

// Feed broadcasts published messages to its subscribers. The zero value
// is ready to use.
type Feed struct {
	mu   sync.Mutex
	subs []Subscriber
}

// Subscribe adds s to the feed. It panics if s is nil.
// Subscribers are notified in subscription order.
func (f *Feed) Subscribe(s Subscriber) {
	if s == nil {
		panic("observer: nil subscriber")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, s)
}

// Unsubscribe removes s from the feed. Removing a subscriber that was
// never added is a no-op.
func (f *Feed) Unsubscribe(s Subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = slices.DeleteFunc(f.subs, func(x Subscriber) bool {
		return x == s
	})
}

// Publish delivers message synchronously to the subscribers present when
// the call starts, in subscription order. Delivery happens outside the
// feed lock, so a subscriber may subscribe or unsubscribe from within
// Notify.
func (f *Feed) Publish(message string) {
	f.mu.Lock()
	subs := slices.Clone(f.subs)
	f.mu.Unlock()

	for _, s := range subs {
		s.Notify(message)
	}
}

// Len returns the current number of subscribers.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// ConsoleSubscriber relays feed messages through a console.
type ConsoleSubscriber struct {
	tag string
	c   *console.Console
}

// NewConsoleSubscriber returns a subscriber tagging relayed messages.
// It panics if c is nil.
func NewConsoleSubscriber(tag string, c *console.Console) *ConsoleSubscriber {
	if c == nil {
		panic("observer: nil console")
	}
	return &ConsoleSubscriber{tag: tag, c: c}
}

func (s *ConsoleSubscriber) Notify(message string) {
	if err := s.c.Emit(s.tag + " saw: " + message); err != nil {
		fmt.Println("observer:", s.tag, "emit:", err)
	}
}

func ObserverExample() {
	shared := console.Default()

	var feed Feed
	first := NewConsoleSubscriber("first", shared)
	second := NewConsoleSubscriber("second", shared)
	feed.Subscribe(first)
	feed.Subscribe(second)

	fmt.Println("publishing to", feed.Len(), "subscribers")
	feed.Publish("the feed is live")

	feed.Unsubscribe(first)
	fmt.Println("publishing to", feed.Len(), "subscriber")
	feed.Publish("only one of you hears this")
}
