// Package observer implements the subject side of the value notification:
// observers register with a Subject and receive every new sequence in
// registration order.
package observer

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Observer receives the current sequence whenever it changes
type Observer interface {
	Update(values []int)
}

// Func adapts a plain function to the Observer interface
type Func func(values []int)

// Update calls f(values)
func (f Func) Update(values []int) {
	f(values)
}

type subscription struct {
	id       string
	observer Observer
}

// Subject keeps an ordered list of observers. It is not safe for concurrent use.
type Subject struct {
	subs []subscription
	log  zerolog.Logger
}

// NewSubject creates an empty subject
func NewSubject(log zerolog.Logger) *Subject {
	return &Subject{log: log}
}

// Attach registers o and returns its subscription ID
func (s *Subject) Attach(o Observer) string {
	id := uuid.NewString()
	s.subs = append(s.subs, subscription{id: id, observer: o})
	s.log.Debug().Str("subscription", id).Int("observers", len(s.subs)).Msg("observer attached")
	return id
}

// Detach removes the observer registered under id
func (s *Subject) Detach(id string) bool {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			s.log.Debug().Str("subscription", id).Int("observers", len(s.subs)).Msg("observer detached")
			return true
		}
	}
	return false
}

// Notify passes values to every observer, in attach order
func (s *Subject) Notify(values []int) {
	s.log.Debug().Ints("values", values).Int("observers", len(s.subs)).Msg("notify")
	for _, sub := range s.subs {
		sub.observer.Update(values)
	}
}

// Observers returns the registered observers in attach order
func (s *Subject) Observers() []Observer {
	out := make([]Observer, len(s.subs))
	for i, sub := range s.subs {
		out[i] = sub.observer
	}
	return out
}

// Len returns the number of registered observers
func (s *Subject) Len() int {
	return len(s.subs)
}
