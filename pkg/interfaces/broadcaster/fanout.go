package broadcaster

import (
	"context"
	"errors"
	"strings"
)

// Func adapts a function to the Broadcaster interface.
type Func func(ctx context.Context, event Event) error

// Broadcast satisfies the Broadcaster interface.
func (f Func) Broadcast(ctx context.Context, event Event) error {
	if f == nil {
		return nil
	}
	return f(ctx, event)
}

// sink pairs a downstream broadcaster with the topics it subscribed to.
// An empty topic set means the sink receives everything.
type sink struct {
	target Broadcaster
	topics map[string]struct{}
}

func (s sink) wants(topic string) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[strings.ToLower(topic)]
	return ok
}

// Fanout forwards each event to every subscribed downstream broadcaster.
// Delivery continues past failing sinks and the errors come back joined.
type Fanout struct {
	sinks []sink
}

// NewFanout assembles a fanout where every target receives every topic.
// Use Subscribe for topic-scoped targets.
func NewFanout(targets ...Broadcaster) *Fanout {
	f := &Fanout{}
	for _, target := range targets {
		f.Subscribe(target)
	}
	return f
}

// Subscribe adds a target limited to the given topics. With no topics the
// target receives every event. Nil targets are ignored.
func (f *Fanout) Subscribe(target Broadcaster, topics ...string) *Fanout {
	if target == nil {
		return f
	}
	s := sink{target: target}
	if len(topics) > 0 {
		s.topics = make(map[string]struct{}, len(topics))
		for _, topic := range topics {
			s.topics[strings.ToLower(strings.TrimSpace(topic))] = struct{}{}
		}
	}
	f.sinks = append(f.sinks, s)
	return f
}

var _ Broadcaster = (*Fanout)(nil)

// Broadcast delivers the event to every sink subscribed to its topic.
// Failures do not stop delivery; all sink errors are joined in the result.
func (f *Fanout) Broadcast(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range f.sinks {
		if !s.wants(event.Topic) {
			continue
		}
		if err := s.target.Broadcast(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
