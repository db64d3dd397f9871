package broadcaster

import (
	"context"
	"errors"
	"testing"
)

func TestFanoutBroadcastsToAllTargets(t *testing.T) {
	var first, second int
	fanout := NewFanout(
		Func(func(ctx context.Context, event Event) error {
			first++
			return nil
		}),
		nil,
		Func(func(ctx context.Context, event Event) error {
			second++
			return nil
		}),
	)

	if err := fanout.Broadcast(context.Background(), Event{Topic: "inbox.created"}); err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if first != 1 || second != 1 {
		t.Fatalf("expected both targets invoked, got %d and %d", first, second)
	}
}

func TestFanoutFiltersByTopic(t *testing.T) {
	var created, dismissed, all int
	fanout := NewFanout().
		Subscribe(Func(func(ctx context.Context, event Event) error {
			created++
			return nil
		}), "inbox.created").
		Subscribe(Func(func(ctx context.Context, event Event) error {
			dismissed++
			return nil
		}), "inbox.dismissed", "inbox.read").
		Subscribe(Func(func(ctx context.Context, event Event) error {
			all++
			return nil
		}))

	for _, topic := range []string{"inbox.created", "inbox.read", "inbox.created"} {
		if err := fanout.Broadcast(context.Background(), Event{Topic: topic}); err != nil {
			t.Fatalf("broadcast %s: %v", topic, err)
		}
	}

	if created != 2 {
		t.Fatalf("created sink: got %d calls, want 2", created)
	}
	if dismissed != 1 {
		t.Fatalf("read/dismissed sink: got %d calls, want 1", dismissed)
	}
	if all != 3 {
		t.Fatalf("unscoped sink: got %d calls, want 3", all)
	}
}

func TestFanoutJoinsSinkErrors(t *testing.T) {
	boom := errors.New("boom")
	later := errors.New("later")
	calls := 0
	fanout := NewFanout(
		Func(func(ctx context.Context, event Event) error {
			calls++
			return boom
		}),
		Func(func(ctx context.Context, event Event) error {
			calls++
			return nil
		}),
		Func(func(ctx context.Context, event Event) error {
			calls++
			return later
		}),
	)

	err := fanout.Broadcast(context.Background(), Event{Topic: "inbox.updated"})
	if !errors.Is(err, boom) || !errors.Is(err, later) {
		t.Fatalf("expected both sink errors joined, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected delivery to continue after error, got %d calls", calls)
	}
}
