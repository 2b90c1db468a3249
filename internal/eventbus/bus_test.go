package eventbus

import (
	"testing"
	"time"

	"pkt.systems/askdoc/schema"
)

func TestSubscribeAndPublish(t *testing.T) {
	bus := New(nil)
	ch, cancel := bus.Subscribe("default")
	defer cancel()

	event := schema.TimelineEvent{
		SessionID:     "default",
		Message:       schema.Message{ID: 1, Kind: schema.MessageUser, Content: "hi"},
		TotalMessages: 1,
	}
	bus.OnTimeline(event)

	select {
	case got := <-ch:
		if got.Type != schema.SessionEventTimeline {
			t.Fatalf("expected timeline event, got %v", got.Type)
		}
		if got.Timeline.SessionID != event.SessionID || got.Timeline.Message.ID != event.Message.ID {
			t.Fatalf("unexpected payload: %+v", got.Timeline)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for event")
	}
}

func TestPublishReachesSessionSubscribersOnly(t *testing.T) {
	bus := New(nil)
	mine, cancelMine := bus.Subscribe("default")
	defer cancelMine()
	other, cancelOther := bus.Subscribe("other")
	defer cancelOther()

	bus.OnStatus(schema.StatusEvent{SessionID: "default", QueryInFlight: true})

	select {
	case got := <-mine:
		if got.Type != schema.SessionEventStatus || !got.Status.QueryInFlight {
			t.Fatalf("unexpected event: %+v", got)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for event")
	}
	select {
	case got := <-other:
		t.Fatalf("event leaked across sessions: %+v", got)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := New(nil)
	ch, cancel := bus.Subscribe("default")
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel to be closed")
	}
}

func TestPublishDoesNotBlockWhenFull(t *testing.T) {
	bus := New(nil)
	bus.depth = 1
	_, cancel := bus.Subscribe("default")
	defer cancel()

	var sendCh chan schema.SessionEvent
	bus.mu.Lock()
	for ch := range bus.subs["default"] {
		sendCh = ch
		break
	}
	bus.mu.Unlock()
	if sendCh == nil {
		t.Fatalf("expected subscriber channel")
	}
	sendCh <- schema.SessionEvent{Type: schema.SessionEventStatus}
	done := make(chan struct{})
	go func() {
		bus.OnStatus(schema.StatusEvent{SessionID: "default"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("publish blocked on full channel")
	}
}
