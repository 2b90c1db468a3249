package eventbus

import (
	"context"
	"sync"

	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

// Bus fanouts session events to per-session subscribers. It satisfies
// core.EventSink so it can be wired directly as the service sink.
type Bus struct {
	mu    sync.Mutex
	subs  map[schema.SessionID]map[chan schema.SessionEvent]struct{}
	log   pslog.Logger
	depth int
}

// New constructs a Bus.
func New(logger pslog.Logger) *Bus {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Bus{
		subs:  make(map[schema.SessionID]map[chan schema.SessionEvent]struct{}),
		log:   logger,
		depth: 256,
	}
}

// Subscribe registers a subscriber for the session and returns a channel +
// cancel.
func (b *Bus) Subscribe(sessionID schema.SessionID) (<-chan schema.SessionEvent, func()) {
	if b == nil {
		return nil, func() {}
	}
	ch := make(chan schema.SessionEvent, b.depth)
	b.mu.Lock()
	sessionSubs := b.subs[sessionID]
	if sessionSubs == nil {
		sessionSubs = make(map[chan schema.SessionEvent]struct{})
		b.subs[sessionID] = sessionSubs
	}
	sessionSubs[ch] = struct{}{}
	count := len(sessionSubs)
	b.mu.Unlock()
	if b.log != nil {
		b.log.With("session", sessionID).Debug("eventbus subscribe", "subs", count)
	}
	return ch, func() {
		b.mu.Lock()
		if subs := b.subs[sessionID]; subs != nil {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(b.subs, sessionID)
			}
		}
		b.mu.Unlock()
		close(ch)
		if b.log != nil {
			b.log.With("session", sessionID).Debug("eventbus unsubscribe")
		}
	}
}

// OnTimeline publishes a timeline append.
func (b *Bus) OnTimeline(event schema.TimelineEvent) {
	b.publish(event.SessionID, schema.SessionEvent{Type: schema.SessionEventTimeline, Timeline: event})
}

// OnStatus publishes an in-flight status change.
func (b *Bus) OnStatus(event schema.StatusEvent) {
	b.publish(event.SessionID, schema.SessionEvent{Type: schema.SessionEventStatus, Status: event})
}

// OnDocument publishes a document replacement.
func (b *Bus) OnDocument(event schema.DocumentEvent) {
	b.publish(event.SessionID, schema.SessionEvent{Type: schema.SessionEventDocument, Document: event})
}

// OnSources publishes a source-visibility change.
func (b *Bus) OnSources(event schema.SourcesEvent) {
	b.publish(event.SessionID, schema.SessionEvent{Type: schema.SessionEventSources, Sources: event})
}

func (b *Bus) publish(sessionID schema.SessionID, event schema.SessionEvent) {
	if b == nil {
		return
	}
	b.mu.Lock()
	sessionSubs := b.subs[sessionID]
	subs := make([]chan schema.SessionEvent, 0, len(sessionSubs))
	for sub := range sessionSubs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()
	if len(subs) == 0 {
		return
	}
	dropped := 0
	for _, sub := range subs {
		select {
		case sub <- event:
		default:
			dropped++
		}
	}
	if dropped > 0 && b.log != nil {
		b.log.With("session", sessionID).Trace("eventbus dropped", "count", dropped)
	}
}
