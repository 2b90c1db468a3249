package core

import "pkt.systems/askdoc/schema"

// EventSink receives session state change events from the core service.
type EventSink interface {
	OnTimeline(event schema.TimelineEvent)
	OnStatus(event schema.StatusEvent)
	OnDocument(event schema.DocumentEvent)
	OnSources(event schema.SourcesEvent)
}
