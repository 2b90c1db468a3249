package askdoc

import (
	"pkt.systems/askdoc/core"
	"pkt.systems/askdoc/schema"
)

type eventFanout struct {
	sinks []core.EventSink
}

func (f eventFanout) OnTimeline(event schema.TimelineEvent) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.OnTimeline(event)
	}
}

func (f eventFanout) OnStatus(event schema.StatusEvent) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.OnStatus(event)
	}
}

func (f eventFanout) OnDocument(event schema.DocumentEvent) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.OnDocument(event)
	}
}

func (f eventFanout) OnSources(event schema.SourcesEvent) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.OnSources(event)
	}
}
