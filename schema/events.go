package schema

// SessionEventType describes session state changes.
type SessionEventType string

const (
	// SessionEventTimeline indicates a message was appended.
	SessionEventTimeline SessionEventType = "timeline"
	// SessionEventStatus indicates an in-flight flag changed.
	SessionEventStatus SessionEventType = "status"
	// SessionEventDocument indicates the document handle was replaced.
	SessionEventDocument SessionEventType = "document"
	// SessionEventSources indicates source visibility was toggled.
	SessionEventSources SessionEventType = "sources"
)

// SessionEvent wraps one session state change for subscribers. Exactly one
// payload field is set, selected by Type.
type SessionEvent struct {
	Type     SessionEventType
	Timeline TimelineEvent
	Status   StatusEvent
	Document DocumentEvent
	Sources  SourcesEvent
}

// TimelineEvent reports a timeline append. TotalMessages changing is what
// drives scroll-to-bottom in transports, for synthetic system messages the
// same as for answers.
type TimelineEvent struct {
	SessionID     SessionID
	Message       Message
	TotalMessages int
}

// StatusEvent reports the in-flight flags after a transition.
type StatusEvent struct {
	SessionID      SessionID
	UploadInFlight bool
	QueryInFlight  bool
}

// DocumentEvent reports a replaced document handle.
type DocumentEvent struct {
	SessionID SessionID
	Document  DocumentHandle
}

// SourcesEvent reports a source-visibility change.
type SourcesEvent struct {
	SessionID SessionID
	Visible   bool
}
