package schema

// SessionSnapshot is a read-only view of session state for transports.
type SessionSnapshot struct {
	SessionID      SessionID
	Messages       []Message
	Document       *DocumentHandle
	UploadInFlight bool
	QueryInFlight  bool
	SourcesVisible bool
	Draft          string
}

// TimelineSnapshot represents the visible conversation.
type TimelineSnapshot struct {
	Messages      []Message
	TotalMessages int
}
