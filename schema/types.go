package schema

import "time"

// SessionID identifies the conversation/document pairing. One process uses a
// single fixed session value for its lifetime.
type SessionID string

// MessageID orders messages within a timeline. IDs are assigned by the
// session service and are strictly increasing in append order, so they double
// as sort key and rendering key even when two messages share a timestamp.
type MessageID uint64

// MessageKind classifies a timeline entry.
type MessageKind string

const (
	// MessageUser is a question typed by the user.
	MessageUser MessageKind = "user"
	// MessageAssistant is an answer returned by the backend.
	MessageAssistant MessageKind = "assistant"
	// MessageSystem is a synthetic entry produced by the session itself.
	MessageSystem MessageKind = "system"
)

// SourceType classifies the origin of a supporting excerpt. Values other than
// the known constants originate from the server and pass through opaquely.
type SourceType string

const (
	// SourceTable marks an excerpt extracted from a table.
	SourceTable SourceType = "table"
	// SourceImage marks an excerpt extracted from an image.
	SourceImage SourceType = "image"
	// SourceText marks a plain text excerpt.
	SourceText SourceType = "text"
)

// Source is a supporting excerpt attached to an assistant message.
type Source struct {
	Page    int        `json:"page"`
	Type    SourceType `json:"type"`
	Content string     `json:"content"`
}

// Message is a timeline entry. Once appended it is never edited or removed.
type Message struct {
	ID        MessageID   `json:"id"`
	Kind      MessageKind `json:"kind"`
	Content   string      `json:"content"`
	Sources   []Source    `json:"sources,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// DocumentHandle describes the currently ingested document. A later
// successful upload replaces it wholesale.
type DocumentHandle struct {
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
	Tables   int    `json:"tables"`
	Images   int    `json:"images"`
}

// Answer is the result of a successful query.
type Answer struct {
	Text    string
	Sources []Source
}
