package core

import "pkt.systems/askdoc/schema"

// timeline is the append-only ordered log of conversation messages. Entries
// are stamped under the service lock, so ids stay strictly increasing in
// append order even when two appends share a wall-clock timestamp.
type timeline struct {
	messages []schema.Message
	nextID   schema.MessageID
}

func newTimeline() *timeline {
	return &timeline{nextID: 1}
}

// Append stamps the entry with the next id and capture time and stores it.
// The returned message is the immutable stored value.
func (t *timeline) Append(kind schema.MessageKind, content string, sources []schema.Source) schema.Message {
	msg := schema.Message{
		ID:        t.nextID,
		Kind:      kind,
		Content:   content,
		Sources:   sources,
		CreatedAt: timeNow(),
	}
	t.nextID++
	t.messages = append(t.messages, msg)
	return msg
}

// Len reports the number of messages.
func (t *timeline) Len() int {
	return len(t.messages)
}

// Snapshot returns a copy of the conversation.
func (t *timeline) Snapshot() schema.TimelineSnapshot {
	messages := make([]schema.Message, len(t.messages))
	copy(messages, t.messages)
	return schema.TimelineSnapshot{
		Messages:      messages,
		TotalMessages: len(t.messages),
	}
}
