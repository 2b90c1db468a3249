package core

import "strings"

// draftHistory remembers submitted questions for input recall. Blank entries
// and immediate duplicates are skipped; the ring keeps the most recent max
// entries.
type draftHistory struct {
	entries []string
	max     int
}

func newDraftHistory(max int) *draftHistory {
	if max <= 0 {
		max = 1
	}
	return &draftHistory{max: max}
}

func (h *draftHistory) Append(entry string) bool {
	if h == nil {
		return false
	}
	if strings.TrimSpace(entry) == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return false
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return true
}

func (h *draftHistory) Entries() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.entries...)
}
