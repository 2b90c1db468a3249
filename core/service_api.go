package core

import (
	"context"

	"pkt.systems/askdoc/schema"
)

// Service is the session state machine exposed to transports. All state
// mutation happens inside these transition handlers; no other component
// writes session state.
type Service interface {
	// SubmitUpload ingests one document, replacing any previous document
	// wholesale. Rejected while another upload is in flight.
	SubmitUpload(ctx context.Context, req schema.SubmitUploadRequest) (schema.SubmitUploadResponse, error)
	// SubmitQuery appends the question and its eventual answer to the
	// timeline. Rejected while no document is present, while any request is
	// in flight, or when the trimmed text is empty. Backend failures are
	// absorbed into a fallback assistant message, not returned.
	SubmitQuery(ctx context.Context, req schema.SubmitQueryRequest) (schema.SubmitQueryResponse, error)
	// ToggleSources flips the global source-excerpt visibility.
	ToggleSources(ctx context.Context, req schema.ToggleSourcesRequest) (schema.ToggleSourcesResponse, error)
	// EditDraft replaces the unsent input text. Rejected while a query is in
	// flight; editing stays allowed during uploads.
	EditDraft(ctx context.Context, req schema.EditDraftRequest) (schema.EditDraftResponse, error)
	// Snapshot returns a copy of the full session state.
	Snapshot(ctx context.Context, req schema.SnapshotRequest) (schema.SnapshotResponse, error)
	// History returns previously submitted questions, oldest first.
	History(ctx context.Context, req schema.HistoryRequest) (schema.HistoryResponse, error)
}
