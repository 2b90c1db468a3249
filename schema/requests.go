package schema

import "io"

// Upload lifecycle.

// UploadFile carries the local file handed to SubmitUpload. ContentType is
// optional; when set it must declare a PDF.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        io.Reader
}

// SubmitUploadRequest describes a document upload.
type SubmitUploadRequest struct {
	File UploadFile
}

// SubmitUploadResponse reports the ingested document.
type SubmitUploadResponse struct {
	Document DocumentHandle
}

// Query lifecycle.

// SubmitQueryRequest describes a question submission. Text is appended to the
// timeline untrimmed; the trimmed form is what reaches the backend.
type SubmitQueryRequest struct {
	Text string
}

// SubmitQueryResponse reports the appended assistant message.
type SubmitQueryResponse struct {
	Message Message
}

// Session state.

// ToggleSourcesRequest describes a source-visibility flip.
type ToggleSourcesRequest struct{}

// ToggleSourcesResponse reports the new visibility.
type ToggleSourcesResponse struct {
	Visible bool
}

// EditDraftRequest replaces the unsent input text.
type EditDraftRequest struct {
	Text string
}

// EditDraftResponse reports the stored draft.
type EditDraftResponse struct {
	Draft string
}

// SnapshotRequest asks for a full session view.
type SnapshotRequest struct{}

// SnapshotResponse carries the session view.
type SnapshotResponse struct {
	Session SessionSnapshot
}

// HistoryRequest asks for submitted draft history.
type HistoryRequest struct{}

// HistoryResponse carries history entries, oldest first.
type HistoryResponse struct {
	Entries []string
}
