package schema

import "errors"

var (
	// ErrInvalidSession indicates an invalid session identifier.
	ErrInvalidSession = errors.New("invalid session")
	// ErrNoDocument indicates a query was submitted before any upload.
	ErrNoDocument = errors.New("no document uploaded")
	// ErrEmptyQuestion indicates the question was empty after trimming.
	ErrEmptyQuestion = errors.New("empty question")
	// ErrSessionBusy indicates a request is in flight and blocks the action.
	ErrSessionBusy = errors.New("session is busy")
	// ErrUploadBusy indicates an upload is already in flight.
	ErrUploadBusy = errors.New("upload already in progress")
	// ErrFileTooLarge indicates the file exceeds the upload size ceiling.
	ErrFileTooLarge = errors.New("file exceeds 20MB limit")
	// ErrUnsupportedFile indicates the file is not a PDF.
	ErrUnsupportedFile = errors.New("only PDF files are allowed")
	// ErrQueryFailed indicates the chat backend failed to answer.
	ErrQueryFailed = errors.New("query failed")
)

// UploadFailedError reports an upload rejected by transport or server.
// Detail carries the server-supplied message when the error body was
// parseable; callers fall back to a generic string when it is empty.
type UploadFailedError struct {
	Detail string
}

func (e *UploadFailedError) Error() string {
	if e == nil || e.Detail == "" {
		return "upload failed"
	}
	return "upload failed: " + e.Detail
}
