package schema

// Wire payloads exchanged with the ingestion/answering backend. The backend
// addresses are fixed path suffixes under one base URL: /upload (multipart,
// session_id query parameter), /chat (JSON) and /health.

// UploadResult is the success body of POST /upload.
type UploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
	Tables   int    `json:"tables"`
	Images   int    `json:"images"`
}

// ErrorBody is the optional failure body of POST /upload.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Response  string   `json:"response"`
	Sources   []Source `json:"sources"`
	SessionID string   `json:"session_id,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
