package core

import (
	"context"

	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

// UploadGateway wraps the outbound ingestion request.
type UploadGateway interface {
	Upload(ctx context.Context, file schema.UploadFile, sessionID schema.SessionID) (schema.DocumentHandle, error)
}

// QueryGateway wraps the outbound answering request.
type QueryGateway interface {
	Query(ctx context.Context, message string, sessionID schema.SessionID) (schema.Answer, error)
}

// ServiceDeps captures dependencies for the session service.
type ServiceDeps struct {
	Uploads   UploadGateway
	Queries   QueryGateway
	EventSink EventSink
	Logger    pslog.Logger
}
