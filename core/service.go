package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pkt.systems/askdoc/internal/logx"
	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

// service implements the session state machine.
type service struct {
	cfg     schema.ServiceConfig
	uploads UploadGateway
	queries QueryGateway
	sink    EventSink
	logger  pslog.Logger

	mu             sync.Mutex
	timeline       *timeline
	document       *schema.DocumentHandle
	uploadInFlight bool
	queryInFlight  bool
	sourcesVisible bool
	draft          string
	history        *draftHistory
}

var timeNow = time.Now

// NewService constructs the session service implementation.
func NewService(cfg schema.ServiceConfig, deps ServiceDeps) (Service, error) {
	normalized, err := schema.NormalizeServiceConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &service{
		cfg:      cfg,
		uploads:  deps.Uploads,
		queries:  deps.Queries,
		sink:     deps.EventSink,
		logger:   logger,
		timeline: newTimeline(),
		history:  newDraftHistory(cfg.HistoryMax),
	}, nil
}

func (s *service) SubmitUpload(ctx context.Context, req schema.SubmitUploadRequest) (schema.SubmitUploadResponse, error) {
	if ctx == nil {
		return schema.SubmitUploadResponse{}, errors.New("missing context")
	}
	if s.uploads == nil {
		return schema.SubmitUploadResponse{}, errors.New("upload gateway not configured")
	}
	log := logx.WithSession(ctx, s.cfg.SessionID).With("filename", req.File.Name, "size", req.File.Size)

	s.mu.Lock()
	if s.uploadInFlight {
		s.mu.Unlock()
		log.Warn("service upload rejected", "err", schema.ErrUploadBusy)
		return schema.SubmitUploadResponse{}, schema.ErrUploadBusy
	}
	s.uploadInFlight = true
	status := s.statusLocked()
	s.mu.Unlock()
	s.emitStatus(status)
	log.Info("service upload start")

	handle, err := s.uploads.Upload(ctx, req.File, s.cfg.SessionID)

	s.mu.Lock()
	s.uploadInFlight = false
	if err != nil {
		status = s.statusLocked()
		s.mu.Unlock()
		s.emitStatus(status)
		// Upload failures are surfaced to the caller, never appended to the
		// conversation.
		log.Warn("service upload failed", "err", err)
		return schema.SubmitUploadResponse{}, err
	}
	doc := handle
	s.document = &doc
	msg := s.timeline.Append(schema.MessageSystem, fmt.Sprintf("Uploaded %s (%d pages)", handle.Filename, handle.Pages), nil)
	total := s.timeline.Len()
	status = s.statusLocked()
	s.mu.Unlock()

	s.emitDocument(schema.DocumentEvent{SessionID: s.cfg.SessionID, Document: handle})
	s.emitTimeline(msg, total)
	s.emitStatus(status)
	logx.WithDocument(log, handle).Info("service upload complete")
	return schema.SubmitUploadResponse{Document: handle}, nil
}

func (s *service) SubmitQuery(ctx context.Context, req schema.SubmitQueryRequest) (schema.SubmitQueryResponse, error) {
	if ctx == nil {
		return schema.SubmitQueryResponse{}, errors.New("missing context")
	}
	if s.queries == nil {
		return schema.SubmitQueryResponse{}, errors.New("query gateway not configured")
	}
	trimmed := strings.TrimSpace(req.Text)
	log := logx.WithSession(ctx, s.cfg.SessionID).With("message_len", len(trimmed))

	s.mu.Lock()
	if s.document == nil {
		s.mu.Unlock()
		log.Warn("service query rejected", "err", schema.ErrNoDocument)
		return schema.SubmitQueryResponse{}, schema.ErrNoDocument
	}
	if s.queryInFlight || s.uploadInFlight {
		s.mu.Unlock()
		log.Warn("service query rejected", "err", schema.ErrSessionBusy)
		return schema.SubmitQueryResponse{}, schema.ErrSessionBusy
	}
	if trimmed == "" {
		s.mu.Unlock()
		log.Warn("service query rejected", "err", schema.ErrEmptyQuestion)
		return schema.SubmitQueryResponse{}, schema.ErrEmptyQuestion
	}
	// The user entry keeps the original text untrimmed; only the wire
	// message is trimmed.
	userMsg := s.timeline.Append(schema.MessageUser, req.Text, nil)
	total := s.timeline.Len()
	s.draft = ""
	s.history.Append(trimmed)
	s.queryInFlight = true
	status := s.statusLocked()
	s.mu.Unlock()
	s.emitTimeline(userMsg, total)
	s.emitStatus(status)
	log.Info("service query start")

	answer, qerr := s.queries.Query(ctx, trimmed, s.cfg.SessionID)

	s.mu.Lock()
	s.queryInFlight = false
	var reply schema.Message
	if qerr != nil {
		reply = s.timeline.Append(schema.MessageAssistant, schema.QueryFallbackText, []schema.Source{})
	} else {
		sources := answer.Sources
		if sources == nil {
			sources = []schema.Source{}
		}
		reply = s.timeline.Append(schema.MessageAssistant, answer.Text, sources)
	}
	total = s.timeline.Len()
	status = s.statusLocked()
	s.mu.Unlock()
	s.emitTimeline(reply, total)
	s.emitStatus(status)

	if qerr != nil {
		// Backend failures become a fallback assistant message; nothing
		// propagates past this boundary.
		log.Warn("service query failed", "err", qerr)
	} else {
		log.Info("service query answered", "response_len", len(reply.Content), "sources", len(reply.Sources))
	}
	return schema.SubmitQueryResponse{Message: reply}, nil
}

func (s *service) ToggleSources(ctx context.Context, req schema.ToggleSourcesRequest) (schema.ToggleSourcesResponse, error) {
	_ = req
	log := logx.WithSession(ctx, s.cfg.SessionID)

	s.mu.Lock()
	s.sourcesVisible = !s.sourcesVisible
	visible := s.sourcesVisible
	s.mu.Unlock()

	s.emitSources(schema.SourcesEvent{SessionID: s.cfg.SessionID, Visible: visible})
	log.Debug("service sources toggled", "visible", visible)
	return schema.ToggleSourcesResponse{Visible: visible}, nil
}

func (s *service) EditDraft(ctx context.Context, req schema.EditDraftRequest) (schema.EditDraftResponse, error) {
	log := logx.WithSession(ctx, s.cfg.SessionID)

	s.mu.Lock()
	if s.queryInFlight {
		s.mu.Unlock()
		log.Warn("service draft edit rejected", "err", schema.ErrSessionBusy)
		return schema.EditDraftResponse{}, schema.ErrSessionBusy
	}
	s.draft = req.Text
	draft := s.draft
	s.mu.Unlock()

	log.Trace("service draft edited", "draft_len", len(draft))
	return schema.EditDraftResponse{Draft: draft}, nil
}

func (s *service) Snapshot(ctx context.Context, req schema.SnapshotRequest) (schema.SnapshotResponse, error) {
	_ = ctx
	_ = req

	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.timeline.Snapshot()
	var doc *schema.DocumentHandle
	if s.document != nil {
		copied := *s.document
		doc = &copied
	}
	return schema.SnapshotResponse{Session: schema.SessionSnapshot{
		SessionID:      s.cfg.SessionID,
		Messages:       view.Messages,
		Document:       doc,
		UploadInFlight: s.uploadInFlight,
		QueryInFlight:  s.queryInFlight,
		SourcesVisible: s.sourcesVisible,
		Draft:          s.draft,
	}}, nil
}

func (s *service) History(ctx context.Context, req schema.HistoryRequest) (schema.HistoryResponse, error) {
	_ = ctx
	_ = req

	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.HistoryResponse{Entries: s.history.Entries()}, nil
}

func (s *service) statusLocked() schema.StatusEvent {
	return schema.StatusEvent{
		SessionID:      s.cfg.SessionID,
		UploadInFlight: s.uploadInFlight,
		QueryInFlight:  s.queryInFlight,
	}
}

func (s *service) emitTimeline(msg schema.Message, total int) {
	if s.sink == nil {
		return
	}
	s.sink.OnTimeline(schema.TimelineEvent{
		SessionID:     s.cfg.SessionID,
		Message:       msg,
		TotalMessages: total,
	})
}

func (s *service) emitStatus(event schema.StatusEvent) {
	if s.sink == nil {
		return
	}
	s.sink.OnStatus(event)
}

func (s *service) emitDocument(event schema.DocumentEvent) {
	if s.sink == nil {
		return
	}
	s.sink.OnDocument(event)
}

func (s *service) emitSources(event schema.SourcesEvent) {
	if s.sink == nil {
		return
	}
	s.sink.OnSources(event)
}
