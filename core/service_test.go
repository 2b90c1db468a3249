package core

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"pkt.systems/askdoc/schema"
)

type fakeUploadGateway struct {
	handle  schema.DocumentHandle
	err     error
	started chan struct{}
	release chan struct{}
	calls   atomic.Int64
}

func (f *fakeUploadGateway) Upload(ctx context.Context, file schema.UploadFile, sessionID schema.SessionID) (schema.DocumentHandle, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return schema.DocumentHandle{}, f.err
	}
	handle := f.handle
	if handle.Filename == "" {
		handle.Filename = file.Name
	}
	return handle, nil
}

type fakeQueryGateway struct {
	answer  schema.Answer
	err     error
	started chan struct{}
	release chan struct{}
	calls   atomic.Int64
}

func (f *fakeQueryGateway) Query(ctx context.Context, message string, sessionID schema.SessionID) (schema.Answer, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return schema.Answer{}, f.err
	}
	return f.answer, nil
}

type recordingSink struct {
	mu        sync.Mutex
	timeline  []schema.TimelineEvent
	status    []schema.StatusEvent
	documents []schema.DocumentEvent
	sources   []schema.SourcesEvent
}

func (r *recordingSink) OnTimeline(event schema.TimelineEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeline = append(r.timeline, event)
}

func (r *recordingSink) OnStatus(event schema.StatusEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = append(r.status, event)
}

func (r *recordingSink) OnDocument(event schema.DocumentEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents = append(r.documents, event)
}

func (r *recordingSink) OnSources(event schema.SourcesEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, event)
}

func (r *recordingSink) timelineEvents() []schema.TimelineEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]schema.TimelineEvent(nil), r.timeline...)
}

func newTestService(t *testing.T, deps ServiceDeps) Service {
	t.Helper()
	svc, err := NewService(schema.ServiceConfig{SessionID: "default"}, deps)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func uploadRequest(name string) schema.SubmitUploadRequest {
	return schema.SubmitUploadRequest{File: schema.UploadFile{Name: name, Size: 8}}
}

func mustUpload(t *testing.T, svc Service, name string) schema.DocumentHandle {
	t.Helper()
	resp, err := svc.SubmitUpload(context.Background(), uploadRequest(name))
	if err != nil {
		t.Fatalf("submit upload: %v", err)
	}
	return resp.Document
}

func sessionSnapshot(t *testing.T, svc Service) schema.SessionSnapshot {
	t.Helper()
	resp, err := svc.Snapshot(context.Background(), schema.SnapshotRequest{})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return resp.Session
}
