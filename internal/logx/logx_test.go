package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

func TestWithSessionAddsField(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	log := WithSession(ctx, "default")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["session"] != "default" {
		t.Fatalf("expected session field, got %+v", entry)
	}
}

func TestWithSessionDeduplicates(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	ctx = ContextWithSession(ctx, "default")
	log := WithSession(ctx, "default")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if _, ok := entry["session"]; ok {
		t.Fatalf("did not expect duplicated session field, got %+v", entry)
	}
}

func TestWithDocumentAddsFields(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	log := WithDocument(logger, schema.DocumentHandle{Filename: "report.pdf", Pages: 2})
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["document"] != "report.pdf" {
		t.Fatalf("expected document field, got %+v", entry)
	}
	if entry["pages"] != float64(2) {
		t.Fatalf("expected pages field, got %+v", entry)
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
