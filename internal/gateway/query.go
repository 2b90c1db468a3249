package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pkt.systems/askdoc/schema"
)

// Query sends one question to the answering endpoint. The message is trimmed
// before it reaches the wire. Failures collapse to ErrQueryFailed: the error
// body is not assumed parseable, so no detail is promised.
func (c *Client) Query(ctx context.Context, message string, sessionID schema.SessionID) (schema.Answer, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return schema.Answer{}, schema.ErrEmptyQuestion
	}

	payload, err := json.Marshal(schema.ChatRequest{
		Message:   trimmed,
		SessionID: string(sessionID),
	})
	if err != nil {
		return schema.Answer{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return schema.Answer{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	log := c.logger.With("session", sessionID, "message_len", len(trimmed))
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Warn("query request failed", "err", err)
		return schema.Answer{}, fmt.Errorf("%w: %v", schema.ErrQueryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("query rejected", "status", resp.StatusCode)
		return schema.Answer{}, fmt.Errorf("%w: status %d", schema.ErrQueryFailed, resp.StatusCode)
	}

	var result schema.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Warn("query response unreadable", "err", err)
		return schema.Answer{}, fmt.Errorf("%w: %v", schema.ErrQueryFailed, err)
	}

	sources := make([]schema.Source, 0, len(result.Sources))
	for _, src := range result.Sources {
		src.Type = schema.NormalizeSourceType(string(src.Type))
		sources = append(sources, src)
	}
	log.Info("query answered", "response_len", len(result.Response), "sources", len(sources))
	return schema.Answer{Text: result.Response, Sources: sources}, nil
}
