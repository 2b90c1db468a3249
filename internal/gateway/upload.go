package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"pkt.systems/askdoc/schema"
)

// Upload sends one document to the ingestion endpoint and returns the handle
// for subsequent queries. Oversized and non-PDF files are rejected before any
// request is issued. The handle's filename is echoed from the local file; the
// page, table and image counts come from the response body.
func (c *Client) Upload(ctx context.Context, file schema.UploadFile, sessionID schema.SessionID) (schema.DocumentHandle, error) {
	if file.Data == nil {
		return schema.DocumentHandle{}, errors.New("missing file data")
	}
	if !strings.EqualFold(filepath.Ext(file.Name), ".pdf") {
		return schema.DocumentHandle{}, schema.ErrUnsupportedFile
	}
	if file.ContentType != "" && !strings.EqualFold(file.ContentType, "application/pdf") {
		return schema.DocumentHandle{}, schema.ErrUnsupportedFile
	}
	if file.Size > schema.MaxUploadBytes {
		return schema.DocumentHandle{}, schema.ErrFileTooLarge
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return schema.DocumentHandle{}, err
	}
	if _, err := io.Copy(part, file.Data); err != nil {
		return schema.DocumentHandle{}, err
	}
	if err := writer.Close(); err != nil {
		return schema.DocumentHandle{}, err
	}

	target := c.baseURL + "/upload?session_id=" + url.QueryEscape(string(sessionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return schema.DocumentHandle{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	log := c.logger.With("session", sessionID, "filename", file.Name, "size", file.Size)
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Warn("upload request failed", "err", err)
		return schema.DocumentHandle{}, &schema.UploadFailedError{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := decodeErrorDetail(resp.Body)
		log.Warn("upload rejected", "status", resp.StatusCode, "detail", detail)
		return schema.DocumentHandle{}, &schema.UploadFailedError{Detail: detail}
	}

	var result schema.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Warn("upload response unreadable", "err", err)
		return schema.DocumentHandle{}, &schema.UploadFailedError{}
	}
	log.Info("upload accepted", "pages", result.Pages, "tables", result.Tables, "images", result.Images)
	return schema.DocumentHandle{
		Filename: file.Name,
		Pages:    result.Pages,
		Tables:   result.Tables,
		Images:   result.Images,
	}, nil
}

// decodeErrorDetail extracts the optional {"detail": ...} failure body.
func decodeErrorDetail(r io.Reader) string {
	var body schema.ErrorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Detail)
}
