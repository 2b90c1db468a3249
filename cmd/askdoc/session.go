package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"pkt.systems/askdoc"
	"pkt.systems/askdoc/internal/appconfig"
	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

type sessionFlags struct {
	configPath string
	serverURL  string
	sessionID  string
}

func openSession(ctx context.Context, flags sessionFlags) (askdoc.Session, appconfig.Config, error) {
	cfg, err := appconfig.Load(flags.configPath)
	if err != nil {
		return nil, appconfig.Config{}, err
	}
	if flags.serverURL != "" {
		cfg.Server.BaseURL = flags.serverURL
	}
	if flags.sessionID != "" {
		cfg.Session.ID = flags.sessionID
	}

	session, err := askdoc.New(askdoc.Config{
		BaseURL:        cfg.Server.BaseURL,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second,
		Service: schema.ServiceConfig{
			SessionID:  schema.SessionID(cfg.Session.ID),
			HistoryMax: cfg.Service.HistoryMax,
		},
	}, askdoc.WithLogger(pslog.Ctx(ctx)))
	if err != nil {
		return nil, appconfig.Config{}, err
	}
	return session, cfg, nil
}

// uploadFile submits a local file through the session.
func uploadFile(ctx context.Context, session askdoc.Session, path string) (schema.DocumentHandle, error) {
	file, err := os.Open(path)
	if err != nil {
		return schema.DocumentHandle{}, err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return schema.DocumentHandle{}, err
	}
	resp, err := session.SubmitUpload(ctx, schema.SubmitUploadRequest{
		File: schema.UploadFile{
			Name:        filepath.Base(path),
			Size:        info.Size(),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Data:        file,
		},
	})
	if err != nil {
		return schema.DocumentHandle{}, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	return resp.Document, nil
}
