package askdoc

import (
	"context"
	"time"

	"pkt.systems/askdoc/core"
	"pkt.systems/askdoc/internal/eventbus"
	"pkt.systems/askdoc/internal/gateway"
	"pkt.systems/askdoc/schema"
	"pkt.systems/pslog"
)

// Session is the composed document chat client: backend gateways, the
// session state machine, and event fanout to subscribers.
type Session interface {
	core.Service

	// Subscribe registers a state-change subscriber. The cancel func must be
	// called when the subscriber goes away.
	Subscribe() (<-chan schema.SessionEvent, func())
	// Health probes the backend health endpoint.
	Health(ctx context.Context) error
	// SessionID reports the conversation identity sent with every request.
	SessionID() schema.SessionID
}

// Config configures the session compositor.
type Config struct {
	// BaseURL is the backend base location, scheme and host included.
	BaseURL string
	// RequestTimeout bounds each backend request; zero waits indefinitely.
	RequestTimeout time.Duration
	Service        schema.ServiceConfig
}

// Option customizes session composition.
type Option func(*sessionOptions)

type sessionOptions struct {
	logger pslog.Logger
	sinks  []core.EventSink
}

// WithLogger sets the logger used by all components.
func WithLogger(logger pslog.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// WithEventSink registers an extra sink alongside the built-in event bus.
func WithEventSink(sink core.EventSink) Option {
	return func(o *sessionOptions) {
		if sink != nil {
			o.sinks = append(o.sinks, sink)
		}
	}
}

// New composes a document chat session against the configured backend.
func New(cfg Config, opts ...Option) (Session, error) {
	options := sessionOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}

	normalized, err := schema.NormalizeServiceConfig(cfg.Service)
	if err != nil {
		return nil, err
	}
	cfg.Service = normalized

	client, err := gateway.NewClient(gateway.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)
	sink := eventFanout{sinks: append([]core.EventSink{bus}, options.sinks...)}

	service, err := core.NewService(cfg.Service, core.ServiceDeps{
		Uploads:   client,
		Queries:   client,
		EventSink: sink,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		Service: service,
		bus:     bus,
		client:  client,
		id:      cfg.Service.SessionID,
	}, nil
}

type session struct {
	core.Service
	bus    *eventbus.Bus
	client *gateway.Client
	id     schema.SessionID
}

func (s *session) Subscribe() (<-chan schema.SessionEvent, func()) {
	return s.bus.Subscribe(s.id)
}

func (s *session) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *session) SessionID() schema.SessionID {
	return s.id
}
