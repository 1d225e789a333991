package download

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/odash/pkg/logger"
)

// Result describes a completed download.
type Result struct {
	Location    string
	Filename    string
	ContentType string
	Size        int64
}

// HTTPTrigger downloads files over HTTP(S) and hands them to a Sink. It is the
// server-side stand-in for a browser download link.
type HTTPTrigger struct {
	client    *http.Client
	sink      Sink
	log       *slog.Logger
	maxBytes  int64
	timeout   time.Duration
	userAgent string
}

// HTTPOption configures an HTTPTrigger.
type HTTPOption func(*HTTPTrigger)

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTPTrigger) {
		if c != nil {
			t.client = c
		}
	}
}

func WithLogger(l *slog.Logger) HTTPOption {
	return func(t *HTTPTrigger) {
		if l != nil {
			t.log = l
		}
	}
}

// WithMaxBytes rejects files larger than n bytes. Zero means no limit.
func WithMaxBytes(n int64) HTTPOption {
	return func(t *HTTPTrigger) { t.maxBytes = n }
}

// WithTimeout bounds each download, on top of any context deadline.
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTPTrigger) { t.timeout = d }
}

func WithUserAgent(ua string) HTTPOption {
	return func(t *HTTPTrigger) { t.userAgent = ua }
}

// NewHTTPTrigger returns a trigger storing downloads in sink.
func NewHTTPTrigger(sink Sink, opts ...HTTPOption) (*HTTPTrigger, error) {
	if sink == nil {
		return nil, ErrNoSink
	}
	t := &HTTPTrigger{
		client: http.DefaultClient,
		sink:   sink,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Trigger implements Trigger.
func (t *HTTPTrigger) Trigger(ctx context.Context, req Request) error {
	_, err := t.Download(ctx, req)
	return err
}

// Download fetches req.URL and stores the body under req.Filename.
func (t *HTTPTrigger) Download(ctx context.Context, req Request) (*Result, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	u, err := url.Parse(req.URL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, req.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	name := SanitizeFilename(req.Filename)
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, req.Filename)
	}

	start := time.Now()
	log := t.log.With(logger.Component("download"), logger.URL(u.Redacted()), logger.Filename(name))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		log.WarnContext(ctx, "download request failed", logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WarnContext(ctx, "download rejected", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if t.maxBytes > 0 && resp.ContentLength > t.maxBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, resp.ContentLength, t.maxBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body := &capReader{r: resp.Body, limit: t.maxBytes}
	location, err := t.sink.Put(ctx, Object{
		Name:        name,
		ContentType: contentType,
		Size:        resp.ContentLength,
		Body:        body,
	})
	if body.exceeded {
		return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, t.maxBytes)
	}
	if err != nil {
		log.ErrorContext(ctx, "storing download failed", logger.Error(err))
		return nil, err
	}

	log.InfoContext(ctx, "file downloaded",
		slog.String("location", location),
		logger.Bytes(body.n),
		logger.Duration(time.Since(start)),
	)

	return &Result{
		Location:    location,
		Filename:    name,
		ContentType: contentType,
		Size:        body.n,
	}, nil
}
