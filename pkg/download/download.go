package download

import (
	"context"
	"strings"
)

const (
	// Extension is appended to every suggested filename. Downloads are always
	// named as PDFs, whatever the served content type.
	Extension = ".pdf"
	// DefaultTarget asks browser-like triggers to open the link in a new tab.
	DefaultTarget = "_blank"
)

// Request describes a file download to start.
type Request struct {
	URL      string
	Filename string // suggested filename, extension included
	Target   string
}

// Trigger starts a download. Browser front-ends implement it by activating a
// hidden link; HTTPTrigger fetches the file and stores it in a Sink.
type Trigger interface {
	Trigger(ctx context.Context, req Request) error
}

// TriggerFunc adapts a function to Trigger.
type TriggerFunc func(ctx context.Context, req Request) error

func (f TriggerFunc) Trigger(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// NewRequest builds the request FromURL sends: fileName gets the .pdf
// extension and the target is DefaultTarget.
func NewRequest(url, fileName string) Request {
	return Request{
		URL:      url,
		Filename: fileName + Extension,
		Target:   DefaultTarget,
	}
}

// FromURL asks t to download url under the name "<fileName>.pdf".
func FromURL(ctx context.Context, t Trigger, url, fileName string) error {
	if t == nil {
		return ErrNoTrigger
	}
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	return t.Trigger(ctx, NewRequest(url, fileName))
}
