package download

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Object is a file streamed into a Sink.
type Object struct {
	Name        string
	ContentType string
	Size        int64 // -1 when unknown
	Body        io.Reader
}

// Sink stores downloaded files and returns where each one ended up
// (a filesystem path or URL).
type Sink interface {
	Put(ctx context.Context, obj Object) (string, error)
}

// SanitizeFilename strips directories, NUL bytes and traversal segments from
// name. The empty string is returned when nothing usable is left.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(name, "\x00", "")
	name = filepath.Base(name)
	switch name {
	case ".", "..", "/", "":
		return ""
	}
	return name
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// capReader counts bytes and fails with ErrTooLarge past limit.
// A limit <= 0 disables the check.
type capReader struct {
	r        io.Reader
	limit    int64
	n        int64
	exceeded bool
}

func (c *capReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if c.limit > 0 && c.n > c.limit {
		c.exceeded = true
		return n, ErrTooLarge
	}
	return n, err
}
