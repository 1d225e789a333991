package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalSink writes files into a directory on the local filesystem.
// Files are written to a temporary name first and renamed when complete, so
// readers never observe partial downloads.
type LocalSink struct {
	dir string
}

// NewLocalSink creates dir if needed and returns a sink writing into it.
func NewLocalSink(dir string) (*LocalSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return &LocalSink{dir: abs}, nil
}

// Dir returns the absolute directory files are written to.
func (s *LocalSink) Dir() string { return s.dir }

// Put writes obj into the sink directory, replacing any file with the same
// name, and returns its absolute path.
func (s *LocalSink) Put(ctx context.Context, obj Object) (string, error) {
	name := SanitizeFilename(obj.Name)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, obj.Name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp := filepath.Join(s.dir, ".download-"+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	_, copyErr := io.Copy(f, &ctxReader{ctx: ctx, r: obj.Body})
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp)
		if copyErr != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteFailed, copyErr)
		}
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, closeErr)
	}

	dst := filepath.Join(s.dir, name)
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return dst, nil
}
