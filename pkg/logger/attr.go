package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func URL(u string) slog.Attr {
	return slog.String("url", u)
}

func Filename(name string) slog.Attr {
	return slog.String("filename", name)
}

// Bytes records a size in bytes under "bytes".
func Bytes(n int64) slog.Attr {
	return slog.Int64("bytes", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
