package download

import "errors"

var (
	ErrNoTrigger         = errors.New("download: no trigger configured")
	ErrNoSink            = errors.New("download: no sink configured")
	ErrEmptyURL          = errors.New("download: empty url")
	ErrUnsupportedScheme = errors.New("download: only http and https urls are supported")
	ErrRequestFailed     = errors.New("download: request failed")
	ErrUnexpectedStatus  = errors.New("download: unexpected response status")
	ErrTooLarge          = errors.New("download: file exceeds size limit")
	ErrInvalidFilename   = errors.New("download: invalid filename")
	ErrInvalidConfig     = errors.New("download: invalid configuration")
	ErrWriteFailed       = errors.New("download: failed to write file")

	// S3 failures, classified from API error codes.
	ErrBucketNotFound     = errors.New("download: bucket not found")
	ErrAccessDenied       = errors.New("download: access denied")
	ErrServiceUnavailable = errors.New("download: storage temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("download: failed to load AWS config")
)
