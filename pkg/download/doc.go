// Package download starts file downloads through a pluggable Trigger.
//
// FromURL is the entry point. It names the file "<fileName>.pdf", whatever
// the content actually is, and hands the request to a Trigger:
//
//	err := download.FromURL(ctx, trigger, "https://example.com/r/42", "report-42")
//	// trigger receives Request{URL: ..., Filename: "report-42.pdf", Target: "_blank"}
//
// In a browser the trigger activates a hidden link. Server-side code uses
// HTTPTrigger, which fetches the URL and streams the body into a Sink:
//
//   - LocalSink writes into a directory (atomic rename, no partial files).
//   - S3Sink uploads to an S3 or S3-compatible bucket via aws-sdk-go-v2.
//
// NewFromConfig wires both from ODASH_DOWNLOAD_* environment variables:
//
//	cfg, err := download.LoadConfig()
//	trigger, err := download.NewFromConfig(ctx, cfg, download.WithLogger(log))
//
// # Errors
//
// All failures wrap a sentinel from errors.go (ErrUnexpectedStatus,
// ErrTooLarge, ErrAccessDenied, ...), so callers can branch with errors.Is.
package download
