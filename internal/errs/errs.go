// Package errs holds the error classes shared by the pipeline stages.
//
// Stages wrap one of these sentinels so the coordinator and CLI can tell a
// configuration mistake from a missing tool, an exhausted provider chain, a
// missing input or a failed publish with errors.Is.
package errs

import "errors"

var (
	// ErrConfiguration is fatal at startup and never retried.
	ErrConfiguration = errors.New("configuration error")
	// ErrDependencyMissing means an external tool such as ffmpeg is not installed.
	ErrDependencyMissing = errors.New("missing dependency")
	// ErrProvider means a provider call failed or returned unusable content.
	ErrProvider = errors.New("provider error")
	// ErrResource covers missing files and failed downloads.
	ErrResource = errors.New("resource error")
	// ErrPublish means the document store rejected the page.
	ErrPublish = errors.New("publish error")
)

// Kind returns a short label for the class of err, or "unknown".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrDependencyMissing):
		return "dependency"
	case errors.Is(err, ErrProvider):
		return "provider"
	case errors.Is(err, ErrResource):
		return "resource"
	case errors.Is(err, ErrPublish):
		return "publish"
	default:
		return "unknown"
	}
}
