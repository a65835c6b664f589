package parseapi

import "errors"

// Human-readable failure messages surfaced to the caller. Exactly one is
// chosen per failure: timeout indicator, then HTTP 429, then HTTP 404, then
// an upstream-supplied message, then the raw transport error, else generic.
var (
	ErrTimeout       = errors.New("request timed out, please try again")
	ErrRateLimited   = errors.New("too many requests, please try again later")
	ErrNotFound      = errors.New("video not found or has been deleted")
	ErrParseFailed   = errors.New("parse failed, please try again later")
	ErrNotConfigured = errors.New("video parse API not configured")
)
