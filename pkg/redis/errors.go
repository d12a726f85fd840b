package redis

import "errors"

var (
	// ErrFailedToParseURL is returned when the connection URL is malformed.
	ErrFailedToParseURL = errors.New("failed to parse redis connection URL")
	// ErrNotReady is returned when the server does not answer a ping within
	// the configured attempts.
	ErrNotReady = errors.New("redis did not become ready in time")
)
