package search

import "errors"

var (
	// ErrMissingAPIKey is returned before any request is made when no key is configured.
	ErrMissingAPIKey = errors.New("search API key is required")

	// ErrUpstreamStatus is returned when the search API answers with a non-success status.
	ErrUpstreamStatus = errors.New("search API returned a non-success status")
)
