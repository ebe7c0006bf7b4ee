package feeds

import "fmt"

// ConfigError indicates a required feed credential is missing. It is fatal
// for the request that triggered it.
type ConfigError struct {
	Feed string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s feed is not configured: missing API key", e.Feed)
}

func NewConfigError(feed string) *ConfigError {
	return &ConfigError{Feed: feed}
}

// UpstreamError indicates a non-success response or transport failure from
// a feed. For the tide feed it aborts the request; the weather feed
// recovers from it locally.
type UpstreamError struct {
	Feed       string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s feed unavailable: %v", e.Feed, e.Err)
	}
	return fmt.Sprintf("%s feed unavailable: status %d", e.Feed, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
