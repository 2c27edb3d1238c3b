package scrape

import "fmt"

// FetchError indicates the page fetch failed. Status is zero for transport
// failures (DNS, timeout, refused connection).
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch failed with status code %d", e.Status)
	}
	return fmt.Sprintf("fetch failed: %s", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusCode implements retry.APIError so retryable statuses are
// distinguished from fatal ones.
func (e *FetchError) StatusCode() int {
	return e.Status
}
