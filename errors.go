package mailforge

import "errors"

// Pipeline failures map 1:1 to user-facing error categories. Each stage's
// failure terminates the request; nothing is retried at this level.
var (
	// ErrInvalidInput indicates a missing or malformed request field.
	// Surfaced before any network call is made.
	ErrInvalidInput = errors.New("invalid request")

	// ErrFetchFailed indicates the product page was unreachable or
	// returned a non-success status.
	ErrFetchFailed = errors.New("failed to fetch product page")

	// ErrExtractionFailed indicates the extraction call failed or its
	// output did not parse as the expected structured document.
	ErrExtractionFailed = errors.New("failed to analyze brand/product")

	// ErrGenerationFailed indicates the generation model call failed.
	ErrGenerationFailed = errors.New("email generation failed")

	// ErrNoEmails indicates generation succeeded but zero valid email
	// documents could be parsed from the response.
	ErrNoEmails = errors.New("could not parse emails from response")
)
