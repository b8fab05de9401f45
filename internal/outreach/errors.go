package outreach

import "fmt"

// GenerationError reports a failed call to the language model.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("AI generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ResponseMalformedError carries the raw model reply that could not be
// decoded as the expected JSON object.
type ResponseMalformedError struct {
	Raw string
	Err error
}

func (e *ResponseMalformedError) Error() string {
	return fmt.Sprintf("AI returned invalid JSON: %s", e.Raw)
}

func (e *ResponseMalformedError) Unwrap() error {
	return e.Err
}
